package patch

// Coalesce dereferences ptr, falling back when the optional field was omitted.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
