package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg and records a stack trace at the call site.
// A nil err stays nil so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark gives err a second identity: errors.Is matches both the original
// chain and markErr. Used to surface infrastructure failures as usecase
// sentinels without losing the cause.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: err, mark: markErr}
}

// marked carries the original cause and a sentinel as sibling branches so
// the standard errors.Is walks both. The message stays the cause's; the
// sentinel only adds identity.
type marked struct {
	cause error
	mark  error
}

func (m *marked) Error() string { return m.cause.Error() }

func (m *marked) Unwrap() []error { return []error{m.cause, m.mark} }
