package schedule

// DayStatus distinguishes why a day can or cannot be selected. Closed and
// full both render as unselectable to a visitor, but operators need to see
// the difference.
type DayStatus string

const (
	StatusOpen   DayStatus = "open"
	StatusClosed DayStatus = "closed"
	StatusFull   DayStatus = "full"
)

func (s DayStatus) String() string {
	return string(s)
}

func (s DayStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusFull:
		return true
	default:
		return false
	}
}
