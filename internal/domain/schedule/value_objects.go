package schedule

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidDate      = errors.New("invalid date")
	ErrEmptySlotGrid    = errors.New("slot grid must contain at least one time")
	ErrTimeNotInGrid    = errors.New("time is not in the canonical slot grid")
)

// TimeOfDay is a civil wall-clock time ("09:00") with minute precision.
// The scheduling core never deals in timezones; a TimeOfDay is only
// meaningful combined with a Date.
type TimeOfDay struct {
	minutes int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return TimeOfDay{minutes: parsed.Hour()*60 + parsed.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// Date is a civil calendar date without a time component.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return Date{year: year, month: month, day: day}, nil
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

// DateOf truncates an instant to its civil date in the instant's location.
func DateOf(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

func (d Date) Weekday() time.Weekday {
	return d.toTime().Weekday()
}

func (d Date) Before(other Date) bool {
	return d.toTime().Before(other.toTime())
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.toTime().AddDate(0, 0, n))
}

// MonthIndex counts months since year zero, used for horizon arithmetic.
func (d Date) MonthIndex() int {
	return d.year*12 + int(d.month) - 1
}

// ToTime returns midnight UTC of the date, the representation the
// persistence layer stores in a Postgres date column.
func (d Date) ToTime() time.Time {
	return d.toTime()
}

func (d Date) toTime() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// SlotGrid is the canonical vocabulary of bookable times. Template slots,
// override blocks and booking requests must all validate against it.
type SlotGrid struct {
	times []TimeOfDay
}

func NewSlotGrid(raw []string) (SlotGrid, error) {
	if len(raw) == 0 {
		return SlotGrid{}, ErrEmptySlotGrid
	}

	seen := make(map[int]struct{}, len(raw))
	times := make([]TimeOfDay, 0, len(raw))
	for _, s := range raw {
		t, err := ParseTimeOfDay(strings.TrimSpace(s))
		if err != nil {
			return SlotGrid{}, err
		}
		if _, dup := seen[t.Minutes()]; dup {
			continue
		}
		seen[t.Minutes()] = struct{}{}
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	return SlotGrid{times: times}, nil
}

func (g SlotGrid) Contains(t TimeOfDay) bool {
	for _, slot := range g.times {
		if slot == t {
			return true
		}
	}
	return false
}

// Times returns the grid in ascending order. The slice is a copy.
func (g SlotGrid) Times() []TimeOfDay {
	out := make([]TimeOfDay, len(g.times))
	copy(out, g.times)
	return out
}

func (g SlotGrid) Len() int {
	return len(g.times)
}

// SortTimes orders a slice of times ascending, in place.
func SortTimes(times []TimeOfDay) {
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
}

// FormatTimes renders times as their canonical "HH:MM" strings.
func FormatTimes(times []TimeOfDay) []string {
	out := make([]string, len(times))
	for i, t := range times {
		out[i] = t.String()
	}
	return out
}
