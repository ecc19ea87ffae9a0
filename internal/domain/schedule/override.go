package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBlockedTimeOutsideGrid = errors.New("blocked time outside canonical grid")

const MaxOverrideReasonLength = 500

// DateOverride is a single-day exception to the weekly template: either a
// full-day closure or a set of blocked times. The date is the natural key.
type DateOverride struct {
	date    Date
	isOpen  bool
	blocked []TimeOfDay
	reason  string
}

// NewDateOverride validates blocked times against the grid. Blocked times
// are only meaningful on an open day; a closure discards them.
func NewDateOverride(date Date, isOpen bool, blocked []TimeOfDay, reason string, grid SlotGrid) (*DateOverride, error) {
	reason = strings.TrimSpace(reason)
	if runes := []rune(reason); len(runes) > MaxOverrideReasonLength {
		reason = string(runes[:MaxOverrideReasonLength])
	}

	if !isOpen {
		return &DateOverride{date: date, isOpen: false, reason: reason}, nil
	}

	seen := make(map[int]struct{}, len(blocked))
	kept := make([]TimeOfDay, 0, len(blocked))
	for _, t := range blocked {
		if !grid.Contains(t) {
			return nil, fmt.Errorf("%w: %s", ErrBlockedTimeOutsideGrid, t)
		}
		if _, dup := seen[t.Minutes()]; dup {
			continue
		}
		seen[t.Minutes()] = struct{}{}
		kept = append(kept, t)
	}
	SortTimes(kept)

	return &DateOverride{
		date:    date,
		isOpen:  true,
		blocked: kept,
		reason:  reason,
	}, nil
}

// ReconstructDateOverride rebuilds an override from storage without
// re-validating against the grid; the grid may have been reconfigured
// since the override was written.
func ReconstructDateOverride(date Date, isOpen bool, blocked []TimeOfDay, reason string) *DateOverride {
	return &DateOverride{
		date:    date,
		isOpen:  isOpen,
		blocked: blocked,
		reason:  reason,
	}
}

func (o *DateOverride) Date() Date     { return o.date }
func (o *DateOverride) IsOpen() bool   { return o.isOpen }
func (o *DateOverride) Reason() string { return o.reason }

func (o *DateOverride) BlockedTimes() []TimeOfDay {
	out := make([]TimeOfDay, len(o.blocked))
	copy(out, o.blocked)
	return out
}

func (o *DateOverride) Blocks(t TimeOfDay) bool {
	for _, b := range o.blocked {
		if b == t {
			return true
		}
	}
	return false
}
