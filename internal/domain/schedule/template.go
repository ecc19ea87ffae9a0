package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrTemplateEntryCount    = errors.New("weekly template must contain exactly seven entries")
	ErrDuplicateWeekday      = errors.New("duplicate weekday in weekly template")
	ErrMissingWeekday        = errors.New("missing weekday in weekly template")
	ErrInvalidWeekday        = errors.New("weekday must be between 0 and 6")
	ErrSlotOutsideGrid       = errors.New("template slot outside canonical grid")
	ErrActiveDayWithoutSlots = errors.New("active weekday must offer at least one slot")
)

// TemplateEntry is the recurring availability of one weekday.
type TemplateEntry struct {
	weekday  time.Weekday
	isActive bool
	slots    []TimeOfDay
}

// NewTemplateEntry validates one weekday entry against the canonical grid.
// Slots are deduplicated and stored in ascending order; an inactive day
// keeps no slots at all.
func NewTemplateEntry(weekday int, isActive bool, slots []TimeOfDay, grid SlotGrid) (TemplateEntry, error) {
	if weekday < 0 || weekday > 6 {
		return TemplateEntry{}, fmt.Errorf("%w: %d", ErrInvalidWeekday, weekday)
	}

	if !isActive {
		return TemplateEntry{weekday: time.Weekday(weekday)}, nil
	}

	if len(slots) == 0 {
		return TemplateEntry{}, fmt.Errorf("%w: %s", ErrActiveDayWithoutSlots, time.Weekday(weekday))
	}

	seen := make(map[int]struct{}, len(slots))
	kept := make([]TimeOfDay, 0, len(slots))
	for _, slot := range slots {
		if !grid.Contains(slot) {
			return TemplateEntry{}, fmt.Errorf("%w: %s on %s", ErrSlotOutsideGrid, slot, time.Weekday(weekday))
		}
		if _, dup := seen[slot.Minutes()]; dup {
			continue
		}
		seen[slot.Minutes()] = struct{}{}
		kept = append(kept, slot)
	}
	SortTimes(kept)

	return TemplateEntry{
		weekday:  time.Weekday(weekday),
		isActive: true,
		slots:    kept,
	}, nil
}

// ReconstructTemplateEntry rebuilds an entry from storage without grid
// validation; the grid is checked at write time, not read time.
func ReconstructTemplateEntry(weekday time.Weekday, isActive bool, slots []TimeOfDay) TemplateEntry {
	SortTimes(slots)
	return TemplateEntry{weekday: weekday, isActive: isActive, slots: slots}
}

func (e TemplateEntry) Weekday() time.Weekday { return e.weekday }
func (e TemplateEntry) IsActive() bool        { return e.isActive }

func (e TemplateEntry) Slots() []TimeOfDay {
	out := make([]TimeOfDay, len(e.slots))
	copy(out, e.slots)
	return out
}

// WeeklyTemplate is the complete recurring schedule: exactly one entry per
// weekday. Construction is the single place the all-seven invariant is
// enforced; a template loaded from storage that cannot pass it is a
// configuration fault, not a per-request condition.
type WeeklyTemplate struct {
	entries [7]TemplateEntry
}

func NewWeeklyTemplate(entries []TemplateEntry) (*WeeklyTemplate, error) {
	if len(entries) != 7 {
		return nil, fmt.Errorf("%w: got %d", ErrTemplateEntryCount, len(entries))
	}

	var tpl WeeklyTemplate
	var present [7]bool
	for _, e := range entries {
		idx := int(e.weekday)
		if present[idx] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWeekday, e.weekday)
		}
		present[idx] = true
		tpl.entries[idx] = e
	}
	for day, ok := range present {
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingWeekday, time.Weekday(day))
		}
	}

	return &tpl, nil
}

func (t *WeeklyTemplate) EntryFor(weekday time.Weekday) TemplateEntry {
	return t.entries[int(weekday)]
}

func (t *WeeklyTemplate) Entries() []TemplateEntry {
	out := make([]TemplateEntry, 7)
	copy(out, t.entries[:])
	return out
}
