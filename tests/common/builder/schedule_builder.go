//go:build unit || e2e

package builder

import (
	"time"

	"renobooking/internal/domain/schedule"
)

var DefaultSlotTimes = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

func DefaultGrid() schedule.SlotGrid {
	grid, err := schedule.NewSlotGrid(DefaultSlotTimes)
	if err != nil {
		panic(err)
	}
	return grid
}

func MustTimes(raw ...string) []schedule.TimeOfDay {
	times := make([]schedule.TimeOfDay, 0, len(raw))
	for _, v := range raw {
		t, err := schedule.ParseTimeOfDay(v)
		if err != nil {
			panic(err)
		}
		times = append(times, t)
	}
	return times
}

func MustDate(s string) schedule.Date {
	d, err := schedule.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// TemplateBuilder assembles a weekly template: closed Sunday, the full
// default grid Monday through Saturday.
type TemplateBuilder struct {
	Grid     schedule.SlotGrid
	Active   map[time.Weekday]bool
	Slots    map[time.Weekday][]string
	Weekdays []time.Weekday
}

func NewTemplateBuilder() *TemplateBuilder {
	b := &TemplateBuilder{
		Grid:   DefaultGrid(),
		Active: make(map[time.Weekday]bool),
		Slots:  make(map[time.Weekday][]string),
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		b.Weekdays = append(b.Weekdays, wd)
		if wd == time.Sunday {
			b.Active[wd] = false
			b.Slots[wd] = nil
		} else {
			b.Active[wd] = true
			b.Slots[wd] = DefaultSlotTimes
		}
	}
	return b
}

func (b *TemplateBuilder) With(mutate func(*TemplateBuilder)) *TemplateBuilder {
	mutate(b)
	return b
}

func (b *TemplateBuilder) WithClosed(wd time.Weekday) *TemplateBuilder {
	b.Active[wd] = false
	b.Slots[wd] = nil
	return b
}

func (b *TemplateBuilder) WithSlots(wd time.Weekday, slots ...string) *TemplateBuilder {
	b.Active[wd] = true
	b.Slots[wd] = slots
	return b
}

func (b *TemplateBuilder) WithoutWeekday(wd time.Weekday) *TemplateBuilder {
	kept := b.Weekdays[:0]
	for _, w := range b.Weekdays {
		if w != wd {
			kept = append(kept, w)
		}
	}
	b.Weekdays = kept
	return b
}

func (b *TemplateBuilder) BuildEntries() ([]schedule.TemplateEntry, error) {
	entries := make([]schedule.TemplateEntry, 0, len(b.Weekdays))
	for _, wd := range b.Weekdays {
		entry, err := schedule.NewTemplateEntry(int(wd), b.Active[wd], MustTimes(b.Slots[wd]...), b.Grid)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (b *TemplateBuilder) BuildDomain() (*schedule.WeeklyTemplate, error) {
	entries, err := b.BuildEntries()
	if err != nil {
		return nil, err
	}
	return schedule.NewWeeklyTemplate(entries)
}

func (b *TemplateBuilder) MustBuild() *schedule.WeeklyTemplate {
	tpl, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return tpl
}

// OverrideBuilder assembles a date override; defaults to an open day with
// one blocked slot.
type OverrideBuilder struct {
	Date    string
	IsOpen  bool
	Blocked []string
	Reason  string
	Grid    schedule.SlotGrid
}

func NewOverrideBuilder() *OverrideBuilder {
	return &OverrideBuilder{
		Date:    "2026-09-15",
		IsOpen:  true,
		Blocked: []string{"13:00"},
		Reason:  "Site visit in the afternoon",
		Grid:    DefaultGrid(),
	}
}

func (b *OverrideBuilder) With(mutate func(*OverrideBuilder)) *OverrideBuilder {
	mutate(b)
	return b
}

func (b *OverrideBuilder) BuildDomain() (*schedule.DateOverride, error) {
	return schedule.NewDateOverride(MustDate(b.Date), b.IsOpen, MustTimes(b.Blocked...), b.Reason, b.Grid)
}

func (b *OverrideBuilder) MustBuild() *schedule.DateOverride {
	o, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return o
}
