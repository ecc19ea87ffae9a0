//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"renobooking/internal/domain/schedule"
	"renobooking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestResolveDay(t *testing.T) {
	today := builder.MustDate("2026-09-01")
	tpl := builder.NewTemplateBuilder().MustBuild()

	t.Run("template only offers the full weekday slots", func(t *testing.T) {
		day := schedule.ResolveDay(today, builder.MustDate("2026-09-15"), tpl, nil, nil)

		assert.Equal(t, schedule.StatusOpen, day.Status)
		assert.True(t, day.IsOpen())
		if diff := cmp.Diff(builder.DefaultSlotTimes, schedule.FormatTimes(day.Available)); diff != "" {
			t.Errorf("available mismatch (-want +got):\n%s", diff)
		}
		assert.Empty(t, day.Booked)
	})

	t.Run("override blocks individual slots", func(t *testing.T) {
		override := builder.NewOverrideBuilder().With(func(b *builder.OverrideBuilder) {
			b.Date = "2026-09-15"
			b.Blocked = []string{"09:00", "13:00"}
		}).MustBuild()

		day := schedule.ResolveDay(today, builder.MustDate("2026-09-15"), tpl, override, nil)

		assert.Equal(t, schedule.StatusOpen, day.Status)
		assert.NotContains(t, schedule.FormatTimes(day.Available), "09:00")
		assert.NotContains(t, schedule.FormatTimes(day.Available), "13:00")
		assert.Contains(t, schedule.FormatTimes(day.Available), "10:00")
		// Blocked is not booked; it simply vanishes from the day.
		assert.Empty(t, day.Booked)
	})

	t.Run("closed override dominates everything", func(t *testing.T) {
		override := builder.NewOverrideBuilder().With(func(b *builder.OverrideBuilder) {
			b.Date = "2026-09-15"
			b.IsOpen = false
		}).MustBuild()

		day := schedule.ResolveDay(today, builder.MustDate("2026-09-15"), tpl, override, builder.MustTimes("10:00"))

		assert.Equal(t, schedule.StatusClosed, day.Status)
		assert.False(t, day.IsOpen())
		assert.Empty(t, day.Available)
	})

	t.Run("bookings remove slots and surface as booked", func(t *testing.T) {
		booked := builder.MustTimes("10:00", "11:00")

		day := schedule.ResolveDay(today, builder.MustDate("2026-09-15"), tpl, nil, booked)

		assert.Equal(t, schedule.StatusOpen, day.Status)
		assert.NotContains(t, schedule.FormatTimes(day.Available), "10:00")
		assert.Equal(t, []string{"10:00", "11:00"}, schedule.FormatTimes(day.Booked))
	})

	t.Run("fully booked day is full, not closed", func(t *testing.T) {
		day := schedule.ResolveDay(today, builder.MustDate("2026-09-15"), tpl, nil, builder.MustTimes(builder.DefaultSlotTimes...))

		assert.Equal(t, schedule.StatusFull, day.Status)
		assert.True(t, day.IsOpen())
		assert.Empty(t, day.Available)
		assert.Len(t, day.Booked, len(builder.DefaultSlotTimes))
	})

	t.Run("inactive weekday is closed", func(t *testing.T) {
		sunday := builder.MustDate("2026-09-06")
		assert.Equal(t, time.Sunday, sunday.Weekday())

		day := schedule.ResolveDay(today, sunday, tpl, nil, nil)

		assert.Equal(t, schedule.StatusClosed, day.Status)
	})

	t.Run("past date is closed even when template is open", func(t *testing.T) {
		day := schedule.ResolveDay(today, builder.MustDate("2026-08-31"), tpl, nil, nil)

		assert.Equal(t, schedule.StatusClosed, day.Status)
		assert.Empty(t, day.Available)
	})

	t.Run("today itself is bookable", func(t *testing.T) {
		day := schedule.ResolveDay(today, today, tpl, nil, nil)

		assert.Equal(t, schedule.StatusOpen, day.Status)
	})

	t.Run("override and bookings compose", func(t *testing.T) {
		override := builder.NewOverrideBuilder().With(func(b *builder.OverrideBuilder) {
			b.Date = "2026-09-15"
			b.Blocked = []string{"09:00"}
		}).MustBuild()

		day := schedule.ResolveDay(today, builder.MustDate("2026-09-15"), tpl, override, builder.MustTimes("10:00"))

		formatted := schedule.FormatTimes(day.Available)
		assert.NotContains(t, formatted, "09:00")
		assert.NotContains(t, formatted, "10:00")
		assert.Contains(t, formatted, "11:00")
		assert.True(t, day.Offers(builder.MustTimes("11:00")[0]))
		assert.False(t, day.Offers(builder.MustTimes("10:00")[0]))
	})
}
