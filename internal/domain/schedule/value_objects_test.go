//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"renobooking/internal/domain/schedule"
	"renobooking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		for _, s := range []string{"00:00", "09:00", "13:30", "23:59"} {
			parsed, err := schedule.ParseTimeOfDay(s)
			require.NoError(t, err)
			assert.Equal(t, s, parsed.String())
		}
	})

	t.Run("invalid times", func(t *testing.T) {
		for _, s := range []string{"", "9:00:00", "24:00", "09:60", "morning", "0900"} {
			_, err := schedule.ParseTimeOfDay(s)
			assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay, "input %q", s)
		}
	})

	t.Run("ordering", func(t *testing.T) {
		earlier := builder.MustTimes("09:00")[0]
		later := builder.MustTimes("09:01")[0]
		assert.True(t, earlier.Before(later))
		assert.False(t, later.Before(earlier))
		assert.False(t, earlier.Before(earlier))
	})
}

func TestDate(t *testing.T) {
	t.Run("parse round trip", func(t *testing.T) {
		d, err := schedule.ParseDate("2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", d.String())
		assert.Equal(t, time.Tuesday, d.Weekday())
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		for _, s := range []string{"", "15-09-2026", "2026-13-01", "2026-02-30", "tomorrow"} {
			_, err := schedule.ParseDate(s)
			assert.ErrorIs(t, err, schedule.ErrInvalidDate, "input %q", s)
		}
	})

	t.Run("NewDate rejects overflowing components", func(t *testing.T) {
		_, err := schedule.NewDate(2026, time.February, 30)
		assert.ErrorIs(t, err, schedule.ErrInvalidDate)
	})

	t.Run("AddDays crosses month boundary", func(t *testing.T) {
		d := builder.MustDate("2026-08-31")
		assert.Equal(t, "2026-09-01", d.AddDays(1).String())
	})

	t.Run("MonthIndex is contiguous across year boundary", func(t *testing.T) {
		dec := builder.MustDate("2026-12-15")
		jan := builder.MustDate("2027-01-15")
		assert.Equal(t, dec.MonthIndex()+1, jan.MonthIndex())
	})

	t.Run("Before and Equal", func(t *testing.T) {
		a := builder.MustDate("2026-09-14")
		b := builder.MustDate("2026-09-15")
		assert.True(t, a.Before(b))
		assert.False(t, b.Before(a))
		assert.True(t, a.Equal(builder.MustDate("2026-09-14")))
	})
}

func TestSlotGrid(t *testing.T) {
	t.Run("rejects empty grid", func(t *testing.T) {
		_, err := schedule.NewSlotGrid(nil)
		assert.ErrorIs(t, err, schedule.ErrEmptySlotGrid)
	})

	t.Run("deduplicates and sorts", func(t *testing.T) {
		grid, err := schedule.NewSlotGrid([]string{"14:00", "09:00", "14:00", " 11:00 "})
		require.NoError(t, err)

		want := []string{"09:00", "11:00", "14:00"}
		if diff := cmp.Diff(want, schedule.FormatTimes(grid.Times())); diff != "" {
			t.Errorf("grid times mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Contains", func(t *testing.T) {
		grid := builder.DefaultGrid()
		assert.True(t, grid.Contains(builder.MustTimes("09:00")[0]))
		assert.False(t, grid.Contains(builder.MustTimes("09:30")[0]))
	})

	t.Run("rejects invalid entries", func(t *testing.T) {
		_, err := schedule.NewSlotGrid([]string{"09:00", "bogus"})
		assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
	})
}
