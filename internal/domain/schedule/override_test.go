//go:build unit

package schedule_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"renobooking/internal/domain/schedule"
	"renobooking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateOverride(t *testing.T) {
	t.Run("open day keeps sorted blocked times", func(t *testing.T) {
		o, err := builder.NewOverrideBuilder().With(func(b *builder.OverrideBuilder) {
			b.Blocked = []string{"15:00", "10:00", "15:00"}
		}).BuildDomain()
		require.NoError(t, err)

		assert.True(t, o.IsOpen())
		assert.Equal(t, []string{"10:00", "15:00"}, schedule.FormatTimes(o.BlockedTimes()))
		assert.True(t, o.Blocks(builder.MustTimes("10:00")[0]))
		assert.False(t, o.Blocks(builder.MustTimes("11:00")[0]))
	})

	t.Run("closure discards blocked times", func(t *testing.T) {
		o, err := builder.NewOverrideBuilder().With(func(b *builder.OverrideBuilder) {
			b.IsOpen = false
			b.Blocked = []string{"10:00"}
		}).BuildDomain()
		require.NoError(t, err)

		assert.False(t, o.IsOpen())
		assert.Empty(t, o.BlockedTimes())
	})

	t.Run("rejects blocked time outside grid", func(t *testing.T) {
		_, err := builder.NewOverrideBuilder().With(func(b *builder.OverrideBuilder) {
			b.Blocked = []string{"09:45"}
		}).BuildDomain()
		assert.ErrorIs(t, err, schedule.ErrBlockedTimeOutsideGrid)
	})

	t.Run("reason is trimmed and capped", func(t *testing.T) {
		o, err := builder.NewOverrideBuilder().With(func(b *builder.OverrideBuilder) {
			b.Reason = "  " + strings.Repeat("x", schedule.MaxOverrideReasonLength+100) + "  "
		}).BuildDomain()
		require.NoError(t, err)

		assert.Len(t, o.Reason(), schedule.MaxOverrideReasonLength)
	})

	t.Run("reason cap keeps multibyte characters intact", func(t *testing.T) {
		o, err := builder.NewOverrideBuilder().With(func(b *builder.OverrideBuilder) {
			b.Reason = strings.Repeat("é", schedule.MaxOverrideReasonLength+10)
		}).BuildDomain()
		require.NoError(t, err)

		assert.True(t, utf8.ValidString(o.Reason()))
		assert.Equal(t, schedule.MaxOverrideReasonLength, utf8.RuneCountInString(o.Reason()))
	})
}
