//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"renobooking/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("slot unavailable")
	cause := errors.New("duplicate key value violates unique constraint")

	t.Run("both identities match via errors.Is", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)

		require.ErrorIs(t, err, sentinel)
		require.ErrorIs(t, err, cause)
	})

	t.Run("message stays the cause's", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)

		require.Equal(t, cause.Error(), err.Error())
	})

	t.Run("mark survives wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(cause, sentinel), "create booking")

		require.ErrorIs(t, err, sentinel)
		require.ErrorIs(t, err, cause)
	})

	t.Run("nil err yields the sentinel alone", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)

		require.ErrorIs(t, err, sentinel)
		require.Equal(t, sentinel.Error(), err.Error())
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, errs.Wrap(nil, "ignored"))
	})

	t.Run("wrapped error keeps the original in the chain", func(t *testing.T) {
		cause := errors.New("connection refused")

		err := errs.Wrap(cause, "query users")

		require.ErrorIs(t, err, cause)
		require.Contains(t, err.Error(), "query users")
	})
}
