//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"bookwise/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinelA := errors.New("sentinel a")
	sentinelB := errors.New("sentinel b")

	t.Run("sentinel is visible to errors.Is", func(t *testing.T) {
		err := errs.Mark(errs.New("cancelled"), sentinelA)
		assert.True(t, errors.Is(err, sentinelA))
	})

	t.Run("cause chain stays visible", func(t *testing.T) {
		cause := errors.New("row not found")
		err := errs.Mark(errs.Wrap(cause, "load booking"), sentinelA)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("marking twice keeps both sentinels", func(t *testing.T) {
		err := errs.Mark(errs.Mark(errs.New("boom"), sentinelA), sentinelB)
		assert.True(t, errors.Is(err, sentinelA))
		assert.True(t, errors.Is(err, sentinelB))
	})

	t.Run("nil error yields the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinelA)
		require.ErrorIs(t, err, sentinelA)
	})

	t.Run("message comes from the cause", func(t *testing.T) {
		err := errs.Mark(errs.New("slot taken"), sentinelA)
		assert.Equal(t, "slot taken", err.Error())
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("adds message and keeps chain", func(t *testing.T) {
		cause := errors.New("deadlock")
		err := errs.Wrap(cause, "commit tx")
		require.Error(t, err)
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), "commit tx")
	})
}
