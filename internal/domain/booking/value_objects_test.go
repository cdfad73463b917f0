//go:build unit

package booking_test

import (
	"testing"
	"time"

	"bookwise/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("valid slot", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(base, base.Add(30*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, slot.Duration())
	})

	t.Run("start equal to end", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base, base)
		require.Error(t, err)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base.Add(time.Hour), base)
		require.Error(t, err)
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)
		slot := mustSlot(t, base.In(tokyo), base.In(tokyo).Add(time.Hour))
		assert.Equal(t, time.UTC, slot.Start().Location())
		assert.True(t, slot.Start().Equal(base))
	})
}

func TestTimeSlotOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	slot := func(startMin, endMin int) booking.TimeSlot {
		return mustSlot(t, base.Add(time.Duration(startMin)*time.Minute), base.Add(time.Duration(endMin)*time.Minute))
	}

	cases := []struct {
		name     string
		a, b     booking.TimeSlot
		overlaps bool
	}{
		{name: "identical", a: slot(0, 30), b: slot(0, 30), overlaps: true},
		{name: "partial overlap", a: slot(0, 30), b: slot(15, 45), overlaps: true},
		{name: "contained", a: slot(0, 60), b: slot(15, 30), overlaps: true},
		{name: "touching at boundary", a: slot(0, 30), b: slot(30, 60), overlaps: false},
		{name: "disjoint", a: slot(0, 30), b: slot(45, 60), overlaps: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, c.a.Overlaps(c.b))
			// overlap is symmetric
			assert.Equal(t, c.a.Overlaps(c.b), c.b.Overlaps(c.a))
		})
	}
}

func TestTimeSlotContains(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	day := mustSlot(t, base, base.Add(8*time.Hour))

	assert.True(t, day.Contains(mustSlot(t, base, base.Add(30*time.Minute))))
	assert.True(t, day.Contains(day))
	assert.False(t, day.Contains(mustSlot(t, base.Add(-time.Minute), base.Add(time.Hour))))
	assert.False(t, day.Contains(mustSlot(t, base.Add(7*time.Hour), base.Add(9*time.Hour))))
}

func TestTimeSlotExpand(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	slot := mustSlot(t, base, base.Add(30*time.Minute))

	t.Run("widens both ends", func(t *testing.T) {
		expanded := slot.Expand(10*time.Minute, 5*time.Minute)
		assert.True(t, expanded.Start().Equal(base.Add(-10*time.Minute)))
		assert.True(t, expanded.End().Equal(base.Add(35*time.Minute)))
	})

	t.Run("negative buffers ignored", func(t *testing.T) {
		expanded := slot.Expand(-time.Minute, -time.Minute)
		assert.True(t, expanded.Equal(slot))
	})

	t.Run("expansion makes touching slots conflict", func(t *testing.T) {
		next := mustSlot(t, base.Add(30*time.Minute), base.Add(time.Hour))
		assert.False(t, slot.Overlaps(next))
		assert.True(t, slot.Expand(0, 10*time.Minute).Overlaps(next))
	})
}

func TestNewInvitee(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		inv, err := booking.NewInvitee("Ada Guest", "ada@example.com", "", "Europe/Berlin")
		require.NoError(t, err)
		assert.Equal(t, "Ada Guest", inv.Name())
		assert.Equal(t, "Europe/Berlin", inv.Timezone())
	})

	t.Run("defaults timezone to UTC", func(t *testing.T) {
		inv, err := booking.NewInvitee("Ada", "ada@example.com", "", "")
		require.NoError(t, err)
		assert.Equal(t, "UTC", inv.Timezone())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := booking.NewInvitee("   ", "ada@example.com", "", "")
		require.Error(t, err)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := booking.NewInvitee("Ada", "not-an-email", "", "")
		require.Error(t, err)
	})
}
