//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"bookwise/internal/domain/booking"
	"bookwise/internal/domain/schedule"
	"bookwise/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openInterval(t *testing.T, start, end time.Time) []booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return []booking.TimeSlot{slot}
}

func slotTimes(slots []booking.TimeSlot) [][2]time.Time {
	out := make([][2]time.Time, len(slots))
	for i, s := range slots {
		out[i] = [2]time.Time{s.Start(), s.End()}
	}
	return out
}

func TestGenerateSlots(t *testing.T) {
	dayStart := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)

	t.Run("full working day in 30 minute slots", func(t *testing.T) {
		slots := schedule.GenerateSlots(openInterval(t, dayStart, dayEnd), 30*time.Minute, 0, 0, 0)

		// 8 hours / 30 minutes = 16 contiguous slots
		require.Len(t, slots, 16)
		assert.True(t, slots[0].Start().Equal(dayStart))
		assert.True(t, slots[0].End().Equal(dayStart.Add(30*time.Minute)))
		assert.True(t, slots[15].Start().Equal(time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC)))
		assert.True(t, slots[15].End().Equal(dayEnd))

		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i].Start().Equal(slots[i-1].End()), "slots must be contiguous")
			assert.False(t, slots[i].Overlaps(slots[i-1]))
		}
	})

	t.Run("emits floor(L/D) slots", func(t *testing.T) {
		// 100 minutes / 30 minutes -> 3 slots
		slots := schedule.GenerateSlots(openInterval(t, dayStart, dayStart.Add(100*time.Minute)), 30*time.Minute, 0, 0, 0)
		assert.Len(t, slots, 3)
	})

	t.Run("buffers shrink the usable interval", func(t *testing.T) {
		// one hour with 10+10 buffers leaves room for one 30m slot only
		slots := schedule.GenerateSlots(openInterval(t, dayStart, dayStart.Add(time.Hour)), 30*time.Minute, 10*time.Minute, 10*time.Minute, 0)
		require.Len(t, slots, 1)
		// buffer-before shifts the visible range; buffers themselves are not bookable
		assert.True(t, slots[0].Start().Equal(dayStart.Add(10*time.Minute)))
		assert.True(t, slots[0].End().Equal(dayStart.Add(40*time.Minute)))
		assert.Equal(t, 30*time.Minute, slots[0].Duration())
	})

	t.Run("finer step produces overlapping candidates", func(t *testing.T) {
		slots := schedule.GenerateSlots(openInterval(t, dayStart, dayStart.Add(time.Hour)), 30*time.Minute, 0, 0, 15*time.Minute)

		want := [][2]time.Time{
			{dayStart, dayStart.Add(30 * time.Minute)},
			{dayStart.Add(15 * time.Minute), dayStart.Add(45 * time.Minute)},
			{dayStart.Add(30 * time.Minute), dayStart.Add(60 * time.Minute)},
		}
		if diff := cmp.Diff(want, slotTimes(slots)); diff != "" {
			t.Errorf("slot sequence mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("interval too small for padded block", func(t *testing.T) {
		slots := schedule.GenerateSlots(openInterval(t, dayStart, dayStart.Add(25*time.Minute)), 30*time.Minute, 0, 0, 0)
		assert.Empty(t, slots)
	})

	t.Run("multiple open intervals", func(t *testing.T) {
		morning, err := booking.NewTimeSlot(dayStart, dayStart.Add(time.Hour))
		require.NoError(t, err)
		afternoon, err := booking.NewTimeSlot(dayStart.Add(5*time.Hour), dayStart.Add(6*time.Hour))
		require.NoError(t, err)

		slots := schedule.GenerateSlots([]booking.TimeSlot{morning, afternoon}, 30*time.Minute, 0, 0, 0)
		assert.Len(t, slots, 4)
	})

	t.Run("non-positive duration yields nothing", func(t *testing.T) {
		assert.Empty(t, schedule.GenerateSlots(openInterval(t, dayStart, dayEnd), 0, 0, 0, 0))
	})

	t.Run("pure function of inputs", func(t *testing.T) {
		open := openInterval(t, dayStart, dayEnd)
		first := schedule.GenerateSlots(open, 30*time.Minute, 0, 0, 0)
		second := schedule.GenerateSlots(open, 30*time.Minute, 0, 0, 0)
		if diff := cmp.Diff(slotTimes(first), slotTimes(second)); diff != "" {
			t.Errorf("generator must be restartable (-first +second):\n%s", diff)
		}
	})
}

func TestResolveThenGenerate(t *testing.T) {
	// weekly rule Monday 09:00-17:00, 30 minute event, no buffers
	s, err := builder.NewScheduleBuilder().BuildDomain()
	require.NoError(t, err)

	open := s.Resolve(monday)
	slots := schedule.GenerateSlots(open, 30*time.Minute, 0, 0, 0)

	require.Len(t, slots, 16)
	assert.True(t, slots[0].Start().Equal(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))
	assert.True(t, slots[15].End().Equal(time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)))
}
