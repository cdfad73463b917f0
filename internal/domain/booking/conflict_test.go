//go:build unit

package booking_test

import (
	"testing"
	"time"

	"bookwise/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestCheckSlot(t *testing.T) {
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	eventTypeID := uuid.New()

	day := now.Add(24 * time.Hour).Truncate(24 * time.Hour) // next day midnight
	at := func(hour, minute int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}
	slot := func(startH, startM, endH, endM int) booking.TimeSlot {
		return mustSlot(t, at(startH, startM), at(endH, endM))
	}
	existing := func(s booking.TimeSlot) booking.ExistingBooking {
		return booking.ExistingBooking{
			BookingID:   uuid.New(),
			EventTypeID: eventTypeID,
			Slot:        s,
		}
	}
	policy := booking.SlotPolicy{EventTypeID: eventTypeID}

	t.Run("free slot is available", func(t *testing.T) {
		err := booking.CheckSlot(slot(10, 0, 10, 30), nil, policy, now)
		require.NoError(t, err)
	})

	t.Run("candidate in the past", func(t *testing.T) {
		past := mustSlot(t, now.Add(-time.Hour), now.Add(-30*time.Minute))
		require.ErrorIs(t, booking.CheckSlot(past, nil, policy, now), booking.ErrPastTime)
	})

	t.Run("too short notice", func(t *testing.T) {
		p := policy
		p.MinNotice = 48 * time.Hour
		require.ErrorIs(t, booking.CheckSlot(slot(10, 0, 10, 30), nil, p, now), booking.ErrTooShortNotice)
	})

	t.Run("too far ahead", func(t *testing.T) {
		p := policy
		p.MaxFuture = 12 * time.Hour
		require.ErrorIs(t, booking.CheckSlot(slot(10, 0, 10, 30), nil, p, now), booking.ErrTooFarAhead)
	})

	t.Run("overlapping existing booking", func(t *testing.T) {
		// existing 10:00-10:30, candidate 10:15-10:45
		err := booking.CheckSlot(
			slot(10, 15, 10, 45),
			[]booking.ExistingBooking{existing(slot(10, 0, 10, 30))},
			policy, now,
		)
		require.ErrorIs(t, err, booking.ErrSlotNotAvailable)
	})

	t.Run("adjacent booking does not conflict", func(t *testing.T) {
		err := booking.CheckSlot(
			slot(10, 30, 11, 0),
			[]booking.ExistingBooking{existing(slot(10, 0, 10, 30))},
			policy, now,
		)
		require.NoError(t, err)
	})

	t.Run("buffers turn adjacency into conflict", func(t *testing.T) {
		p := policy
		p.BufferBefore = 10 * time.Minute
		err := booking.CheckSlot(
			slot(10, 30, 11, 0),
			[]booking.ExistingBooking{existing(slot(10, 0, 10, 30))},
			p, now,
		)
		require.ErrorIs(t, err, booking.ErrSlotNotAvailable)
	})

	t.Run("existing booking buffers also expand", func(t *testing.T) {
		prior := existing(slot(10, 0, 10, 30))
		prior.BufferAfter = 15 * time.Minute
		err := booking.CheckSlot(slot(10, 30, 11, 0), []booking.ExistingBooking{prior}, policy, now)
		require.ErrorIs(t, err, booking.ErrSlotNotAvailable)
	})

	t.Run("other event types still block the host", func(t *testing.T) {
		prior := existing(slot(10, 0, 10, 30))
		prior.EventTypeID = uuid.New()
		err := booking.CheckSlot(slot(10, 15, 10, 45), []booking.ExistingBooking{prior}, policy, now)
		require.ErrorIs(t, err, booking.ErrSlotNotAvailable)
	})

	t.Run("daily limit reached at non-overlapping time", func(t *testing.T) {
		p := policy
		p.MaxPerDay = intPtr(1)
		err := booking.CheckSlot(
			slot(14, 0, 14, 30),
			[]booking.ExistingBooking{existing(slot(10, 0, 10, 30))},
			p, now,
		)
		require.ErrorIs(t, err, booking.ErrLimitReached)
	})

	t.Run("daily limit counts only the same event type", func(t *testing.T) {
		p := policy
		p.MaxPerDay = intPtr(1)
		prior := existing(slot(10, 0, 10, 30))
		prior.EventTypeID = uuid.New()
		err := booking.CheckSlot(slot(14, 0, 14, 30), []booking.ExistingBooking{prior}, p, now)
		require.NoError(t, err)
	})

	t.Run("weekly limit spans the ISO week", func(t *testing.T) {
		p := policy
		p.MaxPerWeek = intPtr(2)
		prior := []booking.ExistingBooking{
			existing(slot(10, 0, 10, 30)),
			existing(mustSlot(t, at(10, 0).Add(24*time.Hour), at(10, 30).Add(24*time.Hour))),
		}
		err := booking.CheckSlot(mustSlot(t, at(14, 0).Add(24*time.Hour), at(14, 30).Add(24*time.Hour)), prior, p, now)
		require.ErrorIs(t, err, booking.ErrLimitReached)
	})

	t.Run("day boundary follows the schedule timezone", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)
		p := policy
		p.MaxPerDay = intPtr(1)
		p.Location = tokyo

		// 16:00 UTC = 01:00 next day in Tokyo; existing at 10:00 UTC = 19:00
		// Tokyo same day. Different Tokyo days, so the limit does not bind.
		err = booking.CheckSlot(
			slot(16, 0, 16, 30),
			[]booking.ExistingBooking{existing(slot(10, 0, 10, 30))},
			p, now,
		)
		require.NoError(t, err)
	})

	t.Run("re-check with identical inputs is identical", func(t *testing.T) {
		p := policy
		p.MaxPerDay = intPtr(1)
		prior := []booking.ExistingBooking{existing(slot(10, 0, 10, 30))}
		first := booking.CheckSlot(slot(14, 0, 14, 30), prior, p, now)
		second := booking.CheckSlot(slot(14, 0, 14, 30), prior, p, now)
		require.ErrorIs(t, first, booking.ErrLimitReached)
		require.Equal(t, first, second)
	})
}
