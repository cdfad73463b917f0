//go:build unit

package booking_test

import (
	"testing"
	"time"

	"bookwise/internal/domain/booking"
	"bookwise/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, builder.BaseTime, b.CreatedAt())
	assert.Nil(t, b.CancelledAt())

	events := b.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "booking.created", events[0].EventName())
	assert.Equal(t, b.ID(), events[0].AggregateID())
}

func TestPullEventsDrainsOnce(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	require.Len(t, b.PullEvents(), 1)
	assert.Empty(t, b.PullEvents())

	require.NoError(t, b.Cancel("host unavailable", builder.BaseTime))
	events := b.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "booking.cancelled", events[0].EventName())
	assert.Empty(t, b.PullEvents())
}

func TestCancel(t *testing.T) {
	now := builder.BaseTime

	t.Run("cancels a confirmed booking", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		b.PullEvents()

		require.NoError(t, b.Cancel("invitee request", now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, "invitee request", b.CancelReason())
		require.NotNil(t, b.CancelledAt())
		assert.Equal(t, now, *b.CancelledAt())
	})

	t.Run("cancelling twice fails with AlreadyCancelled", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Cancel("first", now))
		err = b.Cancel("second", now)
		require.ErrorIs(t, err, booking.ErrAlreadyCancelled)
		assert.Equal(t, "first", b.CancelReason())
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Complete())
		require.ErrorIs(t, b.Cancel("too late", now), booking.ErrInvalidTransition)
	})
}

func TestReschedule(t *testing.T) {
	newStart := builder.BaseTime.Add(48 * time.Hour)

	t.Run("replaces slot and raises event", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b, err := bb.BuildDomain()
		require.NoError(t, err)
		oldSlot := b.Slot()
		b.PullEvents()

		newSlot, err := booking.NewTimeSlot(newStart, newStart.Add(30*time.Minute))
		require.NoError(t, err)

		require.NoError(t, b.Reschedule(newSlot))
		assert.Equal(t, booking.StatusRescheduled, b.Status())
		assert.True(t, b.Slot().Equal(newSlot))

		events := b.PullEvents()
		require.Len(t, events, 1)
		rescheduled, ok := events[0].(booking.RescheduledEvent)
		require.True(t, ok)
		assert.True(t, rescheduled.OldSlot.Equal(oldSlot))
		assert.True(t, rescheduled.NewSlot.Equal(newSlot))
	})

	t.Run("cancelled booking cannot be rescheduled", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Cancel("conflict", builder.BaseTime))

		newSlot, err := booking.NewTimeSlot(newStart, newStart.Add(30*time.Minute))
		require.NoError(t, err)
		require.ErrorIs(t, b.Reschedule(newSlot), booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("rescheduled booking cannot be rescheduled again", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		newSlot, err := booking.NewTimeSlot(newStart, newStart.Add(30*time.Minute))
		require.NoError(t, err)
		require.NoError(t, b.Reschedule(newSlot))
		require.ErrorIs(t, b.Reschedule(newSlot), booking.ErrInvalidTransition)
	})
}

func TestCompleteAndNoShow(t *testing.T) {
	t.Run("complete from confirmed", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Complete())
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("no-show from rescheduled", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		newStart := builder.BaseTime.Add(72 * time.Hour)
		newSlot, err := booking.NewTimeSlot(newStart, newStart.Add(30*time.Minute))
		require.NoError(t, err)
		require.NoError(t, b.Reschedule(newSlot))

		require.NoError(t, b.MarkNoShow())
		assert.Equal(t, booking.StatusNoShow, b.Status())
	})

	t.Run("terminal states reject further transitions", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Cancel("gone", builder.BaseTime))

		require.ErrorIs(t, b.Complete(), booking.ErrInvalidTransition)
		require.ErrorIs(t, b.MarkNoShow(), booking.ErrInvalidTransition)
	})
}

func TestMarkReminderSent(t *testing.T) {
	t.Run("raises the event once per call", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		b.PullEvents()

		require.NoError(t, b.MarkReminderSent())
		events := b.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "booking.reminder_sent", events[0].EventName())
		assert.Equal(t, b.ID(), events[0].AggregateID())
		assert.Empty(t, b.PullEvents())
	})

	t.Run("cancelled booking has no reminders left", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Cancel("gone", builder.BaseTime))
		b.PullEvents()

		require.ErrorIs(t, b.MarkReminderSent(), booking.ErrInvalidTransition)
		assert.Empty(t, b.PullEvents())
	})
}
