package booking

import "github.com/google/uuid"

// Event is a domain event raised by the Booking aggregate. Events accumulate
// on the aggregate and are drained exactly once via PullEvents by the layer
// that persists and dispatches them.
type Event interface {
	EventName() string
	AggregateID() uuid.UUID
}

type CreatedEvent struct {
	BookingID uuid.UUID
}

func (e CreatedEvent) EventName() string      { return "booking.created" }
func (e CreatedEvent) AggregateID() uuid.UUID { return e.BookingID }

type CancelledEvent struct {
	BookingID uuid.UUID
	Reason    string
}

func (e CancelledEvent) EventName() string      { return "booking.cancelled" }
func (e CancelledEvent) AggregateID() uuid.UUID { return e.BookingID }

type RescheduledEvent struct {
	BookingID uuid.UUID
	OldSlot   TimeSlot
	NewSlot   TimeSlot
}

func (e RescheduledEvent) EventName() string      { return "booking.rescheduled" }
func (e RescheduledEvent) AggregateID() uuid.UUID { return e.BookingID }

type ReminderSentEvent struct {
	BookingID uuid.UUID
}

func (e ReminderSentEvent) EventName() string      { return "booking.reminder_sent" }
func (e ReminderSentEvent) AggregateID() uuid.UUID { return e.BookingID }
