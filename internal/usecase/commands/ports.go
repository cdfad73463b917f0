package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bookwise/internal/domain/booking"
	"bookwise/internal/domain/eventtype"
	"bookwise/internal/domain/schedule"
	"bookwise/internal/infra/db"
)

// Write-side ports. Every method takes the executor explicitly so one
// transaction can span aggregate loads, rule checks and the final insert.

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	// ActiveByHostBetween returns the host's non-cancelled bookings whose
	// slots fall inside [from, to), joined with each booking's own buffers.
	ActiveByHostBetween(ctx context.Context, tx db.DBTX, hostID uuid.UUID, from, to time.Time) ([]booking.ExistingBooking, error)
}

type EventTypeRepository interface {
	Create(ctx context.Context, tx db.DBTX, et *eventtype.EventType) error
	Update(ctx context.Context, tx db.DBTX, et *eventtype.EventType) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*eventtype.EventType, error)
}

type ScheduleRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *schedule.Schedule) error
	Update(ctx context.Context, tx db.DBTX, s *schedule.Schedule) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*schedule.Schedule, error)
}

// NotificationJob is an outbox row; a delivery worker outside this module
// drains pending jobs ordered by run_at.
type NotificationJob struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Kind      string
	Payload   map[string]any
	RunAt     time.Time
}

const (
	JobKindConfirmation = "confirmation_email"
	JobKindCancellation = "cancellation_email"
	JobKindReschedule   = "reschedule_email"
	JobKindReminder     = "reminder_email"
)

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, job NotificationJob) error
	// DeletePendingByBooking drops jobs that have not run yet, used when a
	// booking is cancelled or moved before its reminders fire.
	DeletePendingByBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) error
}
