package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookwise/internal/domain/booking"
	"bookwise/internal/domain/eventtype"
	"bookwise/internal/domain/schedule"
	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/clock"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/shared"
)

const txMaxRetries = 3

type CreateBookingInput struct {
	EventTypeID     uuid.UUID
	Start           time.Time
	InviteeName     string
	InviteeEmail    string
	InviteePhone    string
	InviteeTimezone string
	Note            string
	Responses       map[string]string
}

type BookingCommands interface {
	Create(ctx context.Context, input CreateBookingInput) (uuid.UUID, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) error
	Reschedule(ctx context.Context, id uuid.UUID, newStart time.Time) (booking.TimeSlot, error)
	Complete(ctx context.Context, id uuid.UUID) error
	MarkNoShow(ctx context.Context, id uuid.UUID) error
}

type bookingCommands struct {
	pool          *pgxpool.Pool
	bookings      BookingRepository
	eventTypes    EventTypeRepository
	schedules     ScheduleRepository
	notifications NotificationRepository
	locks         *shared.HostLocks
	clock         clock.Clock
}

func NewBookingCommands(
	pool *pgxpool.Pool,
	bookings BookingRepository,
	eventTypes EventTypeRepository,
	schedules ScheduleRepository,
	notifications NotificationRepository,
	locks *shared.HostLocks,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommands{
		pool:          pool,
		bookings:      bookings,
		eventTypes:    eventTypes,
		schedules:     schedules,
		notifications: notifications,
		locks:         locks,
		clock:         clk,
	}
}

// Create books a slot for an invitee. The per-host lock serializes the
// check-then-insert sequence against concurrent requests in this process; the
// slot exclusion constraint backstops it across processes.
func (c *bookingCommands) Create(ctx context.Context, input CreateBookingInput) (uuid.UUID, error) {
	invitee, err := booking.NewInvitee(input.InviteeName, input.InviteeEmail, input.InviteePhone, input.InviteeTimezone)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	et, err := c.loadEventType(ctx, input.EventTypeID)
	if err != nil {
		return uuid.Nil, err
	}
	if err := validateResponses(et.Questions(), input.Responses); err != nil {
		return uuid.Nil, err
	}

	slot, err := booking.NewTimeSlot(input.Start, input.Start.Add(et.Duration()))
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidTimeSlot)
	}

	unlock := c.locks.Lock(et.HostID())
	defer unlock()

	now := c.clock.Now()
	b, err := shared.RunInTxWithRetry(ctx, c.pool, txMaxRetries, func(tx db.DBTX) (*booking.Booking, error) {
		if err := c.checkAvailability(ctx, tx, et, slot, uuid.Nil, now); err != nil {
			return nil, err
		}

		b, err := booking.NewBooking(et.ID(), et.HostID(), invitee, slot, booking.NewNote(input.Note), input.Responses, now)
		if err != nil {
			return nil, markDomainErr(err)
		}
		if err := c.bookings.Create(ctx, tx, b); err != nil {
			return nil, markRepoErr(err)
		}
		if err := c.enqueueJobs(ctx, tx, b, et.Confirmations(), now); err != nil {
			return nil, err
		}
		return b, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID(), nil
}

func (c *bookingCommands) Cancel(ctx context.Context, id uuid.UUID, reason string) error {
	now := c.clock.Now()
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		b, err := c.loadBooking(ctx, tx, id)
		if err != nil {
			return struct{}{}, err
		}
		if err := b.Cancel(reason, now); err != nil {
			return struct{}{}, markDomainErr(err)
		}
		if err := c.bookings.Update(ctx, tx, b); err != nil {
			return struct{}{}, markRepoErr(err)
		}
		if err := c.notifications.DeletePendingByBooking(ctx, tx, id); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		for _, ev := range b.PullEvents() {
			if cancelled, ok := ev.(booking.CancelledEvent); ok {
				job := NotificationJob{
					ID:        uuid.New(),
					BookingID: b.ID(),
					Kind:      JobKindCancellation,
					Payload:   map[string]any{"reason": cancelled.Reason},
					RunAt:     now,
				}
				if err := c.notifications.CreateJob(ctx, tx, job); err != nil {
					return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
				}
			}
		}
		return struct{}{}, nil
	})
	return err
}

// Reschedule moves a confirmed booking to a new start time. The new slot runs
// through the full availability check, with the booking itself excluded from
// the conflict set so it does not collide with its own old slot.
func (c *bookingCommands) Reschedule(ctx context.Context, id uuid.UUID, newStart time.Time) (booking.TimeSlot, error) {
	var zero booking.TimeSlot

	// The host is not known until the booking row is read, so resolve it
	// outside the write transaction and take the lock before retrying inside.
	current, err := c.loadBookingPool(ctx, id)
	if err != nil {
		return zero, err
	}
	et, err := c.loadEventType(ctx, current.EventTypeID())
	if err != nil {
		return zero, err
	}

	newSlot, err := booking.NewTimeSlot(newStart, newStart.Add(et.Duration()))
	if err != nil {
		return zero, errs.Mark(err, errs.ErrInvalidTimeSlot)
	}

	unlock := c.locks.Lock(current.HostID())
	defer unlock()

	now := c.clock.Now()
	_, err = shared.RunInTxWithRetry(ctx, c.pool, txMaxRetries, func(tx db.DBTX) (struct{}, error) {
		b, err := c.loadBooking(ctx, tx, id)
		if err != nil {
			return struct{}{}, err
		}
		if err := c.checkAvailability(ctx, tx, et, newSlot, b.ID(), now); err != nil {
			return struct{}{}, err
		}
		if err := b.Reschedule(newSlot); err != nil {
			return struct{}{}, markDomainErr(err)
		}
		if err := c.bookings.Update(ctx, tx, b); err != nil {
			return struct{}{}, markRepoErr(err)
		}
		if err := c.notifications.DeletePendingByBooking(ctx, tx, id); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := c.enqueueJobs(ctx, tx, b, et.Confirmations(), now); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
	if err != nil {
		return zero, err
	}
	return newSlot, nil
}

func (c *bookingCommands) Complete(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, (*booking.Booking).Complete)
}

func (c *bookingCommands) MarkNoShow(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, (*booking.Booking).MarkNoShow)
}

func (c *bookingCommands) transition(ctx context.Context, id uuid.UUID, apply func(*booking.Booking) error) error {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		b, err := c.loadBooking(ctx, tx, id)
		if err != nil {
			return struct{}{}, err
		}
		if err := apply(b); err != nil {
			return struct{}{}, markDomainErr(err)
		}
		if err := c.bookings.Update(ctx, tx, b); err != nil {
			return struct{}{}, markRepoErr(err)
		}
		return struct{}{}, nil
	})
	return err
}

// checkAvailability applies every booking rule to the candidate slot. Time
// rules are reported first; a slot outside the host's open hours is reported
// as unavailable before any counting rule fires.
func (c *bookingCommands) checkAvailability(ctx context.Context, tx db.DBTX, et *eventtype.EventType, slot booking.TimeSlot, excludeID uuid.UUID, now time.Time) error {
	if et.ScheduleID() == uuid.Nil {
		return errs.Mark(errs.New("event type has no schedule attached"), errs.ErrScheduleNotFound)
	}
	sched, err := c.schedules.FindByID(ctx, tx, et.ScheduleID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrScheduleNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	from, to := shared.ConflictWindow(slot, sched.Location())
	existing, err := c.bookings.ActiveByHostBetween(ctx, tx, et.HostID(), from, to)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if excludeID != uuid.Nil {
		kept := existing[:0]
		for _, e := range existing {
			if e.BookingID != excludeID {
				kept = append(kept, e)
			}
		}
		existing = kept
	}

	policy := booking.SlotPolicy{
		EventTypeID:  et.ID(),
		BufferBefore: et.BufferBefore(),
		BufferAfter:  et.BufferAfter(),
		MinNotice:    et.Limits().MinNotice(),
		MaxFuture:    et.Limits().MaxFuture(),
		MaxPerDay:    et.Limits().MaxPerDay,
		MaxPerWeek:   et.Limits().MaxPerWeek,
		Location:     sched.Location(),
	}

	checkErr := booking.CheckSlot(slot, existing, policy, now)
	switch {
	case errors.Is(checkErr, booking.ErrPastTime),
		errors.Is(checkErr, booking.ErrTooShortNotice),
		errors.Is(checkErr, booking.ErrTooFarAhead):
		return markDomainErr(checkErr)
	}
	if !slotWithinOpenHours(sched, slot, policy.BufferBefore, policy.BufferAfter) {
		return markDomainErr(booking.ErrSlotNotAvailable)
	}
	return markDomainErr(checkErr)
}

// slotWithinOpenHours reports whether the buffer-padded slot fits entirely
// inside one of the schedule's open intervals on the slot's calendar day.
func slotWithinOpenHours(sched *schedule.Schedule, slot booking.TimeSlot, bufBefore, bufAfter time.Duration) bool {
	padded := slot.Expand(bufBefore, bufAfter)
	date := schedule.DateOf(slot.Start().In(sched.Location()))
	for _, open := range sched.Resolve(date) {
		if open.Contains(padded) {
			return true
		}
	}
	return false
}

// enqueueJobs writes the outbox rows the event type's confirmation settings
// ask for. Reminders whose send time has already passed are skipped.
func (c *bookingCommands) enqueueJobs(ctx context.Context, tx db.DBTX, b *booking.Booking, settings eventtype.ConfirmationSettings, now time.Time) error {
	var jobs []NotificationJob

	for _, ev := range b.PullEvents() {
		switch ev.(type) {
		case booking.CreatedEvent:
			if settings.SendConfirmationEmail {
				jobs = append(jobs, NotificationJob{
					ID:        uuid.New(),
					BookingID: b.ID(),
					Kind:      JobKindConfirmation,
					Payload:   confirmationPayload(b, settings),
					RunAt:     now,
				})
			}
		case booking.RescheduledEvent:
			jobs = append(jobs, NotificationJob{
				ID:        uuid.New(),
				BookingID: b.ID(),
				Kind:      JobKindReschedule,
				Payload:   confirmationPayload(b, settings),
				RunAt:     now,
			})
		}
	}

	if settings.SendReminderEmail {
		for _, hours := range settings.ReminderHoursBefore {
			runAt := b.Slot().Start().Add(-time.Duration(hours) * time.Hour)
			if runAt.Before(now) {
				continue
			}
			jobs = append(jobs, NotificationJob{
				ID:        uuid.New(),
				BookingID: b.ID(),
				Kind:      JobKindReminder,
				Payload:   map[string]any{"hours_before": hours},
				RunAt:     runAt,
			})
		}
	}

	for _, job := range jobs {
		if err := c.notifications.CreateJob(ctx, tx, job); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func confirmationPayload(b *booking.Booking, settings eventtype.ConfirmationSettings) map[string]any {
	payload := map[string]any{
		"invitee_email": b.Invitee().Email(),
		"start_time":    b.Slot().Start().Format(time.RFC3339),
		"end_time":      b.Slot().End().Format(time.RFC3339),
	}
	if settings.CustomMessage != "" {
		payload["message"] = settings.CustomMessage
	}
	return payload
}

func validateResponses(questions []eventtype.Question, responses map[string]string) error {
	for _, q := range questions {
		answer, ok := responses[q.ID]
		if !ok || answer == "" {
			if q.Required {
				return errs.Mark(errs.New(fmt.Sprintf("question %q requires an answer", q.ID)), errs.ErrDomainValidation)
			}
			continue
		}
		if q.Kind == eventtype.QuestionSingleChoice && !containsOption(q.Options, answer) {
			return errs.Mark(errs.New(fmt.Sprintf("answer to %q is not one of the offered options", q.ID)), errs.ErrDomainValidation)
		}
	}
	return nil
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}

func (c *bookingCommands) loadEventType(ctx context.Context, id uuid.UUID) (*eventtype.EventType, error) {
	et, err := c.eventTypes.FindByID(ctx, c.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventTypeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !et.IsActive() {
		return nil, errs.Mark(errs.New("event type is inactive"), errs.ErrEventTypeInactive)
	}
	return et, nil
}

func (c *bookingCommands) loadBooking(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	b, err := c.bookings.FindByID(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}

func (c *bookingCommands) loadBookingPool(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return c.loadBooking(ctx, c.pool, id)
}

// markDomainErr translates aggregate and rule sentinels into the error
// vocabulary the handler layer maps to HTTP statuses.
func markDomainErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, booking.ErrPastTime):
		return errs.Mark(err, errs.ErrPastTime)
	case errors.Is(err, booking.ErrTooShortNotice):
		return errs.Mark(err, errs.ErrTooShortNotice)
	case errors.Is(err, booking.ErrTooFarAhead):
		return errs.Mark(err, errs.ErrBookingTooFarAhead)
	case errors.Is(err, booking.ErrSlotNotAvailable):
		return errs.Mark(err, errs.ErrSlotNotAvailable)
	case errors.Is(err, booking.ErrLimitReached):
		return errs.Mark(err, errs.ErrBookingLimitReached)
	case errors.Is(err, booking.ErrAlreadyCancelled):
		return errs.Mark(err, errs.ErrAlreadyCancelled)
	case errors.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, booking.ErrInvalidTimeSlot):
		return errs.Mark(err, errs.ErrInvalidTimeSlot)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}

// markRepoErr translates write failures. A slot exclusion violation surfaces
// as CONFLICT and means another transaction won the slot.
func markRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrSlotNotAvailable)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrBookingNotFound)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrEventTypeNotFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
