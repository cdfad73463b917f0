package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookwise/internal/domain/eventtype"
	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/clock"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/shared"
)

type CreateEventTypeInput struct {
	HostID          uuid.UUID
	Name            string
	DurationMinutes int
	Description     *string
	BufferBeforeMin *int
	BufferAfterMin  *int
	Limits          *eventtype.BookingLimits
	Location        *eventtype.EventLocation
	Questions       []eventtype.Question
	Confirmations   *eventtype.ConfirmationSettings
}

// UpdateEventTypeInput carries partial updates; nil fields keep the stored
// value.
type UpdateEventTypeInput struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	BufferBeforeMin *int
	BufferAfterMin  *int
	Limits          *eventtype.BookingLimits
	Location        *eventtype.EventLocation
	Questions       *[]eventtype.Question
	Confirmations   *eventtype.ConfirmationSettings
}

type EventTypeCommands interface {
	Create(ctx context.Context, input CreateEventTypeInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateEventTypeInput) error
	AttachSchedule(ctx context.Context, id, scheduleID uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type eventTypeCommands struct {
	pool       *pgxpool.Pool
	eventTypes EventTypeRepository
	schedules  ScheduleRepository
	clock      clock.Clock
}

func NewEventTypeCommands(pool *pgxpool.Pool, eventTypes EventTypeRepository, schedules ScheduleRepository, clk clock.Clock) EventTypeCommands {
	return &eventTypeCommands{pool: pool, eventTypes: eventTypes, schedules: schedules, clock: clk}
}

func (c *eventTypeCommands) Create(ctx context.Context, input CreateEventTypeInput) (uuid.UUID, error) {
	et, err := eventtype.NewEventType(input.HostID, input.Name, time.Duration(input.DurationMinutes)*time.Minute, c.clock.Now())
	if err != nil {
		return uuid.Nil, markDomainErr(err)
	}
	if err := applyEventTypeInput(et, input); err != nil {
		return uuid.Nil, err
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if err := c.eventTypes.Create(ctx, tx, et); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return et.ID(), nil
}

func applyEventTypeInput(et *eventtype.EventType, input CreateEventTypeInput) error {
	if input.Description != nil {
		et.SetDescription(*input.Description)
	}
	if input.BufferBeforeMin != nil || input.BufferAfterMin != nil {
		before, after := et.BufferBefore(), et.BufferAfter()
		if input.BufferBeforeMin != nil {
			before = time.Duration(*input.BufferBeforeMin) * time.Minute
		}
		if input.BufferAfterMin != nil {
			after = time.Duration(*input.BufferAfterMin) * time.Minute
		}
		if err := et.SetBuffers(before, after); err != nil {
			return markDomainErr(err)
		}
	}
	if input.Limits != nil {
		if err := et.SetLimits(*input.Limits); err != nil {
			return markDomainErr(err)
		}
	}
	if input.Location != nil {
		if err := et.SetLocation(*input.Location); err != nil {
			return markDomainErr(err)
		}
	}
	if input.Questions != nil {
		et.SetQuestions(input.Questions)
	}
	if input.Confirmations != nil {
		et.SetConfirmations(*input.Confirmations)
	}
	return nil
}

func (c *eventTypeCommands) Update(ctx context.Context, id uuid.UUID, input UpdateEventTypeInput) error {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		et, err := c.load(ctx, tx, id)
		if err != nil {
			return struct{}{}, err
		}
		if err := applyEventTypePatch(et, input); err != nil {
			return struct{}{}, err
		}
		if err := c.eventTypes.Update(ctx, tx, et); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func applyEventTypePatch(et *eventtype.EventType, input UpdateEventTypeInput) error {
	if input.Name != nil {
		if err := et.Rename(*input.Name); err != nil {
			return markDomainErr(err)
		}
	}
	if input.Description != nil {
		et.SetDescription(*input.Description)
	}
	if input.DurationMinutes != nil {
		if err := et.SetDuration(time.Duration(*input.DurationMinutes) * time.Minute); err != nil {
			return markDomainErr(err)
		}
	}
	if input.BufferBeforeMin != nil || input.BufferAfterMin != nil {
		before, after := et.BufferBefore(), et.BufferAfter()
		if input.BufferBeforeMin != nil {
			before = time.Duration(*input.BufferBeforeMin) * time.Minute
		}
		if input.BufferAfterMin != nil {
			after = time.Duration(*input.BufferAfterMin) * time.Minute
		}
		if err := et.SetBuffers(before, after); err != nil {
			return markDomainErr(err)
		}
	}
	if input.Limits != nil {
		if err := et.SetLimits(*input.Limits); err != nil {
			return markDomainErr(err)
		}
	}
	if input.Location != nil {
		if err := et.SetLocation(*input.Location); err != nil {
			return markDomainErr(err)
		}
	}
	if input.Questions != nil {
		et.SetQuestions(*input.Questions)
	}
	if input.Confirmations != nil {
		et.SetConfirmations(*input.Confirmations)
	}
	return nil
}

// AttachSchedule links an availability schedule to the event type. The
// schedule must exist and belong to the same host.
func (c *eventTypeCommands) AttachSchedule(ctx context.Context, id, scheduleID uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		et, err := c.load(ctx, tx, id)
		if err != nil {
			return struct{}{}, err
		}
		sched, err := c.schedules.FindByID(ctx, tx, scheduleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, errs.Mark(err, errs.ErrScheduleNotFound)
			}
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if sched.HostID() != et.HostID() {
			return struct{}{}, errs.Mark(errs.New("schedule belongs to a different host"), errs.ErrDomainValidation)
		}
		et.AttachSchedule(scheduleID)
		if err := c.eventTypes.Update(ctx, tx, et); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (c *eventTypeCommands) Deactivate(ctx context.Context, id uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		et, err := c.load(ctx, tx, id)
		if err != nil {
			return struct{}{}, err
		}
		et.Deactivate()
		if err := c.eventTypes.Update(ctx, tx, et); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (c *eventTypeCommands) load(ctx context.Context, tx db.DBTX, id uuid.UUID) (*eventtype.EventType, error) {
	et, err := c.eventTypes.FindByID(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventTypeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return et, nil
}
