package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookwise/internal/domain/schedule"
	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/shared"
)

type ScheduleInput struct {
	Name      string
	Timezone  string
	Rules     []schedule.WeeklyRule
	Overrides []schedule.Override
}

type ScheduleCommands interface {
	Create(ctx context.Context, hostID uuid.UUID, input ScheduleInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input ScheduleInput) error
}

type scheduleCommands struct {
	pool      *pgxpool.Pool
	schedules ScheduleRepository
}

func NewScheduleCommands(pool *pgxpool.Pool, schedules ScheduleRepository) ScheduleCommands {
	return &scheduleCommands{pool: pool, schedules: schedules}
}

func (c *scheduleCommands) Create(ctx context.Context, hostID uuid.UUID, input ScheduleInput) (uuid.UUID, error) {
	sched, err := schedule.NewSchedule(hostID, input.Name, input.Timezone, input.Rules, input.Overrides)
	if err != nil {
		return uuid.Nil, markScheduleErr(err)
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if err := c.schedules.Create(ctx, tx, sched); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return sched.ID(), nil
}

// Update replaces the schedule's rules and overrides wholesale. Existing
// bookings keep their slots; only future availability resolution changes.
func (c *scheduleCommands) Update(ctx context.Context, id uuid.UUID, input ScheduleInput) error {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		current, err := c.schedules.FindByID(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, errs.Mark(err, errs.ErrScheduleNotFound)
			}
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		name := input.Name
		if name == "" {
			name = current.Name()
		}
		timezone := input.Timezone
		if timezone == "" {
			timezone = current.Timezone()
		}
		next, err := schedule.ReconstructSchedule(current.ID(), current.HostID(), name, timezone, input.Rules, input.Overrides)
		if err != nil {
			return struct{}{}, markScheduleErr(err)
		}
		if err := c.schedules.Update(ctx, tx, next); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func markScheduleErr(err error) error {
	switch {
	case errors.Is(err, schedule.ErrUnknownTimezone),
		errors.Is(err, schedule.ErrInvalidInterval),
		errors.Is(err, schedule.ErrOverlappingInterval),
		errors.Is(err, schedule.ErrDuplicateOverride),
		errors.Is(err, schedule.ErrDuplicateRule):
		return errs.Mark(err, errs.ErrInvalidSchedule)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
