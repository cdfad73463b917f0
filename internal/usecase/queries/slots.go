package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookwise/internal/domain/booking"
	"bookwise/internal/domain/schedule"
	"bookwise/internal/infra"
	"bookwise/internal/pkg/clock"
	"bookwise/internal/pkg/config"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/shared"
)

type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type DaySlots struct {
	Date  schedule.Date `json:"date"`
	Slots []SlotView    `json:"slots"`
}

type ScheduleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*schedule.Schedule, error)
}

// ActiveBookingReadStore lists non-cancelled bookings for a host inside a
// time window, in the shape the conflict rules consume.
type ActiveBookingReadStore interface {
	ActiveByHost(ctx context.Context, hostID uuid.UUID, from, to time.Time) ([]booking.ExistingBooking, error)
}

type SlotQueries interface {
	ListAvailableSlots(ctx context.Context, eventTypeID uuid.UUID, from, to schedule.Date) ([]DaySlots, error)
}

type slotQueries struct {
	eventTypes EventTypeReadStore
	schedules  ScheduleReadStore
	bookings   ActiveBookingReadStore
	clock      clock.Clock
	cfg        config.SchedulingConfig
}

func NewSlotQueries(
	eventTypes EventTypeReadStore,
	schedules ScheduleReadStore,
	bookings ActiveBookingReadStore,
	clk clock.Clock,
	cfg config.SchedulingConfig,
) SlotQueries {
	return &slotQueries{
		eventTypes: eventTypes,
		schedules:  schedules,
		bookings:   bookings,
		clock:      clk,
		cfg:        cfg,
	}
}

// ListAvailableSlots resolves the host's schedule for each date in [from, to],
// generates candidate slots for the event type and keeps only those that pass
// every booking rule. Days with no bookable slots are returned with an empty
// slice so callers can render the full range.
func (q *slotQueries) ListAvailableSlots(ctx context.Context, eventTypeID uuid.UUID, from, to schedule.Date) ([]DaySlots, error) {
	days, err := q.rangeDays(from, to)
	if err != nil {
		return nil, err
	}

	et, err := q.eventTypes.FindByID(ctx, eventTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventTypeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !et.IsActive {
		return nil, errs.Mark(errs.New("event type is inactive"), errs.ErrEventTypeInactive)
	}
	if et.ScheduleID == nil {
		return nil, errs.Mark(errs.New("event type has no schedule attached"), errs.ErrScheduleNotFound)
	}

	sched, err := q.schedules.FindByID(ctx, *et.ScheduleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrScheduleNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	existing, err := q.existingInRange(ctx, et.HostID, from, to, sched.Location())
	if err != nil {
		return nil, err
	}

	policy := booking.SlotPolicy{
		EventTypeID:  et.ID,
		BufferBefore: time.Duration(et.BufferBefore) * time.Minute,
		BufferAfter:  time.Duration(et.BufferAfter) * time.Minute,
		MinNotice:    et.Limits.MinNotice(),
		MaxFuture:    et.Limits.MaxFuture(),
		MaxPerDay:    et.Limits.MaxPerDay,
		MaxPerWeek:   et.Limits.MaxPerWeek,
		Location:     sched.Location(),
	}
	duration := time.Duration(et.Duration) * time.Minute
	now := q.clock.Now()

	result := make([]DaySlots, 0, days)
	date := from
	for i := 0; i < days; i++ {
		open := sched.Resolve(date)
		candidates := schedule.GenerateSlots(open, duration, policy.BufferBefore, policy.BufferAfter, q.cfg.SlotStep)

		slots := make([]SlotView, 0, len(candidates))
		for _, c := range candidates {
			if booking.CheckSlot(c, existing, policy, now) == nil {
				slots = append(slots, SlotView{Start: c.Start(), End: c.End()})
			}
		}
		result = append(result, DaySlots{Date: date, Slots: slots})
		date = date.AddDays(1)
	}
	return result, nil
}

func (q *slotQueries) rangeDays(from, to schedule.Date) (int, error) {
	start := time.Date(from.Year, from.Month, from.Day, 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year, to.Month, to.Day, 0, 0, 0, 0, time.UTC)
	if end.Before(start) {
		return 0, errs.Mark(errs.New(fmt.Sprintf("date range end %s precedes start %s", to, from)), errs.ErrDomainValidation)
	}
	days := int(end.Sub(start)/(24*time.Hour)) + 1
	if days > q.cfg.MaxListDays {
		return 0, errs.Mark(errs.New(fmt.Sprintf("date range spans %d days, limit is %d", days, q.cfg.MaxListDays)), errs.ErrDomainValidation)
	}
	return days, nil
}

// existingInRange fetches the host's active bookings over the listed dates,
// widened to whole ISO weeks so per-week limits count correctly at the edges.
func (q *slotQueries) existingInRange(ctx context.Context, hostID uuid.UUID, from, to schedule.Date, loc *time.Location) ([]booking.ExistingBooking, error) {
	windowStart := shared.WeekStart(time.Date(from.Year, from.Month, from.Day, 0, 0, 0, 0, loc), loc).Add(-24 * time.Hour)
	windowEnd := shared.WeekStart(time.Date(to.Year, to.Month, to.Day, 0, 0, 0, 0, loc), loc).AddDate(0, 0, 7).Add(24 * time.Hour)

	existing, err := q.bookings.ActiveByHost(ctx, hostID, windowStart, windowEnd)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return existing, nil
}
