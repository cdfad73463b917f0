package booking

import (
	"time"

	"github.com/google/uuid"
)

// ExistingBooking is the write-side snapshot of an already-persisted,
// non-cancelled booking that a candidate slot is checked against. Buffers are
// carried per booking because they come from each booking's own event type.
type ExistingBooking struct {
	BookingID    uuid.UUID
	EventTypeID  uuid.UUID
	Slot         TimeSlot
	BufferBefore time.Duration
	BufferAfter  time.Duration
}

// SlotPolicy is the per-event-type rule set applied when checking a
// candidate slot. Location is the host schedule's timezone; calendar-day and
// ISO-week booking limits are counted in it.
type SlotPolicy struct {
	EventTypeID  uuid.UUID
	BufferBefore time.Duration
	BufferAfter  time.Duration
	MinNotice    time.Duration
	MaxFuture    time.Duration // zero means no horizon limit
	MaxPerDay    *int
	MaxPerWeek   *int
	Location     *time.Location
}

func (p SlotPolicy) location() *time.Location {
	if p.Location != nil {
		return p.Location
	}
	return time.UTC
}

// CheckSlot decides whether candidate can be booked given the host's existing
// bookings and the event type's policy. It is read-only and deterministic:
// identical inputs always yield the identical decision. Rules run in order
// and the first failure wins.
//
// The caller owns the check-then-commit race: it must hold the per-host lock
// (or rely on the slot exclusion constraint) between this check and the
// insert.
func CheckSlot(candidate TimeSlot, existing []ExistingBooking, policy SlotPolicy, now time.Time) error {
	if candidate.Start().Before(now) {
		return ErrPastTime
	}
	if policy.MinNotice > 0 && candidate.Start().Before(now.Add(policy.MinNotice)) {
		return ErrTooShortNotice
	}
	if policy.MaxFuture > 0 && candidate.Start().After(now.Add(policy.MaxFuture)) {
		return ErrTooFarAhead
	}

	expanded := candidate.Expand(policy.BufferBefore, policy.BufferAfter)
	for _, b := range existing {
		if expanded.Overlaps(b.Slot.Expand(b.BufferBefore, b.BufferAfter)) {
			return ErrSlotNotAvailable
		}
	}

	if err := checkLimits(candidate, existing, policy); err != nil {
		return err
	}
	return nil
}

func checkLimits(candidate TimeSlot, existing []ExistingBooking, policy SlotPolicy) error {
	if policy.MaxPerDay == nil && policy.MaxPerWeek == nil {
		return nil
	}

	loc := policy.location()
	candStart := candidate.Start().In(loc)
	candYear, candWeek := candStart.ISOWeek()

	sameDay, sameWeek := 0, 0
	for _, b := range existing {
		if b.EventTypeID != policy.EventTypeID {
			continue
		}
		start := b.Slot.Start().In(loc)
		if sameCalendarDay(start, candStart) {
			sameDay++
		}
		if year, week := start.ISOWeek(); year == candYear && week == candWeek {
			sameWeek++
		}
	}

	if policy.MaxPerDay != nil && sameDay+1 > *policy.MaxPerDay {
		return ErrLimitReached
	}
	if policy.MaxPerWeek != nil && sameWeek+1 > *policy.MaxPerWeek {
		return ErrLimitReached
	}
	return nil
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
