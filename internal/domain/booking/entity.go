package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot    = errors.New("invalid time slot")
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
	ErrInvalidTransition  = errors.New("invalid booking status transition")
	ErrSlotNotAvailable   = errors.New("slot not available")
	ErrPastTime           = errors.New("slot start time has already passed")
	ErrTooShortNotice     = errors.New("too short notice for booking")
	ErrTooFarAhead        = errors.New("slot is too far in the future")
	ErrLimitReached       = errors.New("booking limit reached")
)

type Booking struct {
	id           uuid.UUID
	eventTypeID  uuid.UUID
	hostID       uuid.UUID
	invitee      Invitee
	slot         TimeSlot
	status       Status
	note         Note
	meetingURL   string
	responses    map[string]string
	cancelledAt  *time.Time
	cancelReason string
	createdAt    time.Time
	events       []Event
}

func NewBooking(
	eventTypeID, hostID uuid.UUID,
	invitee Invitee,
	slot TimeSlot,
	note Note,
	responses map[string]string,
	now time.Time,
) (*Booking, error) {
	if slot.IsZero() {
		return nil, ErrInvalidTimeSlot
	}

	b := &Booking{
		id:          uuid.New(),
		eventTypeID: eventTypeID,
		hostID:      hostID,
		invitee:     invitee,
		slot:        slot,
		status:      StatusConfirmed,
		note:        note,
		responses:   responses,
		createdAt:   now,
	}
	b.raise(CreatedEvent{BookingID: b.id})
	return b, nil
}

func ReconstructBooking(
	id, eventTypeID, hostID uuid.UUID,
	invitee Invitee,
	slot TimeSlot,
	status Status,
	note Note,
	meetingURL string,
	responses map[string]string,
	cancelledAt *time.Time,
	cancelReason string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		eventTypeID:  eventTypeID,
		hostID:       hostID,
		invitee:      invitee,
		slot:         slot,
		status:       status,
		note:         note,
		meetingURL:   meetingURL,
		responses:    responses,
		cancelledAt:  cancelledAt,
		cancelReason: cancelReason,
		createdAt:    createdAt,
	}
}

func (b *Booking) Cancel(reason string, now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !b.status.canCancel() {
		return ErrInvalidTransition
	}

	b.status = StatusCancelled
	b.cancelledAt = &now
	b.cancelReason = reason
	b.raise(CancelledEvent{BookingID: b.id, Reason: reason})
	return nil
}

// Reschedule replaces the slot. The caller must have re-run the conflict
// check against newSlot (excluding this booking's current slot) first; on any
// checker failure the aggregate is left untouched by simply not calling this.
func (b *Booking) Reschedule(newSlot TimeSlot) error {
	if !b.status.canReschedule() {
		return ErrInvalidTransition
	}
	if newSlot.IsZero() {
		return ErrInvalidTimeSlot
	}

	oldSlot := b.slot
	b.slot = newSlot
	b.status = StatusRescheduled
	b.raise(RescheduledEvent{BookingID: b.id, OldSlot: oldSlot, NewSlot: newSlot})
	return nil
}

func (b *Booking) Complete() error {
	if !b.status.canFinish() {
		return ErrInvalidTransition
	}
	b.status = StatusCompleted
	return nil
}

func (b *Booking) MarkNoShow() error {
	if !b.status.canFinish() {
		return ErrInvalidTransition
	}
	b.status = StatusNoShow
	return nil
}

// MarkReminderSent records that a reminder for this booking went out. The
// reminder worker calls it after delivery so downstream listeners observe the
// send through the event queue. A booking that no longer occupies its slot
// has no reminders to send.
func (b *Booking) MarkReminderSent() error {
	if !b.status.canCancel() {
		return ErrInvalidTransition
	}
	b.raise(ReminderSentEvent{BookingID: b.id})
	return nil
}

func (b *Booking) SetMeetingURL(url string) {
	b.meetingURL = url
}

// PullEvents drains the pending event queue. Each event is returned exactly
// once; the aggregate never dispatches anything itself.
func (b *Booking) PullEvents() []Event {
	events := b.events
	b.events = nil
	return events
}

func (b *Booking) raise(e Event) {
	b.events = append(b.events, e)
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) EventTypeID() uuid.UUID        { return b.eventTypeID }
func (b *Booking) HostID() uuid.UUID             { return b.hostID }
func (b *Booking) Invitee() Invitee              { return b.invitee }
func (b *Booking) Slot() TimeSlot                { return b.slot }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) Note() Note                    { return b.note }
func (b *Booking) MeetingURL() string            { return b.meetingURL }
func (b *Booking) Responses() map[string]string  { return b.responses }
func (b *Booking) CancelledAt() *time.Time       { return b.cancelledAt }
func (b *Booking) CancelReason() string          { return b.cancelReason }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
