//go:build unit || e2e

package builder

import (
	"time"

	dombooking "bookwise/internal/domain/booking"

	"github.com/google/uuid"
)

// BaseTime is the fixed "now" used by the builders so tests stay
// deterministic. A Thursday.
var BaseTime = time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	EventTypeID  uuid.UUID
	HostID       uuid.UUID
	InviteeName  string
	InviteeEmail string
	InviteePhone string
	InviteeTZ    string
	SlotStart    time.Time
	SlotEnd      time.Time
	Note         string
	Responses    map[string]string
	Now          time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := BaseTime.Add(24 * time.Hour)
	return &BookingBuilder{
		EventTypeID:  uuid.New(),
		HostID:       uuid.New(),
		InviteeName:  "Ada Guest",
		InviteeEmail: "guest@example.com",
		InviteeTZ:    "UTC",
		SlotStart:    start,
		SlotEnd:      start.Add(30 * time.Minute),
		Note:         "",
		Now:          BaseTime,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.SlotStart = start
	b.SlotEnd = end
	return b
}

func (b *BookingBuilder) WithInvitee(name, email string) *BookingBuilder {
	b.InviteeName = name
	b.InviteeEmail = email
	return b
}

func (b *BookingBuilder) BuildSlot() (dombooking.TimeSlot, error) {
	return dombooking.NewTimeSlot(b.SlotStart, b.SlotEnd)
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	slot, err := b.BuildSlot()
	if err != nil {
		return nil, err
	}
	invitee, err := dombooking.NewInvitee(b.InviteeName, b.InviteeEmail, b.InviteePhone, b.InviteeTZ)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(
		b.EventTypeID,
		b.HostID,
		invitee,
		slot,
		dombooking.NewNote(b.Note),
		b.Responses,
		b.Now,
	)
}
