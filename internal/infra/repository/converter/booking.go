package converter

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"bookwise/internal/domain/booking"
	"bookwise/internal/pkg/pgconv"
)

// BookingRow mirrors the bookings table.
type BookingRow struct {
	ID              uuid.UUID
	EventTypeID     uuid.UUID
	HostID          uuid.UUID
	Status          string
	StartTime       pgtype.Timestamptz
	EndTime         pgtype.Timestamptz
	InviteeName     string
	InviteeEmail    string
	InviteePhone    pgtype.Text
	InviteeTimezone string
	Note            pgtype.Text
	MeetingURL      pgtype.Text
	Responses       map[string]string
	CancelledAt     pgtype.Timestamptz
	CancelReason    pgtype.Text
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

func BookingToDomain(row BookingRow) (*booking.Booking, error) {
	phone := ""
	if p := pgconv.StringPtrFromPgtype(row.InviteePhone); p != nil {
		phone = *p
	}
	invitee, err := booking.NewInvitee(row.InviteeName, row.InviteeEmail, phone, row.InviteeTimezone)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, err
	}

	note := ""
	if n := pgconv.StringPtrFromPgtype(row.Note); n != nil {
		note = *n
	}
	meetingURL := ""
	if u := pgconv.StringPtrFromPgtype(row.MeetingURL); u != nil {
		meetingURL = *u
	}
	cancelReason := ""
	if r := pgconv.StringPtrFromPgtype(row.CancelReason); r != nil {
		cancelReason = *r
	}

	return booking.ReconstructBooking(
		row.ID, row.EventTypeID, row.HostID,
		invitee,
		slot,
		booking.Status(row.Status),
		booking.NewNote(note),
		meetingURL,
		row.Responses,
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		cancelReason,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
