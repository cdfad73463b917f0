package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bookwise/internal/domain/booking"
	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/infra/repository/converter"
	"bookwise/internal/pkg/pgconv"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const bookingColumns = `id, event_type_id, host_id, status, start_time, end_time,
	invitee_name, invitee_email, invitee_phone, invitee_timezone,
	note, meeting_url, responses, cancelled_at, cancel_reason, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO bookings (
			id, event_type_id, host_id, status, start_time, end_time,
			invitee_name, invitee_email, invitee_phone, invitee_timezone,
			note, meeting_url, responses, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)`,
		b.ID(), b.EventTypeID(), b.HostID(), string(b.Status()),
		b.Slot().Start(), b.Slot().End(),
		b.Invitee().Name(), b.Invitee().Email(), nullable(b.Invitee().Phone()), b.Invitee().Timezone(),
		nullable(b.Note().String()), nullable(b.MeetingURL()), b.Responses(), b.CreatedAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, `
		UPDATE bookings
		SET status = $2, start_time = $3, end_time = $4,
			meeting_url = $5, cancelled_at = $6, cancel_reason = $7, updated_at = now()
		WHERE id = $1`,
		b.ID(), string(b.Status()), b.Slot().Start(), b.Slot().End(),
		nullable(b.MeetingURL()), b.CancelledAt(), nullable(b.CancelReason()),
	)
	if err != nil {
		return wrapWriteErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	var row converter.BookingRow
	err := tx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id).Scan(
		&row.ID, &row.EventTypeID, &row.HostID, &row.Status, &row.StartTime, &row.EndTime,
		&row.InviteeName, &row.InviteeEmail, &row.InviteePhone, &row.InviteeTimezone,
		&row.Note, &row.MeetingURL, &row.Responses, &row.CancelledAt, &row.CancelReason,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return converter.BookingToDomain(row)
}

// ActiveByHostBetween returns every non-cancelled booking of the host whose
// slot intersects [from, to), with the buffers of its own event type.
func (r *BookingRepository) ActiveByHostBetween(ctx context.Context, tx db.DBTX, hostID uuid.UUID, from, to time.Time) ([]booking.ExistingBooking, error) {
	rows, err := tx.Query(ctx, `
		SELECT b.id, b.event_type_id, b.start_time, b.end_time,
			et.buffer_before_min, et.buffer_after_min
		FROM bookings b
		JOIN event_types et ON et.id = b.event_type_id
		WHERE b.host_id = $1
			AND b.status <> 'cancelled'
			AND b.start_time < $3
			AND b.end_time > $2
		ORDER BY b.start_time`,
		hostID, from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active bookings", err)
	}
	defer rows.Close()

	var result []booking.ExistingBooking
	for rows.Next() {
		var (
			id, eventTypeID     uuid.UUID
			start, end          time.Time
			bufBefore, bufAfter int
		)
		if err := rows.Scan(&id, &eventTypeID, &start, &end, &bufBefore, &bufAfter); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active booking", err)
		}
		slot, err := booking.NewTimeSlot(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking slot is invalid", err)
		}
		result = append(result, booking.ExistingBooking{
			BookingID:    id,
			EventTypeID:  eventTypeID,
			Slot:         slot,
			BufferBefore: time.Duration(bufBefore) * time.Minute,
			BufferAfter:  time.Duration(bufAfter) * time.Minute,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read active bookings", err)
	}
	return result, nil
}

// nullable maps the empty string to NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
