package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookwise/internal/domain/booking"
	"bookwise/internal/infra"
	"bookwise/internal/pkg/pgconv"
	"bookwise/internal/usecase/queries"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view         queries.BookingView
		phone        pgtype.Text
		note         pgtype.Text
		cancelReason pgtype.Text
	)
	err := s.pool.QueryRow(ctx, `
		SELECT id, event_type_id, host_id, status, start_time, end_time,
			invitee_name, invitee_email, invitee_phone, invitee_timezone,
			note, responses, cancel_reason, created_at, updated_at
		FROM bookings WHERE id = $1`, id).Scan(
		&view.ID, &view.EventTypeID, &view.HostID, &view.Status,
		&view.StartTime, &view.EndTime,
		&view.InviteeName, &view.InviteeEmail, &phone, &view.InviteeTZ,
		&note, &view.Responses, &cancelReason, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	view.InviteePhone = pgconv.StringPtrFromPgtype(phone)
	view.Note = pgconv.StringPtrFromPgtype(note)
	view.CancelReason = pgconv.StringPtrFromPgtype(cancelReason)
	return &view, nil
}

func (s *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]queries.BookingListItem, error) {
	where := []string{"1 = 1"}
	args := []any{}

	add := func(clause string, value any) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}
	if filter.HostID != nil {
		add("host_id = $%d", *filter.HostID)
	}
	if filter.EventTypeID != nil {
		add("event_type_id = $%d", *filter.EventTypeID)
	}
	if filter.Status != nil {
		add("status = $%d", string(*filter.Status))
	}
	if filter.From != nil {
		add("end_time > $%d", *filter.From)
	}
	if filter.To != nil {
		add("start_time < $%d", *filter.To)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, event_type_id, status, start_time, end_time, invitee_name, invitee_email
		FROM bookings
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY start_time`, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(&item.ID, &item.EventTypeID, &item.Status, &item.StartTime, &item.EndTime, &item.InviteeName, &item.InviteeEmail); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return items, nil
}

// ActiveByHost serves the slot listing read path with the same row shape the
// write-side conflict check consumes.
func (s *BookingReadStore) ActiveByHost(ctx context.Context, hostID uuid.UUID, from, to time.Time) ([]booking.ExistingBooking, error) {
	rows, err := s.pool.Query(ctx, `
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
