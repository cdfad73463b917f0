package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bookwise/internal/domain/booking"
	"bookwise/internal/infra"
	"bookwise/internal/pkg/errs"
)

type BookingView struct {
	ID           uuid.UUID         `json:"id"`
	EventTypeID  uuid.UUID         `json:"event_type_id"`
	HostID       uuid.UUID         `json:"host_id"`
	Status       booking.Status    `json:"status"`
	StartTime    time.Time         `json:"start_time"`
	EndTime      time.Time         `json:"end_time"`
	InviteeName  string            `json:"invitee_name"`
	InviteeEmail string            `json:"invitee_email"`
	InviteePhone *string           `json:"invitee_phone,omitempty"`
	InviteeTZ    string            `json:"invitee_timezone"`
	Note         *string           `json:"note,omitempty"`
	Responses    map[string]string `json:"responses,omitempty"`
	CancelReason *string           `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type BookingListItem struct {
	ID           uuid.UUID      `json:"id"`
	EventTypeID  uuid.UUID      `json:"event_type_id"`
	Status       booking.Status `json:"status"`
	StartTime    time.Time      `json:"start_time"`
	EndTime      time.Time      `json:"end_time"`
	InviteeName  string         `json:"invitee_name"`
	InviteeEmail string         `json:"invitee_email"`
}

type BookingFilter struct {
	HostID      *uuid.UUID
	EventTypeID *uuid.UUID
	Status      *booking.Status
	From        *time.Time
	To          *time.Time
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]BookingListItem, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, filter BookingFilter) ([]BookingListItem, error)
}

type bookingQueries struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueries{store: store}
}

func (q *bookingQueries) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueries) ListBookings(ctx context.Context, filter BookingFilter) ([]BookingListItem, error) {
	items, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
