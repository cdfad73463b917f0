package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bookwise/internal/domain/eventtype"
	"bookwise/internal/infra"
	"bookwise/internal/pkg/errs"
)

type EventTypeView struct {
	ID            uuid.UUID                      `json:"id"`
	HostID        uuid.UUID                      `json:"host_id"`
	Name          string                         `json:"name"`
	Description   *string                        `json:"description,omitempty"`
	Duration      int                            `json:"duration_minutes"`
	BufferBefore  int                            `json:"buffer_before_minutes"`
	BufferAfter   int                            `json:"buffer_after_minutes"`
	Color         string                         `json:"color"`
	Location      eventtype.EventLocation        `json:"location"`
	Limits        eventtype.BookingLimits        `json:"limits"`
	Questions     []eventtype.Question           `json:"questions,omitempty"`
	Confirmations eventtype.ConfirmationSettings `json:"confirmations"`
	ScheduleID    *uuid.UUID                     `json:"schedule_id,omitempty"`
	IsActive      bool                           `json:"is_active"`
	CreatedAt     time.Time                      `json:"created_at"`
	UpdatedAt     time.Time                      `json:"updated_at"`
}

type EventTypeListItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Duration int       `json:"duration_minutes"`
	Color    string    `json:"color"`
	IsActive bool      `json:"is_active"`
}

type EventTypeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventTypeView, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]EventTypeListItem, error)
}

type EventTypeQueries interface {
	GetEventType(ctx context.Context, id uuid.UUID) (*EventTypeView, error)
	ListEventTypes(ctx context.Context, hostID uuid.UUID) ([]EventTypeListItem, error)
}

type eventTypeQueries struct {
	store EventTypeReadStore
}

func NewEventTypeQueries(store EventTypeReadStore) EventTypeQueries {
	return &eventTypeQueries{store: store}
}

func (q *eventTypeQueries) GetEventType(ctx context.Context, id uuid.UUID) (*EventTypeView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventTypeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *eventTypeQueries) ListEventTypes(ctx context.Context, hostID uuid.UUID) ([]EventTypeListItem, error) {
	items, err := q.store.ListByHost(ctx, hostID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
