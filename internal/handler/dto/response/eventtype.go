package response

import (
	"time"

	"github.com/google/uuid"

	"bookwise/internal/domain/eventtype"
	"bookwise/internal/usecase/queries"
)

type EventTypeResponse struct {
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

func FromEventTypeView(v *queries.EventTypeView) EventTypeResponse {
	return EventTypeResponse{
		ID:            v.ID,
		HostID:        v.HostID,
		Name:          v.Name,
		Description:   v.Description,
		Duration:      v.Duration,
		BufferBefore:  v.BufferBefore,
		BufferAfter:   v.BufferAfter,
		Color:         v.Color,
		Location:      v.Location,
		Limits:        v.Limits,
		Questions:     v.Questions,
		Confirmations: v.Confirmations,
		ScheduleID:    v.ScheduleID,
		IsActive:      v.IsActive,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

type EventTypeListResponse struct {
	EventTypes []queries.EventTypeListItem `json:"event_types"`
}

func FromEventTypeListItems(items []queries.EventTypeListItem) EventTypeListResponse {
	if items == nil {
		items = []queries.EventTypeListItem{}
	}
	return EventTypeListResponse{EventTypes: items}
}

// CreatedResponse is the body for creations that return only the new ID.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
