package request

import (
	"github.com/google/uuid"

	"bookwise/internal/domain/eventtype"
)

type CreateEventTypeRequest struct {
	HostID          uuid.UUID                       `json:"host_id" binding:"required"`
	Name            string                          `json:"name" binding:"required"`
	DurationMinutes int                             `json:"duration_minutes" binding:"required,gt=0"`
	Description     *string                         `json:"description"`
	BufferBeforeMin *int                            `json:"buffer_before_minutes"`
	BufferAfterMin  *int                            `json:"buffer_after_minutes"`
	Limits          *eventtype.BookingLimits        `json:"limits"`
	Location        *eventtype.EventLocation        `json:"location"`
	Questions       []eventtype.Question            `json:"questions"`
	Confirmations   *eventtype.ConfirmationSettings `json:"confirmations"`
}

type UpdateEventTypeRequest struct {
	Name            *string                         `json:"name"`
	Description     *string                         `json:"description"`
	DurationMinutes *int                            `json:"duration_minutes"`
	BufferBeforeMin *int                            `json:"buffer_before_minutes"`
	BufferAfterMin  *int                            `json:"buffer_after_minutes"`
	Limits          *eventtype.BookingLimits        `json:"limits"`
	Location        *eventtype.EventLocation        `json:"location"`
	Questions       *[]eventtype.Question           `json:"questions"`
	Confirmations   *eventtype.ConfirmationSettings `json:"confirmations"`
}

type AttachScheduleRequest struct {
	ScheduleID uuid.UUID `json:"schedule_id" binding:"required"`
}
