package request

import (
	"time"

	"github.com/google/uuid"
)

type InviteeRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Timezone string `json:"timezone"`
}

type CreateBookingRequest struct {
	EventTypeID uuid.UUID         `json:"event_type_id" binding:"required"`
	StartTime   time.Time         `json:"start_time" binding:"required"`
	Invitee     InviteeRequest    `json:"invitee" binding:"required"`
	Note        string            `json:"note"`
	Responses   map[string]string `json:"responses"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type RescheduleBookingRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
}
