package response

import (
	"github.com/google/uuid"

	"bookwise/internal/usecase/queries"
)

type AvailableSlotsResponse struct {
	EventTypeID uuid.UUID          `json:"event_type_id"`
	From        string             `json:"from"`
	To          string             `json:"to"`
	Days        []queries.DaySlots `json:"days"`
}

func FromDaySlots(eventTypeID uuid.UUID, from, to string, days []queries.DaySlots) AvailableSlotsResponse {
	if days == nil {
		days = []queries.DaySlots{}
	}
	return AvailableSlotsResponse{
		EventTypeID: eventTypeID,
		From:        from,
		To:          to,
		Days:        days,
	}
}
