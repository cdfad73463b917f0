package response

import (
	"time"

	"github.com/google/uuid"

	"bookwise/internal/usecase/queries"
)

type BookingResponse struct {
	ID           uuid.UUID         `json:"id"`
	EventTypeID  uuid.UUID         `json:"event_type_id"`
	HostID       uuid.UUID         `json:"host_id"`
	Status       string            `json:"status"`
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

func FromBookingView(v *queries.BookingView) BookingResponse {
	return BookingResponse{
		ID:           v.ID,
		EventTypeID:  v.EventTypeID,
		HostID:       v.HostID,
		Status:       string(v.Status),
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		InviteeName:  v.InviteeName,
		InviteeEmail: v.InviteeEmail,
		InviteePhone: v.InviteePhone,
		InviteeTZ:    v.InviteeTZ,
		Note:         v.Note,
		Responses:    v.Responses,
		CancelReason: v.CancelReason,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

type BookingListResponse struct {
	Bookings []queries.BookingListItem `json:"bookings"`
}

func FromBookingListItems(items []queries.BookingListItem) BookingListResponse {
	if items == nil {
		items = []queries.BookingListItem{}
	}
	return BookingListResponse{Bookings: items}
}
