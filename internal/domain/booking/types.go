package booking

type Status string

const (
	StatusConfirmed   Status = "confirmed"
	StatusPending     Status = "pending"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
	StatusCompleted   Status = "completed"
	StatusNoShow      Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled, StatusRescheduled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking still occupies its slot.
// Everything except cancelled counts against availability.
func (s Status) IsActive() bool {
	return s != StatusCancelled
}

func (s Status) canCancel() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusRescheduled:
		return true
	default:
		return false
	}
}

func (s Status) canReschedule() bool {
	return s == StatusConfirmed
}

func (s Status) canFinish() bool {
	switch s {
	case StatusConfirmed, StatusRescheduled:
		return true
	default:
		return false
	}
}
