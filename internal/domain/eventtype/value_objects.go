package eventtype

import (
	"errors"
	"time"
)

var (
	ErrInvalidDuration = errors.New("event duration must be positive")
	ErrNegativeBuffer  = errors.New("buffers cannot be negative")
	ErrInvalidLimit    = errors.New("booking limit must be positive when set")
)

// BookingLimits constrains when and how often an event type may be booked.
// Zero MaxFutureDays means no horizon; nil per-day/per-week means unlimited.
type BookingLimits struct {
	MinNoticeHours int  `json:"min_notice_hours"`
	MaxFutureDays  int  `json:"max_future_days"`
	MaxPerDay      *int `json:"max_per_day,omitempty"`
	MaxPerWeek     *int `json:"max_per_week,omitempty"`
}

func (l BookingLimits) Validate() error {
	if l.MinNoticeHours < 0 || l.MaxFutureDays < 0 {
		return ErrInvalidLimit
	}
	if l.MaxPerDay != nil && *l.MaxPerDay <= 0 {
		return ErrInvalidLimit
	}
	if l.MaxPerWeek != nil && *l.MaxPerWeek <= 0 {
		return ErrInvalidLimit
	}
	return nil
}

func (l BookingLimits) MinNotice() time.Duration {
	return time.Duration(l.MinNoticeHours) * time.Hour
}

func (l BookingLimits) MaxFuture() time.Duration {
	return time.Duration(l.MaxFutureDays) * 24 * time.Hour
}

// LocationKind discriminates the EventLocation sum type.
type LocationKind string

const (
	LocationInPerson LocationKind = "in_person"
	LocationPhone    LocationKind = "phone"
	LocationVideo    LocationKind = "video"
	LocationCustom   LocationKind = "custom"
)

type VideoProvider string

const (
	VideoGoogleMeet VideoProvider = "google_meet"
	VideoZoom       VideoProvider = "zoom"
	VideoTeams      VideoProvider = "teams"
	VideoCustomURL  VideoProvider = "custom_url"
)

// EventLocation is a closed tagged union: exactly the fields matching Kind
// are meaningful. Kept flat rather than as an interface because it crosses
// the persistence boundary as a single jsonb value.
type EventLocation struct {
	Kind         LocationKind  `json:"kind"`
	Address      string        `json:"address,omitempty"`
	Provider     VideoProvider `json:"provider,omitempty"`
	CustomURL    string        `json:"custom_url,omitempty"`
	Instructions string        `json:"instructions,omitempty"`
}

func (l EventLocation) Validate() error {
	switch l.Kind {
	case LocationInPerson:
		if l.Address == "" {
			return errors.New("in-person location requires an address")
		}
	case LocationPhone:
		// no payload
	case LocationVideo:
		switch l.Provider {
		case VideoGoogleMeet, VideoZoom, VideoTeams:
		case VideoCustomURL:
			if l.CustomURL == "" {
				return errors.New("custom video provider requires a url")
			}
		default:
			return errors.New("unknown video provider")
		}
	case LocationCustom:
		if l.Instructions == "" {
			return errors.New("custom location requires instructions")
		}
	default:
		return errors.New("unknown location kind")
	}
	return nil
}

type QuestionKind string

const (
	QuestionShortText      QuestionKind = "short_text"
	QuestionLongText       QuestionKind = "long_text"
	QuestionSingleChoice   QuestionKind = "single_choice"
	QuestionMultipleChoice QuestionKind = "multiple_choice"
	QuestionPhone          QuestionKind = "phone"
)

// Question is asked of the invitee at booking time; answers are stored on the
// booking keyed by question ID.
type Question struct {
	ID       string       `json:"id"`
	Prompt   string       `json:"prompt"`
	Kind     QuestionKind `json:"kind"`
	Required bool         `json:"required"`
	Options  []string     `json:"options,omitempty"`
}

// ConfirmationSettings controls post-booking notifications. Delivery belongs
// to the notification collaborator; the core only schedules the jobs.
type ConfirmationSettings struct {
	SendConfirmationEmail bool   `json:"send_confirmation_email"`
	SendReminderEmail     bool   `json:"send_reminder_email"`
	ReminderHoursBefore   []int  `json:"reminder_hours_before,omitempty"`
	RedirectURL           string `json:"redirect_url,omitempty"`
	CustomMessage         string `json:"custom_message,omitempty"`
}
