package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, errors.New("start time must be before end time")
	}

	return TimeSlot{
		start: start.UTC(),
		end:   end.UTC(),
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) IsZero() bool {
	return ts.start.IsZero() && ts.end.IsZero()
}

// Overlaps treats slots as half-open ranges [start, end): a slot ending at T
// and one starting at T do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

// Contains reports whether other lies entirely within the slot.
func (ts TimeSlot) Contains(other TimeSlot) bool {
	return !other.start.Before(ts.start) && !other.end.After(ts.end)
}

// Expand widens the slot by the given buffers. Used only for conflict
// detection; buffers are never part of the bookable range shown to invitees.
func (ts TimeSlot) Expand(before, after time.Duration) TimeSlot {
	if before < 0 {
		before = 0
	}
	if after < 0 {
		after = 0
	}
	return TimeSlot{
		start: ts.start.Add(-before),
		end:   ts.end.Add(after),
	}
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

type Invitee struct {
	name     string
	email    string
	phone    string
	timezone string
}

func NewInvitee(name, email, phone, timezone string) (Invitee, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return Invitee{}, errors.New("invitee name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return Invitee{}, errors.New("invitee email is invalid")
	}
	if timezone == "" {
		timezone = "UTC"
	}
	return Invitee{name: name, email: email, phone: phone, timezone: timezone}, nil
}

func (i Invitee) Name() string     { return i.name }
func (i Invitee) Email() string    { return i.email }
func (i Invitee) Phone() string    { return i.phone }
func (i Invitee) Timezone() string { return i.timezone }

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
