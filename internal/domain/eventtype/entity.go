package eventtype

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("event type name is required")
	ErrInactive  = errors.New("event type is inactive")
)

type EventType struct {
	id            uuid.UUID
	hostID        uuid.UUID
	name          string
	description   string
	duration      time.Duration
	bufferBefore  time.Duration
	bufferAfter   time.Duration
	color         string
	location      EventLocation
	scheduleID    uuid.UUID
	limits        BookingLimits
	questions     []Question
	confirmations ConfirmationSettings
	active        bool
	createdAt     time.Time
}

const defaultColor = "#3788d8"

func NewEventType(hostID uuid.UUID, name string, duration time.Duration, now time.Time) (*EventType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	return &EventType{
		id:        uuid.New(),
		hostID:    hostID,
		name:      name,
		duration:  duration,
		color:     defaultColor,
		location:  EventLocation{Kind: LocationVideo, Provider: VideoGoogleMeet},
		active:    true,
		createdAt: now,
	}, nil
}

func ReconstructEventType(
	id, hostID uuid.UUID,
	name, description string,
	duration, bufferBefore, bufferAfter time.Duration,
	color string,
	location EventLocation,
	scheduleID uuid.UUID,
	limits BookingLimits,
	questions []Question,
	confirmations ConfirmationSettings,
	active bool,
	createdAt time.Time,
) *EventType {
	return &EventType{
		id:            id,
		hostID:        hostID,
		name:          name,
		description:   description,
		duration:      duration,
		bufferBefore:  bufferBefore,
		bufferAfter:   bufferAfter,
		color:         color,
		location:      location,
		scheduleID:    scheduleID,
		limits:        limits,
		questions:     questions,
		confirmations: confirmations,
		active:        active,
		createdAt:     createdAt,
	}
}

func (e *EventType) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	e.name = name
	return nil
}

func (e *EventType) SetDescription(description string) {
	e.description = strings.TrimSpace(description)
}

func (e *EventType) SetDuration(duration time.Duration) error {
	if duration <= 0 {
		return ErrInvalidDuration
	}
	e.duration = duration
	return nil
}

func (e *EventType) SetBuffers(before, after time.Duration) error {
	if before < 0 || after < 0 {
		return ErrNegativeBuffer
	}
	e.bufferBefore = before
	e.bufferAfter = after
	return nil
}

func (e *EventType) SetLimits(limits BookingLimits) error {
	if err := limits.Validate(); err != nil {
		return err
	}
	e.limits = limits
	return nil
}

func (e *EventType) SetLocation(location EventLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}
	e.location = location
	return nil
}

func (e *EventType) SetQuestions(questions []Question) {
	e.questions = questions
}

func (e *EventType) SetConfirmations(settings ConfirmationSettings) {
	e.confirmations = settings
}

func (e *EventType) AttachSchedule(scheduleID uuid.UUID) {
	e.scheduleID = scheduleID
}

// Deactivate soft-disables the event type. Existing bookings keep referencing
// it; it is never hard-deleted while bookings do.
func (e *EventType) Deactivate() {
	e.active = false
}

func (e *EventType) ID() uuid.UUID                       { return e.id }
func (e *EventType) HostID() uuid.UUID                   { return e.hostID }
func (e *EventType) Name() string                        { return e.name }
func (e *EventType) Description() string                 { return e.description }
func (e *EventType) Duration() time.Duration             { return e.duration }
func (e *EventType) BufferBefore() time.Duration         { return e.bufferBefore }
func (e *EventType) BufferAfter() time.Duration          { return e.bufferAfter }
func (e *EventType) Color() string                       { return e.color }
func (e *EventType) Location() EventLocation             { return e.location }
func (e *EventType) ScheduleID() uuid.UUID               { return e.scheduleID }
func (e *EventType) Limits() BookingLimits               { return e.limits }
func (e *EventType) Questions() []Question               { return e.questions }
func (e *EventType) Confirmations() ConfirmationSettings { return e.confirmations }
func (e *EventType) IsActive() bool                      { return e.active }
func (e *EventType) CreatedAt() time.Time                { return e.createdAt }
