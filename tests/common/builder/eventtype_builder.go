//go:build unit || e2e

package builder

import (
	"time"

	domeventtype "bookwise/internal/domain/eventtype"

	"github.com/google/uuid"
)

type EventTypeBuilder struct {
	HostID       uuid.UUID
	Name         string
	Duration     time.Duration
	BufferBefore time.Duration
	BufferAfter  time.Duration
	Limits       domeventtype.BookingLimits
	Now          time.Time
}

func NewEventTypeBuilder() *EventTypeBuilder {
	return &EventTypeBuilder{
		HostID:   uuid.New(),
		Name:     "30 minute intro call",
		Duration: 30 * time.Minute,
		Now:      BaseTime,
	}
}

func (e *EventTypeBuilder) With(mutate func(*EventTypeBuilder)) *EventTypeBuilder {
	mutate(e)
	return e
}

func (e *EventTypeBuilder) WithBuffers(before, after time.Duration) *EventTypeBuilder {
	e.BufferBefore = before
	e.BufferAfter = after
	return e
}

func (e *EventTypeBuilder) WithLimits(limits domeventtype.BookingLimits) *EventTypeBuilder {
	e.Limits = limits
	return e
}

func (e *EventTypeBuilder) BuildDomain() (*domeventtype.EventType, error) {
	et, err := domeventtype.NewEventType(e.HostID, e.Name, e.Duration, e.Now)
	if err != nil {
		return nil, err
	}
	if e.BufferBefore != 0 || e.BufferAfter != 0 {
		if err := et.SetBuffers(e.BufferBefore, e.BufferAfter); err != nil {
			return nil, err
		}
	}
	if err := et.SetLimits(e.Limits); err != nil {
		return nil, err
	}
	return et, nil
}
