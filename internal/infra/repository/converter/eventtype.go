package converter

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"bookwise/internal/domain/eventtype"
	"bookwise/internal/pkg/pgconv"
)

// EventTypeRow mirrors the event_types table. Location, questions and
// confirmation settings cross the boundary as jsonb.
type EventTypeRow struct {
	ID              uuid.UUID
	HostID          uuid.UUID
	Name            string
	Description     pgtype.Text
	DurationMin     int
	BufferBeforeMin int
	BufferAfterMin  int
	Color           string
	Location        []byte
	MinNoticeHours  int
	MaxFutureDays   int
	MaxPerDay       pgtype.Int4
	MaxPerWeek      pgtype.Int4
	Questions       []byte
	Confirmations   []byte
	ScheduleID      pgtype.UUID
	IsActive        bool
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

func EventTypeToDomain(row EventTypeRow) (*eventtype.EventType, error) {
	var location eventtype.EventLocation
	if err := json.Unmarshal(row.Location, &location); err != nil {
		return nil, err
	}
	var questions []eventtype.Question
	if len(row.Questions) > 0 {
		if err := json.Unmarshal(row.Questions, &questions); err != nil {
			return nil, err
		}
	}
	var confirmations eventtype.ConfirmationSettings
	if len(row.Confirmations) > 0 {
		if err := json.Unmarshal(row.Confirmations, &confirmations); err != nil {
			return nil, err
		}
	}

	description := ""
	if d := pgconv.StringPtrFromPgtype(row.Description); d != nil {
		description = *d
	}
	scheduleID := uuid.Nil
	if s := pgconv.UUIDPtrFromPgtype(row.ScheduleID); s != nil {
		scheduleID = *s
	}

	limits := eventtype.BookingLimits{
		MinNoticeHours: row.MinNoticeHours,
		MaxFutureDays:  row.MaxFutureDays,
		MaxPerDay:      pgconv.IntPtrFromPgtype(row.MaxPerDay),
		MaxPerWeek:     pgconv.IntPtrFromPgtype(row.MaxPerWeek),
	}

	return eventtype.ReconstructEventType(
		row.ID, row.HostID,
		row.Name, description,
		minutes(row.DurationMin), minutes(row.BufferBeforeMin), minutes(row.BufferAfterMin),
		row.Color,
		location,
		scheduleID,
		limits,
		questions,
		confirmations,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
