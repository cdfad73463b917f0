package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"bookwise/internal/domain/eventtype"
	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/infra/repository/converter"
	"bookwise/internal/pkg/pgconv"
)

type EventTypeRepository struct{}

func NewEventTypeRepository() *EventTypeRepository {
	return &EventTypeRepository{}
}

const eventTypeColumns = `id, host_id, name, description, duration_min,
	buffer_before_min, buffer_after_min, color, location,
	min_notice_hours, max_future_days, max_per_day, max_per_week,
	questions, confirmations, schedule_id, is_active, created_at, updated_at`

func (r *EventTypeRepository) Create(ctx context.Context, tx db.DBTX, et *eventtype.EventType) error {
	location, questions, confirmations, err := marshalEventTypeJSON(et)
	if err != nil {
		return infra.WrapRepoErr("failed to encode event type", err)
	}

	limits := et.Limits()
	_, err = tx.Exec(ctx, `
		INSERT INTO event_types (
			id, host_id, name, description, duration_min,
			buffer_before_min, buffer_after_min, color, location,
			min_notice_hours, max_future_days, max_per_day, max_per_week,
			questions, confirmations, schedule_id, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18)`,
		et.ID(), et.HostID(), et.Name(), nullable(et.Description()),
		int(et.Duration().Minutes()),
		int(et.BufferBefore().Minutes()), int(et.BufferAfter().Minutes()),
		et.Color(), location,
		limits.MinNoticeHours, limits.MaxFutureDays, limits.MaxPerDay, limits.MaxPerWeek,
		questions, confirmations,
		nilUUID(et.ScheduleID()), et.IsActive(), et.CreatedAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to insert event type", err)
	}
	return nil
}

func (r *EventTypeRepository) Update(ctx context.Context, tx db.DBTX, et *eventtype.EventType) error {
	location, questions, confirmations, err := marshalEventTypeJSON(et)
	if err != nil {
		return infra.WrapRepoErr("failed to encode event type", err)
	}

	limits := et.Limits()
	tag, err := tx.Exec(ctx, `
		UPDATE event_types
		SET name = $2, description = $3, duration_min = $4,
			buffer_before_min = $5, buffer_after_min = $6, color = $7, location = $8,
			min_notice_hours = $9, max_future_days = $10, max_per_day = $11, max_per_week = $12,
			questions = $13, confirmations = $14, schedule_id = $15, is_active = $16,
			updated_at = now()
		WHERE id = $1`,
		et.ID(), et.Name(), nullable(et.Description()),
		int(et.Duration().Minutes()),
		int(et.BufferBefore().Minutes()), int(et.BufferAfter().Minutes()),
		et.Color(), location,
		limits.MinNoticeHours, limits.MaxFutureDays, limits.MaxPerDay, limits.MaxPerWeek,
		questions, confirmations,
		nilUUID(et.ScheduleID()), et.IsActive(),
	)
	if err != nil {
		return wrapWriteErr("failed to update event type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event type not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EventTypeRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*eventtype.EventType, error) {
	var row converter.EventTypeRow
	err := tx.QueryRow(ctx, `SELECT `+eventTypeColumns+` FROM event_types WHERE id = $1`, id).Scan(
		&row.ID, &row.HostID, &row.Name, &row.Description, &row.DurationMin,
		&row.BufferBeforeMin, &row.BufferAfterMin, &row.Color, &row.Location,
		&row.MinNoticeHours, &row.MaxFutureDays, &row.MaxPerDay, &row.MaxPerWeek,
		&row.Questions, &row.Confirmations, &row.ScheduleID, &row.IsActive,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event type", err)
	}
	et, err := converter.EventTypeToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode event type", err)
	}
	return et, nil
}

func marshalEventTypeJSON(et *eventtype.EventType) (location, questions, confirmations []byte, err error) {
	if location, err = json.Marshal(et.Location()); err != nil {
		return nil, nil, nil, err
	}
	if questions, err = json.Marshal(et.Questions()); err != nil {
		return nil, nil, nil, err
	}
	if confirmations, err = json.Marshal(et.Confirmations()); err != nil {
		return nil, nil, nil, err
	}
	return location, questions, confirmations, nil
}

// nilUUID maps uuid.Nil to NULL for nullable uuid columns.
func nilUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
