package readstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookwise/internal/infra"
	"bookwise/internal/pkg/pgconv"
	"bookwise/internal/usecase/queries"
)

type EventTypeReadStore struct {
	pool *pgxpool.Pool
}

func NewEventTypeReadStore(pool *pgxpool.Pool) *EventTypeReadStore {
	return &EventTypeReadStore{pool: pool}
}

func (s *EventTypeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventTypeView, error) {
	var (
		view          queries.EventTypeView
		description   pgtype.Text
		scheduleID    pgtype.UUID
		maxPerDay     pgtype.Int4
		maxPerWeek    pgtype.Int4
		location      []byte
		questions     []byte
		confirmations []byte
	)
	err := s.pool.QueryRow(ctx, `
		SELECT id, host_id, name, description, duration_min,
			buffer_before_min, buffer_after_min, color, location,
			min_notice_hours, max_future_days, max_per_day, max_per_week,
			questions, confirmations, schedule_id, is_active, created_at, updated_at
		FROM event_types WHERE id = $1`, id).Scan(
		&view.ID, &view.HostID, &view.Name, &description, &view.Duration,
		&view.BufferBefore, &view.BufferAfter, &view.Color, &location,
		&view.Limits.MinNoticeHours, &view.Limits.MaxFutureDays, &maxPerDay, &maxPerWeek,
		&questions, &confirmations, &scheduleID, &view.IsActive,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event type", err)
	}

	if err := json.Unmarshal(location, &view.Location); err != nil {
		return nil, infra.WrapRepoErr("failed to decode event type location", err)
	}
	if len(questions) > 0 {
		if err := json.Unmarshal(questions, &view.Questions); err != nil {
			return nil, infra.WrapRepoErr("failed to decode event type questions", err)
		}
	}
	if len(confirmations) > 0 {
		if err := json.Unmarshal(confirmations, &view.Confirmations); err != nil {
			return nil, infra.WrapRepoErr("failed to decode confirmation settings", err)
		}
	}
	view.Description = pgconv.StringPtrFromPgtype(description)
	view.ScheduleID = pgconv.UUIDPtrFromPgtype(scheduleID)
	view.Limits.MaxPerDay = pgconv.IntPtrFromPgtype(maxPerDay)
	view.Limits.MaxPerWeek = pgconv.IntPtrFromPgtype(maxPerWeek)
	return &view, nil
}

func (s *EventTypeReadStore) ListByHost(ctx context.Context, hostID uuid.UUID) ([]queries.EventTypeListItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, duration_min, color, is_active
		FROM event_types
		WHERE host_id = $1
		ORDER BY created_at`, hostID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event types", err)
	}
	defer rows.Close()

	var items []queries.EventTypeListItem
	for rows.Next() {
		var item queries.EventTypeListItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Duration, &item.Color, &item.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event type", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read event types", err)
	}
	return items, nil
}
