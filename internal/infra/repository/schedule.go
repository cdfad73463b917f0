package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"bookwise/internal/domain/schedule"
	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/infra/repository/converter"
	"bookwise/internal/pkg/pgconv"
)

type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

func (r *ScheduleRepository) Create(ctx context.Context, tx db.DBTX, s *schedule.Schedule) error {
	rules, overrides, err := marshalScheduleJSON(s)
	if err != nil {
		return infra.WrapRepoErr("failed to encode schedule", err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO schedules (id, host_id, name, timezone, rules, overrides, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
		s.ID(), s.HostID(), s.Name(), s.Timezone(), rules, overrides,
	)
	if err != nil {
		return wrapWriteErr("failed to insert schedule", err)
	}
	return nil
}

func (r *ScheduleRepository) Update(ctx context.Context, tx db.DBTX, s *schedule.Schedule) error {
	rules, overrides, err := marshalScheduleJSON(s)
	if err != nil {
		return infra.WrapRepoErr("failed to encode schedule", err)
	}
	tag, err := tx.Exec(ctx, `
		UPDATE schedules
		SET name = $2, timezone = $3, rules = $4, overrides = $5, updated_at = now()
		WHERE id = $1`,
		s.ID(), s.Name(), s.Timezone(), rules, overrides,
	)
	if err != nil {
		return wrapWriteErr("failed to update schedule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("schedule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ScheduleRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*schedule.Schedule, error) {
	var row converter.ScheduleRow
	err := tx.QueryRow(ctx, `
		SELECT id, host_id, name, timezone, rules, overrides
		FROM schedules WHERE id = $1`, id).Scan(
		&row.ID, &row.HostID, &row.Name, &row.Timezone, &row.Rules, &row.Overrides,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get schedule", err)
	}
	s, err := converter.ScheduleToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode schedule", err)
	}
	return s, nil
}

func marshalScheduleJSON(s *schedule.Schedule) (rules, overrides []byte, err error) {
	if rules, err = json.Marshal(s.Rules()); err != nil {
		return nil, nil, err
	}
	if overrides, err = json.Marshal(s.Overrides()); err != nil {
		return nil, nil, err
	}
	return rules, overrides, nil
}
