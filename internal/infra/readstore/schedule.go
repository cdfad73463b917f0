package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookwise/internal/domain/schedule"
	"bookwise/internal/infra"
	"bookwise/internal/infra/repository/converter"
	"bookwise/internal/pkg/pgconv"
)

// ScheduleReadStore reconstructs the domain schedule directly: availability
// resolution needs the validated rules, not a flat view.
type ScheduleReadStore struct {
	pool *pgxpool.Pool
}

func NewScheduleReadStore(pool *pgxpool.Pool) *ScheduleReadStore {
	return &ScheduleReadStore{pool: pool}
}

func (s *ScheduleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*schedule.Schedule, error) {
	var row converter.ScheduleRow
	err := s.pool.QueryRow(ctx, `
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
	sched, err := converter.ScheduleToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode schedule", err)
	}
	return sched, nil
}
