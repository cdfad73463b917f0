package converter

import (
	"encoding/json"

	"github.com/google/uuid"

	"bookwise/internal/domain/schedule"
)

// ScheduleRow mirrors the schedules table; rules and overrides are jsonb.
type ScheduleRow struct {
	ID        uuid.UUID
	HostID    uuid.UUID
	Name      string
	Timezone  string
	Rules     []byte
	Overrides []byte
}

func ScheduleToDomain(row ScheduleRow) (*schedule.Schedule, error) {
	var rules []schedule.WeeklyRule
	if len(row.Rules) > 0 {
		if err := json.Unmarshal(row.Rules, &rules); err != nil {
			return nil, err
		}
	}
	var overrides []schedule.Override
	if len(row.Overrides) > 0 {
		if err := json.Unmarshal(row.Overrides, &overrides); err != nil {
			return nil, err
		}
	}
	return schedule.ReconstructSchedule(row.ID, row.HostID, row.Name, row.Timezone, rules, overrides)
}
