//go:build unit || e2e

package builder

import (
	"time"

	domschedule "bookwise/internal/domain/schedule"

	"github.com/google/uuid"
)

type ScheduleBuilder struct {
	HostID    uuid.UUID
	Name      string
	Timezone  string
	Rules     []domschedule.WeeklyRule
	Overrides []domschedule.Override
}

// NewScheduleBuilder defaults to Monday through Friday 09:00-17:00 in UTC.
func NewScheduleBuilder() *ScheduleBuilder {
	workday := []domschedule.Interval{
		{Start: domschedule.NewClockTime(9, 0), End: domschedule.NewClockTime(17, 0)},
	}
	rules := make([]domschedule.WeeklyRule, 0, 5)
	for day := time.Monday; day <= time.Friday; day++ {
		rules = append(rules, domschedule.WeeklyRule{Day: day, Intervals: workday})
	}
	return &ScheduleBuilder{
		HostID:   uuid.New(),
		Name:     "Working hours",
		Timezone: "UTC",
		Rules:    rules,
	}
}

func (s *ScheduleBuilder) With(mutate func(*ScheduleBuilder)) *ScheduleBuilder {
	mutate(s)
	return s
}

func (s *ScheduleBuilder) WithTimezone(tz string) *ScheduleBuilder {
	s.Timezone = tz
	return s
}

func (s *ScheduleBuilder) WithRules(rules ...domschedule.WeeklyRule) *ScheduleBuilder {
	s.Rules = rules
	return s
}

func (s *ScheduleBuilder) WithOverride(o domschedule.Override) *ScheduleBuilder {
	s.Overrides = append(s.Overrides, o)
	return s
}

func (s *ScheduleBuilder) BuildDomain() (*domschedule.Schedule, error) {
	return domschedule.NewSchedule(s.HostID, s.Name, s.Timezone, s.Rules, s.Overrides)
}
