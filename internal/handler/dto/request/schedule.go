package request

import (
	"time"

	"bookwise/internal/domain/schedule"
	"bookwise/internal/usecase/commands"
)

type IntervalRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type WeeklyRuleRequest struct {
	Day       int               `json:"day" binding:"min=0,max=6"`
	Intervals []IntervalRequest `json:"intervals" binding:"required"`
}

type OverrideRequest struct {
	Date        string            `json:"date" binding:"required"`
	Unavailable bool              `json:"unavailable"`
	Intervals   []IntervalRequest `json:"intervals"`
}

type ScheduleRequest struct {
	Name      string              `json:"name"`
	Timezone  string              `json:"timezone"`
	Rules     []WeeklyRuleRequest `json:"rules"`
	Overrides []OverrideRequest   `json:"overrides"`
}

// ToInput parses the wire representation ("15:04" times, "2006-01-02" dates)
// into domain values. Range validation happens in the domain, not here.
func (r ScheduleRequest) ToInput() (commands.ScheduleInput, error) {
	rules := make([]schedule.WeeklyRule, 0, len(r.Rules))
	for _, rule := range r.Rules {
		intervals, err := parseIntervals(rule.Intervals)
		if err != nil {
			return commands.ScheduleInput{}, err
		}
		rules = append(rules, schedule.WeeklyRule{
			Day:       time.Weekday(rule.Day),
			Intervals: intervals,
		})
	}

	overrides := make([]schedule.Override, 0, len(r.Overrides))
	for _, o := range r.Overrides {
		date, err := schedule.ParseDate(o.Date)
		if err != nil {
			return commands.ScheduleInput{}, err
		}
		intervals, err := parseIntervals(o.Intervals)
		if err != nil {
			return commands.ScheduleInput{}, err
		}
		overrides = append(overrides, schedule.Override{
			Date:        date,
			Unavailable: o.Unavailable,
			Intervals:   intervals,
		})
	}

	return commands.ScheduleInput{
		Name:      r.Name,
		Timezone:  r.Timezone,
		Rules:     rules,
		Overrides: overrides,
	}, nil
}

func parseIntervals(reqs []IntervalRequest) ([]schedule.Interval, error) {
	intervals := make([]schedule.Interval, 0, len(reqs))
	for _, req := range reqs {
		start, err := schedule.ParseClockTime(req.Start)
		if err != nil {
			return nil, err
		}
		end, err := schedule.ParseClockTime(req.End)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, schedule.Interval{Start: start, End: end})
	}
	return intervals, nil
}
