package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"bookwise/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrUnknownTimezone     = errors.New("unknown timezone")
	ErrInvalidInterval     = errors.New("interval start must be before end")
	ErrOverlappingInterval = errors.New("intervals within a day must not overlap")
	ErrDuplicateOverride   = errors.New("duplicate date override")
	ErrDuplicateRule       = errors.New("duplicate weekday rule")
)

// ClockTime is a time of day within the schedule's timezone, minute
// resolution. It marshals as "15:04".
type ClockTime struct {
	Minutes int
}

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime{Minutes: hour*60 + minute}
}

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return NewClockTime(t.Hour(), t.Minute()), nil
}

func (c ClockTime) Hour() int   { return c.Minutes / 60 }
func (c ClockTime) Minute() int { return c.Minutes % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c ClockTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ClockTime) UnmarshalText(text []byte) error {
	parsed, err := ParseClockTime(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Interval is a half-open [Start, End) time-of-day range. A slot may not span
// midnight, so End must stay within the same day.
type Interval struct {
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

func (i Interval) validate() error {
	if i.Start.Minutes >= i.End.Minutes {
		return ErrInvalidInterval
	}
	if i.End.Minutes > 24*60 {
		return ErrInvalidInterval
	}
	return nil
}

// Date is a calendar date independent of timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Override replaces the weekly rule for one calendar date entirely: either
// the date is blocked, or the given intervals are the availability. An
// override with Unavailable=false and no intervals also blocks the date.
type Override struct {
	Date        Date       `json:"date"`
	Unavailable bool       `json:"unavailable"`
	Intervals   []Interval `json:"intervals,omitempty"`
}

// WeeklyRule lists the open intervals recurring on one weekday.
type WeeklyRule struct {
	Day       time.Weekday `json:"day"`
	Intervals []Interval   `json:"intervals"`
}

type Schedule struct {
	id        uuid.UUID
	hostID    uuid.UUID
	name      string
	timezone  string
	loc       *time.Location
	rules     []WeeklyRule
	overrides []Override
}

func NewSchedule(hostID uuid.UUID, name, timezone string, rules []WeeklyRule, overrides []Override) (*Schedule, error) {
	return build(uuid.New(), hostID, name, timezone, rules, overrides)
}

func ReconstructSchedule(id, hostID uuid.UUID, name, timezone string, rules []WeeklyRule, overrides []Override) (*Schedule, error) {
	return build(id, hostID, name, timezone, rules, overrides)
}

func build(id, hostID uuid.UUID, name, timezone string, rules []WeeklyRule, overrides []Override) (*Schedule, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, ErrUnknownTimezone
	}

	s := &Schedule{
		id:        id,
		hostID:    hostID,
		name:      name,
		timezone:  timezone,
		loc:       loc,
		rules:     rules,
		overrides: overrides,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate enforces the configuration invariants: at most one rule per
// weekday, at most one override per date, and within any single rule or
// override the intervals satisfy start < end and do not overlap each other.
// Violations are configuration errors caught here, never at booking time.
func (s *Schedule) Validate() error {
	seenDays := make(map[time.Weekday]struct{}, len(s.rules))
	for _, r := range s.rules {
		if _, dup := seenDays[r.Day]; dup {
			return ErrDuplicateRule
		}
		seenDays[r.Day] = struct{}{}
		if err := validateIntervals(r.Intervals); err != nil {
			return err
		}
	}
	seen := make(map[Date]struct{}, len(s.overrides))
	for _, o := range s.overrides {
		if _, dup := seen[o.Date]; dup {
			return ErrDuplicateOverride
		}
		seen[o.Date] = struct{}{}
		if o.Unavailable {
			continue
		}
		if err := validateIntervals(o.Intervals); err != nil {
			return err
		}
	}
	return nil
}

func validateIntervals(intervals []Interval) error {
	for _, iv := range intervals {
		if err := iv.validate(); err != nil {
			return err
		}
	}
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Minutes < sorted[j].Start.Minutes })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start.Minutes < sorted[i-1].End.Minutes {
			return ErrOverlappingInterval
		}
	}
	return nil
}

// Resolve expands the schedule into the ordered open intervals for one
// calendar date, as absolute instants in the schedule's timezone. A date
// override fully supersedes the weekly rule; with neither, the result is
// empty.
func (s *Schedule) Resolve(date Date) []booking.TimeSlot {
	if o, ok := s.overrideFor(date); ok {
		if o.Unavailable {
			return nil
		}
		return s.materialize(date, o.Intervals)
	}
	for _, r := range s.rules {
		if r.Day == date.Weekday() {
			return s.materialize(date, r.Intervals)
		}
	}
	return nil
}

func (s *Schedule) overrideFor(date Date) (Override, bool) {
	for _, o := range s.overrides {
		if o.Date == date {
			return o, true
		}
	}
	return Override{}, false
}

func (s *Schedule) materialize(date Date, intervals []Interval) []booking.TimeSlot {
	slots := make([]booking.TimeSlot, 0, len(intervals))
	for _, iv := range intervals {
		start := time.Date(date.Year, date.Month, date.Day, iv.Start.Hour(), iv.Start.Minute(), 0, 0, s.loc)
		end := time.Date(date.Year, date.Month, date.Day, iv.End.Hour(), iv.End.Minute(), 0, 0, s.loc)
		slot, err := booking.NewTimeSlot(start, end)
		if err != nil {
			continue
		}
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Start().Before(slots[j].Start()) })
	return slots
}

func (s *Schedule) ID() uuid.UUID            { return s.id }
func (s *Schedule) HostID() uuid.UUID        { return s.hostID }
func (s *Schedule) Name() string             { return s.name }
func (s *Schedule) Timezone() string         { return s.timezone }
func (s *Schedule) Location() *time.Location { return s.loc }
func (s *Schedule) Rules() []WeeklyRule      { return s.rules }
func (s *Schedule) Overrides() []Override    { return s.overrides }
