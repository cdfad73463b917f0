package shared

import (
	"time"

	"bookwise/internal/domain/booking"
)

// ConflictWindow returns the persisted-booking range needed to evaluate a
// candidate slot against overlap and counting rules. It spans the ISO weeks
// the slot touches in loc, widened by a day on each side so buffered bookings
// that straddle the boundary are still fetched.
func ConflictWindow(slot booking.TimeSlot, loc *time.Location) (time.Time, time.Time) {
	from := WeekStart(slot.Start(), loc).Add(-24 * time.Hour)
	to := WeekStart(slot.End(), loc).AddDate(0, 0, 7).Add(24 * time.Hour)
	return from, to
}

// WeekStart returns midnight of the ISO-week Monday containing t in loc.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	back := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-back, 0, 0, 0, 0, loc)
}
