package schedule

import (
	"time"

	"bookwise/internal/domain/booking"
)

// GenerateSlots discretizes open intervals into the candidate bookable slots
// for one event type. It is a pure function of its inputs.
//
// Within each open interval the cursor starts at the interval start and
// advances by step (defaulting to duration). A candidate's visible range is
// [cursor+bufferBefore, cursor+bufferBefore+duration); it is emitted while
// the whole padded block cursor+bufferBefore+duration+bufferAfter still fits
// in the interval. Buffers keep adjacent bookings apart and are never part of
// the emitted slot.
func GenerateSlots(open []booking.TimeSlot, duration, bufferBefore, bufferAfter, step time.Duration) []booking.TimeSlot {
	if duration <= 0 {
		return nil
	}
	if bufferBefore < 0 {
		bufferBefore = 0
	}
	if bufferAfter < 0 {
		bufferAfter = 0
	}
	if step <= 0 {
		step = duration
	}

	var slots []booking.TimeSlot
	for _, interval := range open {
		for cursor := interval.Start(); ; cursor = cursor.Add(step) {
			blockEnd := cursor.Add(bufferBefore + duration + bufferAfter)
			if blockEnd.After(interval.End()) {
				break
			}
			start := cursor.Add(bufferBefore)
			slot, err := booking.NewTimeSlot(start, start.Add(duration))
			if err != nil {
				break
			}
			slots = append(slots, slot)
		}
	}
	return slots
}
