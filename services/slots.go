package services

import "time"

// GenerateSlots enumerates the candidate start times t = windowStart + k*step
// for which a booking of the given duration still fits inside
// [windowStart, windowEnd). The result is ascending with no duplicates and
// the function is pure: same inputs, same sequence.
func GenerateSlots(windowStart, windowEnd time.Time, duration, step time.Duration) []time.Time {
	if duration <= 0 || step <= 0 {
		return nil
	}
	var slots []time.Time
	for t := windowStart; !t.Add(duration).After(windowEnd); t = t.Add(step) {
		slots = append(slots, t)
	}
	return slots
}

// Overlaps applies half-open interval semantics: [aStart,aEnd) conflicts with
// [bStart,bEnd) iff aStart < bEnd && aEnd > bStart.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

type interval struct {
	start, end time.Time
}

func overlapsAny(start, end time.Time, busy []interval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.start, b.end) {
			return true
		}
	}
	return false
}
