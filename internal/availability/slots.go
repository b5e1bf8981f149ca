// Package availability holds the pure part of the booking engine: the slot
// grid, weekday masks and calendar-day selectability. Nothing here touches
// storage or the clock; callers pass "today" in explicitly.
package availability

import (
	"fmt"
	"time"
)

const (
	DefaultInterval = 30

	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	minutesPerDay = 24 * 60
)

// GenerateSlots returns the start times in [start, end) stepping by
// intervalMinutes. Malformed clocks, start >= end or a non-positive interval
// yield an empty slice.
func GenerateSlots(start, end string, intervalMinutes int) []string {
	if intervalMinutes <= 0 {
		return []string{}
	}

	from, ok := ParseClock(start)
	if !ok {
		return []string{}
	}
	to, ok := ParseClock(end)
	if !ok {
		return []string{}
	}
	if from >= to {
		return []string{}
	}

	slots := make([]string, 0, (to-from+intervalMinutes-1)/intervalMinutes)
	for current := from; current < to; current += intervalMinutes {
		slots = append(slots, FormatClock(current))
	}

	return slots
}

// ParseClock converts a zero-padded "HH:MM" into minutes after midnight.
func ParseClock(s string) (int, bool) {
	if len(s) != len(ClockLayout) || s[2] != ':' {
		return 0, false
	}

	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, false
	}

	return t.Hour()*60 + t.Minute(), true
}

// FormatClock renders minutes after midnight as "HH:MM"; minutes past the
// hour carry into the hour.
func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Period groups a slot into the morning (before noon) or afternoon bucket.
func Period(slot string) string {
	minutes, ok := ParseClock(slot)
	if ok && minutes < 12*60 {
		return "morning"
	}
	return "afternoon"
}
