package availability

import (
	"time"

	"salon/internal/domain"
)

// ParseDate parses a "YYYY-MM-DD" calendar date at UTC midnight.
func ParseDate(date string) (time.Time, bool) {
	if len(date) != len(DateLayout) {
		return time.Time{}, false
	}

	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// Weekday returns the proleptic Gregorian weekday of date (Sunday = 0).
func Weekday(date string) (time.Weekday, bool) {
	t, ok := ParseDate(date)
	if !ok {
		return 0, false
	}
	return t.Weekday(), true
}

func WorksOn(days []int, wd time.Weekday) bool {
	for _, d := range days {
		if d == int(wd) {
			return true
		}
	}
	return false
}

// Today formats the current calendar day in loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(DateLayout)
}

// DaySelectable reports whether date can be picked on the calendar: it must
// not be before today (day granularity, so today itself always passes) and
// its weekday must be in days.
func DaySelectable(days []int, date, today string) bool {
	d, ok := ParseDate(date)
	if !ok {
		return false
	}
	t, ok := ParseDate(today)
	if !ok {
		return false
	}
	if d.Before(t) {
		return false
	}

	return WorksOn(days, d.Weekday())
}

// MonthGrid lays out every day of the month the way the booking calendar
// renders it, with selectability resolved against days and today.
// LeadingBlanks is the weekday of the first of the month.
func MonthGrid(days []int, year int, month time.Month, today string) (int, []domain.CalendarDay) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	grid := make([]domain.CalendarDay, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		grid = append(grid, domain.CalendarDay{
			Date:       date,
			Day:        d.Day(),
			Weekday:    int(d.Weekday()),
			Selectable: DaySelectable(days, date, today),
		})
	}

	return int(first.Weekday()), grid
}

// ValidHours reports whether hours form a well-ordered working window.
func ValidHours(hours domain.WorkingHours) bool {
	start, ok := ParseClock(hours.Start)
	if !ok {
		return false
	}
	end, ok := ParseClock(hours.End)
	if !ok {
		return false
	}
	return start < end
}

func ValidDays(days []int) bool {
	for _, d := range days {
		if d < 0 || d > 6 {
			return false
		}
	}
	return true
}
