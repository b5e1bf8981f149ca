package availability

import (
	"testing"
	"time"

	"salon/internal/domain"
)

var weekdays = []int{1, 2, 3, 4, 5}

func TestWeekday(t *testing.T) {
	cases := map[string]time.Weekday{
		"2024-06-10": time.Monday,
		"2024-06-09": time.Sunday,
		"2024-02-29": time.Thursday,
		"2000-01-01": time.Saturday,
		"1600-03-01": time.Wednesday,
	}

	for date, want := range cases {
		got, ok := Weekday(date)
		if !ok {
			t.Fatalf("expected %s to parse", date)
		}
		if got != want {
			t.Fatalf("%s: expected %s, got %s", date, want, got)
		}
	}

	if _, ok := Weekday("2024-6-10"); ok {
		t.Fatalf("expected unpadded date to be rejected")
	}
	if _, ok := Weekday("2023-02-29"); ok {
		t.Fatalf("expected invalid calendar date to be rejected")
	}
}

func TestDaySelectable(t *testing.T) {
	today := "2024-06-12" // Wednesday

	if !DaySelectable(weekdays, today, today) {
		t.Fatalf("expected today to be selectable")
	}
	if DaySelectable(weekdays, "2024-06-11", today) {
		t.Fatalf("expected yesterday to be rejected")
	}
	if DaySelectable([]int{0, 1, 2, 3, 4, 5, 6}, "2024-06-11", today) {
		t.Fatalf("expected yesterday to be rejected regardless of weekday")
	}
	if DaySelectable(weekdays, "2024-06-15", today) {
		t.Fatalf("expected future Saturday to be rejected for a Mon-Fri mask")
	}
	if !DaySelectable(weekdays, "2024-06-17", today) {
		t.Fatalf("expected future Monday to be selectable")
	}
	if DaySelectable(weekdays, "garbage", today) {
		t.Fatalf("expected malformed date to be rejected")
	}
}

func TestMonthGrid(t *testing.T) {
	blanks, days := MonthGrid(weekdays, 2024, time.June, "2024-06-12")

	if blanks != int(time.Saturday) {
		t.Fatalf("expected June 2024 to start on Saturday, got %d", blanks)
	}
	if len(days) != 30 {
		t.Fatalf("expected 30 days, got %d", len(days))
	}

	byDate := make(map[string]domain.CalendarDay, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	if byDate["2024-06-10"].Selectable {
		t.Fatalf("expected past Monday to be unselectable")
	}
	if !byDate["2024-06-12"].Selectable {
		t.Fatalf("expected today to be selectable")
	}
	if byDate["2024-06-22"].Selectable {
		t.Fatalf("expected Saturday to be unselectable")
	}
	if !byDate["2024-06-28"].Selectable {
		t.Fatalf("expected future Friday to be selectable")
	}
}

func TestMonthGrid_LeapFebruary(t *testing.T) {
	_, days := MonthGrid(weekdays, 2024, time.February, "2024-01-01")
	if len(days) != 29 {
		t.Fatalf("expected 29 days, got %d", len(days))
	}
}

func TestValidHours(t *testing.T) {
	if !ValidHours(domain.WorkingHours{Start: "09:00", End: "18:00"}) {
		t.Fatalf("expected 09:00-18:00 to be valid")
	}
	if ValidHours(domain.WorkingHours{Start: "18:00", End: "09:00"}) {
		t.Fatalf("expected reversed hours to be invalid")
	}
	if ValidHours(domain.WorkingHours{Start: "09:00", End: "09:00"}) {
		t.Fatalf("expected empty window to be invalid")
	}
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2024, 6, 13, 1, 30, 0, 0, time.UTC)
	if got := Today(now, loc); got != "2024-06-12" {
		t.Fatalf("expected 2024-06-12 in BRT, got %s", got)
	}
}
