package availability

import (
	"reflect"
	"testing"
)

func TestGenerateSlots_WorkingDay(t *testing.T) {
	slots := GenerateSlots("09:00", "18:00", 30)
	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}
	if slots[0] != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "17:30" {
		t.Fatalf("expected last slot 17:30, got %s", slots[len(slots)-1])
	}
}

func TestGenerateSlots_EndIsExclusive(t *testing.T) {
	slots := GenerateSlots("09:00", "10:00", 30)
	want := []string{"09:00", "09:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestGenerateSlots_MinuteCarry(t *testing.T) {
	slots := GenerateSlots("08:45", "10:00", 30)
	want := []string{"08:45", "09:15", "09:45"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestGenerateSlots_Degenerate(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		interval   int
	}{
		{"equal bounds", "09:00", "09:00", 30},
		{"reversed bounds", "18:00", "09:00", 30},
		{"zero interval", "09:00", "18:00", 0},
		{"negative interval", "09:00", "18:00", -15},
		{"malformed start", "9:00", "18:00", 30},
		{"malformed end", "09:00", "18h00", 30},
		{"out of range", "09:00", "25:00", 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots := GenerateSlots(tc.start, tc.end, tc.interval)
			if slots == nil {
				t.Fatalf("expected empty slice, got nil")
			}
			if len(slots) != 0 {
				t.Fatalf("expected no slots, got %v", slots)
			}
		})
	}
}

func TestGenerateSlots_WithinBounds(t *testing.T) {
	bounds := [][2]string{
		{"00:00", "23:59"},
		{"07:10", "12:05"},
		{"13:30", "13:31"},
		{"09:00", "18:00"},
	}

	for _, b := range bounds {
		start, _ := ParseClock(b[0])
		end, _ := ParseClock(b[1])
		for interval := 1; interval <= 120; interval += 7 {
			for _, slot := range GenerateSlots(b[0], b[1], interval) {
				m, ok := ParseClock(slot)
				if !ok {
					t.Fatalf("generated malformed slot %q", slot)
				}
				if m < start || m >= end {
					t.Fatalf("slot %s outside [%s, %s) for interval %d", slot, b[0], b[1], interval)
				}
			}
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(9*60 + 75); got != "10:15" {
		t.Fatalf("expected 10:15, got %s", got)
	}
	if got := FormatClock(5); got != "00:05" {
		t.Fatalf("expected 00:05, got %s", got)
	}
}

func TestPeriod(t *testing.T) {
	if got := Period("11:30"); got != "morning" {
		t.Fatalf("expected morning, got %s", got)
	}
	if got := Period("12:00"); got != "afternoon" {
		t.Fatalf("expected afternoon, got %s", got)
	}
}
