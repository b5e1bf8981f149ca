package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone("+55 (11) 98765-4321"); got != "5511987654321" {
		t.Fatalf("expected digits only, got %s", got)
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"(11) 98765-4321", "1198765432", "+55 11 98765 4321"}
	invalid := []string{"", "98765-4321", "abc", "1234567890123456"}

	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Fatalf("expected %q to be valid", p)
		}
	}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Fatalf("expected %q to be invalid", p)
		}
	}
}

func TestValidateClientName(t *testing.T) {
	if ValidateClientName("  Jo  ") {
		t.Fatalf("expected two letters after trimming to be rejected")
	}
	if !ValidateClientName("Ana") {
		t.Fatalf("expected three letters to be accepted")
	}
	if !ValidateClientName("Zoë") {
		t.Fatalf("expected name length to count runes")
	}
}

func TestValidateClockAndDate(t *testing.T) {
	for _, s := range []string{"00:00", "09:30", "23:59"} {
		if !ValidateClock(s) {
			t.Fatalf("expected %s to be a valid clock", s)
		}
	}
	for _, s := range []string{"9:30", "24:00", "12:60", "12-30", ""} {
		if ValidateClock(s) {
			t.Fatalf("expected %s to be an invalid clock", s)
		}
	}

	if !ValidateDate("2024-02-29") {
		t.Fatalf("expected leap day to be valid")
	}
	for _, s := range []string{"2023-02-29", "2024-6-10", "10/06/2024"} {
		if ValidateDate(s) {
			t.Fatalf("expected %s to be an invalid date", s)
		}
	}
}

type bookingForm struct {
	Name  string `validate:"required,clientname"`
	Phone string `validate:"required,phone"`
	Date  string `validate:"required,isodate"`
	Time  string `validate:"required,hhmm"`
}

func TestRegister(t *testing.T) {
	v := validator.New()
	if err := Register(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok := bookingForm{Name: "Maria", Phone: "11 98765-4321", Date: "2024-06-10", Time: "10:00"}
	if err := v.Struct(ok); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}

	bad := bookingForm{Name: "Al", Phone: "123", Date: "2024-13-01", Time: "10:5"}
	err := v.Struct(bad)
	if err == nil {
		t.Fatalf("expected validation errors")
	}

	fields := FormatValidationErrors(err)
	for _, f := range []string{"Name", "Phone", "Date", "Time"} {
		if _, ok := fields[f]; !ok {
			t.Fatalf("expected error for %s, got %v", f, fields)
		}
	}
}

func TestFormatName(t *testing.T) {
	if got := FormatName("  maria   da silva-SANTOS "); got != "Maria Da Silva-Santos" {
		t.Fatalf("unexpected formatted name %q", got)
	}
}

func TestSanitizeCell(t *testing.T) {
	cases := map[string]string{
		`=HYPERLINK("http://evil","x")`: `'=HYPERLINK("http://evil","x")`,
		"+5511988887777":                "'+5511988887777",
		"-2+3":                          "'-2+3",
		"@SUM(A1:A2)":                   "'@SUM(A1:A2)",
		"\tcmd":                         "'\tcmd",
		"Maria Souza":                   "Maria Souza",
		"":                              "",
	}

	for in, want := range cases {
		if got := SanitizeCell(in); got != want {
			t.Fatalf("SanitizeCell(%q) = %q, want %q", in, got, want)
		}
	}
}
