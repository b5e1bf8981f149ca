package validator

import (
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	MinPhoneDigits = 10
	MaxPhoneDigits = 15
	MinNameLength  = 3
)

// RegisterBindings installs the booking validators ("phone", "hhmm",
// "isodate", "clientname") on gin's binding engine.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return Register(v)
}

func Register(v *validator.Validate) error {
	validators := map[string]validator.Func{
		"phone":      func(fl validator.FieldLevel) bool { return ValidatePhone(fl.Field().String()) },
		"hhmm":       func(fl validator.FieldLevel) bool { return ValidateClock(fl.Field().String()) },
		"isodate":    func(fl validator.FieldLevel) bool { return ValidateDate(fl.Field().String()) },
		"clientname": func(fl validator.FieldLevel) bool { return ValidateClientName(fl.Field().String()) },
	}

	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}

	return nil
}

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

func ValidatePhone(phone string) bool {
	n := len(NormalizePhone(phone))
	return n >= MinPhoneDigits && n <= MaxPhoneDigits
}

func ValidateClientName(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) >= MinNameLength
}

// ValidateClock accepts zero-padded 24-hour "HH:MM".
func ValidateClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// ValidateDate accepts "YYYY-MM-DD" calendar dates.
func ValidateDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// FormatName collapses whitespace and capitalises each word.
func FormatName(name string) string {
	parts := strings.Fields(name)
	for i, part := range parts {
		subparts := strings.Split(part, "-")
		for j, subpart := range subparts {
			subparts[j] = capitalize(subpart)
		}
		parts[i] = strings.Join(subparts, "-")
	}

	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// SanitizeCell prefixes values a spreadsheet would evaluate as a formula
// with an apostrophe so they are shown as text.
func SanitizeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

// FormatValidationErrors maps binding errors to field messages for the
// response body.
func FormatValidationErrors(err error) map[string]string {
	fields := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fields
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			fields[field] = field + " is required"
		case "min":
			fields[field] = field + " must be at least " + e.Param()
		case "max":
			fields[field] = field + " must be at most " + e.Param()
		case "phone":
			fields[field] = field + " must contain 10 to 15 digits"
		case "hhmm":
			fields[field] = field + " must be a HH:MM time"
		case "isodate":
			fields[field] = field + " must be a YYYY-MM-DD date"
		case "clientname":
			fields[field] = field + " must be at least 3 characters"
		case "uuid":
			fields[field] = field + " must be a valid id"
		default:
			fields[field] = field + " is invalid"
		}
	}

	return fields
}
