package domain

type SlotView struct {
	Time   string `json:"time"`
	Period string `json:"period"`
	Booked bool   `json:"booked"`
}

type CalendarDay struct {
	Date       string `json:"date"`
	Day        int    `json:"day"`
	Weekday    int    `json:"weekday"`
	Selectable bool   `json:"selectable"`
}

type MonthAvailability struct {
	ProfessionalID string        `json:"professional_id"`
	Year           int           `json:"year"`
	Month          int           `json:"month"`
	LeadingBlanks  int           `json:"leading_blanks"`
	Days           []CalendarDay `json:"days"`
}
