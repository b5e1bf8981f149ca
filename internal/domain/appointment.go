package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Occupies reports whether an appointment in this status holds its slot.
func (s AppointmentStatus) Occupies() bool {
	return s == AppointmentStatusConfirmed || s == AppointmentStatusCompleted
}

type Appointment struct {
	ID             string            `json:"id"`
	ClientName     string            `json:"client_name"`
	ClientPhone    string            `json:"client_phone"`
	ServiceID      string            `json:"service_id"`
	ProfessionalID string            `json:"professional_id"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	Status         AppointmentStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	ServiceName      string           `json:"service_name,omitempty"`
	ServicePrice     *decimal.Decimal `json:"service_price,omitempty"`
	ProfessionalName string           `json:"professional_name,omitempty"`
}

type BookAppointmentDTO struct {
	ClientName     string `json:"client_name" binding:"required,clientname"`
	ClientPhone    string `json:"client_phone" binding:"required,phone"`
	ServiceID      string `json:"service_id" binding:"required,uuid"`
	ProfessionalID string `json:"professional_id" binding:"required,uuid"`
	Date           string `json:"date" binding:"required,isodate"`
	Time           string `json:"time" binding:"required,hhmm"`
}

type AppointmentFilter struct {
	ProfessionalID *string            `json:"professional_id"`
	Phone          *string            `json:"phone"`
	Date           *string            `json:"date"`
	DateFrom       *string            `json:"date_from"`
	DateTo         *string            `json:"date_to"`
	Status         *AppointmentStatus `json:"status"`
	ExcludeStatus  *AppointmentStatus `json:"exclude_status"`
}

type AppointmentEventType string

const (
	AppointmentEventBooked    AppointmentEventType = "booked"
	AppointmentEventCancelled AppointmentEventType = "cancelled"
	AppointmentEventCompleted AppointmentEventType = "completed"
)

type AppointmentEvent struct {
	Type        AppointmentEventType `json:"type"`
	Appointment Appointment          `json:"appointment"`
	OccurredAt  time.Time            `json:"occurred_at"`
}
