package domain

import (
	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	Today             string          `json:"today"`
	TodayAppointments []Appointment   `json:"today_appointments"`
	ConfirmedCount    int             `json:"confirmed_count"`
	CancelledCount    int             `json:"cancelled_count"`
	ClientCount       int             `json:"client_count"`
	ProfessionalCount int             `json:"professional_count"`
	ConfirmedRevenue  decimal.Decimal `json:"confirmed_revenue"`
}

type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

type RevenueReport struct {
	Months            []MonthlyRevenue `json:"months"`
	TotalRevenue      decimal.Decimal  `json:"total_revenue"`
	TotalAppointments int              `json:"total_appointments"`
}

type ProfessionalLoad struct {
	ProfessionalID   string `json:"professional_id"`
	ProfessionalName string `json:"professional_name"`
	Appointments     int    `json:"appointments"`
}
