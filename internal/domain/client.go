package domain

import (
	"time"
)

// Client is the per-phone rollup maintained by the booking recorder.
type Client struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Phone        string        `json:"phone"`
	TotalVisits  int           `json:"total_visits"`
	LastVisit    string        `json:"last_visit"`
	Appointments []Appointment `json:"appointments,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type ClientFilter struct {
	Search string `json:"search"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}
