package domain

import (
	"time"
)

type WorkingHours struct {
	Start string `json:"start" binding:"required,hhmm"`
	End   string `json:"end" binding:"required,hhmm"`
}

type Professional struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Specialty      string       `json:"specialty"`
	PhotoURL       string       `json:"photo"`
	ServiceIDs     []string     `json:"services"`
	AvailableDays  []int        `json:"available_days"`
	AvailableHours WorkingHours `json:"available_hours"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type CreateProfessionalDTO struct {
	Name           string       `json:"name" binding:"required,min=2"`
	Specialty      string       `json:"specialty"`
	ServiceIDs     []string     `json:"services" binding:"omitempty,dive,uuid"`
	AvailableDays  []int        `json:"available_days" binding:"required,min=1,dive,min=0,max=6"`
	AvailableHours WorkingHours `json:"available_hours" binding:"required"`
}

type UpdateProfessionalDTO struct {
	Name           *string       `json:"name" binding:"omitempty,min=2"`
	Specialty      *string       `json:"specialty"`
	ServiceIDs     *[]string     `json:"services" binding:"omitempty,dive,uuid"`
	AvailableDays  *[]int        `json:"available_days" binding:"omitempty,min=1,dive,min=0,max=6"`
	AvailableHours *WorkingHours `json:"available_hours"`
}
