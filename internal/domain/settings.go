package domain

import (
	"time"
)

type SalonSettings struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	WhatsApp     string       `json:"whatsapp"`
	CoverPhoto   string       `json:"cover_photo"`
	OpeningHours WorkingHours `json:"opening_hours"`
	WorkingDays  []int        `json:"working_days"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type UpdateSettingsDTO struct {
	Name         *string       `json:"name" binding:"omitempty,min=2"`
	Description  *string       `json:"description"`
	WhatsApp     *string       `json:"whatsapp" binding:"omitempty,phone"`
	CoverPhoto   *string       `json:"cover_photo" binding:"omitempty,url"`
	OpeningHours *WorkingHours `json:"opening_hours"`
	WorkingDays  *[]int        `json:"working_days" binding:"omitempty,dive,min=0,max=6"`
}
