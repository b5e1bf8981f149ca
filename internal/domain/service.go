package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a salon offering (haircut, manicure, ...), not to be confused
// with the application service layer.
type Service struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Duration       int             `json:"duration"`
	Category       string          `json:"category"`
	ProfessionalID *string         `json:"professional_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type CreateServiceDTO struct {
	Name           string          `json:"name" binding:"required,min=2"`
	Price          decimal.Decimal `json:"price" binding:"required"`
	Duration       int             `json:"duration" binding:"required,min=1"`
	Category       string          `json:"category"`
	ProfessionalID *string         `json:"professional_id" binding:"omitempty,uuid"`
}

type UpdateServiceDTO struct {
	Name           *string          `json:"name" binding:"omitempty,min=2"`
	Price          *decimal.Decimal `json:"price"`
	Duration       *int             `json:"duration" binding:"omitempty,min=1"`
	Category       *string          `json:"category"`
	ProfessionalID *string          `json:"professional_id" binding:"omitempty,uuid"`
}

type ServiceFilter struct {
	ProfessionalID *string `json:"professional_id"`
	Category       *string `json:"category"`
}
