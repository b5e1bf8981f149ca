package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salon/internal/domain"
	"salon/internal/repository"
)

type AgendaServiceImpl struct {
	appointments repository.AppointmentRepository
	logger       *zap.Logger
}

func NewAgendaService(appointments repository.AppointmentRepository, logger *zap.Logger) *AgendaServiceImpl {
	return &AgendaServiceImpl{
		appointments: appointments,
		logger:       logger,
	}
}

// List returns the appointments matching filter ordered by date and time.
func (s *AgendaServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	if filter.ProfessionalID != nil {
		if _, err := uuid.Parse(*filter.ProfessionalID); err != nil {
			return []domain.Appointment{}, nil
		}
	}

	appointments, err := s.appointments.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to load agenda", zap.Error(err))
		return nil, err
	}

	return appointments, nil
}
