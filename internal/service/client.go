package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"salon/internal/domain"
	"salon/internal/repository"
	"salon/pkg/validator"
)

const (
	defaultClientPageSize = 20
	maxClientPageSize     = 100
)

// ClientServiceImpl reads the client aggregate kept up to date by the
// booking recorder. It never rebuilds it from appointments.
type ClientServiceImpl struct {
	clients      repository.ClientRepository
	appointments repository.AppointmentRepository
	logger       *zap.Logger
}

func NewClientService(clients repository.ClientRepository, appointments repository.AppointmentRepository, logger *zap.Logger) *ClientServiceImpl {
	return &ClientServiceImpl{
		clients:      clients,
		appointments: appointments,
		logger:       logger,
	}
}

func (s *ClientServiceImpl) List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultClientPageSize
	}
	if filter.Limit > maxClientPageSize {
		filter.Limit = maxClientPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	clients, total, err := s.clients.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list clients", zap.Error(err))
		return nil, 0, err
	}

	return clients, total, nil
}

// GetByPhone returns the client with the appointment history in the order
// the bookings were made.
func (s *ClientServiceImpl) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	normalized := validator.NormalizePhone(phone)
	if normalized == "" {
		return nil, fmt.Errorf("client %q: %w", phone, domain.ErrNotFound)
	}

	client, err := s.clients.FindByPhone(ctx, normalized)
	if err != nil {
		return nil, err
	}

	history, err := s.appointments.ListByPhone(ctx, normalized)
	if err != nil {
		s.logger.Error("failed to load client history", zap.String("phone", normalized), zap.Error(err))
		return nil, err
	}
	client.Appointments = history

	return client, nil
}
