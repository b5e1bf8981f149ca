package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salon/internal/domain"
	"salon/internal/repository"
)

// CatalogServiceImpl manages the salon's service menu.
type CatalogServiceImpl struct {
	repo   repository.ServiceRepository
	logger *zap.Logger
}

func NewCatalogService(repo repository.ServiceRepository, logger *zap.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *CatalogServiceImpl) Create(ctx context.Context, dto domain.CreateServiceDTO) (*domain.Service, error) {
	if dto.Price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative: %w", domain.ErrInvalidInput)
	}
	if dto.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive: %w", domain.ErrInvalidInput)
	}

	svc := domain.Service{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(dto.Name),
		Price:          dto.Price,
		Duration:       dto.Duration,
		Category:       strings.TrimSpace(dto.Category),
		ProfessionalID: optionalID(dto.ProfessionalID),
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		if !errors.Is(err, domain.ErrInvalidInput) {
			s.logger.Error("failed to create service", zap.String("name", svc.Name), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("service created", zap.String("service_id", svc.ID))

	return s.repo.GetByID(ctx, svc.ID)
}

func (s *CatalogServiceImpl) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateServiceDTO) (*domain.Service, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}
	if dto.Price != nil && dto.Price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative: %w", domain.ErrInvalidInput)
	}
	if dto.Duration != nil && *dto.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive: %w", domain.ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrInvalidInput) {
			s.logger.Error("failed to update service", zap.String("service_id", id), zap.Error(err))
		}
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *CatalogServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrServiceInUse) {
			s.logger.Error("failed to delete service", zap.String("service_id", id), zap.Error(err))
		}
		return err
	}

	s.logger.Info("service deleted", zap.String("service_id", id))
	return nil
}

func (s *CatalogServiceImpl) List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error) {
	if filter.ProfessionalID != nil {
		if _, err := uuid.Parse(*filter.ProfessionalID); err != nil {
			return []domain.Service{}, nil
		}
	}

	services, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list services", zap.Error(err))
		return nil, err
	}
	return services, nil
}

func optionalID(id *string) *string {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil
	}
	return id
}
