package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"salon/internal/domain"
	"salon/internal/repository"
	"salon/internal/storage"
)

const coverPhotoFolder = "salon"

type SettingsServiceImpl struct {
	repo        repository.SettingsRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewSettingsService(repo repository.SettingsRepository, fileStorage storage.FileStorage, logger *zap.Logger) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		repo:        repo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *SettingsServiceImpl) Get(ctx context.Context) (*domain.SalonSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error("failed to load salon settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

func (s *SettingsServiceImpl) Update(ctx context.Context, dto domain.UpdateSettingsDTO) (*domain.SalonSettings, error) {
	if dto.OpeningHours != nil || dto.WorkingDays != nil {
		current, err := s.Get(ctx)
		if err != nil {
			return nil, err
		}

		days := current.WorkingDays
		if dto.WorkingDays != nil {
			normalized := normalizeDays(*dto.WorkingDays)
			dto.WorkingDays = &normalized
			days = normalized
		}
		hours := current.OpeningHours
		if dto.OpeningHours != nil {
			hours = *dto.OpeningHours
		}
		if err := validateSchedule(days, hours); err != nil {
			return nil, err
		}
	}

	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return nil, fmt.Errorf("salon name must not be empty: %w", domain.ErrInvalidInput)
		}
		dto.Name = &name
	}

	if err := s.repo.Update(ctx, dto); err != nil {
		s.logger.Error("failed to update salon settings", zap.Error(err))
		return nil, err
	}

	s.logger.Info("salon settings updated")

	return s.Get(ctx)
}

func (s *SettingsServiceImpl) UploadCover(ctx context.Context, photo []byte, filename string) (string, error) {
	if s.fileStorage == nil {
		return "", domain.ErrStorageDisabled
	}

	current, err := s.Get(ctx)
	if err != nil {
		return "", err
	}

	coverURL, err := s.fileStorage.UploadImage(ctx, coverPhotoFolder, photo, filename)
	if err != nil {
		return "", uploadError(err)
	}

	if err := s.repo.Update(ctx, domain.UpdateSettingsDTO{CoverPhoto: &coverURL}); err != nil {
		s.logger.Error("failed to save cover photo", zap.Error(err))
		return "", err
	}

	if current.CoverPhoto != "" {
		if err := s.fileStorage.DeleteFile(ctx, current.CoverPhoto); err != nil {
			s.logger.Warn("failed to delete previous cover photo", zap.String("url", current.CoverPhoto), zap.Error(err))
		}
	}

	return coverURL, nil
}
