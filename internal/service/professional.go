package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salon/internal/availability"
	"salon/internal/domain"
	"salon/internal/repository"
	"salon/internal/storage"
	"salon/pkg/validator"
)

const professionalPhotoFolder = "professionals"

type ProfessionalServiceImpl struct {
	repo        repository.ProfessionalRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewProfessionalService(
	repo repository.ProfessionalRepository,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) *ProfessionalServiceImpl {
	return &ProfessionalServiceImpl{
		repo:        repo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *ProfessionalServiceImpl) Create(ctx context.Context, dto domain.CreateProfessionalDTO) (*domain.Professional, error) {
	if err := validateSchedule(dto.AvailableDays, dto.AvailableHours); err != nil {
		return nil, err
	}

	p := domain.Professional{
		ID:             uuid.NewString(),
		Name:           validator.FormatName(dto.Name),
		Specialty:      strings.TrimSpace(dto.Specialty),
		ServiceIDs:     uniqueStrings(dto.ServiceIDs),
		AvailableDays:  normalizeDays(dto.AvailableDays),
		AvailableHours: dto.AvailableHours,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("failed to create professional", zap.String("name", p.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("professional created", zap.String("professional_id", p.ID))

	return s.repo.GetByID(ctx, p.ID)
}

func (s *ProfessionalServiceImpl) GetByID(ctx context.Context, id string) (*domain.Professional, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("professional %s: %w", id, domain.ErrNotFound)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ProfessionalServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateProfessionalDTO) (*domain.Professional, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	days := current.AvailableDays
	if dto.AvailableDays != nil {
		days = *dto.AvailableDays
	}
	hours := current.AvailableHours
	if dto.AvailableHours != nil {
		hours = *dto.AvailableHours
	}
	if err := validateSchedule(days, hours); err != nil {
		return nil, err
	}

	if dto.Name != nil {
		name := validator.FormatName(*dto.Name)
		dto.Name = &name
	}
	if dto.AvailableDays != nil {
		normalized := normalizeDays(*dto.AvailableDays)
		dto.AvailableDays = &normalized
	}
	if dto.ServiceIDs != nil {
		ids := uniqueStrings(*dto.ServiceIDs)
		dto.ServiceIDs = &ids
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		s.logger.Error("failed to update professional", zap.String("professional_id", id), zap.Error(err))
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *ProfessionalServiceImpl) Delete(ctx context.Context, id string) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrProfessionalInUse) {
			s.logger.Error("failed to delete professional", zap.String("professional_id", id), zap.Error(err))
		}
		return err
	}

	s.removeFile(ctx, p.PhotoURL)
	s.logger.Info("professional deleted", zap.String("professional_id", id))

	return nil
}

func (s *ProfessionalServiceImpl) List(ctx context.Context) ([]domain.Professional, error) {
	professionals, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list professionals", zap.Error(err))
		return nil, err
	}
	return professionals, nil
}

func (s *ProfessionalServiceImpl) UploadPhoto(ctx context.Context, id string, photo []byte, filename string) (string, error) {
	if s.fileStorage == nil {
		return "", domain.ErrStorageDisabled
	}

	p, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	photoURL, err := s.fileStorage.UploadImage(ctx, professionalPhotoFolder, photo, filename)
	if err != nil {
		return "", uploadError(err)
	}

	if err := s.repo.UpdatePhoto(ctx, id, photoURL); err != nil {
		s.logger.Error("failed to save professional photo", zap.String("professional_id", id), zap.Error(err))
		s.removeFile(ctx, photoURL)
		return "", err
	}

	s.removeFile(ctx, p.PhotoURL)

	return photoURL, nil
}

func (s *ProfessionalServiceImpl) DeletePhoto(ctx context.Context, id string) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if p.PhotoURL == "" {
		return nil
	}

	if err := s.repo.UpdatePhoto(ctx, id, ""); err != nil {
		s.logger.Error("failed to clear professional photo", zap.String("professional_id", id), zap.Error(err))
		return err
	}

	s.removeFile(ctx, p.PhotoURL)

	return nil
}

// removeFile drops a stored object on a best-effort basis.
func (s *ProfessionalServiceImpl) removeFile(ctx context.Context, fileURL string) {
	if fileURL == "" || s.fileStorage == nil {
		return
	}
	if err := s.fileStorage.DeleteFile(ctx, fileURL); err != nil {
		s.logger.Warn("failed to delete stored file", zap.String("url", fileURL), zap.Error(err))
	}
}

func uploadError(err error) error {
	if errors.Is(err, storage.ErrEmptyFile) || errors.Is(err, storage.ErrNotImage) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return err
}

func validateSchedule(days []int, hours domain.WorkingHours) error {
	if !availability.ValidDays(days) {
		return fmt.Errorf("available days must be within 0..6: %w", domain.ErrInvalidInput)
	}
	if !availability.ValidHours(hours) {
		return fmt.Errorf("working hours %s-%s: %w", hours.Start, hours.End, domain.ErrInvalidInput)
	}
	return nil
}

// normalizeDays sorts the weekday mask and drops duplicates.
func normalizeDays(days []int) []int {
	seen := make(map[int]bool, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
