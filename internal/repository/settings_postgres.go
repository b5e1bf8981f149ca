package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon/internal/domain"
)

type SettingsRepo struct {
	pgConn
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{pgConn{db: db}}
}

func (r *SettingsRepo) Get(ctx context.Context) (*domain.SalonSettings, error) {
	query := `
		SELECT name, description, whatsapp, cover_photo, opening_start, opening_end, working_days, updated_at
		FROM salon_settings
		WHERE id = 1
	`

	var s domain.SalonSettings
	err := r.q(ctx).QueryRow(ctx, query).Scan(
		&s.Name,
		&s.Description,
		&s.WhatsApp,
		&s.CoverPhoto,
		&s.OpeningHours.Start,
		&s.OpeningHours.End,
		&s.WorkingDays,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("salon settings: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get salon settings: %w", err)
	}

	return &s, nil
}

func (r *SettingsRepo) Update(ctx context.Context, dto domain.UpdateSettingsDTO) error {
	var setClauses []string
	var args []interface{}
	argIndex := 1

	if dto.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIndex))
		args = append(args, *dto.Name)
		argIndex++
	}

	if dto.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argIndex))
		args = append(args, *dto.Description)
		argIndex++
	}

	if dto.WhatsApp != nil {
		setClauses = append(setClauses, fmt.Sprintf("whatsapp = $%d", argIndex))
		args = append(args, *dto.WhatsApp)
		argIndex++
	}

	if dto.CoverPhoto != nil {
		setClauses = append(setClauses, fmt.Sprintf("cover_photo = $%d", argIndex))
		args = append(args, *dto.CoverPhoto)
		argIndex++
	}

	if dto.OpeningHours != nil {
		setClauses = append(setClauses, fmt.Sprintf("opening_start = $%d, opening_end = $%d", argIndex, argIndex+1))
		args = append(args, dto.OpeningHours.Start, dto.OpeningHours.End)
		argIndex += 2
	}

	if dto.WorkingDays != nil {
		setClauses = append(setClauses, fmt.Sprintf("working_days = $%d", argIndex))
		args = append(args, *dto.WorkingDays)
		argIndex++
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argIndex))
	args = append(args, time.Now())

	query := "UPDATE salon_settings SET " + strings.Join(setClauses, ", ") + " WHERE id = 1"

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("salon settings: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("failed to update salon settings: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("salon settings: %w", domain.ErrNotFound)
	}

	return nil
}
