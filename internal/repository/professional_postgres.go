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

type ProfessionalRepo struct {
	pgConn
}

func NewProfessionalRepository(db *pgxpool.Pool) *ProfessionalRepo {
	return &ProfessionalRepo{pgConn{db: db}}
}

const professionalColumns = `
	p.id, p.name, p.specialty, p.photo_url, p.available_days, p.hours_start, p.hours_end,
	COALESCE(array_agg(ps.service_id::text ORDER BY ps.service_id) FILTER (WHERE ps.service_id IS NOT NULL), '{}') AS service_ids,
	p.created_at, p.updated_at
`

func scanProfessional(row pgx.Row) (*domain.Professional, error) {
	var p domain.Professional
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Specialty,
		&p.PhotoURL,
		&p.AvailableDays,
		&p.AvailableHours.Start,
		&p.AvailableHours.End,
		&p.ServiceIDs,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfessionalRepo) Create(ctx context.Context, p domain.Professional) error {
	return r.inTx(ctx, func(ctx context.Context) error {
		query := `
			INSERT INTO professionals (id, name, specialty, photo_url, available_days, hours_start, hours_end, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		`
		_, err := r.q(ctx).Exec(ctx, query,
			p.ID,
			p.Name,
			p.Specialty,
			p.PhotoURL,
			p.AvailableDays,
			p.AvailableHours.Start,
			p.AvailableHours.End,
			p.CreatedAt,
		)
		if err != nil {
			if isCheckViolation(err) {
				return fmt.Errorf("professional %s: %w", p.ID, domain.ErrInvalidInput)
			}
			return fmt.Errorf("failed to create professional: %w", err)
		}

		return r.replaceServices(ctx, p.ID, p.ServiceIDs)
	})
}

func (r *ProfessionalRepo) replaceServices(ctx context.Context, professionalID string, serviceIDs []string) error {
	_, err := r.q(ctx).Exec(ctx, "DELETE FROM professional_services WHERE professional_id = $1", professionalID)
	if err != nil {
		return fmt.Errorf("failed to clear professional services: %w", err)
	}

	for _, serviceID := range serviceIDs {
		_, err := r.q(ctx).Exec(ctx,
			"INSERT INTO professional_services (professional_id, service_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			professionalID, serviceID,
		)
		if err != nil {
			if isForeignKeyViolation(err) || isInvalidID(err) {
				return fmt.Errorf("service %s: %w", serviceID, domain.ErrInvalidInput)
			}
			return fmt.Errorf("failed to link service to professional: %w", err)
		}
	}

	return nil
}

func (r *ProfessionalRepo) GetByID(ctx context.Context, id string) (*domain.Professional, error) {
	query := `
		SELECT ` + professionalColumns + `
		FROM professionals p
		LEFT JOIN professional_services ps ON ps.professional_id = p.id
		WHERE p.id = $1
		GROUP BY p.id
	`

	p, err := scanProfessional(r.q(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, fmt.Errorf("professional %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}

	return p, nil
}

func (r *ProfessionalRepo) Update(ctx context.Context, id string, dto domain.UpdateProfessionalDTO) error {
	return r.inTx(ctx, func(ctx context.Context) error {
		var setClauses []string
		var args []interface{}
		argIndex := 1

		if dto.Name != nil {
			setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIndex))
			args = append(args, *dto.Name)
			argIndex++
		}

		if dto.Specialty != nil {
			setClauses = append(setClauses, fmt.Sprintf("specialty = $%d", argIndex))
			args = append(args, *dto.Specialty)
			argIndex++
		}

		if dto.AvailableDays != nil {
			setClauses = append(setClauses, fmt.Sprintf("available_days = $%d", argIndex))
			args = append(args, *dto.AvailableDays)
			argIndex++
		}

		if dto.AvailableHours != nil {
			setClauses = append(setClauses, fmt.Sprintf("hours_start = $%d, hours_end = $%d", argIndex, argIndex+1))
			args = append(args, dto.AvailableHours.Start, dto.AvailableHours.End)
			argIndex += 2
		}

		setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argIndex))
		args = append(args, time.Now())
		argIndex++

		query := "UPDATE professionals SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", argIndex)
		args = append(args, id)

		tag, err := r.q(ctx).Exec(ctx, query, args...)
		if err != nil {
			if isCheckViolation(err) {
				return fmt.Errorf("professional %s: %w", id, domain.ErrInvalidInput)
			}
			if isInvalidID(err) {
				return fmt.Errorf("professional %s: %w", id, domain.ErrNotFound)
			}
			return fmt.Errorf("failed to update professional: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("professional %s: %w", id, domain.ErrNotFound)
		}

		if dto.ServiceIDs != nil {
			return r.replaceServices(ctx, id, *dto.ServiceIDs)
		}

		return nil
	})
}

func (r *ProfessionalRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q(ctx).Exec(ctx, "DELETE FROM professionals WHERE id = $1", id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("professional %s: %w", id, domain.ErrProfessionalInUse)
		}
		if isInvalidID(err) {
			return fmt.Errorf("professional %s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to delete professional: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("professional %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *ProfessionalRepo) List(ctx context.Context) ([]domain.Professional, error) {
	query := `
		SELECT ` + professionalColumns + `
		FROM professionals p
		LEFT JOIN professional_services ps ON ps.professional_id = p.id
		GROUP BY p.id
		ORDER BY p.name, p.id
	`

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	defer rows.Close()

	professionals := make([]domain.Professional, 0)
	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan professional: %w", err)
		}
		professionals = append(professionals, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read professionals: %w", err)
	}

	return professionals, nil
}

func (r *ProfessionalRepo) UpdatePhoto(ctx context.Context, id, photoURL string) error {
	tag, err := r.q(ctx).Exec(ctx,
		"UPDATE professionals SET photo_url = $1, updated_at = $2 WHERE id = $3",
		photoURL, time.Now(), id,
	)
	if err != nil {
		if isInvalidID(err) {
			return fmt.Errorf("professional %s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to update professional photo: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("professional %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *ProfessionalRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q(ctx).QueryRow(ctx, "SELECT COUNT(*) FROM professionals").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count professionals: %w", err)
	}
	return count, nil
}
