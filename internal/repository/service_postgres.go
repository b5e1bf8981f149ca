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

type ServiceRepo struct {
	pgConn
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepo {
	return &ServiceRepo{pgConn{db: db}}
}

const serviceColumns = `id, name, price, duration, category, professional_id::text, created_at, updated_at`

func scanService(row pgx.Row) (*domain.Service, error) {
	var s domain.Service
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Price,
		&s.Duration,
		&s.Category,
		&s.ProfessionalID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepo) Create(ctx context.Context, s domain.Service) error {
	query := `
		INSERT INTO services (id, name, price, duration, category, professional_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	`

	_, err := r.q(ctx).Exec(ctx, query,
		s.ID,
		s.Name,
		s.Price,
		s.Duration,
		s.Category,
		s.ProfessionalID,
		s.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) || isCheckViolation(err) || isInvalidID(err) {
			return fmt.Errorf("service %s: %w", s.ID, domain.ErrInvalidInput)
		}
		return fmt.Errorf("failed to create service: %w", err)
	}

	return nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	query := "SELECT " + serviceColumns + " FROM services WHERE id = $1"

	s, err := scanService(r.q(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return s, nil
}

func (r *ServiceRepo) Update(ctx context.Context, id string, dto domain.UpdateServiceDTO) error {
	var setClauses []string
	var args []interface{}
	argIndex := 1

	if dto.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIndex))
		args = append(args, *dto.Name)
		argIndex++
	}

	if dto.Price != nil {
		setClauses = append(setClauses, fmt.Sprintf("price = $%d", argIndex))
		args = append(args, *dto.Price)
		argIndex++
	}

	if dto.Duration != nil {
		setClauses = append(setClauses, fmt.Sprintf("duration = $%d", argIndex))
		args = append(args, *dto.Duration)
		argIndex++
	}

	if dto.Category != nil {
		setClauses = append(setClauses, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, *dto.Category)
		argIndex++
	}

	if dto.ProfessionalID != nil {
		setClauses = append(setClauses, fmt.Sprintf("professional_id = NULLIF($%d, '')::uuid", argIndex))
		args = append(args, *dto.ProfessionalID)
		argIndex++
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argIndex))
	args = append(args, time.Now())
	argIndex++

	query := "UPDATE services SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", argIndex)
	args = append(args, id)

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) || isCheckViolation(err) {
			return fmt.Errorf("service %s: %w", id, domain.ErrInvalidInput)
		}
		if isInvalidID(err) {
			return fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to update service: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q(ctx).Exec(ctx, "DELETE FROM services WHERE id = $1", id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("service %s: %w", id, domain.ErrServiceInUse)
		}
		if isInvalidID(err) {
			return fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to delete service: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *ServiceRepo) List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error) {
	query := "SELECT " + serviceColumns + " FROM services"

	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.ProfessionalID != nil {
		conditions = append(conditions, fmt.Sprintf(
			"(professional_id = $%d::uuid OR id IN (SELECT service_id FROM professional_services WHERE professional_id = $%d::uuid))",
			argCount, argCount,
		))
		args = append(args, *filter.ProfessionalID)
		argCount++
	}

	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *filter.Category)
		argCount++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY category, name, id"

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		if isInvalidID(err) {
			return []domain.Service{}, nil
		}
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, *s)
	}

	if err := rows.Err(); err != nil {
		if isInvalidID(err) {
			return []domain.Service{}, nil
		}
		return nil, fmt.Errorf("failed to read services: %w", err)
	}

	return services, nil
}
