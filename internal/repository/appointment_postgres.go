package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"salon/internal/domain"
)

type AppointmentRepo struct {
	pgConn
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{pgConn{db: db}}
}

const appointmentSelect = `
	SELECT a.id, a.client_name, a.client_phone, a.service_id::text, a.professional_id::text,
	       to_char(a.appointment_date, 'YYYY-MM-DD'), a.appointment_time, a.status, a.created_at, a.updated_at,
	       s.name, s.price, p.name
	FROM appointments a
	JOIN services s ON s.id = a.service_id
	JOIN professionals p ON p.id = a.professional_id
`

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var a domain.Appointment
	var price decimal.Decimal

	err := row.Scan(
		&a.ID,
		&a.ClientName,
		&a.ClientPhone,
		&a.ServiceID,
		&a.ProfessionalID,
		&a.Date,
		&a.Time,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.ServiceName,
		&price,
		&a.ProfessionalName,
	)
	if err != nil {
		return nil, err
	}

	a.ServicePrice = &price
	return &a, nil
}

func (r *AppointmentRepo) Create(ctx context.Context, a domain.Appointment) error {
	query := `
		INSERT INTO appointments (id, client_name, client_phone, service_id, professional_id, appointment_date, appointment_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8, $9, $9)
	`

	_, err := r.q(ctx).Exec(ctx, query,
		a.ID,
		a.ClientName,
		a.ClientPhone,
		a.ServiceID,
		a.ProfessionalID,
		a.Date,
		a.Time,
		a.Status,
		a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("professional %s at %s %s: %w", a.ProfessionalID, a.Date, a.Time, domain.ErrSlotTaken)
		}
		if isForeignKeyViolation(err) || isInvalidID(err) || isCheckViolation(err) {
			return fmt.Errorf("appointment %s: %w", a.ID, domain.ErrInvalidInput)
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	return nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	a, err := scanAppointment(r.q(ctx).QueryRow(ctx, appointmentSelect+" WHERE a.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, fmt.Errorf("appointment %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return a, nil
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	tag, err := r.q(ctx).Exec(ctx,
		"UPDATE appointments SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now(), id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("appointment %s: %w", id, domain.ErrSlotTaken)
		}
		if isInvalidID(err) {
			return fmt.Errorf("appointment %s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("appointment %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *AppointmentRepo) ExistsActive(ctx context.Context, professionalID, date, slot string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE professional_id = $1
			  AND appointment_date = $2::date
			  AND appointment_time = $3
			  AND status != 'cancelled'
		)
	`

	var exists bool
	if err := r.q(ctx).QueryRow(ctx, query, professionalID, date, slot).Scan(&exists); err != nil {
		if isInvalidID(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check slot: %w", err)
	}

	return exists, nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.ProfessionalID != nil {
		conditions = append(conditions, fmt.Sprintf("a.professional_id = $%d::uuid", argCount))
		args = append(args, *filter.ProfessionalID)
		argCount++
	}

	if filter.Phone != nil {
		conditions = append(conditions, fmt.Sprintf("a.client_phone = $%d", argCount))
		args = append(args, *filter.Phone)
		argCount++
	}

	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("a.appointment_date = $%d::date", argCount))
		args = append(args, *filter.Date)
		argCount++
	}

	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("a.appointment_date >= $%d::date", argCount))
		args = append(args, *filter.DateFrom)
		argCount++
	}

	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("a.appointment_date <= $%d::date", argCount))
		args = append(args, *filter.DateTo)
		argCount++
	}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argCount))
		args = append(args, *filter.Status)
		argCount++
	}

	if filter.ExcludeStatus != nil {
		conditions = append(conditions, fmt.Sprintf("a.status != $%d", argCount))
		args = append(args, *filter.ExcludeStatus)
		argCount++
	}

	query := appointmentSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.appointment_date, a.appointment_time, a.created_at"

	return r.query(ctx, query, args...)
}

// appointmentsByPhone lists a client's history in insertion order.
const appointmentsByPhone = appointmentSelect + " WHERE a.client_phone = $1 ORDER BY a.seq"

func (r *AppointmentRepo) ListByPhone(ctx context.Context, phone string) ([]domain.Appointment, error) {
	return r.query(ctx, appointmentsByPhone, phone)
}

func (r *AppointmentRepo) query(ctx context.Context, query string, args ...interface{}) ([]domain.Appointment, error) {
	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		if isInvalidID(err) {
			return []domain.Appointment{}, nil
		}
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, *a)
	}

	if err := rows.Err(); err != nil {
		if isInvalidID(err) {
			return []domain.Appointment{}, nil
		}
		return nil, fmt.Errorf("failed to read appointments: %w", err)
	}

	return appointments, nil
}
