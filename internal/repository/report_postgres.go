package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"salon/internal/domain"
)

type ReportRepo struct {
	pgConn
}

func NewReportRepository(db *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pgConn{db: db}}
}

func (r *ReportRepo) StatusCounts(ctx context.Context) (map[domain.AppointmentStatus]int, error) {
	rows, err := r.q(ctx).Query(ctx, "SELECT status, COUNT(*) FROM appointments GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.AppointmentStatus]int)
	for rows.Next() {
		var status domain.AppointmentStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read status counts: %w", err)
	}

	return counts, nil
}

func (r *ReportRepo) RevenueByStatus(ctx context.Context, status domain.AppointmentStatus) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(s.price), 0)
		FROM appointments a
		JOIN services s ON s.id = a.service_id
		WHERE a.status = $1
	`

	var revenue decimal.Decimal
	if err := r.q(ctx).QueryRow(ctx, query, status).Scan(&revenue); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return revenue, nil
}

func (r *ReportRepo) MonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenue, error) {
	query := `
		SELECT to_char(a.appointment_date, 'YYYY-MM') AS month, COALESCE(SUM(s.price), 0)
		FROM appointments a
		JOIN services s ON s.id = a.service_id
		WHERE a.status != 'cancelled'
		GROUP BY month
		ORDER BY month
	`

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly revenue: %w", err)
	}
	defer rows.Close()

	months := make([]domain.MonthlyRevenue, 0)
	for rows.Next() {
		var m domain.MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan monthly revenue: %w", err)
		}
		months = append(months, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read monthly revenue: %w", err)
	}

	return months, nil
}

func (r *ReportRepo) AppointmentsByProfessional(ctx context.Context) ([]domain.ProfessionalLoad, error) {
	query := `
		SELECT p.id::text, p.name, COUNT(a.id)
		FROM professionals p
		LEFT JOIN appointments a ON a.professional_id = p.id AND a.status != 'cancelled'
		GROUP BY p.id, p.name
		ORDER BY COUNT(a.id) DESC, p.name
	`

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments by professional: %w", err)
	}
	defer rows.Close()

	loads := make([]domain.ProfessionalLoad, 0)
	for rows.Next() {
		var l domain.ProfessionalLoad
		if err := rows.Scan(&l.ProfessionalID, &l.ProfessionalName, &l.Appointments); err != nil {
			return nil, fmt.Errorf("failed to scan professional load: %w", err)
		}
		loads = append(loads, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read professional load: %w", err)
	}

	return loads, nil
}
