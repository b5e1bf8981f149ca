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

type ClientRepo struct {
	pgConn
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{pgConn{db: db}}
}

const clientColumns = `id::text, name, phone, total_visits, COALESCE(to_char(last_visit, 'YYYY-MM-DD'), ''), created_at, updated_at`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.TotalVisits,
		&c.LastVisit,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepo) FindByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	c, err := scanClient(r.q(ctx).QueryRow(ctx, "SELECT "+clientColumns+" FROM clients WHERE phone = $1", phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("client %s: %w", phone, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

func (r *ClientRepo) Upsert(ctx context.Context, c domain.Client) (*domain.Client, error) {
	query := `
		INSERT INTO clients (id, name, phone, total_visits, last_visit, created_at, updated_at)
		VALUES ($1, $2, $3, 1, $4::date, $5, $5)
		ON CONFLICT (phone) DO UPDATE
		SET total_visits = clients.total_visits + 1,
		    last_visit = EXCLUDED.last_visit,
		    updated_at = EXCLUDED.updated_at
		RETURNING ` + clientColumns

	now := c.UpdatedAt
	if now.IsZero() {
		now = time.Now()
	}

	saved, err := scanClient(r.q(ctx).QueryRow(ctx, query, c.ID, c.Name, c.Phone, c.LastVisit, now))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert client: %w", err)
	}

	return saved, nil
}

func (r *ClientRepo) List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, int, error) {
	var conditions []string
	var args []interface{}
	argCount := 1

	if search := strings.TrimSpace(filter.Search); search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR phone LIKE $%d)", argCount, argCount))
		args = append(args, "%"+escapeLike(search)+"%")
		argCount++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.q(ctx).QueryRow(ctx, "SELECT COUNT(*) FROM clients"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	query := "SELECT " + clientColumns + " FROM clients" + where + " ORDER BY last_visit DESC NULLS LAST, name, id"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read clients: %w", err)
	}

	return clients, total, nil
}

func (r *ClientRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q(ctx).QueryRow(ctx, "SELECT COUNT(*) FROM clients").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
