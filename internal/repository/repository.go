package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"salon/internal/domain"
)

type Repositories struct {
	Professional ProfessionalRepository
	Service      ServiceRepository
	Appointment  AppointmentRepository
	Client       ClientRepository
	Settings     SettingsRepository
	Report       ReportRepository
	Transactor   Transactor
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Professional: NewProfessionalRepository(db),
		Service:      NewServiceRepository(db),
		Appointment:  NewAppointmentRepository(db),
		Client:       NewClientRepository(db),
		Settings:     NewSettingsRepository(db),
		Report:       NewReportRepository(db),
		Transactor:   NewTransactor(db),
	}
}

// Transactor runs fn inside a single database transaction. Repository calls
// made with the context passed to fn join that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ProfessionalRepository interface {
	Create(ctx context.Context, professional domain.Professional) error
	GetByID(ctx context.Context, id string) (*domain.Professional, error)
	Update(ctx context.Context, id string, dto domain.UpdateProfessionalDTO) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Professional, error)
	UpdatePhoto(ctx context.Context, id, photoURL string) error
	Count(ctx context.Context) (int, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, service domain.Service) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	Update(ctx context.Context, id string, dto domain.UpdateServiceDTO) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error)
}

type AppointmentRepository interface {
	// Create fails with domain.ErrSlotTaken when another confirmed or
	// completed appointment already holds the slot.
	Create(ctx context.Context, appointment domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	ExistsActive(ctx context.Context, professionalID, date, time string) (bool, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	// ListByPhone returns a client's appointments in insertion order.
	ListByPhone(ctx context.Context, phone string) ([]domain.Appointment, error)
}

type ClientRepository interface {
	FindByPhone(ctx context.Context, phone string) (*domain.Client, error)
	// Upsert records one visit: a new phone creates the client with one
	// visit, a known phone gets its count incremented and last visit
	// overwritten. The stored name is kept for known phones.
	Upsert(ctx context.Context, client domain.Client) (*domain.Client, error)
	List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, int, error)
	Count(ctx context.Context) (int, error)
}

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SalonSettings, error)
	Update(ctx context.Context, dto domain.UpdateSettingsDTO) error
}

type ReportRepository interface {
	StatusCounts(ctx context.Context) (map[domain.AppointmentStatus]int, error)
	RevenueByStatus(ctx context.Context, status domain.AppointmentStatus) (decimal.Decimal, error)
	MonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenue, error)
	AppointmentsByProfessional(ctx context.Context) ([]domain.ProfessionalLoad, error)
}
