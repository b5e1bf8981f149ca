package service

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"salon/config"
	"salon/internal/domain"
	"salon/internal/repository"
	"salon/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
	Notifier    AppointmentNotifier
	// Now defaults to time.Now.
	Now func() time.Time
}

type Services struct {
	Booking      BookingService
	Professional ProfessionalService
	Catalog      CatalogService
	Settings     SettingsService
	Client       ClientService
	Agenda       AgendaService
	Report       ReportService
}

func NewServices(deps Deps) *Services {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	notifier := deps.Notifier
	if notifier == nil {
		notifier = noopNotifier{}
	}

	booking := BookingOptions{
		Interval: deps.Config.Booking.SlotIntervalMinutes,
		Location: deps.Config.Booking.Location,
		Now:      now,
	}

	return &Services{
		Booking: NewBookingService(
			deps.Repos.Professional,
			deps.Repos.Appointment,
			deps.Repos.Client,
			deps.Repos.Transactor,
			notifier,
			booking,
			deps.Logger,
		),
		Professional: NewProfessionalService(deps.Repos.Professional, deps.FileStorage, deps.Logger),
		Catalog:      NewCatalogService(deps.Repos.Service, deps.Logger),
		Settings:     NewSettingsService(deps.Repos.Settings, deps.FileStorage, deps.Logger),
		Client:       NewClientService(deps.Repos.Client, deps.Repos.Appointment, deps.Logger),
		Agenda:       NewAgendaService(deps.Repos.Appointment, deps.Logger),
		Report: NewReportService(
			deps.Repos.Report,
			deps.Repos.Appointment,
			deps.Repos.Client,
			deps.Repos.Professional,
			booking,
			deps.Logger,
		),
	}
}

// AppointmentNotifier receives booking lifecycle events after they commit.
type AppointmentNotifier interface {
	Publish(event domain.AppointmentEvent)
}

type noopNotifier struct{}

func (noopNotifier) Publish(domain.AppointmentEvent) {}

type BookingService interface {
	AvailableSlots(ctx context.Context, professionalID, date string) ([]string, error)
	IsBooked(ctx context.Context, professionalID, date, slot string) (bool, error)
	SlotBoard(ctx context.Context, professionalID, date string) ([]domain.SlotView, error)
	IsDateSelectable(ctx context.Context, professionalID, date string) (bool, error)
	MonthAvailability(ctx context.Context, professionalID string, year, month int) (*domain.MonthAvailability, error)
	RecordAppointment(ctx context.Context, dto domain.BookAppointmentDTO) (*domain.Appointment, error)
	CancelAppointment(ctx context.Context, id string) error
	CompleteAppointment(ctx context.Context, id string) error
}

type ProfessionalService interface {
	Create(ctx context.Context, dto domain.CreateProfessionalDTO) (*domain.Professional, error)
	GetByID(ctx context.Context, id string) (*domain.Professional, error)
	Update(ctx context.Context, id string, dto domain.UpdateProfessionalDTO) (*domain.Professional, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Professional, error)

	UploadPhoto(ctx context.Context, id string, photo []byte, filename string) (string, error)
	DeletePhoto(ctx context.Context, id string) error
}

type CatalogService interface {
	Create(ctx context.Context, dto domain.CreateServiceDTO) (*domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	Update(ctx context.Context, id string, dto domain.UpdateServiceDTO) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.SalonSettings, error)
	Update(ctx context.Context, dto domain.UpdateSettingsDTO) (*domain.SalonSettings, error)
	UploadCover(ctx context.Context, photo []byte, filename string) (string, error)
}

type ClientService interface {
	List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, int, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)
}

type AgendaService interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
}

type ReportService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	MonthlyRevenue(ctx context.Context) (*domain.RevenueReport, error)
	ByProfessional(ctx context.Context) ([]domain.ProfessionalLoad, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}
