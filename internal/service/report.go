package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"salon/internal/domain"
	"salon/internal/repository"
	"salon/pkg/validator"
)

var exportHeader = []string{"Date", "Client", "Service", "Professional", "Price", "Status"}

type ReportServiceImpl struct {
	reports       repository.ReportRepository
	appointments  repository.AppointmentRepository
	clients       repository.ClientRepository
	professionals repository.ProfessionalRepository
	opts          BookingOptions
	logger        *zap.Logger
}

func NewReportService(
	reports repository.ReportRepository,
	appointments repository.AppointmentRepository,
	clients repository.ClientRepository,
	professionals repository.ProfessionalRepository,
	opts BookingOptions,
	logger *zap.Logger,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		reports:       reports,
		appointments:  appointments,
		clients:       clients,
		professionals: professionals,
		opts:          opts.withDefaults(),
		logger:        logger,
	}
}

func (s *ReportServiceImpl) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	today := s.opts.today()
	cancelled := domain.AppointmentStatusCancelled

	todays, err := s.appointments.List(ctx, domain.AppointmentFilter{
		Date:          &today,
		ExcludeStatus: &cancelled,
	})
	if err != nil {
		s.logger.Error("failed to load today's appointments", zap.String("date", today), zap.Error(err))
		return nil, err
	}

	counts, err := s.reports.StatusCounts(ctx)
	if err != nil {
		s.logger.Error("failed to count appointments", zap.Error(err))
		return nil, err
	}

	clientCount, err := s.clients.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count clients", zap.Error(err))
		return nil, err
	}

	professionalCount, err := s.professionals.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count professionals", zap.Error(err))
		return nil, err
	}

	revenue, err := s.reports.RevenueByStatus(ctx, domain.AppointmentStatusConfirmed)
	if err != nil {
		s.logger.Error("failed to sum confirmed revenue", zap.Error(err))
		return nil, err
	}

	return &domain.DashboardStats{
		Today:             today,
		TodayAppointments: todays,
		ConfirmedCount:    counts[domain.AppointmentStatusConfirmed],
		CancelledCount:    counts[domain.AppointmentStatusCancelled],
		ClientCount:       clientCount,
		ProfessionalCount: professionalCount,
		ConfirmedRevenue:  revenue,
	}, nil
}

// MonthlyRevenue sums service prices of non-cancelled appointments per
// calendar month, oldest first.
func (s *ReportServiceImpl) MonthlyRevenue(ctx context.Context) (*domain.RevenueReport, error) {
	months, err := s.reports.MonthlyRevenue(ctx)
	if err != nil {
		s.logger.Error("failed to aggregate monthly revenue", zap.Error(err))
		return nil, err
	}

	counts, err := s.reports.StatusCounts(ctx)
	if err != nil {
		s.logger.Error("failed to count appointments", zap.Error(err))
		return nil, err
	}

	total := decimal.Zero
	for _, m := range months {
		total = total.Add(m.Revenue)
	}

	return &domain.RevenueReport{
		Months:            months,
		TotalRevenue:      total,
		TotalAppointments: counts[domain.AppointmentStatusConfirmed] + counts[domain.AppointmentStatusCompleted],
	}, nil
}

func (s *ReportServiceImpl) ByProfessional(ctx context.Context) ([]domain.ProfessionalLoad, error) {
	loads, err := s.reports.AppointmentsByProfessional(ctx)
	if err != nil {
		s.logger.Error("failed to aggregate appointments by professional", zap.Error(err))
		return nil, err
	}
	return loads, nil
}

// ExportCSV writes every appointment, cancelled ones included, as CSV.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, w io.Writer) error {
	appointments, err := s.appointments.List(ctx, domain.AppointmentFilter{})
	if err != nil {
		s.logger.Error("failed to load appointments for export", zap.Error(err))
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, a := range appointments {
		price := ""
		if a.ServicePrice != nil {
			price = a.ServicePrice.StringFixed(2)
		}

		record := []string{
			a.Date,
			validator.SanitizeCell(a.ClientName),
			validator.SanitizeCell(a.ServiceName),
			validator.SanitizeCell(a.ProfessionalName),
			price,
			string(a.Status),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}
