package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salon/internal/availability"
	"salon/internal/domain"
	"salon/internal/repository"
	"salon/pkg/validator"
)

type BookingOptions struct {
	Interval int
	Location *time.Location
	Now      func() time.Time
}

func (o BookingOptions) withDefaults() BookingOptions {
	if o.Interval <= 0 {
		o.Interval = availability.DefaultInterval
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

func (o BookingOptions) today() string {
	return availability.Today(o.Now(), o.Location)
}

type BookingServiceImpl struct {
	professionals repository.ProfessionalRepository
	appointments  repository.AppointmentRepository
	clients       repository.ClientRepository
	tx            repository.Transactor
	notifier      AppointmentNotifier
	opts          BookingOptions
	logger        *zap.Logger
}

func NewBookingService(
	professionals repository.ProfessionalRepository,
	appointments repository.AppointmentRepository,
	clients repository.ClientRepository,
	tx repository.Transactor,
	notifier AppointmentNotifier,
	opts BookingOptions,
	logger *zap.Logger,
) *BookingServiceImpl {
	if notifier == nil {
		notifier = noopNotifier{}
	}

	return &BookingServiceImpl{
		professionals: professionals,
		appointments:  appointments,
		clients:       clients,
		tx:            tx,
		notifier:      notifier,
		opts:          opts.withDefaults(),
		logger:        logger,
	}
}

// professional resolves id, treating a malformed or unknown id as absent.
func (s *BookingServiceImpl) professional(ctx context.Context, id string) (*domain.Professional, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	p, err := s.professionals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to load professional", zap.String("professional_id", id), zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (s *BookingServiceImpl) AvailableSlots(ctx context.Context, professionalID, date string) ([]string, error) {
	p, err := s.professional(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return []string{}, nil
	}

	weekday, ok := availability.Weekday(date)
	if !ok || !availability.WorksOn(p.AvailableDays, weekday) {
		return []string{}, nil
	}

	return availability.GenerateSlots(p.AvailableHours.Start, p.AvailableHours.End, s.opts.Interval), nil
}

func (s *BookingServiceImpl) IsBooked(ctx context.Context, professionalID, date, slot string) (bool, error) {
	if _, err := uuid.Parse(professionalID); err != nil {
		return false, nil
	}
	if _, ok := availability.ParseDate(date); !ok {
		return false, nil
	}
	if _, ok := availability.ParseClock(slot); !ok {
		return false, nil
	}

	booked, err := s.appointments.ExistsActive(ctx, professionalID, date, slot)
	if err != nil {
		s.logger.Error("failed to check slot",
			zap.String("professional_id", professionalID),
			zap.String("date", date),
			zap.String("time", slot),
			zap.Error(err),
		)
		return false, err
	}

	return booked, nil
}

// SlotBoard lists every slot of the day with its booked flag. Booked slots
// stay in the list.
func (s *BookingServiceImpl) SlotBoard(ctx context.Context, professionalID, date string) ([]domain.SlotView, error) {
	slots, err := s.AvailableSlots(ctx, professionalID, date)
	if err != nil {
		return nil, err
	}

	board := make([]domain.SlotView, 0, len(slots))
	if len(slots) == 0 {
		return board, nil
	}

	cancelled := domain.AppointmentStatusCancelled
	active, err := s.appointments.List(ctx, domain.AppointmentFilter{
		ProfessionalID: &professionalID,
		Date:           &date,
		ExcludeStatus:  &cancelled,
	})
	if err != nil {
		s.logger.Error("failed to load booked slots",
			zap.String("professional_id", professionalID),
			zap.String("date", date),
			zap.Error(err),
		)
		return nil, err
	}

	taken := make(map[string]bool, len(active))
	for _, a := range active {
		if a.Status.Occupies() {
			taken[a.Time] = true
		}
	}

	for _, slot := range slots {
		board = append(board, domain.SlotView{
			Time:   slot,
			Period: availability.Period(slot),
			Booked: taken[slot],
		})
	}

	return board, nil
}

func (s *BookingServiceImpl) IsDateSelectable(ctx context.Context, professionalID, date string) (bool, error) {
	p, err := s.professional(ctx, professionalID)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, nil
	}

	return availability.DaySelectable(p.AvailableDays, date, s.opts.today()), nil
}

func (s *BookingServiceImpl) MonthAvailability(ctx context.Context, professionalID string, year, month int) (*domain.MonthAvailability, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, fmt.Errorf("month %d-%02d: %w", year, month, domain.ErrInvalidInput)
	}

	p, err := s.professional(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	var days []int
	if p != nil {
		days = p.AvailableDays
	}

	blanks, grid := availability.MonthGrid(days, year, time.Month(month), s.opts.today())

	return &domain.MonthAvailability{
		ProfessionalID: professionalID,
		Year:           year,
		Month:          month,
		LeadingBlanks:  blanks,
		Days:           grid,
	}, nil
}

// RecordAppointment stores a confirmed appointment and folds it into the
// client aggregate in one transaction. It does not look for a conflicting
// appointment first; the store rejects a second active booking of the same
// slot with domain.ErrSlotTaken.
func (s *BookingServiceImpl) RecordAppointment(ctx context.Context, dto domain.BookAppointmentDTO) (*domain.Appointment, error) {
	now := s.opts.Now()

	appointment := domain.Appointment{
		ID:             uuid.NewString(),
		ClientName:     strings.TrimSpace(dto.ClientName),
		ClientPhone:    validator.NormalizePhone(dto.ClientPhone),
		ServiceID:      dto.ServiceID,
		ProfessionalID: dto.ProfessionalID,
		Date:           dto.Date,
		Time:           dto.Time,
		Status:         domain.AppointmentStatusConfirmed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var stored *domain.Appointment
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.appointments.Create(ctx, appointment); err != nil {
			return err
		}

		_, err := s.clients.Upsert(ctx, domain.Client{
			ID:        uuid.NewString(),
			Name:      appointment.ClientName,
			Phone:     appointment.ClientPhone,
			LastVisit: appointment.Date,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}

		stored, err = s.appointments.GetByID(ctx, appointment.ID)
		return err
	})
	if err != nil {
		fields := []zap.Field{
			zap.String("professional_id", appointment.ProfessionalID),
			zap.String("date", appointment.Date),
			zap.String("time", appointment.Time),
			zap.Error(err),
		}
		if errors.Is(err, domain.ErrSlotTaken) || errors.Is(err, domain.ErrInvalidInput) {
			s.logger.Warn("appointment rejected", fields...)
		} else {
			s.logger.Error("failed to record appointment", fields...)
		}
		return nil, err
	}

	s.logger.Info("appointment booked",
		zap.String("appointment_id", stored.ID),
		zap.String("professional_id", stored.ProfessionalID),
		zap.String("date", stored.Date),
		zap.String("time", stored.Time),
	)
	s.publish(domain.AppointmentEventBooked, *stored)

	return stored, nil
}

// CancelAppointment soft-deletes an appointment. Cancelling an already
// cancelled appointment succeeds without change; visit counts are kept.
func (s *BookingServiceImpl) CancelAppointment(ctx context.Context, id string) error {
	a, err := s.appointment(ctx, id)
	if err != nil {
		return err
	}

	if a.Status == domain.AppointmentStatusCancelled {
		return nil
	}

	if err := s.appointments.UpdateStatus(ctx, id, domain.AppointmentStatusCancelled); err != nil {
		s.logger.Error("failed to cancel appointment", zap.String("appointment_id", id), zap.Error(err))
		return err
	}

	a.Status = domain.AppointmentStatusCancelled
	a.UpdatedAt = s.opts.Now()

	s.logger.Info("appointment cancelled", zap.String("appointment_id", id))
	s.publish(domain.AppointmentEventCancelled, *a)

	return nil
}

func (s *BookingServiceImpl) CompleteAppointment(ctx context.Context, id string) error {
	a, err := s.appointment(ctx, id)
	if err != nil {
		return err
	}

	switch a.Status {
	case domain.AppointmentStatusCompleted:
		return nil
	case domain.AppointmentStatusCancelled:
		return fmt.Errorf("appointment %s is cancelled: %w", id, domain.ErrInvalidInput)
	}

	if err := s.appointments.UpdateStatus(ctx, id, domain.AppointmentStatusCompleted); err != nil {
		s.logger.Error("failed to complete appointment", zap.String("appointment_id", id), zap.Error(err))
		return err
	}

	a.Status = domain.AppointmentStatusCompleted
	a.UpdatedAt = s.opts.Now()

	s.logger.Info("appointment completed", zap.String("appointment_id", id))
	s.publish(domain.AppointmentEventCompleted, *a)

	return nil
}

func (s *BookingServiceImpl) appointment(ctx context.Context, id string) (*domain.Appointment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("appointment %s: %w", id, domain.ErrNotFound)
	}

	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("failed to load appointment", zap.String("appointment_id", id), zap.Error(err))
		}
		return nil, err
	}

	return a, nil
}

func (s *BookingServiceImpl) publish(eventType domain.AppointmentEventType, a domain.Appointment) {
	s.notifier.Publish(domain.AppointmentEvent{
		Type:        eventType,
		Appointment: a,
		OccurredAt:  s.opts.Now(),
	})
}
