package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"salon/internal/domain"
	"salon/internal/storage"
)

// memStore is an in-memory stand-in for the Postgres repositories. It keeps
// the active-slot uniqueness rule of the appointments table.
type memStore struct {
	mu           sync.Mutex
	professional map[string]domain.Professional
	services     map[string]domain.Service
	appointments []domain.Appointment
	clients      map[string]domain.Client
	settings     domain.SalonSettings

	failAppointments error
}

func newMemStore() *memStore {
	return &memStore{
		professional: make(map[string]domain.Professional),
		services:     make(map[string]domain.Service),
		clients:      make(map[string]domain.Client),
		settings: domain.SalonSettings{
			Name:         "Salon",
			OpeningHours: domain.WorkingHours{Start: "09:00", End: "18:00"},
			WorkingDays:  []int{1, 2, 3, 4, 5, 6},
		},
	}
}

type memProfessionals struct{ s *memStore }

func (r memProfessionals) Create(_ context.Context, p domain.Professional) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.professional[p.ID] = p
	return nil
}

func (r memProfessionals) GetByID(_ context.Context, id string) (*domain.Professional, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.professional[id]
	if !ok {
		return nil, fmt.Errorf("professional %s: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

func (r memProfessionals) Update(_ context.Context, id string, dto domain.UpdateProfessionalDTO) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.professional[id]
	if !ok {
		return fmt.Errorf("professional %s: %w", id, domain.ErrNotFound)
	}
	if dto.Name != nil {
		p.Name = *dto.Name
	}
	if dto.Specialty != nil {
		p.Specialty = *dto.Specialty
	}
	if dto.ServiceIDs != nil {
		p.ServiceIDs = *dto.ServiceIDs
	}
	if dto.AvailableDays != nil {
		p.AvailableDays = *dto.AvailableDays
	}
	if dto.AvailableHours != nil {
		p.AvailableHours = *dto.AvailableHours
	}
	r.s.professional[id] = p
	return nil
}

func (r memProfessionals) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.professional[id]; !ok {
		return fmt.Errorf("professional %s: %w", id, domain.ErrNotFound)
	}
	for _, a := range r.s.appointments {
		if a.ProfessionalID == id {
			return fmt.Errorf("professional %s: %w", id, domain.ErrProfessionalInUse)
		}
	}
	delete(r.s.professional, id)
	return nil
}

func (r memProfessionals) List(_ context.Context) ([]domain.Professional, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Professional, 0, len(r.s.professional))
	for _, p := range r.s.professional {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memProfessionals) UpdatePhoto(_ context.Context, id, photoURL string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.professional[id]
	if !ok {
		return fmt.Errorf("professional %s: %w", id, domain.ErrNotFound)
	}
	p.PhotoURL = photoURL
	r.s.professional[id] = p
	return nil
}

func (r memProfessionals) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.professional), nil
}

type memServices struct{ s *memStore }

func (r memServices) Create(_ context.Context, svc domain.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.services[svc.ID] = svc
	return nil
}

func (r memServices) GetByID(_ context.Context, id string) (*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	svc, ok := r.s.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}
	return &svc, nil
}

func (r memServices) Update(_ context.Context, id string, dto domain.UpdateServiceDTO) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	svc, ok := r.s.services[id]
	if !ok {
		return fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}
	if dto.Name != nil {
		svc.Name = *dto.Name
	}
	if dto.Price != nil {
		svc.Price = *dto.Price
	}
	if dto.Duration != nil {
		svc.Duration = *dto.Duration
	}
	if dto.Category != nil {
		svc.Category = *dto.Category
	}
	r.s.services[id] = svc
	return nil
}

func (r memServices) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.services[id]; !ok {
		return fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}
	for _, a := range r.s.appointments {
		if a.ServiceID == id {
			return fmt.Errorf("service %s: %w", id, domain.ErrServiceInUse)
		}
	}
	delete(r.s.services, id)
	return nil
}

func (r memServices) List(_ context.Context, filter domain.ServiceFilter) ([]domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Service, 0)
	for _, svc := range r.s.services {
		if filter.Category != nil && svc.Category != *filter.Category {
			continue
		}
		if filter.ProfessionalID != nil && (svc.ProfessionalID == nil || *svc.ProfessionalID != *filter.ProfessionalID) {
			continue
		}
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type memAppointments struct{ s *memStore }

func (r memAppointments) enrich(a domain.Appointment) domain.Appointment {
	if svc, ok := r.s.services[a.ServiceID]; ok {
		price := svc.Price
		a.ServiceName = svc.Name
		a.ServicePrice = &price
	}
	if p, ok := r.s.professional[a.ProfessionalID]; ok {
		a.ProfessionalName = p.Name
	}
	return a
}

func (r memAppointments) Create(_ context.Context, a domain.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failAppointments != nil {
		return r.s.failAppointments
	}
	if _, ok := r.s.services[a.ServiceID]; !ok {
		return fmt.Errorf("appointment %s: %w", a.ID, domain.ErrInvalidInput)
	}
	for _, existing := range r.s.appointments {
		if existing.ProfessionalID == a.ProfessionalID && existing.Date == a.Date &&
			existing.Time == a.Time && existing.Status.Occupies() && a.Status.Occupies() {
			return fmt.Errorf("professional %s at %s %s: %w", a.ProfessionalID, a.Date, a.Time, domain.ErrSlotTaken)
		}
	}
	r.s.appointments = append(r.s.appointments, a)
	return nil
}

func (r memAppointments) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.appointments {
		if a.ID == id {
			enriched := r.enrich(a)
			return &enriched, nil
		}
	}
	return nil, fmt.Errorf("appointment %s: %w", id, domain.ErrNotFound)
}

func (r memAppointments) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, a := range r.s.appointments {
		if a.ID == id {
			r.s.appointments[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("appointment %s: %w", id, domain.ErrNotFound)
}

func (r memAppointments) ExistsActive(_ context.Context, professionalID, date, slot string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failAppointments != nil {
		return false, r.s.failAppointments
	}
	for _, a := range r.s.appointments {
		if a.ProfessionalID == professionalID && a.Date == date && a.Time == slot && a.Status != domain.AppointmentStatusCancelled {
			return true, nil
		}
	}
	return false, nil
}

func (r memAppointments) List(_ context.Context, f domain.AppointmentFilter) ([]domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failAppointments != nil {
		return nil, r.s.failAppointments
	}
	out := make([]domain.Appointment, 0)
	for _, a := range r.s.appointments {
		switch {
		case f.ProfessionalID != nil && a.ProfessionalID != *f.ProfessionalID:
			continue
		case f.Phone != nil && a.ClientPhone != *f.Phone:
			continue
		case f.Date != nil && a.Date != *f.Date:
			continue
		case f.DateFrom != nil && a.Date < *f.DateFrom:
			continue
		case f.DateTo != nil && a.Date > *f.DateTo:
			continue
		case f.Status != nil && a.Status != *f.Status:
			continue
		case f.ExcludeStatus != nil && a.Status == *f.ExcludeStatus:
			continue
		}
		out = append(out, r.enrich(a))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (r memAppointments) ListByPhone(_ context.Context, phone string) ([]domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Appointment, 0)
	for _, a := range r.s.appointments {
		if a.ClientPhone == phone {
			out = append(out, r.enrich(a))
		}
	}
	return out, nil
}

type memClients struct{ s *memStore }

func (r memClients) FindByPhone(_ context.Context, phone string) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[phone]
	if !ok {
		return nil, fmt.Errorf("client %s: %w", phone, domain.ErrNotFound)
	}
	return &c, nil
}

func (r memClients) Upsert(_ context.Context, c domain.Client) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.clients[c.Phone]
	if !ok {
		c.TotalVisits = 1
		c.CreatedAt = c.UpdatedAt
		r.s.clients[c.Phone] = c
		return &c, nil
	}
	existing.TotalVisits++
	existing.LastVisit = c.LastVisit
	existing.UpdatedAt = c.UpdatedAt
	r.s.clients[c.Phone] = existing
	return &existing, nil
}

func (r memClients) List(_ context.Context, f domain.ClientFilter) ([]domain.Client, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]domain.Client, 0)
	for _, c := range r.s.clients {
		if f.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Search)) && !strings.Contains(c.Phone, f.Search) {
			continue
		}
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].LastVisit > all[j].LastVisit })
	total := len(all)
	if f.Offset >= len(all) {
		return []domain.Client{}, total, nil
	}
	all = all[f.Offset:]
	if f.Limit > 0 && f.Limit < len(all) {
		all = all[:f.Limit]
	}
	return all, total, nil
}

func (r memClients) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.clients), nil
}

type memSettings struct{ s *memStore }

func (r memSettings) Get(_ context.Context) (*domain.SalonSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	settings := r.s.settings
	return &settings, nil
}

func (r memSettings) Update(_ context.Context, dto domain.UpdateSettingsDTO) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if dto.Name != nil {
		r.s.settings.Name = *dto.Name
	}
	if dto.Description != nil {
		r.s.settings.Description = *dto.Description
	}
	if dto.WhatsApp != nil {
		r.s.settings.WhatsApp = *dto.WhatsApp
	}
	if dto.CoverPhoto != nil {
		r.s.settings.CoverPhoto = *dto.CoverPhoto
	}
	if dto.OpeningHours != nil {
		r.s.settings.OpeningHours = *dto.OpeningHours
	}
	if dto.WorkingDays != nil {
		r.s.settings.WorkingDays = *dto.WorkingDays
	}
	return nil
}

type memReports struct{ s *memStore }

func (r memReports) StatusCounts(_ context.Context) (map[domain.AppointmentStatus]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := make(map[domain.AppointmentStatus]int)
	for _, a := range r.s.appointments {
		counts[a.Status]++
	}
	return counts, nil
}

func (r memReports) RevenueByStatus(_ context.Context, status domain.AppointmentStatus) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, a := range r.s.appointments {
		if a.Status == status {
			total = total.Add(r.s.services[a.ServiceID].Price)
		}
	}
	return total, nil
}

func (r memReports) MonthlyRevenue(_ context.Context) ([]domain.MonthlyRevenue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	byMonth := make(map[string]decimal.Decimal)
	for _, a := range r.s.appointments {
		if a.Status == domain.AppointmentStatusCancelled {
			continue
		}
		month := a.Date[:7]
		byMonth[month] = byMonth[month].Add(r.s.services[a.ServiceID].Price)
	}
	out := make([]domain.MonthlyRevenue, 0, len(byMonth))
	for month, revenue := range byMonth {
		out = append(out, domain.MonthlyRevenue{Month: month, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (r memReports) AppointmentsByProfessional(_ context.Context) ([]domain.ProfessionalLoad, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := make(map[string]int)
	for _, a := range r.s.appointments {
		if a.Status != domain.AppointmentStatusCancelled {
			counts[a.ProfessionalID]++
		}
	}
	out := make([]domain.ProfessionalLoad, 0, len(r.s.professional))
	for id, p := range r.s.professional {
		out = append(out, domain.ProfessionalLoad{ProfessionalID: id, ProfessionalName: p.Name, Appointments: counts[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Appointments > out[j].Appointments })
	return out, nil
}

// memTx runs fn directly and, on error, restores the appointment and client
// state captured before it ran.
type memTx struct{ s *memStore }

func (t memTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.s.mu.Lock()
	appointments := append([]domain.Appointment(nil), t.s.appointments...)
	clients := make(map[string]domain.Client, len(t.s.clients))
	for k, v := range t.s.clients {
		clients[k] = v
	}
	t.s.mu.Unlock()

	if err := fn(ctx); err != nil {
		t.s.mu.Lock()
		t.s.appointments = appointments
		t.s.clients = clients
		t.s.mu.Unlock()
		return err
	}
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.AppointmentEvent
}

func (n *recordingNotifier) Publish(event domain.AppointmentEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) types() []domain.AppointmentEventType {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.AppointmentEventType, 0, len(n.events))
	for _, e := range n.events {
		out = append(out, e.Type)
	}
	return out
}

type memFileStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
	seq     int
}

func newMemFileStorage() *memFileStorage {
	return &memFileStorage{objects: make(map[string][]byte)}
}

func (f *memFileStorage) UploadImage(_ context.Context, folder string, data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", storage.ErrEmptyFile
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		return "", storage.ErrNotImage
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	url := fmt.Sprintf("http://files/%s/%d-%s", folder, f.seq, filename)
	f.objects[url] = data
	return url, nil
}

func (f *memFileStorage) DeleteFile(_ context.Context, fileURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[fileURL]; !ok {
		return errors.New("no such object")
	}
	delete(f.objects, fileURL)
	f.deleted = append(f.deleted, fileURL)
	return nil
}

// fixture wires every service over one memStore with a fixed clock.
type fixture struct {
	store    *memStore
	notifier *recordingNotifier
	files    *memFileStorage
	now      time.Time

	booking      *BookingServiceImpl
	professional *ProfessionalServiceImpl
	catalog      *CatalogServiceImpl
	settings     *SettingsServiceImpl
	clients      *ClientServiceImpl
	agenda       *AgendaServiceImpl
	reports      *ReportServiceImpl
}

const (
	anaID      = "11111111-1111-4111-8111-111111111111"
	brunoID    = "22222222-2222-4222-8222-222222222222"
	haircutID  = "33333333-3333-4333-8333-333333333333"
	manicureID = "44444444-4444-4444-8444-444444444444"
	unknownID  = "99999999-9999-4999-8999-999999999999"
)

func newFixture(now time.Time) *fixture {
	store := newMemStore()
	notifier := &recordingNotifier{}
	files := newMemFileStorage()
	logger := zap.NewNop()

	opts := BookingOptions{Interval: 30, Location: time.UTC, Now: func() time.Time { return now }}

	store.professional[anaID] = domain.Professional{
		ID:             anaID,
		Name:           "Ana",
		Specialty:      "Hair",
		ServiceIDs:     []string{haircutID},
		AvailableDays:  []int{1, 2, 3, 4, 5},
		AvailableHours: domain.WorkingHours{Start: "09:00", End: "18:00"},
	}
	store.professional[brunoID] = domain.Professional{
		ID:             brunoID,
		Name:           "Bruno",
		Specialty:      "Nails",
		ServiceIDs:     []string{manicureID},
		AvailableDays:  []int{6},
		AvailableHours: domain.WorkingHours{Start: "10:00", End: "14:00"},
	}
	anaRef := anaID
	store.services[haircutID] = domain.Service{ID: haircutID, Name: "Haircut", Price: decimal.RequireFromString("80.00"), Duration: 30, Category: "hair", ProfessionalID: &anaRef}
	store.services[manicureID] = domain.Service{ID: manicureID, Name: "Manicure", Price: decimal.RequireFromString("45.50"), Duration: 60, Category: "nails"}

	return &fixture{
		store:    store,
		notifier: notifier,
		files:    files,
		now:      now,

		booking:      NewBookingService(memProfessionals{store}, memAppointments{store}, memClients{store}, memTx{store}, notifier, opts, logger),
		professional: NewProfessionalService(memProfessionals{store}, files, logger),
		catalog:      NewCatalogService(memServices{store}, logger),
		settings:     NewSettingsService(memSettings{store}, files, logger),
		clients:      NewClientService(memClients{store}, memAppointments{store}, logger),
		agenda:       NewAgendaService(memAppointments{store}, logger),
		reports:      NewReportService(memReports{store}, memAppointments{store}, memClients{store}, memProfessionals{store}, opts, logger),
	}
}
