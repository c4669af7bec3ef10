package schedule

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	appointmentRepo "clinicbook/database/repository/appointment"

	"clinicbook/models"
)

// -- Mock settings provider --

type staticSettings struct {
	cfg models.ClinicSettings
}

func (s staticSettings) Get(_ context.Context) (*models.ClinicSettings, error) {
	cfg := s.cfg
	return &cfg, nil
}

func testSettings() models.ClinicSettings {
	return models.ClinicSettings{
		SlotMinutes:  15,
		Timezone:     "UTC",
		WorkHours:    models.ClockRange{Start: "09:00", End: "17:00"},
		MaxDaysAhead: 30,
	}
}

// -- Mock appointment repository --

// mockAppointmentRepo is an in-memory AppointmentRepository. The mutex makes
// Reserve a real create-if-absent critical section so concurrency tests
// exercise genuine contention. batchCap, when set, rejects membership calls
// that exceed the store arity limit the way an overlong $in would.
type mockAppointmentRepo struct {
	mu      sync.Mutex
	markers map[string]models.ReservationMarker
	appts   map[string]models.Appointment

	batchCap    int
	markerCalls [][]string
	activeCalls [][]string
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{
		markers: make(map[string]models.ReservationMarker),
		appts:   make(map[string]models.Appointment),
	}
}

func (m *mockAppointmentRepo) Reserve(_ context.Context, marker models.ReservationMarker, appt models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.markers[marker.SlotKey]; exists {
		return appointmentRepo.ErrMarkerExists
	}
	m.markers[marker.SlotKey] = marker
	m.appts[appt.ID] = appt
	return nil
}

func (m *mockAppointmentRepo) ExistingMarkerKeys(_ context.Context, slotKeys []string) (map[string]struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.batchCap > 0 && len(slotKeys) > m.batchCap {
		return nil, fmt.Errorf("membership query carries %d keys, limit is %d", len(slotKeys), m.batchCap)
	}
	m.markerCalls = append(m.markerCalls, slotKeys)
	existing := make(map[string]struct{})
	for _, key := range slotKeys {
		if _, ok := m.markers[key]; ok {
			existing[key] = struct{}{}
		}
	}
	return existing, nil
}

func (m *mockAppointmentRepo) ActiveSlotKeys(_ context.Context, slotKeys []string) (map[string]struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.batchCap > 0 && len(slotKeys) > m.batchCap {
		return nil, fmt.Errorf("membership query carries %d keys, limit is %d", len(slotKeys), m.batchCap)
	}
	m.activeCalls = append(m.activeCalls, slotKeys)
	wanted := make(map[string]struct{}, len(slotKeys))
	for _, key := range slotKeys {
		wanted[key] = struct{}{}
	}
	active := make(map[string]struct{})
	for _, appt := range m.appts {
		if appt.Status != models.StatusBooked && appt.Status != models.StatusCompleted {
			continue
		}
		if _, ok := wanted[appt.SlotKey]; ok {
			active[appt.SlotKey] = struct{}{}
		}
	}
	return active, nil
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	appt, ok := m.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	return &appt, nil
}

func (m *mockAppointmentRepo) ListByDate(_ context.Context, date string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.Appointment
	for _, appt := range m.appts {
		if appt.Date == date {
			result = append(result, appt)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime < result[j].StartTime })
	return result, nil
}

func (m *mockAppointmentRepo) UpdateStatus(_ context.Context, id, status string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	appt, ok := m.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	appt.Status = status
	appt.LastUpdatedAt = time.Now().UTC()
	m.appts[id] = appt
	return &appt, nil
}

func (m *mockAppointmentRepo) activeAppointmentsFor(slotKey string) []models.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.Appointment
	for _, appt := range m.appts {
		if appt.SlotKey == slotKey && (appt.Status == models.StatusBooked || appt.Status == models.StatusCompleted) {
			result = append(result, appt)
		}
	}
	return result
}

func newTestService(repo *mockAppointmentRepo, cfg models.ClinicSettings) *DefaultScheduleService {
	return &DefaultScheduleService{
		Settings: staticSettings{cfg: cfg},
		Repo:     repo,
	}
}

// todayISO mirrors how the service computes "today" for the UTC test settings.
func todayISO() string {
	return time.Now().UTC().Format("2006-01-02")
}
