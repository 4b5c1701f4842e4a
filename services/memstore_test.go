package services

import (
	"sync"

	"github.com/Fecu3799/project-arq-web/models"
)

// memStore is an in-memory Store used across the service tests. Appointments
// and services are guarded by separate mutexes, mirroring the file store, so
// the update critical sections can load the other collections.
type memStore struct {
	apptMu       sync.Mutex
	svcMu        sync.Mutex
	services     []models.Service
	appointments []models.Appointment
	schedule     models.ScheduleConfig
	users        []models.User
}

func (m *memStore) LoadServices() ([]models.Service, error) {
	m.svcMu.Lock()
	defer m.svcMu.Unlock()
	return append([]models.Service(nil), m.services...), nil
}

func (m *memStore) SaveServices(services []models.Service) error {
	m.svcMu.Lock()
	defer m.svcMu.Unlock()
	m.services = append([]models.Service(nil), services...)
	return nil
}

func (m *memStore) LoadAppointments() ([]models.Appointment, error) {
	m.apptMu.Lock()
	defer m.apptMu.Unlock()
	return append([]models.Appointment(nil), m.appointments...), nil
}

func (m *memStore) SaveAppointments(appointments []models.Appointment) error {
	m.apptMu.Lock()
	defer m.apptMu.Unlock()
	m.appointments = append([]models.Appointment(nil), appointments...)
	return nil
}

func (m *memStore) LoadSchedule() (models.ScheduleConfig, error) {
	return m.schedule, nil
}

func (m *memStore) LoadUsers() ([]models.User, error) {
	return append([]models.User(nil), m.users...), nil
}

func (m *memStore) UpdateAppointments(fn func(current []models.Appointment) ([]models.Appointment, error)) error {
	m.apptMu.Lock()
	defer m.apptMu.Unlock()
	next, err := fn(append([]models.Appointment(nil), m.appointments...))
	if err != nil {
		return err
	}
	m.appointments = append([]models.Appointment(nil), next...)
	return nil
}

func (m *memStore) UpdateServices(fn func(current []models.Service) ([]models.Service, error)) error {
	m.svcMu.Lock()
	defer m.svcMu.Unlock()
	next, err := fn(append([]models.Service(nil), m.services...))
	if err != nil {
		return err
	}
	m.services = append([]models.Service(nil), next...)
	return nil
}
