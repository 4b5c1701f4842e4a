package database

import "github.com/Fecu3799/project-arq-web/models"

// Store is the persistence boundary. Collections are always loaded and saved
// whole; implementations must make saves atomic at collection granularity so
// a concurrent read never observes a partially written state.
type Store interface {
	LoadServices() ([]models.Service, error)
	SaveServices(services []models.Service) error
	LoadAppointments() ([]models.Appointment, error)
	SaveAppointments(appointments []models.Appointment) error
	LoadSchedule() (models.ScheduleConfig, error)
	LoadUsers() ([]models.User, error)

	// UpdateAppointments runs fn inside the store's appointment critical
	// section: fn receives the current collection and returns the one to
	// persist. Returning an error aborts without writing. Booking and
	// rescheduling validate inside this section, so two concurrent writers
	// can never both act on the same stale view of the day.
	UpdateAppointments(fn func(current []models.Appointment) ([]models.Appointment, error)) error

	// UpdateServices is the same critical-section primitive for the catalog.
	UpdateServices(fn func(current []models.Service) ([]models.Service, error)) error
}
