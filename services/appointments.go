package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Fecu3799/project-arq-web/database"
	"github.com/Fecu3799/project-arq-web/models"
	"github.com/Fecu3799/project-arq-web/utils"
)

// AppointmentService orchestrates the appointment lifecycle: booking,
// terminal status changes and rescheduling.
type AppointmentService interface {
	Create(input CreateAppointmentInput) (models.Appointment, error)
	Update(id int, patch AppointmentPatch) (models.Appointment, error)
	List() ([]models.Appointment, error)
}

// CreateAppointmentInput is the booking payload.
type CreateAppointmentInput struct {
	ServiceID int    `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// AppointmentPatch is the raw PATCH body. Exactly one intent must be present:
// a status change (status) or a reschedule (date/time/service_id).
type AppointmentPatch struct {
	Status    *string `json:"status"`
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	ServiceID *int    `json:"service_id"`
}

type statusChange struct {
	status string
}

type reschedule struct {
	date      string
	time      string
	serviceID *int
}

// parsePatch reduces the raw body to exactly one validated intent before any
// state is touched.
func parsePatch(p AppointmentPatch) (*statusChange, *reschedule, error) {
	wantsStatus := p.Status != nil
	wantsReschedule := p.Date != nil || p.Time != nil || p.ServiceID != nil

	switch {
	case !wantsStatus && !wantsReschedule:
		return nil, nil, utils.NewInvalidInput("the patch carries no changes for the appointment")
	case wantsStatus && wantsReschedule:
		return nil, nil, utils.NewInvalidInput("a status change and a reschedule cannot be combined in one request")
	case wantsStatus:
		return &statusChange{status: strings.ToLower(strings.TrimSpace(*p.Status))}, nil, nil
	default:
		if p.Date == nil || p.Time == nil {
			return nil, nil, utils.NewInvalidInput("date and time are required to reschedule")
		}
		r := &reschedule{
			date:      strings.TrimSpace(*p.Date),
			time:      strings.TrimSpace(*p.Time),
			serviceID: p.ServiceID,
		}
		if r.date == "" || r.time == "" {
			return nil, nil, utils.NewInvalidInput("date and time cannot be blank")
		}
		return nil, r, nil
	}
}

// DefaultAppointmentService implements AppointmentService. Every mutation
// runs its read, validation and write inside the store's appointment critical
// section so availability is always derived from the state being written
// against.
type DefaultAppointmentService struct {
	Store database.Store
	Now   func() time.Time
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create books the requested slot. The day's availability is re-derived from
// the collection snapshot inside the critical section; whatever a client saw
// earlier is never trusted.
func (s *DefaultAppointmentService) Create(input CreateAppointmentInput) (models.Appointment, error) {
	if input.ServiceID == 0 || strings.TrimSpace(input.Date) == "" || strings.TrimSpace(input.Time) == "" {
		return models.Appointment{}, utils.NewInvalidInput("the request is incomplete: service_id, date and time are required")
	}

	now := s.now()
	var created models.Appointment
	err := s.Store.UpdateAppointments(func(current []models.Appointment) ([]models.Appointment, error) {
		services, err := s.Store.LoadServices()
		if err != nil {
			return nil, err
		}
		service := findActiveService(services, input.ServiceID)
		if service == nil {
			return nil, utils.NewNotFound("the requested service does not exist or is not active")
		}
		if service.DurationMin <= 0 {
			return nil, utils.NewInternal(fmt.Sprintf("The service with id %d has an invalid duration", service.ID))
		}
		schedule, err := s.Store.LoadSchedule()
		if err != nil {
			return nil, err
		}

		start, err := parseSlotStart(input.Date, input.Time)
		if err != nil {
			return nil, err
		}
		if err := ensureSlotAvailable(*service, schedule, current, start, now); err != nil {
			return nil, err
		}

		end := start.Add(time.Duration(service.DurationMin) * time.Minute)
		stamp := now.Format(models.DateTimeLayout)
		created = models.Appointment{
			ID:        nextAppointmentID(current),
			ServiceID: service.ID,
			Start:     start.Format(models.DateTimeLayout),
			End:       end.Format(models.DateTimeLayout),
			Status:    models.StatusConfirmed,
			CreatedAt: stamp,
			UpdatedAt: stamp,
		}
		return append(current, created), nil
	})
	if err != nil {
		return models.Appointment{}, err
	}
	return created, nil
}

// Update applies exactly one of a terminal status change or a reschedule.
func (s *DefaultAppointmentService) Update(id int, patch AppointmentPatch) (models.Appointment, error) {
	if id <= 0 {
		return models.Appointment{}, utils.NewInvalidInput("the appointment id must be an integer greater than zero")
	}
	status, resched, err := parsePatch(patch)
	if err != nil {
		return models.Appointment{}, err
	}

	now := s.now()
	var updated models.Appointment
	err = s.Store.UpdateAppointments(func(current []models.Appointment) ([]models.Appointment, error) {
		idx := -1
		for i := range current {
			if current[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, utils.NewNotFound(fmt.Sprintf("there is no appointment with id %d", id))
		}

		appt := current[idx]
		var mutated bool
		if status != nil {
			mutated, err = applyStatusChange(&appt, status.status)
		} else {
			mutated, err = s.applyReschedule(&appt, resched, current, now)
		}
		if err != nil {
			return nil, err
		}
		if !mutated {
			return nil, utils.NewInvalidInput("no changes were detected for the appointment")
		}

		appt.UpdatedAt = now.Format(models.DateTimeLayout)
		current[idx] = appt
		updated = appt
		return current, nil
	})
	if err != nil {
		return models.Appointment{}, err
	}
	return updated, nil
}

// applyStatusChange enforces the state machine: confirmed -> cancelled and
// confirmed -> no_show are the only edges, both terminal.
func applyStatusChange(appt *models.Appointment, next string) (bool, error) {
	if !models.IsTerminalStatus(next) {
		return false, utils.NewInvalidInput("status can only be cancelled or no_show")
	}
	if models.IsTerminalStatus(appt.Status) {
		if appt.Status == next {
			return false, utils.NewConflict("the appointment is already in the requested state")
		}
		return false, utils.NewConflict("the appointment is already closed and cannot be modified")
	}
	if appt.Status == next {
		return false, utils.NewConflict("the appointment is already in the requested state")
	}
	appt.Status = next
	return true, nil
}

// applyReschedule moves a confirmed appointment to a new slot and/or service.
// Availability is re-validated exactly as in creation whenever the target
// service or slot differs from the current booking.
func (s *DefaultAppointmentService) applyReschedule(appt *models.Appointment, r *reschedule, current []models.Appointment, now time.Time) (bool, error) {
	if models.IsTerminalStatus(appt.Status) {
		return false, utils.NewConflict("a closed appointment cannot be rescheduled")
	}

	serviceID := appt.ServiceID
	if r.serviceID != nil {
		serviceID = *r.serviceID
	}
	if serviceID <= 0 {
		return false, utils.NewInvalidInput("service_id must be an integer greater than zero")
	}

	services, err := s.Store.LoadServices()
	if err != nil {
		return false, err
	}
	service := findActiveService(services, serviceID)
	if service == nil {
		return false, utils.NewNotFound(fmt.Sprintf("there is no active service with id %d", serviceID))
	}
	if service.DurationMin <= 0 {
		return false, utils.NewInternal(fmt.Sprintf("The service with id %d has an invalid duration", serviceID))
	}

	start, err := parseSlotStart(r.date, r.time)
	if err != nil {
		return false, err
	}
	label := start.Format(models.DateTimeLayout)
	endLabel := start.Add(time.Duration(service.DurationMin) * time.Minute).Format(models.DateTimeLayout)

	serviceChanged := serviceID != appt.ServiceID
	slotChanged := label != appt.Start
	if serviceChanged || slotChanged {
		schedule, err := s.Store.LoadSchedule()
		if err != nil {
			return false, err
		}
		if err := ensureSlotAvailable(*service, schedule, current, start, now); err != nil {
			return false, err
		}
	}

	// The end is always re-derived from the resolved service's current
	// duration; a duration drift alone still counts as a mutation.
	mutated := serviceChanged || slotChanged || endLabel != appt.End
	appt.ServiceID = serviceID
	appt.Start = label
	appt.End = endLabel
	return mutated, nil
}

// List returns the full collection, an administrative read with no filtering.
func (s *DefaultAppointmentService) List() ([]models.Appointment, error) {
	return s.Store.LoadAppointments()
}

func nextAppointmentID(appointments []models.Appointment) int {
	maxID := 0
	for _, a := range appointments {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	return maxID + 1
}

func parseSlotStart(date, timeOfDay string) (time.Time, error) {
	start, err := time.ParseInLocation(models.DateTimeLayout, date+" "+timeOfDay, time.Local)
	if err != nil {
		return time.Time{}, utils.NewInvalidInput("invalid date or time; expected formats DD-MM-YY and HH:mm")
	}
	return start, nil
}

// ensureSlotAvailable re-derives the day's availability from the snapshot at
// hand and requires the requested slot to appear with status available.
func ensureSlotAvailable(service models.Service, schedule models.ScheduleConfig, appointments []models.Appointment, start, now time.Time) error {
	day := startOfDay(start)
	if day.Before(startOfDay(now)) {
		return utils.NewInvalidInput("date cannot be in the past")
	}

	slots, err := DayAvailability(day, service, schedule, appointments)
	if err != nil {
		return err
	}
	label := start.Format(models.DateTimeLayout)
	for _, slot := range slots {
		if slot.Time == label {
			if slot.Status != models.SlotAvailable {
				return utils.NewConflict("the selected time slot is not available")
			}
			return nil
		}
	}
	return utils.NewConflict("the selected time slot is not available")
}
