package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Fecu3799/project-arq-web/database"
	"github.com/Fecu3799/project-arq-web/models"
	"github.com/Fecu3799/project-arq-web/utils"
)

// AvailabilityService exposes the day availability query.
type AvailabilityService interface {
	GetDayAvailability(date string, serviceID int) ([]models.Slot, error)
}

// DefaultAvailabilityService implements AvailabilityService over the store.
// Now is overridable for tests; nil means time.Now.
type DefaultAvailabilityService struct {
	Store database.Store
	Now   func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GetDayAvailability validates the request, loads the current schedule and
// appointments, and returns the annotated candidate slots for the day. A
// closed day or a service that cannot fit the window yields an empty list,
// not an error.
func (s *DefaultAvailabilityService) GetDayAvailability(date string, serviceID int) ([]models.Slot, error) {
	if strings.TrimSpace(date) == "" || serviceID == 0 {
		return nil, utils.NewInvalidInput("date and service_id are required")
	}
	day, err := parseDay(date, s.now())
	if err != nil {
		return nil, err
	}
	if serviceID <= 0 {
		return nil, utils.NewInvalidInput("service_id must be an integer greater than zero")
	}

	services, err := s.Store.LoadServices()
	if err != nil {
		return nil, err
	}
	schedule, err := s.Store.LoadSchedule()
	if err != nil {
		return nil, err
	}
	appointments, err := s.Store.LoadAppointments()
	if err != nil {
		return nil, err
	}

	service := findActiveService(services, serviceID)
	if service == nil {
		return nil, utils.NewNotFound(fmt.Sprintf("there is no active service with id %d", serviceID))
	}
	if service.DurationMin <= 0 {
		return nil, utils.NewInternal(fmt.Sprintf("The service with id %d has an invalid duration", serviceID))
	}

	return DayAvailability(day, *service, schedule, appointments)
}

// DayAvailability annotates every candidate slot of the day against the given
// appointment snapshot. Only confirmed appointments count as obstacles.
// Closed days and windows too short for the service yield an empty list.
func DayAvailability(day time.Time, service models.Service, schedule models.ScheduleConfig, appointments []models.Appointment) ([]models.Slot, error) {
	if !IsOpenDay(day, schedule) {
		return []models.Slot{}, nil
	}
	dayStart, dayEnd, err := BusinessWindow(day, schedule)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(service.DurationMin) * time.Minute
	busy := confirmedIntervals(appointments)

	slots := GenerateSlots(dayStart, dayEnd, duration, slotStep(schedule))
	out := make([]models.Slot, 0, len(slots))
	for _, t := range slots {
		status := models.SlotAvailable
		if overlapsAny(t, t.Add(duration), busy) {
			status = models.SlotOccupied
		}
		out = append(out, models.Slot{
			Time:   t.Format(models.DateTimeLayout),
			Status: status,
		})
	}
	return out, nil
}

// parseDay parses a DD-MM-YY calendar date and rejects days earlier than the
// current one.
func parseDay(date string, now time.Time) (time.Time, error) {
	day, err := time.ParseInLocation(models.DateLayout, strings.TrimSpace(date), time.Local)
	if err != nil {
		return time.Time{}, utils.NewInvalidInput("date must use the DD-MM-YY format")
	}
	if day.Before(startOfDay(now)) {
		return time.Time{}, utils.NewInvalidInput("date cannot be in the past")
	}
	return day, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func findActiveService(services []models.Service, id int) *models.Service {
	for i := range services {
		if services[i].ID == id && services[i].Active {
			return &services[i]
		}
	}
	return nil
}

// confirmedIntervals extracts the [start,end) intervals of confirmed
// appointments. Rows with unparseable timestamps are skipped, matching the
// tolerant read behavior of the data files.
func confirmedIntervals(appointments []models.Appointment) []interval {
	var busy []interval
	for _, a := range appointments {
		if strings.ToLower(a.Status) != models.StatusConfirmed {
			continue
		}
		start, err := time.ParseInLocation(models.DateTimeLayout, a.Start, time.Local)
		if err != nil {
			continue
		}
		end, err := time.ParseInLocation(models.DateTimeLayout, a.End, time.Local)
		if err != nil {
			continue
		}
		busy = append(busy, interval{start: start, end: end})
	}
	return busy
}
