package database

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/Fecu3799/project-arq-web/models"
	"github.com/Fecu3799/project-arq-web/utils"

	"go.uber.org/zap"
)

const (
	servicesFile     = "services.json"
	appointmentsFile = "appointments.json"
	scheduleFile     = "schedule.json"
	usersFile        = "users.json"
)

// FileStore keeps each collection in one JSON file under dir. Writes go to a
// temp file and are renamed into place, so a reader sees either the old or
// the new collection, never a torn one.
type FileStore struct {
	dir string

	apptMu sync.Mutex
	svcMu  sync.Mutex
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *FileStore) readJSON(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		utils.GetLogger().Error("FileStore: read failed", zap.String("file", name), zap.Error(err))
		return utils.NewInternal("Stored data could not be read")
	}
	if err := json.Unmarshal(data, v); err != nil {
		utils.GetLogger().Error("FileStore: parse failed", zap.String("file", name), zap.Error(err))
		return utils.NewInternal("Stored data could not be read")
	}
	return nil
}

func (s *FileStore) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		utils.GetLogger().Error("FileStore: marshal failed", zap.String("file", name), zap.Error(err))
		return utils.NewInternal("Stored data could not be written")
	}
	data = append(data, '\n')

	fp := s.path(name)
	tmp := fp + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		utils.GetLogger().Error("FileStore: write failed", zap.String("file", name), zap.Error(err))
		return utils.NewInternal("Stored data could not be written")
	}
	if err := os.Rename(tmp, fp); err != nil {
		utils.GetLogger().Error("FileStore: rename failed", zap.String("file", name), zap.Error(err))
		return utils.NewInternal("Stored data could not be written")
	}
	return nil
}

func (s *FileStore) LoadServices() ([]models.Service, error) {
	var services []models.Service
	if err := s.readJSON(servicesFile, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (s *FileStore) SaveServices(services []models.Service) error {
	return s.writeJSON(servicesFile, services)
}

func (s *FileStore) LoadAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.readJSON(appointmentsFile, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *FileStore) SaveAppointments(appointments []models.Appointment) error {
	return s.writeJSON(appointmentsFile, appointments)
}

// LoadSchedule accepts both a bare config object and a one-element array,
// which is how older data files shipped.
func (s *FileStore) LoadSchedule() (models.ScheduleConfig, error) {
	var raw json.RawMessage
	if err := s.readJSON(scheduleFile, &raw); err != nil {
		return models.ScheduleConfig{}, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []models.ScheduleConfig
		if err := json.Unmarshal(trimmed, &list); err != nil {
			utils.GetLogger().Error("FileStore: parse failed", zap.String("file", scheduleFile), zap.Error(err))
			return models.ScheduleConfig{}, utils.NewInternal("Stored data could not be read")
		}
		if len(list) == 0 {
			return models.ScheduleConfig{}, nil
		}
		return list[0], nil
	}

	var cfg models.ScheduleConfig
	if err := json.Unmarshal(trimmed, &cfg); err != nil {
		utils.GetLogger().Error("FileStore: parse failed", zap.String("file", scheduleFile), zap.Error(err))
		return models.ScheduleConfig{}, utils.NewInternal("Stored data could not be read")
	}
	return cfg, nil
}

func (s *FileStore) LoadUsers() ([]models.User, error) {
	var users []models.User
	if err := s.readJSON(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *FileStore) UpdateAppointments(fn func(current []models.Appointment) ([]models.Appointment, error)) error {
	s.apptMu.Lock()
	defer s.apptMu.Unlock()

	current, err := s.LoadAppointments()
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	return s.SaveAppointments(next)
}

func (s *FileStore) UpdateServices(fn func(current []models.Service) ([]models.Service, error)) error {
	s.svcMu.Lock()
	defer s.svcMu.Unlock()

	current, err := s.LoadServices()
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	return s.SaveServices(next)
}
