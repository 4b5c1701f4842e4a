package services

import (
	"fmt"
	"strings"

	"github.com/Fecu3799/project-arq-web/database"
	"github.com/Fecu3799/project-arq-web/models"
	"github.com/Fecu3799/project-arq-web/utils"
)

// CatalogService manages the service catalog. Services are only ever
// deactivated, never removed.
type CatalogService interface {
	ListActive() ([]models.Service, error)
	GetActive(id int) (models.Service, error)
	ListAll() ([]models.Service, error)
	Create(input ServiceInput) (models.Service, error)
	Update(id int, patch ServicePatch) (models.Service, error)
}

// ServiceInput is the payload for creating a catalog entry. Active defaults
// to true when omitted.
type ServiceInput struct {
	Name        string  `json:"name"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Active      *bool   `json:"active"`
}

// ServicePatch is a partial update; nil fields are left untouched.
type ServicePatch struct {
	Name        *string  `json:"name"`
	DurationMin *int     `json:"duration_min"`
	Price       *float64 `json:"price"`
	Active      *bool    `json:"active"`
}

// DefaultCatalogService implements CatalogService over the store.
type DefaultCatalogService struct {
	Store database.Store
}

func (s *DefaultCatalogService) ListActive() ([]models.Service, error) {
	services, err := s.Store.LoadServices()
	if err != nil {
		return nil, err
	}
	active := make([]models.Service, 0, len(services))
	for _, svc := range services {
		if svc.Active {
			active = append(active, svc)
		}
	}
	return active, nil
}

func (s *DefaultCatalogService) GetActive(id int) (models.Service, error) {
	if id <= 0 {
		return models.Service{}, utils.NewInvalidInput("the service id must be an integer greater than zero")
	}
	services, err := s.Store.LoadServices()
	if err != nil {
		return models.Service{}, err
	}
	service := findActiveService(services, id)
	if service == nil {
		return models.Service{}, utils.NewNotFound(fmt.Sprintf("there is no active service with id %d", id))
	}
	return *service, nil
}

func (s *DefaultCatalogService) ListAll() ([]models.Service, error) {
	return s.Store.LoadServices()
}

func (s *DefaultCatalogService) Create(input ServiceInput) (models.Service, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Service{}, utils.NewInvalidInput("the name cannot be empty")
	}
	if input.DurationMin <= 0 {
		return models.Service{}, utils.NewInvalidInput("the duration must be a number greater than zero")
	}
	if input.Price < 0 {
		return models.Service{}, utils.NewInvalidInput("the price must be a number greater than or equal to zero")
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	var created models.Service
	err := s.Store.UpdateServices(func(current []models.Service) ([]models.Service, error) {
		maxID := 0
		for _, svc := range current {
			if svc.ID > maxID {
				maxID = svc.ID
			}
		}
		created = models.Service{
			ID:          maxID + 1,
			Name:        name,
			DurationMin: input.DurationMin,
			Price:       input.Price,
			Active:      active,
		}
		return append(current, created), nil
	})
	if err != nil {
		return models.Service{}, err
	}
	return created, nil
}

func (s *DefaultCatalogService) Update(id int, patch ServicePatch) (models.Service, error) {
	if id <= 0 {
		return models.Service{}, utils.NewInvalidInput("the service id must be an integer greater than zero")
	}
	if patch.Name == nil && patch.DurationMin == nil && patch.Price == nil && patch.Active == nil {
		return models.Service{}, utils.NewInvalidInput("the patch carries no changes for the service")
	}

	var updated models.Service
	err := s.Store.UpdateServices(func(current []models.Service) ([]models.Service, error) {
		idx := -1
		for i := range current {
			if current[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, utils.NewNotFound(fmt.Sprintf("there is no service with id %d", id))
		}

		svc := current[idx]
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return nil, utils.NewInvalidInput("the name cannot be empty")
			}
			svc.Name = name
		}
		if patch.DurationMin != nil {
			if *patch.DurationMin <= 0 {
				return nil, utils.NewInvalidInput("the duration must be a number greater than zero")
			}
			svc.DurationMin = *patch.DurationMin
		}
		if patch.Price != nil {
			if *patch.Price < 0 {
				return nil, utils.NewInvalidInput("the price must be a number greater than or equal to zero")
			}
			svc.Price = *patch.Price
		}
		if patch.Active != nil {
			svc.Active = *patch.Active
		}

		current[idx] = svc
		updated = svc
		return current, nil
	})
	if err != nil {
		return models.Service{}, err
	}
	return updated, nil
}
