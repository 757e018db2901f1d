package store

import (
	"github.com/AveiroDigital/studio-agenda/internal/httperr"
	"github.com/AveiroDigital/studio-agenda/internal/models"
	"github.com/AveiroDigital/studio-agenda/internal/timezone"
)

type ServiceInput struct {
	Name        string
	Description string
	Duration    models.Decimal
	Price       models.Decimal
	Active      *models.Flag // nil = ativo
}

type ServiceUpdate struct {
	Name        *string
	Description *string
	Duration    *models.Decimal
	Price       *models.Decimal
	Active      *models.Flag
}

func (s *Store) CreateService(in ServiceInput) models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := models.Flag(true)
	if in.Active != nil {
		active = *in.Active
	}

	svc := models.Service{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		Duration:    in.Duration,
		Price:       in.Price,
		Active:      active,
		CreatedAt:   timezone.Now(),
	}
	s.services.put(svc.ID, svc)
	return svc
}

func (s *Store) GetService(id string) (models.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.services.get(id)
}

func (s *Store) ListServices() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.services.all()
}

// ListActiveServices devolve apenas os serviços selecionáveis para novos
// agendamentos.
func (s *Store) ListActiveServices() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0)
	for _, svc := range s.services.all() {
		if bool(svc.Active) {
			out = append(out, svc)
		}
	}
	return out
}

func (s *Store) UpdateService(id string, up ServiceUpdate) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.services.get(id)
	if !ok {
		return models.Service{}, httperr.ErrBusiness("service_not_found")
	}

	if up.Name != nil {
		svc.Name = *up.Name
	}
	if up.Description != nil {
		svc.Description = *up.Description
	}
	if up.Duration != nil {
		svc.Duration = *up.Duration
	}
	if up.Price != nil {
		svc.Price = *up.Price
	}
	if up.Active != nil {
		svc.Active = *up.Active
	}

	s.services.put(svc.ID, svc)
	return svc, nil
}

func (s *Store) DeleteService(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.services.remove(id)
}
