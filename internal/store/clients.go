package store

import (
	"github.com/AveiroDigital/studio-agenda/internal/httperr"
	"github.com/AveiroDigital/studio-agenda/internal/models"
	"github.com/AveiroDigital/studio-agenda/internal/timezone"
)

type ClientInput struct {
	Name         string
	Phone        string
	Email        string
	Address      string
	TaxID        string
	Observations string
}

type ClientUpdate struct {
	Name         *string
	Phone        *string
	Email        *string
	Address      *string
	TaxID        *string
	Observations *string
}

func (s *Store) CreateClient(in ClientInput) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.findClientByEmail(in.Email, ""); taken {
		return models.Client{}, httperr.ErrBusiness("email_in_use")
	}

	client := models.Client{
		ID:           newID(),
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		Address:      in.Address,
		TaxID:        in.TaxID,
		Observations: in.Observations,
		CreatedAt:    timezone.Now(),
	}
	s.clients.put(client.ID, client)
	return client, nil
}

func (s *Store) GetClient(id string) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clients.get(id)
}

func (s *Store) ListClients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clients.all()
}

func (s *Store) FindClientByEmail(email string) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findClientByEmail(email, "")
}

func (s *Store) UpdateClient(id string, up ClientUpdate) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients.get(id)
	if !ok {
		return models.Client{}, httperr.ErrBusiness("client_not_found")
	}

	if up.Email != nil {
		if _, taken := s.findClientByEmail(*up.Email, id); taken {
			return models.Client{}, httperr.ErrBusiness("email_in_use")
		}
		client.Email = *up.Email
	}
	if up.Name != nil {
		client.Name = *up.Name
	}
	if up.Phone != nil {
		client.Phone = *up.Phone
	}
	if up.Address != nil {
		client.Address = *up.Address
	}
	if up.TaxID != nil {
		client.TaxID = *up.TaxID
	}
	if up.Observations != nil {
		client.Observations = *up.Observations
	}

	s.clients.put(client.ID, client)
	return client, nil
}

func (s *Store) DeleteClient(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clients.remove(id)
}

// findClientByEmail exige o lock já tomado. excludeID permite a autoexclusão
// no update.
func (s *Store) findClientByEmail(email, excludeID string) (models.Client, bool) {
	for _, c := range s.clients.all() {
		if c.Email == email && c.ID != excludeID {
			return c, true
		}
	}
	return models.Client{}, false
}
