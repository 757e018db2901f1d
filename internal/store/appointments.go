package store

import (
	domain "github.com/AveiroDigital/studio-agenda/internal/domain/appointment"
	"github.com/AveiroDigital/studio-agenda/internal/httperr"
	"github.com/AveiroDigital/studio-agenda/internal/models"
	"github.com/AveiroDigital/studio-agenda/internal/timezone"
)

type AppointmentInput struct {
	ClientID     string
	ServiceID    string
	Date         string
	Time         string
	Status       string // vazio = pendente
	Observations string
}

type AppointmentUpdate struct {
	ClientID     *string
	ServiceID    *string
	Date         *string
	Time         *string
	Status       *string
	Observations *string
}

// CreateAppointment valida as referências e o conflito de horário sob o
// write lock antes de inserir. Códigos de negócio: client_not_found,
// service_not_found, service_inactive, time_conflict.
func (s *Store) CreateAppointment(in AppointmentInput) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients.get(in.ClientID); !ok {
		return models.Appointment{}, httperr.ErrBusiness("client_not_found")
	}

	svc, ok := s.services.get(in.ServiceID)
	if !ok {
		return models.Appointment{}, httperr.ErrBusiness("service_not_found")
	}
	if !bool(svc.Active) {
		return models.Appointment{}, httperr.ErrBusiness("service_inactive")
	}

	if s.hasConflict(in.Date, in.Time, "") {
		return models.Appointment{}, httperr.ErrBusiness("time_conflict")
	}

	status := in.Status
	if status == "" {
		status = string(domain.Initial())
	}

	ap := models.Appointment{
		ID:           newID(),
		ClientID:     in.ClientID,
		ServiceID:    in.ServiceID,
		Date:         in.Date,
		Time:         in.Time,
		Status:       status,
		Observations: in.Observations,
		CreatedAt:    timezone.Now(),
	}
	s.appointments.put(ap.ID, ap)
	return ap, nil
}

func (s *Store) GetAppointment(id string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appointments.get(id)
}

func (s *Store) ListAppointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appointments.all()
}

func (s *Store) ListAppointmentsByDate(date string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, 0)
	for _, ap := range s.appointments.all() {
		if ap.Date == date {
			out = append(out, ap)
		}
	}
	return out
}

func (s *Store) ListAppointmentsByClient(clientID string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, 0)
	for _, ap := range s.appointments.all() {
		if ap.ClientID == clientID {
			out = append(out, ap)
		}
	}
	return out
}

// UpdateAppointment aplica merge parcial. Referências só são revalidadas
// para os campos informados; o conflito de horário é reavaliado sempre que
// data ou hora mudam, contra o horário resultante do merge e excluindo o
// próprio agendamento.
func (s *Store) UpdateAppointment(id string, up AppointmentUpdate) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.appointments.get(id)
	if !ok {
		return models.Appointment{}, httperr.ErrBusiness("appointment_not_found")
	}

	if up.ClientID != nil {
		if _, ok := s.clients.get(*up.ClientID); !ok {
			return models.Appointment{}, httperr.ErrBusiness("client_not_found")
		}
		ap.ClientID = *up.ClientID
	}

	if up.ServiceID != nil {
		svc, ok := s.services.get(*up.ServiceID)
		if !ok {
			return models.Appointment{}, httperr.ErrBusiness("service_not_found")
		}
		if !bool(svc.Active) {
			return models.Appointment{}, httperr.ErrBusiness("service_inactive")
		}
		ap.ServiceID = *up.ServiceID
	}

	rescheduled := false
	if up.Date != nil && *up.Date != ap.Date {
		ap.Date = *up.Date
		rescheduled = true
	}
	if up.Time != nil && *up.Time != ap.Time {
		ap.Time = *up.Time
		rescheduled = true
	}
	if rescheduled && s.hasConflict(ap.Date, ap.Time, ap.ID) {
		return models.Appointment{}, httperr.ErrBusiness("time_conflict")
	}

	if up.Status != nil {
		ap.Status = *up.Status
	}
	if up.Observations != nil {
		ap.Observations = *up.Observations
	}

	s.appointments.put(ap.ID, ap)
	return ap, nil
}

func (s *Store) DeleteAppointment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appointments.remove(id)
}

// hasConflict faz a varredura linear da data alvo. Exige o lock já tomado.
// O volume é limitado à agenda diária de um único negócio, então não há
// índice por data.
func (s *Store) hasConflict(date, at, excludeID string) bool {
	for _, ap := range s.appointments.all() {
		if ap.ID == excludeID || ap.Date != date || ap.Time != at {
			continue
		}
		if domain.Blocks(ap.Status) {
			return true
		}
	}
	return false
}
