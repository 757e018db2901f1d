package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/AveiroDigital/studio-agenda/internal/models"
)

// Store é o dono de todas as entidades pelo tempo de vida do processo. Nada
// sobrevive a um restart.
//
// O gin atende requisições em goroutines concorrentes, então toda sequência
// check-then-write (unicidade de e-mail, checagens referenciais, varredura
// de conflito de horário) roda sob o mesmo write lock da mutação que ela
// protege.
type Store struct {
	mu sync.RWMutex

	users        *collection[models.User]
	clients      *collection[models.Client]
	services     *collection[models.Service]
	appointments *collection[models.Appointment]
	products     *collection[models.Product]
	receivables  *collection[models.Account]
	payables     *collection[models.Account]
}

func New() *Store {
	return &Store{
		users:        newCollection[models.User](),
		clients:      newCollection[models.Client](),
		services:     newCollection[models.Service](),
		appointments: newCollection[models.Appointment](),
		products:     newCollection[models.Product](),
		receivables:  newCollection[models.Account](),
		payables:     newCollection[models.Account](),
	}
}

// Seed cria o usuário administrador e o catálogo inicial de serviços.
func (s *Store) Seed(adminUsername, adminPassword string) {
	s.CreateUser(adminUsername, adminPassword)

	s.CreateService(ServiceInput{
		Name:        "Consulta",
		Description: "Atendimento padrão",
		Duration:    60,
		Price:       150,
	})
	s.CreateService(ServiceInput{
		Name:        "Avaliação",
		Description: "Primeira avaliação",
		Duration:    45,
		Price:       200,
	})
}

func newID() string {
	return uuid.NewString()
}
