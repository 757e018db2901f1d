package audit

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AveiroDigital/studio-agenda/internal/timezone"
)

type Entry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Log guarda as entradas mais recentes em memória, até a capacidade; além
// dela as mais antigas são descartadas.
type Log struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
}

func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = 1000
	}
	return &Log{capacity: capacity}
}

func (l *Log) Append(action, entity, entityID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, Entry{
		ID:        uuid.NewString(),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		CreatedAt: timezone.Now(),
	})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// List devolve as entradas da mais recente para a mais antiga, com filtros
// opcionais por action e entity.
func (l *Log) List(action, entity string, limit int) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	out := make([]Entry, 0, limit)
	for i := len(l.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := l.entries[i]
		if action != "" && e.Action != action {
			continue
		}
		if entity != "" && e.Entity != entity {
			continue
		}
		out = append(out, e)
	}
	return out
}
