package audit

import "go.uber.org/zap"

type Event struct {
	Action   string
	Entity   string
	EntityID string
}

// Dispatcher registra eventos fora do caminho da requisição. A trilha de
// auditoria nunca pode falhar uma operação da API.
type Dispatcher struct {
	log    *Log
	logger *zap.Logger
	queue  chan Event
}

func NewDispatcher(log *Log, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		log:    log,
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.log.Append(ev.Action, ev.Entity, ev.EntityID)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila cheia: descartamos o evento
		d.logger.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
			zap.String("entity", ev.Entity),
		)
	}
}
