// Package events difunde los ChangeEvent confirmados a los suscriptores en proceso
// (la UI se suscribe por SSE).
package events

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
)

var _ appinventory.ChangeNotifier = (*Broker)(nil)

const defaultBuffer = 16

// Broker fan-out sin bloqueo: si el canal de un suscriptor está lleno, el evento se
// descarta para ese suscriptor y se registra un warning.
type Broker struct {
	mu      sync.RWMutex
	subs    map[uint64]chan appinventory.ChangeEvent
	nextID  uint64
	buffer  int
	closed  bool
	dropped atomic.Int64
	log     zerolog.Logger
}

// NewBroker crea un broker. buffer <= 0 usa el tamaño por defecto.
func NewBroker(log zerolog.Logger, buffer int) *Broker {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Broker{
		subs:   map[uint64]chan appinventory.ChangeEvent{},
		buffer: buffer,
		log:    log,
	}
}

// Publish entrega event a cada suscriptor sin esperar.
func (b *Broker) Publish(event appinventory.ChangeEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.dropped.Add(1)
			b.log.Warn().
				Uint64("subscriber", id).
				Str("event", string(event.Type)).
				Msg("suscriptor lento: evento descartado")
		}
	}
}

// Subscribe devuelve el canal de eventos y la función para cancelar la suscripción.
// cancel cierra el canal y es idempotente.
func (b *Broker) Subscribe() (<-chan appinventory.ChangeEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan appinventory.ChangeEvent, b.buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if c, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(c)
			}
		})
	}
}

// Subscribers número de suscriptores activos.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Dropped total de eventos descartados por suscriptores lentos.
func (b *Broker) Dropped() int64 {
	return b.dropped.Load()
}

// Close cierra todos los canales; Publish posteriores se ignoran.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
