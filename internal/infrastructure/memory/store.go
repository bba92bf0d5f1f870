// Package memory almacén en memoria con transacciones por copia: cada Run trabaja
// sobre una copia del estado y solo la publica si fn termina sin error y el commit
// no falla. Usado en tests y con DB_DRIVER=memory.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
)

var _ appinventory.TxRunner = (*Store)(nil)

var errReadOnly = errors.New("transacción de solo lectura")

// Store estado compartido protegido por un RWMutex. Los escritores se serializan.
type Store struct {
	mu         sync.RWMutex
	state      *state
	failCommit error

	settings *SettingsRepo
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{state: newState(), settings: NewSettingsRepository()}
}

// FailNextCommit hace que el próximo commit falle con err (después de ejecutar fn).
func (s *Store) FailNextCommit(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCommit = err
}

// Settings repositorio clave-valor asociado al almacén.
func (s *Store) Settings() *SettingsRepo { return s.settings }

// Run ejecuta fn sobre una copia del estado y la confirma si todo salió bien.
func (s *Store) Run(ctx context.Context, fn appinventory.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone(false)
	if err := fn(&ProductRepo{st: work}, &MovementRepo{st: work}); err != nil {
		return err
	}
	if s.failCommit != nil {
		err := s.failCommit
		s.failCommit = nil
		return fmt.Errorf("commit transaction: %w", err)
	}
	s.state = work
	return nil
}

// View ejecuta fn sobre una instantánea de solo lectura.
func (s *Store) View(ctx context.Context, fn appinventory.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	s.mu.RLock()
	snap := s.state.clone(true)
	s.mu.RUnlock()
	return fn(&ProductRepo{st: snap}, &MovementRepo{st: snap})
}

// Counts número de productos y movimientos confirmados (tests).
func (s *Store) Counts() (products, movements int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, list := range s.state.movements {
		movements += len(list)
	}
	return len(s.state.products), movements
}

// MovementProductIDs IDs de producto referenciados por algún movimiento (tests de cascada).
func (s *Store) MovementProductIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.state.movements))
	for id, list := range s.state.movements {
		if len(list) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
