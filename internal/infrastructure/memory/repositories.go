package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
	"github.com/jhoicas/amazone-warehouse/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.MovementRepository = (*MovementRepo)(nil)
	_ repository.SettingsRepository = (*SettingsRepo)(nil)
)

// ProductRepo productos sobre el estado de una transacción.
type ProductRepo struct {
	st *state
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	if r.st.readOnly {
		return errReadOnly
	}
	if _, ok := r.st.products[product.ID]; ok {
		return fmt.Errorf("insert product: id duplicado %s", product.ID)
	}
	row := product.Clone()
	row.History = nil
	r.st.products[product.ID] = row
	r.st.order = append(r.st.order, product.ID)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.st.withHistory(id), nil
}

func (r *ProductRepo) UpdateZone(_ context.Context, id string, zone entity.ZoneType, updatedAt time.Time) error {
	if r.st.readOnly {
		return errReadOnly
	}
	p, ok := r.st.products[id]
	if !ok {
		return fmt.Errorf("update product zone: %s no existe", id)
	}
	p.Zone = zone
	p.UpdatedAt = updatedAt
	return nil
}

func (r *ProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(r.st.order))
	for _, id := range r.st.order {
		if p := r.st.withHistory(id); p != nil {
			list = append(list, p)
		}
	}
	return list, nil
}

// Delete falla si el producto aún tiene movimientos (equivalente a la FK en SQL).
func (r *ProductRepo) Delete(_ context.Context, id string) (bool, error) {
	if r.st.readOnly {
		return false, errReadOnly
	}
	if _, ok := r.st.products[id]; !ok {
		return false, nil
	}
	if len(r.st.movements[id]) > 0 {
		return false, fmt.Errorf("delete product: %s aún tiene movimientos", id)
	}
	delete(r.st.products, id)
	delete(r.st.movements, id)
	for i, oid := range r.st.order {
		if oid == id {
			r.st.order = append(r.st.order[:i], r.st.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// MovementRepo movimientos sobre el estado de una transacción.
type MovementRepo struct {
	st *state
}

// Create falla si el producto dueño no existe (equivalente a la FK en SQL).
func (r *MovementRepo) Create(_ context.Context, movement *entity.MovementRecord) error {
	if r.st.readOnly {
		return errReadOnly
	}
	if _, ok := r.st.products[movement.ProductID]; !ok {
		return fmt.Errorf("create movement: producto %s no existe", movement.ProductID)
	}
	r.st.movements[movement.ProductID] = append(r.st.movements[movement.ProductID], cloneMovements([]entity.MovementRecord{*movement})[0])
	return nil
}

func (r *MovementRepo) ListByProduct(_ context.Context, productID string) ([]entity.MovementRecord, error) {
	list := cloneMovements(r.st.movements[productID])
	sort.SliceStable(list, func(i, j int) bool { return list[i].Before(list[j]) })
	return list, nil
}

func (r *MovementRepo) ListAll(_ context.Context) ([]entity.MovementRecord, error) {
	var list []entity.MovementRecord
	for _, id := range r.st.order {
		list = append(list, cloneMovements(r.st.movements[id])...)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Before(list[j]) })
	return list, nil
}

func (r *MovementRepo) DeleteByProduct(_ context.Context, productID string) (int, error) {
	if r.st.readOnly {
		return 0, errReadOnly
	}
	n := len(r.st.movements[productID])
	delete(r.st.movements, productID)
	return n, nil
}

// SettingsRepo almacén clave-valor en memoria.
type SettingsRepo struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewSettingsRepository crea un almacén de ajustes vacío.
func NewSettingsRepository() *SettingsRepo {
	return &SettingsRepo{values: map[string]string{}}
}

func (r *SettingsRepo) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *SettingsRepo) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}
