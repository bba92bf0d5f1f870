package repository

import (
	"context"
	"time"

	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven el producto con su historial cargado.
type ProductRepository interface {
	// Create persiste solo la fila del producto; el historial va por MovementRepository.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	UpdateZone(ctx context.Context, id string, zone entity.ZoneType, updatedAt time.Time) error
	ListAll(ctx context.Context) ([]*entity.Product, error)
	// Delete devuelve false si no existía. Los movimientos deben eliminarse antes.
	Delete(ctx context.Context, id string) (bool, error)
}
