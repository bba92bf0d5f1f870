package repository

import (
	"context"

	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para registros de movimiento.
// Los registros son de solo inserción; solo se eliminan en cascada con su producto.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.MovementRecord) error
	// ListByProduct en orden cronológico ascendente.
	ListByProduct(ctx context.Context, productID string) ([]entity.MovementRecord, error)
	ListAll(ctx context.Context) ([]entity.MovementRecord, error)
	// DeleteByProduct devuelve cuántos registros eliminó.
	DeleteByProduct(ctx context.Context, productID string) (int, error)
}
