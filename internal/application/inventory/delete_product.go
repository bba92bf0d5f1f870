package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/amazone-warehouse/internal/domain"
	"github.com/jhoicas/amazone-warehouse/internal/domain/repository"
)

// DeleteProductUseCase elimina un producto y, en la misma transacción, todo su historial.
type DeleteProductUseCase struct {
	tx TxRunner
	options
}

// NewDeleteProductUseCase construye el caso de uso.
func NewDeleteProductUseCase(tx TxRunner, opts ...Option) *DeleteProductUseCase {
	return &DeleteProductUseCase{tx: tx, options: buildOptions(opts)}
}

// DeleteProduct borra primero los movimientos del producto y luego el producto.
func (uc *DeleteProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	start := time.Now()
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.NewValidationError("id", "es requerido")
	}

	var warehouse string
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, movements repository.MovementRepository) error {
		p, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NewNotFoundError("product", id)
		}
		if _, err := movements.DeleteByProduct(ctx, id); err != nil {
			return err
		}
		deleted, err := products.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NewNotFoundError("product", id)
		}
		warehouse = p.Warehouse
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			uc.metrics.TxFailed(OpDeleteProduct)
		}
		return domain.NewPersistenceError(OpDeleteProduct, err)
	}

	uc.metrics.ProductDeleted()
	uc.metrics.Observe(OpDeleteProduct, start)
	uc.notifier.Publish(ChangeEvent{
		Type:       EventProductDeleted,
		ProductIDs: []string{id},
		Warehouses: []string{warehouse},
		At:         uc.now(),
	})
	return nil
}
