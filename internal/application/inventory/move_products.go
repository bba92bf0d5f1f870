package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/amazone-warehouse/internal/domain"
	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
	"github.com/jhoicas/amazone-warehouse/internal/domain/repository"
)

// MoveProductsUseCase mueve un lote de productos a una zona destino.
// Todo el lote se confirma en una sola transacción: o se mueven todos o ninguno.
type MoveProductsUseCase struct {
	tx TxRunner
	options
}

// NewMoveProductsUseCase construye el caso de uso.
func NewMoveProductsUseCase(tx TxRunner, opts ...Option) *MoveProductsUseCase {
	return &MoveProductsUseCase{tx: tx, options: buildOptions(opts)}
}

// MoveProductsInput lote a mover. Warehouse vacío = sin restricción de bodega.
type MoveProductsInput struct {
	ProductIDs []string
	ToZone     entity.ZoneType
	Warehouse  string
}

// MoveProducts devuelve cuántos productos se movieron.
//
// Errores:
//   - ValidationError: lote vacío, zona inválida o algún producto ya está en la zona destino.
//   - NotFoundError: algún ID no existe (o no pertenece a la bodega indicada).
//   - PersistenceError: falló el almacén; no se aplicó ningún cambio del lote.
func (uc *MoveProductsUseCase) MoveProducts(ctx context.Context, in MoveProductsInput) (int, error) {
	start := time.Now()
	ids := normalizeIDs(in.ProductIDs)
	if len(ids) == 0 {
		return 0, domain.NewValidationError("product_ids", "debe incluir al menos un producto")
	}
	if !in.ToZone.IsValid() {
		return 0, domain.NewValidationError("to_zone", "no es una zona válida")
	}
	now := uc.now()

	var moved []*entity.Product
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, movements repository.MovementRepository) error {
		// Primero se cargan y validan todos; ninguna escritura antes de saber que el lote es válido.
		batch := make([]*entity.Product, 0, len(ids))
		for _, id := range ids {
			p, err := products.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if p == nil || (in.Warehouse != "" && p.Warehouse != in.Warehouse) {
				return domain.NewNotFoundError("product", id)
			}
			if err := p.CanMoveTo(in.ToZone); err != nil {
				return err
			}
			batch = append(batch, p)
		}
		for _, p := range batch {
			rec, err := p.MoveTo(in.ToZone, now)
			if err != nil {
				return err
			}
			if err := products.UpdateZone(ctx, p.ID, p.Zone, p.UpdatedAt); err != nil {
				return err
			}
			if err := movements.Create(ctx, &rec); err != nil {
				return err
			}
		}
		moved = batch
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) && !errors.Is(err, domain.ErrNotFound) {
			uc.metrics.TxFailed(OpMoveProducts)
		}
		return 0, domain.NewPersistenceError(OpMoveProducts, err)
	}

	ids = make([]string, 0, len(moved))
	warehouses := make([]string, 0, len(moved))
	for _, p := range moved {
		ids = append(ids, p.ID)
		warehouses = append(warehouses, p.Warehouse)
	}
	uc.metrics.ProductsMoved(len(moved))
	uc.metrics.Observe(OpMoveProducts, start)
	uc.notifier.Publish(ChangeEvent{
		Type:       EventProductsMoved,
		ProductIDs: ids,
		Warehouses: uniqueStrings(warehouses),
		At:         now,
	})
	return len(moved), nil
}

// normalizeIDs recorta espacios, descarta vacíos y repetidos conservando el orden.
func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return uniqueStrings(out)
}
