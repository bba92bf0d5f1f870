package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/amazone-warehouse/internal/domain"
	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
	"github.com/jhoicas/amazone-warehouse/internal/domain/repository"
)

// AddProductUseCase registra un producto y su movimiento de llegada en una sola transacción.
type AddProductUseCase struct {
	tx TxRunner
	options
}

// NewAddProductUseCase construye el caso de uso.
func NewAddProductUseCase(tx TxRunner, opts ...Option) *AddProductUseCase {
	return &AddProductUseCase{tx: tx, options: buildOptions(opts)}
}

// AddProductInput datos de alta. ExpirationDate es opcional.
type AddProductInput struct {
	Name           string
	SKU            string
	Zone           entity.ZoneType
	Warehouse      string
	ArrivalDate    time.Time
	ExpirationDate *time.Time
}

// AddProduct valida la entrada antes de tocar el almacén y confirma producto + registro
// de llegada juntos. Si el commit falla no queda ninguno de los dos.
func (uc *AddProductUseCase) AddProduct(ctx context.Context, in AddProductInput) (string, error) {
	start := time.Now()
	product, err := entity.NewProduct(entity.NewProductParams{
		Name:           in.Name,
		SKU:            in.SKU,
		Zone:           in.Zone,
		Warehouse:      in.Warehouse,
		ArrivalDate:    in.ArrivalDate,
		ExpirationDate: in.ExpirationDate,
	}, uc.now())
	if err != nil {
		return "", err
	}

	err = uc.tx.Run(ctx, func(products repository.ProductRepository, movements repository.MovementRepository) error {
		if err := products.Create(ctx, product); err != nil {
			return err
		}
		return movements.Create(ctx, &product.History[0])
	})
	if err != nil {
		uc.metrics.TxFailed(OpAddProduct)
		return "", domain.NewPersistenceError(OpAddProduct, err)
	}

	uc.metrics.ProductCreated()
	uc.metrics.Observe(OpAddProduct, start)
	uc.notifier.Publish(ChangeEvent{
		Type:       EventProductCreated,
		ProductIDs: []string{product.ID},
		Warehouses: []string{product.Warehouse},
		At:         product.CreatedAt,
	})
	return product.ID, nil
}
