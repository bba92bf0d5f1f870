package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/amazone-warehouse/internal/application/dto"
	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
)

// AddProductFromRequest adapta el request HTTP al caso de uso AddProduct.
// defaultWarehouse se usa cuando el request no trae bodega (bodega seleccionada en ajustes).
func (uc *AddProductUseCase) AddProductFromRequest(ctx context.Context, defaultWarehouse string, in dto.CreateProductRequest) (string, error) {
	zone, err := entity.ParseZone(in.Zone)
	if err != nil {
		return "", err
	}
	warehouse := strings.TrimSpace(in.Warehouse)
	if warehouse == "" {
		warehouse = defaultWarehouse
	}
	input := AddProductInput{
		Name:           in.Name,
		SKU:            in.SKU,
		Zone:           zone,
		Warehouse:      warehouse,
		ExpirationDate: in.ExpirationDate,
	}
	if in.ArrivalDate != nil {
		input.ArrivalDate = *in.ArrivalDate
	}
	return uc.AddProduct(ctx, input)
}

// MoveProductsFromRequest adapta el request HTTP al caso de uso MoveProducts.
func (uc *MoveProductsUseCase) MoveProductsFromRequest(ctx context.Context, in dto.MoveProductsRequest) (*dto.MoveProductsResponse, error) {
	zone, err := entity.ParseZone(in.ToZone)
	if err != nil {
		return nil, err
	}
	moved, err := uc.MoveProducts(ctx, MoveProductsInput{
		ProductIDs: in.ProductIDs,
		ToZone:     zone,
		Warehouse:  strings.TrimSpace(in.Warehouse),
	})
	if err != nil {
		return nil, err
	}
	return &dto.MoveProductsResponse{Moved: moved}, nil
}
