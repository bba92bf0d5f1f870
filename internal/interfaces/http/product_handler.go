package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/amazone-warehouse/internal/application/dto"
	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
	"github.com/jhoicas/amazone-warehouse/internal/application/settings"
	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
)

// ProductHandler alta, ficha, baja y listado por zona.
type ProductHandler struct {
	add      *appinventory.AddProductUseCase
	del      *appinventory.DeleteProductUseCase
	query    *appinventory.QueryUseCase
	settings *settings.SettingsUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(
	add *appinventory.AddProductUseCase,
	del *appinventory.DeleteProductUseCase,
	query *appinventory.QueryUseCase,
	settingsUC *settings.SettingsUseCase,
) *ProductHandler {
	return &ProductHandler{add: add, del: del, query: query, settings: settingsUC}
}

// Create godoc
// @Summary      Registrar producto
// @Description  Crea el producto y su registro de llegada. warehouse vacío = bodega seleccionada.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	warehouse, err := h.settings.ResolveWarehouse(c.Context(), in.Warehouse)
	if err != nil {
		return writeError(c, err)
	}
	id, err := h.add.AddProductFromRequest(c.Context(), warehouse, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateProductResponse{ID: id})
}

// GetByID godoc
// @Summary      Ficha de producto
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Elimina el producto junto con todo su historial de movimientos.
// @Tags         products
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.del.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByZone godoc
// @Summary      Productos de una zona
// @Tags         zones
// @Produce      json
// @Param        zone       path   string  true   "Coming | Shipment | Defective | Seasonal"
// @Param        warehouse  query  string  false  "Bodega (por defecto la seleccionada)"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/zones/{zone}/products [get]
func (h *ProductHandler) ListByZone(c *fiber.Ctx) error {
	zone, err := entity.ParseZone(c.Params("zone"))
	if err != nil {
		return writeError(c, err)
	}
	warehouse, err := h.settings.ResolveWarehouse(c.Context(), c.Query("warehouse"))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.query.Products(c.Context(), warehouse, &zone)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
