package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/amazone-warehouse/internal/application/dto"
	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
	"github.com/jhoicas/amazone-warehouse/internal/application/settings"
	inv "github.com/jhoicas/amazone-warehouse/internal/domain/inventory"
)

// MovementHandler movimientos entre zonas e historial.
type MovementHandler struct {
	move     *appinventory.MoveProductsUseCase
	query    *appinventory.QueryUseCase
	settings *settings.SettingsUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(move *appinventory.MoveProductsUseCase, query *appinventory.QueryUseCase, settingsUC *settings.SettingsUseCase) *MovementHandler {
	return &MovementHandler{move: move, query: query, settings: settingsUC}
}

// Move godoc
// @Summary      Mover productos
// @Description  Mueve todo el lote a la zona destino en una sola transacción: o se mueven todos o ninguno.
// @Description  Solo productos de la bodega indicada (por defecto la seleccionada); el resto da 404.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MoveProductsRequest  true  "product_ids, to_zone, warehouse (opcional)"
// @Success      200   {object}  dto.MoveProductsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveProductsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	warehouse, err := h.settings.ResolveWarehouse(c.Context(), in.Warehouse)
	if err != nil {
		return writeError(c, err)
	}
	in.Warehouse = warehouse
	out, err := h.move.MoveProductsFromRequest(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de movimientos
// @Tags         movements
// @Produce      json
// @Param        period     query  string  false  "today | week | month"  default(month)
// @Param        from       query  string  false  "Texto sobre la zona origen (Arrival para llegadas)"
// @Param        to         query  string  false  "Texto sobre la zona destino"
// @Param        warehouse  query  string  false  "Bodega (por defecto la seleccionada)"
// @Success      200  {object}  dto.MovementHistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	q, err := historyQuery(c, h.settings)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.query.MovementHistory(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func historyQuery(c *fiber.Ctx, settingsUC *settings.SettingsUseCase) (appinventory.MovementHistoryQuery, error) {
	period, err := inv.ParsePeriod(c.Query("period"))
	if err != nil {
		return appinventory.MovementHistoryQuery{}, err
	}
	warehouse, err := settingsUC.ResolveWarehouse(c.Context(), c.Query("warehouse"))
	if err != nil {
		return appinventory.MovementHistoryQuery{}, err
	}
	return appinventory.MovementHistoryQuery{
		Warehouse: warehouse,
		Period:    period,
		From:      c.Query("from"),
		To:        c.Query("to"),
	}, nil
}
