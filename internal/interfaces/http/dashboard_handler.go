package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/amazone-warehouse/internal/application/dto"
	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
	"github.com/jhoicas/amazone-warehouse/internal/application/settings"
	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
)

// DashboardHandler zonas, tablero y vencimientos.
type DashboardHandler struct {
	query    *appinventory.QueryUseCase
	settings *settings.SettingsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(query *appinventory.QueryUseCase, settingsUC *settings.SettingsUseCase) *DashboardHandler {
	return &DashboardHandler{query: query, settings: settingsUC}
}

// Zones godoc
// @Summary      Zonas disponibles
// @Tags         zones
// @Produce      json
// @Success      200  {array}  dto.ZoneResponse
// @Router       /api/zones [get]
func (h *DashboardHandler) Zones(c *fiber.Ctx) error {
	zones := entity.AllZones()
	out := make([]dto.ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, dto.ZoneResponse{Zone: z.String(), Icon: z.IconName()})
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Tablero de la bodega
// @Description  Cantidad de productos por zona.
// @Tags         dashboard
// @Produce      json
// @Param        warehouse  query  string  false  "Bodega (por defecto la seleccionada)"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	warehouse, err := h.settings.ResolveWarehouse(c.Context(), c.Query("warehouse"))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.query.Dashboard(c.Context(), warehouse)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Deadlines godoc
// @Summary      Vencimientos
// @Description  Productos con fecha de vencimiento, del más próximo al más lejano, con días restantes y estado.
// @Tags         dashboard
// @Produce      json
// @Param        warehouse  query  string  false  "Bodega (por defecto la seleccionada)"
// @Success      200  {object}  dto.DeadlineListResponse
// @Router       /api/deadlines [get]
func (h *DashboardHandler) Deadlines(c *fiber.Ctx) error {
	warehouse, err := h.settings.ResolveWarehouse(c.Context(), c.Query("warehouse"))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.query.Deadlines(c.Context(), warehouse)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
