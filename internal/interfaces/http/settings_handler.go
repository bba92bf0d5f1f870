package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/amazone-warehouse/internal/application/dto"
	"github.com/jhoicas/amazone-warehouse/internal/application/settings"
)

// SettingsHandler onboarding y bodega activa.
type SettingsHandler struct {
	uc *settings.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *settings.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Preferencias
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return h.respond(c)
}

// SelectWarehouse godoc
// @Summary      Cambiar bodega activa
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectWarehouseRequest  true  "Bodega"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/warehouse [put]
func (h *SettingsHandler) SelectWarehouse(c *fiber.Ctx) error {
	var in dto.SelectWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.SelectWarehouse(c.Context(), in.Warehouse); err != nil {
		return writeError(c, err)
	}
	return h.respond(c)
}

// CompleteOnboarding godoc
// @Summary      Marcar onboarding como completado
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings/onboarding/complete [post]
func (h *SettingsHandler) CompleteOnboarding(c *fiber.Ctx) error {
	if err := h.uc.CompleteOnboarding(c.Context()); err != nil {
		return writeError(c, err)
	}
	return h.respond(c)
}

// ResetOnboarding godoc
// @Summary      Volver a mostrar el onboarding
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings/onboarding/reset [post]
func (h *SettingsHandler) ResetOnboarding(c *fiber.Ctx) error {
	if err := h.uc.ResetOnboarding(c.Context()); err != nil {
		return writeError(c, err)
	}
	return h.respond(c)
}

func (h *SettingsHandler) respond(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
