package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
	"github.com/jhoicas/amazone-warehouse/internal/application/settings"
)

// ReportHandler descarga de reportes PDF.
type ReportHandler struct {
	reports  *appinventory.ReportUseCase
	settings *settings.SettingsUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *appinventory.ReportUseCase, settingsUC *settings.SettingsUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, settings: settingsUC}
}

// DeadlinesPDF godoc
// @Summary      Reporte PDF de vencimientos
// @Tags         reports
// @Produce      application/pdf
// @Param        warehouse  query  string  false  "Bodega (por defecto la seleccionada)"
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/deadlines.pdf [get]
func (h *ReportHandler) DeadlinesPDF(c *fiber.Ctx) error {
	warehouse, err := h.settings.ResolveWarehouse(c.Context(), c.Query("warehouse"))
	if err != nil {
		return writeError(c, err)
	}
	pdf, filename, err := h.reports.DeadlinesPDF(c.Context(), warehouse)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// MovementsPDF godoc
// @Summary      Reporte PDF del historial de movimientos
// @Tags         reports
// @Produce      application/pdf
// @Param        period     query  string  false  "today | week | month"  default(month)
// @Param        from       query  string  false  "Texto sobre la zona origen"
// @Param        to         query  string  false  "Texto sobre la zona destino"
// @Param        warehouse  query  string  false  "Bodega (por defecto la seleccionada)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements.pdf [get]
func (h *ReportHandler) MovementsPDF(c *fiber.Ctx) error {
	q, err := historyQuery(c, h.settings)
	if err != nil {
		return writeError(c, err)
	}
	pdf, filename, err := h.reports.MovementsPDF(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Send(pdf)
}
