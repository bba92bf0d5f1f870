package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
	"github.com/jhoicas/amazone-warehouse/internal/application/settings"
)

// RouterDeps dependencias para el router. Events, Reports y Gatherer en nil
// omiten /api/events, /api/reports y /metrics respectivamente.
type RouterDeps struct {
	AddProduct    *appinventory.AddProductUseCase
	MoveProducts  *appinventory.MoveProductsUseCase
	DeleteProduct *appinventory.DeleteProductUseCase
	Query         *appinventory.QueryUseCase
	Reports       *appinventory.ReportUseCase
	Settings      *settings.SettingsUseCase

	Events       Subscriber
	SSEKeepAlive time.Duration
	Gatherer     prometheus.Gatherer
	ServiceName  string
	Log          zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	// Products
	productHandler := NewProductHandler(deps.AddProduct, deps.DeleteProduct, deps.Query, deps.Settings)
	products := api.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", productHandler.Delete)

	// Zones y dashboard
	dashboardHandler := NewDashboardHandler(deps.Query, deps.Settings)
	api.Get("/zones", dashboardHandler.Zones)
	api.Get("/zones/:zone/products", productHandler.ListByZone)
	api.Get("/dashboard", dashboardHandler.Dashboard)
	api.Get("/deadlines", dashboardHandler.Deadlines)

	// Movements
	movementHandler := NewMovementHandler(deps.MoveProducts, deps.Query, deps.Settings)
	api.Post("/movements", movementHandler.Move)
	api.Get("/movements", movementHandler.History)

	// Reports
	if deps.Reports != nil {
		reportHandler := NewReportHandler(deps.Reports, deps.Settings)
		api.Get("/reports/deadlines.pdf", reportHandler.DeadlinesPDF)
		api.Get("/reports/movements.pdf", reportHandler.MovementsPDF)
	}

	// Settings
	settingsHandler := NewSettingsHandler(deps.Settings)
	st := api.Group("/settings")
	st.Get("/", settingsHandler.Get)
	st.Put("/warehouse", settingsHandler.SelectWarehouse)
	st.Post("/onboarding/complete", settingsHandler.CompleteOnboarding)
	st.Post("/onboarding/reset", settingsHandler.ResetOnboarding)

	if deps.Events != nil {
		eventsHandler := NewEventsHandler(deps.Events, deps.SSEKeepAlive, deps.Log)
		api.Get("/events", eventsHandler.Stream)
	}
}
