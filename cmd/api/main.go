package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
	"github.com/jhoicas/amazone-warehouse/internal/application/settings"
	inv "github.com/jhoicas/amazone-warehouse/internal/domain/inventory"
	"github.com/jhoicas/amazone-warehouse/internal/infrastructure/events"
	"github.com/jhoicas/amazone-warehouse/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/amazone-warehouse/internal/infrastructure/pdf"
	"github.com/jhoicas/amazone-warehouse/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/amazone-warehouse/internal/interfaces/http"
	"github.com/jhoicas/amazone-warehouse/pkg/config"
	"github.com/jhoicas/amazone-warehouse/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("abrir almacén")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar almacén")
		}
	}()

	broker := events.NewBroker(log.Component("events").Zerolog(), 64)
	defer broker.Close()

	opts := []appinventory.Option{appinventory.WithNotifier(broker)}
	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts = append(opts, appinventory.WithMetrics(metrics.New(reg)))
		metrics.RegisterBroker(reg, broker)
		gatherer = reg
	}

	policy := inv.DeadlinePolicy{NearExpiryDays: cfg.Warehouse.NearExpiryDays}
	queryUC := appinventory.NewQueryUseCase(store.Tx, policy, opts...)
	reportUC := appinventory.NewReportUseCase(queryUC, infrapdf.NewReportGenerator(cfg.App.Name), opts...)
	settingsUC := settings.NewSettingsUseCase(store.Settings, cfg.Warehouse.Names, cfg.Warehouse.Default)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log.Component("http").Zerolog()),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http").Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs (requiere swag init)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Ama Zone Warehouse API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AddProduct:    appinventory.NewAddProductUseCase(store.Tx, opts...),
		MoveProducts:  appinventory.NewMoveProductsUseCase(store.Tx, opts...),
		DeleteProduct: appinventory.NewDeleteProductUseCase(store.Tx, opts...),
		Query:         queryUC,
		Reports:       reportUC,
		Settings:      settingsUC,
		Events:        broker,
		Gatherer:      gatherer,
		ServiceName:   cfg.App.Name,
		Log:           log.Component("sse").Zerolog(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	// los streams SSE terminan al cerrar el broker
	broker.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
