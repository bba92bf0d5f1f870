// seed carga productos de ejemplo en el almacén configurado a partir de un YAML.
//
// Uso: go run ./cmd/seed [ruta/fixtures.yaml]
// Por defecto lee cmd/seed/fixtures.yaml. Usa la misma configuración que la API (DB_DRIVER, SQLITE_PATH, ...).
package main

import (
	"context"
	"os"
	"time"

	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
	"github.com/jhoicas/amazone-warehouse/internal/application/settings"
	"github.com/jhoicas/amazone-warehouse/internal/infrastructure/storage"
	"github.com/jhoicas/amazone-warehouse/pkg/config"
	"github.com/jhoicas/amazone-warehouse/pkg/logger"
)

func main() {
	path := "cmd/seed/fixtures.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("abrir fixtures")
	}
	fixtures, err := parseFixtures(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("fixtures inválidos")
	}
	if fixtures.Warehouse == "" {
		fixtures.Warehouse = cfg.Warehouse.Default
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}

	res, err := apply(ctx, fixtures,
		settings.NewSettingsUseCase(store.Settings, cfg.Warehouse.Names, cfg.Warehouse.Default),
		appinventory.NewAddProductUseCase(store.Tx),
		appinventory.NewMoveProductsUseCase(store.Tx),
		time.Now(),
	)
	if cerr := store.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("cerrar almacén")
	}
	if err != nil {
		log.Error().Err(err).Int("products", res.Products).Msg("seed interrumpido")
		os.Exit(1)
	}
	log.Info().Int("products", res.Products).Int("moves", res.Moves).Str("driver", store.Driver).Msg("seed completado")
}
