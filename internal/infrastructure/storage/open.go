// Package storage elige el backend del almacén local según DB_DRIVER.
package storage

import (
	"context"
	"fmt"

	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
	"github.com/jhoicas/amazone-warehouse/internal/domain/repository"
	"github.com/jhoicas/amazone-warehouse/internal/infrastructure/memory"
	"github.com/jhoicas/amazone-warehouse/internal/infrastructure/postgres"
	"github.com/jhoicas/amazone-warehouse/internal/infrastructure/sqlite"
	"github.com/jhoicas/amazone-warehouse/pkg/config"
	"github.com/jhoicas/amazone-warehouse/pkg/logger"
)

// Store runner transaccional y preferencias sobre el mismo backend.
type Store struct {
	Driver   string
	Tx       appinventory.TxRunner
	Settings repository.SettingsRepository

	close func() error
}

// Open abre el backend configurado y aplica su esquema.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", cfg.Driver).Str("path", cfg.SQLitePath).Msg("almacén abierto")
		return &Store{
			Driver:   cfg.Driver,
			Tx:       sqlite.NewTxRunner(db),
			Settings: sqlite.NewSettingsRepository(db),
			close:    db.Close,
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", cfg.Driver).Str("host", cfg.Host).Str("db", cfg.DBName).Msg("almacén abierto")
		return &Store{
			Driver:   cfg.Driver,
			Tx:       postgres.NewTxRunner(pool),
			Settings: postgres.NewSettingsRepository(pool),
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil

	case config.DriverMemory:
		mem := memory.NewStore()
		log.Warn().Str("driver", cfg.Driver).Msg("almacén en memoria: los datos se pierden al salir")
		return &Store{
			Driver:   cfg.Driver,
			Tx:       mem,
			Settings: mem.Settings(),
			close:    func() error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("storage: driver %q no soportado", cfg.Driver)
	}
}

// Close libera las conexiones del backend.
func (s *Store) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}
