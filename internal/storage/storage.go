// Package storage opens the configured click store and exposes it through
// the analytics and clicks ports.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	analyticspg "link-analytics-service/internal/analytics/adapters/postgres"
	analyticsports "link-analytics-service/internal/analytics/core/ports"
	clickspg "link-analytics-service/internal/clicks/adapters/postgres"
	clicksports "link-analytics-service/internal/clicks/core/ports"
	"link-analytics-service/internal/platform/config"
	"link-analytics-service/internal/storage/postgres"
	"link-analytics-service/internal/storage/sqlite"

	"github.com/rs/zerolog/log"
)

type Backend struct {
	DB     *sql.DB
	Reader analyticsports.ClickReaderPort
	Clicks clicksports.ClickRepositoryPort
}

func Open(ctx context.Context, cfg config.DatabaseConfig) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.DSN, postgres.PoolConfig{
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
		if err != nil {
			return nil, err
		}

		if cfg.AutoMigrate {
			if err := postgres.EnsureSchema(ctx, db); err != nil {
				db.Close()
				return nil, fmt.Errorf("postgres schema: %w", err)
			}
			log.Info().Msg("postgres schema ensured")
		}

		return &Backend{
			DB:     db,
			Reader: analyticspg.NewClickReader(analyticspg.NewSQLDB(db)),
			Clicks: clickspg.NewClickRepository(clickspg.NewSQLDB(db)),
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}

		if err := sqlite.NewMigrationRunner(db).Run(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}

		store := sqlite.NewStore(db)
		return &Backend{DB: db, Reader: store, Clicks: store}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func (b *Backend) Ping(ctx context.Context) error {
	return b.DB.PingContext(ctx)
}

func (b *Backend) Close() error {
	return b.DB.Close()
}
