package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func Open(ctx context.Context, dsn string, pool PoolConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS urls (
		id           TEXT PRIMARY KEY,
		owner_id     TEXT,
		short_code   TEXT NOT NULL UNIQUE,
		title        TEXT,
		original_url TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS clicks (
		id              UUID PRIMARY KEY,
		url_id          TEXT NOT NULL REFERENCES urls(id) ON DELETE CASCADE,
		clicked_at      TIMESTAMPTZ NOT NULL,
		visitor_key     TEXT NOT NULL,
		country         TEXT NOT NULL DEFAULT 'Unknown',
		city            TEXT NOT NULL DEFAULT 'Unknown',
		device          TEXT NOT NULL DEFAULT 'Unknown',
		browser         TEXT NOT NULL DEFAULT 'Unknown',
		referrer        TEXT,
		referrer_domain TEXT NOT NULL DEFAULT 'Direct',
		dedupe_key      TEXT NOT NULL UNIQUE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_urls_owner ON urls (owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_clicks_url_time ON clicks (url_id, clicked_at)`,
}

// EnsureSchema creates the tables and indexes when missing. Safe to run on
// every start.
func EnsureSchema(ctx context.Context, db Execer) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
