package postgres

import (
	"context"
	"database/sql"
)

type sqlDB struct {
	db *sql.DB
}

// NewSQLDB adapts a *sql.DB to DB. *sql.Rows already satisfies RowScanner.
func NewSQLDB(db *sql.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
