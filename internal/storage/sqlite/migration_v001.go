package sqlite

import "database/sql"

// migrateV001 creates the urls and clicks tables. Timestamps are unix
// seconds so range filters compare numerically on every driver.
func migrateV001(tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS urls (
			id           TEXT PRIMARY KEY,
			owner_id     TEXT,
			short_code   TEXT NOT NULL UNIQUE,
			title        TEXT,
			original_url TEXT NOT NULL,
			created_at   INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS clicks (
			id              TEXT PRIMARY KEY,
			url_id          TEXT NOT NULL REFERENCES urls(id) ON DELETE CASCADE,
			clicked_at      INTEGER NOT NULL,
			visitor_key     TEXT NOT NULL,
			country         TEXT NOT NULL DEFAULT 'Unknown',
			city            TEXT NOT NULL DEFAULT 'Unknown',
			device          TEXT NOT NULL DEFAULT 'Unknown',
			browser         TEXT NOT NULL DEFAULT 'Unknown',
			referrer        TEXT,
			referrer_domain TEXT NOT NULL DEFAULT 'Direct',
			dedupe_key      TEXT NOT NULL UNIQUE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_urls_owner ON urls(owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_clicks_url_time ON clicks(url_id, clicked_at)`,
	}

	for _, s := range stmts {
		if _, err := tx.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
