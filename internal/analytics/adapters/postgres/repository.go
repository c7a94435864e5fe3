package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"link-analytics-service/internal/analytics/core/domain"
	"link-analytics-service/internal/analytics/core/ports"

	"github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type ClickReader struct {
	db DB
}

func NewClickReader(db DB) *ClickReader {
	return &ClickReader{db: db}
}

var _ ports.ClickReaderPort = (*ClickReader)(nil)

const urlColumns = `id, COALESCE(owner_id, ''), short_code, COALESCE(title, ''), original_url, created_at`

func (r *ClickReader) ListURLsByOwner(ctx context.Context, ownerID string) ([]domain.URL, error) {
	query := `
SELECT ` + urlColumns + `
FROM urls
WHERE owner_id = $1
ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []domain.URL
	for rows.Next() {
		u, err := scanURL(rows)
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return urls, nil
}

func (r *ClickReader) GetURL(ctx context.Context, urlID string) (*domain.URL, error) {
	query := `
SELECT ` + urlColumns + `
FROM urls
WHERE id = $1`

	rows, err := r.db.QueryContext(ctx, query, urlID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ports.ErrURLNotFound
	}

	u, err := scanURL(rows)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *ClickReader) CountClicks(ctx context.Context, f ports.ClickFilter) (ports.ClickCounts, error) {
	where, args := clickWhere(f)
	query := `
SELECT
    COUNT(*) AS clicks,
    COUNT(DISTINCT visitor_key) AS unique_visitors,
    MIN(clicked_at) AS first_click,
    MAX(clicked_at) AS last_click
FROM clicks
WHERE ` + where

	var counts ports.ClickCounts

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return counts, err
	}
	defer rows.Close()

	if rows.Next() {
		var first, last sql.NullTime
		if err := rows.Scan(&counts.Clicks, &counts.UniqueVisitors, &first, &last); err != nil {
			return ports.ClickCounts{}, err
		}
		if first.Valid {
			t := first.Time.UTC()
			counts.FirstClick = &t
		}
		if last.Valid {
			t := last.Time.UTC()
			counts.LastClick = &t
		}
	}

	if err := rows.Err(); err != nil {
		return ports.ClickCounts{}, err
	}

	return counts, nil
}

func (r *ClickReader) ListClicks(ctx context.Context, f ports.ClickFilter) ([]domain.Click, error) {
	where, args := clickWhere(f)
	query := `
SELECT
    url_id,
    clicked_at,
    visitor_key,
    country,
    city,
    device,
    browser,
    referrer_domain
FROM clicks
WHERE ` + where + `
ORDER BY clicked_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clicks []domain.Click
	for rows.Next() {
		var c domain.Click
		if err := rows.Scan(
			&c.URLID,
			&c.Timestamp,
			&c.VisitorKey,
			&c.Country,
			&c.City,
			&c.Device,
			&c.Browser,
			&c.ReferrerDomain,
		); err != nil {
			return nil, err
		}
		c.Timestamp = c.Timestamp.UTC()
		clicks = append(clicks, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clicks, nil
}

// clickWhere builds the WHERE clause shared by the click queries. The time
// bounds are half-open: clicked_at >= From AND clicked_at < To.
func clickWhere(f ports.ClickFilter) (string, []any) {
	where := "url_id = ANY($1)"
	args := []any{pq.Array(f.URLIDs)}
	argIndex := 2

	if f.From != nil {
		where += fmt.Sprintf(" AND clicked_at >= $%d", argIndex)
		args = append(args, f.From.UTC())
		argIndex++
	}
	if f.To != nil {
		where += fmt.Sprintf(" AND clicked_at < $%d", argIndex)
		args = append(args, f.To.UTC())
	}

	return where, args
}

func scanURL(rows RowScanner) (domain.URL, error) {
	var u domain.URL
	err := rows.Scan(&u.ID, &u.OwnerID, &u.ShortCode, &u.Title, &u.OriginalURL, &u.CreatedAt)
	u.CreatedAt = u.CreatedAt.UTC()
	return u, err
}
