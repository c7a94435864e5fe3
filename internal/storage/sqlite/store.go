package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	analyticsdomain "link-analytics-service/internal/analytics/core/domain"
	analyticsports "link-analytics-service/internal/analytics/core/ports"
	clicksdomain "link-analytics-service/internal/clicks/core/domain"
	clicksports "link-analytics-service/internal/clicks/core/ports"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	_ "modernc.org/sqlite"                               // Local SQLite driver
)

// Open opens a local SQLite file (modernc) or a remote libsql database,
// depending on the DSN.
func Open(dsn string) (*sql.DB, error) {
	driverName := "sqlite"
	if strings.HasPrefix(dsn, "libsql://") || strings.HasPrefix(dsn, "wss://") {
		driverName = "libsql"
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	// every connection to :memory: is a separate database
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Store serves both the click ingestion and the analytics read side.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

var (
	_ clicksports.ClickRepositoryPort = (*Store)(nil)
	_ analyticsports.ClickReaderPort  = (*Store)(nil)
)

// CreateURL registers a short link. URLs are owned by the shortener; this
// exists for local setups and fixtures.
func (s *Store) CreateURL(ctx context.Context, u analyticsdomain.URL) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO urls (id, owner_id, short_code, title, original_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, nullIfEmpty(u.OwnerID), u.ShortCode, nullIfEmpty(u.Title), u.OriginalURL, u.CreatedAt.Unix(),
	)
	return err
}

func (s *Store) InsertClick(ctx context.Context, c *clicksdomain.Click) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM urls WHERE id = ?`, c.URLID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, clicksports.ErrUnknownURL
	}
	if err != nil {
		return false, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO clicks (
			id, url_id, clicked_at, visitor_key, country, city,
			device, browser, referrer, referrer_domain, dedupe_key
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (dedupe_key) DO NOTHING`,
		c.ID, c.URLID, c.Timestamp.Unix(), c.VisitorKey, c.Country, c.City,
		c.Device, c.Browser, nullIfEmpty(c.Referrer), c.ReferrerDomain, c.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

const urlColumns = `id, COALESCE(owner_id, ''), short_code, COALESCE(title, ''), original_url, created_at`

func (s *Store) ListURLsByOwner(ctx context.Context, ownerID string) ([]analyticsdomain.URL, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+urlColumns+` FROM urls WHERE owner_id = ? ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	urls := []analyticsdomain.URL{}
	for rows.Next() {
		u, err := scanURL(rows)
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}

func (s *Store) GetURL(ctx context.Context, urlID string) (*analyticsdomain.URL, error) {
	u, err := scanURL(s.db.QueryRowContext(ctx, `SELECT `+urlColumns+` FROM urls WHERE id = ?`, urlID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, analyticsports.ErrURLNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) CountClicks(ctx context.Context, f analyticsports.ClickFilter) (analyticsports.ClickCounts, error) {
	var out analyticsports.ClickCounts
	if len(f.URLIDs) == 0 {
		return out, nil
	}

	where, args, err := clickWhere(f)
	if err != nil {
		return out, err
	}
	var first, last sql.NullInt64
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT visitor_key), MIN(clicked_at), MAX(clicked_at)
		FROM clicks WHERE `+where, args...,
	).Scan(&out.Clicks, &out.UniqueVisitors, &first, &last)
	if err != nil {
		return out, err
	}

	if first.Valid {
		t := time.Unix(first.Int64, 0).UTC()
		out.FirstClick = &t
	}
	if last.Valid {
		t := time.Unix(last.Int64, 0).UTC()
		out.LastClick = &t
	}
	return out, nil
}

func (s *Store) ListClicks(ctx context.Context, f analyticsports.ClickFilter) ([]analyticsdomain.Click, error) {
	if len(f.URLIDs) == 0 {
		return []analyticsdomain.Click{}, nil
	}

	where, args, err := clickWhere(f)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT url_id, clicked_at, visitor_key, country, city, device, browser, referrer_domain
		FROM clicks WHERE `+where+` ORDER BY clicked_at, id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clicks := []analyticsdomain.Click{}
	for rows.Next() {
		var (
			c  analyticsdomain.Click
			ts int64
		)
		if err := rows.Scan(&c.URLID, &ts, &c.VisitorKey, &c.Country, &c.City, &c.Device, &c.Browser, &c.ReferrerDomain); err != nil {
			return nil, err
		}
		c.Timestamp = time.Unix(ts, 0).UTC()
		clicks = append(clicks, c)
	}
	return clicks, rows.Err()
}

// clickWhere filters on the URL ids passed as a single JSON array, which
// keeps the bind count constant however many URLs an owner has.
func clickWhere(f analyticsports.ClickFilter) (string, []any, error) {
	ids, err := json.Marshal(f.URLIDs)
	if err != nil {
		return "", nil, err
	}
	args := []any{string(ids)}

	var b strings.Builder
	b.WriteString("url_id IN (SELECT value FROM json_each(?))")
	if f.From != nil {
		b.WriteString(" AND clicked_at >= ?")
		args = append(args, ceilUnix(*f.From))
	}
	if f.To != nil {
		b.WriteString(" AND clicked_at < ?")
		args = append(args, ceilUnix(*f.To))
	}
	return b.String(), args, nil
}

// ceilUnix rounds t up to whole seconds, matching the second resolution
// of clicked_at while keeping [From, To) exact.
func ceilUnix(t time.Time) int64 {
	return t.Add(time.Second - time.Nanosecond).Unix()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanURL(r rowScanner) (analyticsdomain.URL, error) {
	var (
		u       analyticsdomain.URL
		created int64
	)
	if err := r.Scan(&u.ID, &u.OwnerID, &u.ShortCode, &u.Title, &u.OriginalURL, &created); err != nil {
		return u, err
	}
	u.CreatedAt = time.Unix(created, 0).UTC()
	return u, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
