package postgres

import (
	"context"
	"errors"

	"link-analytics-service/internal/clicks/core/domain"
	"link-analytics-service/internal/clicks/core/ports"

	"github.com/lib/pq"
)

// foreign_key_violation
const fkViolation pq.ErrorCode = "23503"

type ClickRepository struct {
	db DB
}

func NewClickRepository(db DB) *ClickRepository {
	return &ClickRepository{db: db}
}

var _ ports.ClickRepositoryPort = (*ClickRepository)(nil)

const insertClickSQL = `
INSERT INTO clicks (
    id,
    url_id,
    clicked_at,
    visitor_key,
    country,
    city,
    device,
    browser,
    referrer,
    referrer_domain,
    dedupe_key
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8, $9, $10, $11
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *ClickRepository) InsertClick(ctx context.Context, c *domain.Click) (bool, error) {
	var referrer any
	if c.Referrer != "" {
		referrer = c.Referrer
	}

	res, err := r.db.ExecContext(ctx, insertClickSQL,
		c.ID,
		c.URLID,
		c.Timestamp,
		c.VisitorKey,
		c.Country,
		c.City,
		c.Device,
		c.Browser,
		referrer,
		c.ReferrerDomain,
		c.DedupeKey,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == fkViolation {
			return false, ports.ErrUnknownURL
		}
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}
