package ports

import (
	"context"
	"errors"

	"link-analytics-service/internal/clicks/core/domain"
)

// ErrUnknownURL is returned by InsertClick when the click references a URL
// that does not exist.
var ErrUnknownURL = errors.New("unknown url")

type ClickRepositoryPort interface {
	// InsertClick:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> duplicate (idempotent)
	//   created = false, err != nil -> DB error or ErrUnknownURL
	InsertClick(ctx context.Context, c *domain.Click) (created bool, err error)
}

// GeoHints carries location data already resolved upstream, usually by a
// CDN in front of the redirect layer.
type GeoHints struct {
	Country string
	City    string
}

type GeoResolver interface {
	Resolve(ctx context.Context, ip string, hints GeoHints) domain.Location
}
