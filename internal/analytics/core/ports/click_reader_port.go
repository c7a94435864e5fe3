package ports

import (
	"context"
	"errors"
	"time"

	"link-analytics-service/internal/analytics/core/domain"
)

var ErrURLNotFound = errors.New("url not found")

// ClickFilter selects clicks of the given URLs. From/To are optional and
// bound a half-open interval [From, To).
type ClickFilter struct {
	URLIDs []string
	From   *time.Time
	To     *time.Time
}

type ClickCounts struct {
	Clicks         int64
	UniqueVisitors int64
	FirstClick     *time.Time
	LastClick      *time.Time
}

type ClickReaderPort interface {
	ListURLsByOwner(ctx context.Context, ownerID string) ([]domain.URL, error)
	// GetURL returns ErrURLNotFound when no URL has the id.
	GetURL(ctx context.Context, urlID string) (*domain.URL, error)
	CountClicks(ctx context.Context, f ClickFilter) (ClickCounts, error)
	ListClicks(ctx context.Context, f ClickFilter) ([]domain.Click, error)
}
