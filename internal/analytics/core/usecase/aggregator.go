package usecase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"link-analytics-service/internal/analytics/core/domain"
	"link-analytics-service/internal/analytics/core/ports"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("click store unavailable")
)

const DefaultTopLimit = 10

type DashboardInput struct {
	OwnerUserID string
	Period      string
	Limit       int // top-N size, 0 = aggregator default
}

type URLAnalyticsInput struct {
	URLID       string
	OwnerUserID string
	Period      string
	Limit       int
}

// Aggregator computes dashboard and per-URL analytics from the click store.
// It holds no mutable state and is safe for concurrent use.
type Aggregator struct {
	reader ports.ClickReaderPort
	limit  int
	now    func() time.Time
}

type Option func(*Aggregator)

func WithTopLimit(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.limit = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		if now != nil {
			a.now = now
		}
	}
}

func NewAggregator(reader ports.ClickReaderPort, opts ...Option) *Aggregator {
	a := &Aggregator{
		reader: reader,
		limit:  DefaultTopLimit,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// clickSnapshot is everything read from the store for one computation.
type clickSnapshot struct {
	allTime  ports.ClickCounts
	previous ports.ClickCounts
	current  []domain.Click
}

func (a *Aggregator) ComputeDashboard(ctx context.Context, in DashboardInput) (*domain.DashboardAnalytics, error) {
	window, err := ResolveWindow(in.Period, a.now())
	if err != nil {
		return nil, err
	}
	limit := a.topLimit(in.Limit)

	urls, err := a.reader.ListURLsByOwner(ctx, in.OwnerUserID)
	if err != nil {
		return nil, storeError(err)
	}

	snap, err := a.load(ctx, urlIDs(urls), window)
	if err != nil {
		return nil, err
	}

	totalURLs := int64(len(urls))
	var urlsBefore int64
	for _, u := range urls {
		if u.CreatedAt.Before(window.Start) {
			urlsBefore++
		}
	}

	return &domain.DashboardAnalytics{
		Period: in.Period,
		Window: window,
		Summary: domain.DashboardSummary{
			TotalURLs:       totalURLs,
			TotalClicks:     snap.allTime.Clicks,
			UniqueClicks:    snap.allTime.UniqueVisitors,
			ClicksInPeriod:  int64(len(snap.current)),
			AvgClicksPerURL: ratio(snap.allTime.Clicks, totalURLs),
			ClickRate:       percentage(snap.allTime.UniqueVisitors, snap.allTime.Clicks),
		},
		Comparison: domain.DashboardComparison{
			Clicks:       compare(int64(len(snap.current)), snap.previous.Clicks),
			UniqueClicks: compare(distinctVisitors(snap.current), snap.previous.UniqueVisitors),
			URLs:         compare(totalURLs, urlsBefore),
		},
		ClicksOverTime: dailySeries(snap.current, windowDays(window)),
		TopURLs:        topURLs(urls, snap.current, limit),
		Breakdowns:     breakdowns(snap.current, limit),
	}, nil
}

func (a *Aggregator) ComputeURLAnalytics(ctx context.Context, in URLAnalyticsInput) (*domain.URLAnalytics, error) {
	window, err := ResolveWindow(in.Period, a.now())
	if err != nil {
		return nil, err
	}
	limit := a.topLimit(in.Limit)

	url, err := a.reader.GetURL(ctx, in.URLID)
	if errors.Is(err, ports.ErrURLNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeError(err)
	}
	// anonymous links belong to nobody
	if url.OwnerID == "" || url.OwnerID != in.OwnerUserID {
		return nil, ErrNotFound
	}

	snap, err := a.load(ctx, []string{url.ID}, window)
	if err != nil {
		return nil, err
	}

	series := dailySeries(snap.current, windowDays(window))
	inPeriod := int64(len(snap.current))

	return &domain.URLAnalytics{
		URL:    *url,
		Period: in.Period,
		Window: window,
		Summary: domain.URLSummary{
			TotalClicks:     snap.allTime.Clicks,
			UniqueClicks:    snap.allTime.UniqueVisitors,
			ClicksInPeriod:  inPeriod,
			AvgClicksPerDay: ratio(inPeriod, windowLengthDays(window)),
			PeakDay:         peakDay(series),
			FirstClick:      snap.allTime.FirstClick,
			LastClick:       snap.allTime.LastClick,
		},
		Comparison: domain.URLComparison{
			Clicks:       compare(inPeriod, snap.previous.Clicks),
			UniqueClicks: compare(distinctVisitors(snap.current), snap.previous.UniqueVisitors),
		},
		ClicksOverTime:     series,
		HourlyDistribution: hourlyDistribution(snap.current),
		WeeklyDistribution: weeklyDistribution(snap.current),
		Breakdowns:         breakdowns(snap.current, limit),
	}, nil
}

// load runs the store reads for one computation concurrently. The first
// failure cancels the remaining reads.
func (a *Aggregator) load(ctx context.Context, ids []string, w domain.Window) (*clickSnapshot, error) {
	snap := &clickSnapshot{}
	if len(ids) == 0 {
		return snap, nil
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := a.reader.CountClicks(gctx, ports.ClickFilter{URLIDs: ids})
		snap.allTime = counts
		return err
	})
	g.Go(func() error {
		counts, err := a.reader.CountClicks(gctx, ports.ClickFilter{
			URLIDs: ids,
			From:   &w.PreviousStart,
			To:     &w.PreviousEnd,
		})
		snap.previous = counts
		return err
	})
	g.Go(func() error {
		clicks, err := a.reader.ListClicks(gctx, ports.ClickFilter{
			URLIDs: ids,
			From:   &w.Start,
			To:     &w.End,
		})
		snap.current = clicks
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, storeError(err)
	}
	return snap, nil
}

func (a *Aggregator) topLimit(requested int) int {
	if requested > 0 {
		return requested
	}
	return a.limit
}

func topURLs(urls []domain.URL, clicks []domain.Click, limit int) []domain.TopURL {
	counts := make(map[string]int64, len(urls))
	visitors := make(map[string]visitorSet, len(urls))
	for _, c := range clicks {
		counts[c.URLID]++
		if visitors[c.URLID] == nil {
			visitors[c.URLID] = visitorSet{}
		}
		visitors[c.URLID].add(c.VisitorKey)
	}

	out := make([]domain.TopURL, 0, len(urls))
	for _, u := range urls {
		out = append(out, domain.TopURL{
			ID:           u.ID,
			ShortCode:    u.ShortCode,
			Title:        u.Title,
			OriginalURL:  u.OriginalURL,
			Clicks:       counts[u.ID],
			UniqueClicks: int64(len(visitors[u.ID])),
			CreatedAt:    u.CreatedAt,
		})
	}

	slices.SortFunc(out, func(a, b domain.TopURL) int {
		if c := cmp.Compare(b.Clicks, a.Clicks); c != 0 {
			return c
		}
		if c := cmp.Compare(a.ShortCode, b.ShortCode); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func urlIDs(urls []domain.URL) []string {
	ids := make([]string, 0, len(urls))
	for _, u := range urls {
		ids = append(ids, u.ID)
	}
	return ids
}

func storeError(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
