package usecase_test

import (
	"context"
	"slices"
	"sync/atomic"
	"time"

	"link-analytics-service/internal/analytics/core/domain"
	"link-analytics-service/internal/analytics/core/ports"
)

// fakeClickReader is an in-memory ClickReaderPort. Calls may arrive
// concurrently, so it only reads its fixtures.
type fakeClickReader struct {
	urls   []domain.URL
	clicks []domain.Click

	// err, when set, is returned by every click query
	err    error
	called atomic.Int32
}

func (f *fakeClickReader) ListURLsByOwner(ctx context.Context, ownerID string) ([]domain.URL, error) {
	f.called.Add(1)
	var out []domain.URL
	for _, u := range f.urls {
		if u.OwnerID != "" && u.OwnerID == ownerID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeClickReader) GetURL(ctx context.Context, urlID string) (*domain.URL, error) {
	f.called.Add(1)
	for _, u := range f.urls {
		if u.ID == urlID {
			return &u, nil
		}
	}
	return nil, ports.ErrURLNotFound
}

func (f *fakeClickReader) CountClicks(ctx context.Context, flt ports.ClickFilter) (ports.ClickCounts, error) {
	f.called.Add(1)
	if f.err != nil {
		return ports.ClickCounts{}, f.err
	}
	var counts ports.ClickCounts
	visitors := map[string]struct{}{}
	for _, c := range f.match(flt) {
		counts.Clicks++
		visitors[c.VisitorKey] = struct{}{}
		ts := c.Timestamp
		if counts.FirstClick == nil || ts.Before(*counts.FirstClick) {
			counts.FirstClick = &ts
		}
		if counts.LastClick == nil || ts.After(*counts.LastClick) {
			counts.LastClick = &ts
		}
	}
	counts.UniqueVisitors = int64(len(visitors))
	return counts, nil
}

func (f *fakeClickReader) ListClicks(ctx context.Context, flt ports.ClickFilter) ([]domain.Click, error) {
	f.called.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.match(flt), nil
}

func (f *fakeClickReader) match(flt ports.ClickFilter) []domain.Click {
	var out []domain.Click
	for _, c := range f.clicks {
		if !slices.Contains(flt.URLIDs, c.URLID) {
			continue
		}
		if flt.From != nil && c.Timestamp.Before(*flt.From) {
			continue
		}
		if flt.To != nil && !c.Timestamp.Before(*flt.To) {
			continue
		}
		out = append(out, c)
	}
	return out
}

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func click(urlID, visitor string, ts time.Time) domain.Click {
	return domain.Click{
		URLID:          urlID,
		Timestamp:      ts,
		VisitorKey:     visitor,
		Country:        "Germany",
		City:           "Berlin",
		Device:         "Desktop",
		Browser:        "Firefox",
		ReferrerDomain: "example.com",
	}
}
