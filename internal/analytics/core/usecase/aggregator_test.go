package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"link-analytics-service/internal/analytics/core/domain"
	"link-analytics-service/internal/analytics/core/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAggregator(reader *fakeClickReader, opts ...usecase.Option) *usecase.Aggregator {
	opts = append([]usecase.Option{usecase.WithClock(fixedClock)}, opts...)
	return usecase.NewAggregator(reader, opts...)
}

func ownedURL(id, owner string, created time.Time) domain.URL {
	return domain.URL{
		ID:          id,
		OwnerID:     owner,
		ShortCode:   "c-" + id,
		Title:       "Link " + id,
		OriginalURL: "https://example.org/" + id,
		CreatedAt:   created,
	}
}

// ------------------------------------------------------------
// DASHBOARD: empty user
// ------------------------------------------------------------

func TestComputeDashboard_NoURLs(t *testing.T) {
	reader := &fakeClickReader{}
	agg := newAggregator(reader)

	res, err := agg.ComputeDashboard(context.Background(), usecase.DashboardInput{
		OwnerUserID: "user-a",
		Period:      "30d",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DashboardSummary{}, res.Summary)
	assert.Equal(t, domain.Comparison{}, res.Comparison.Clicks)
	assert.Equal(t, domain.Comparison{}, res.Comparison.URLs)
	require.Len(t, res.ClicksOverTime, 30)
	for _, d := range res.ClicksOverTime {
		assert.Zero(t, d.Clicks)
		assert.Zero(t, d.UniqueClicks)
	}
	assert.Empty(t, res.TopURLs)
	assert.Empty(t, res.Countries)
	assert.Empty(t, res.Cities)
	assert.Empty(t, res.Devices)
	assert.Empty(t, res.Browsers)
	assert.Empty(t, res.Referrers)
}

// ------------------------------------------------------------
// DASHBOARD: one click yesterday
// ------------------------------------------------------------

func TestComputeDashboard_SingleClickYesterday(t *testing.T) {
	yesterday := fixedNow.Add(-24 * time.Hour)
	reader := &fakeClickReader{
		urls:   []domain.URL{ownedURL("u1", "user-a", fixedNow.AddDate(0, -1, 0))},
		clicks: []domain.Click{click("u1", "v1", yesterday)},
	}
	agg := newAggregator(reader)

	res, err := agg.ComputeDashboard(context.Background(), usecase.DashboardInput{
		OwnerUserID: "user-a",
		Period:      "7d",
	})
	require.NoError(t, err)

	require.Len(t, res.ClicksOverTime, 7)
	withClicks := 0
	for _, d := range res.ClicksOverTime {
		if d.Clicks > 0 {
			withClicks++
			assert.Equal(t, "2026-03-14", d.Date)
			assert.Equal(t, int64(1), d.Clicks)
		}
	}
	assert.Equal(t, 1, withClicks)
	assert.Equal(t, "2026-03-09", res.ClicksOverTime[0].Date)
	assert.Equal(t, "2026-03-15", res.ClicksOverTime[6].Date)

	assert.Equal(t, domain.Comparison{Current: 1, Previous: 0, Change: 1, ChangePercentage: 100}, res.Comparison.Clicks)
	assert.Equal(t, int64(1), res.Summary.ClicksInPeriod)
	assert.Equal(t, 1.0, res.Summary.AvgClicksPerURL)
}

// ------------------------------------------------------------
// DASHBOARD: unique vs total clicks
// ------------------------------------------------------------

func TestComputeDashboard_SameVisitorTwice(t *testing.T) {
	reader := &fakeClickReader{
		urls: []domain.URL{ownedURL("u1", "user-a", fixedNow.AddDate(0, -1, 0))},
		clicks: []domain.Click{
			click("u1", "v1", fixedNow.Add(-2*time.Hour)),
			click("u1", "v1", fixedNow.Add(-time.Hour)),
		},
	}
	agg := newAggregator(reader)

	res, err := agg.ComputeDashboard(context.Background(), usecase.DashboardInput{
		OwnerUserID: "user-a",
		Period:      "24h",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.Summary.TotalClicks)
	assert.Equal(t, int64(1), res.Summary.UniqueClicks)
	assert.Equal(t, 50.0, res.Summary.ClickRate)
	assert.Equal(t, int64(1), res.Comparison.UniqueClicks.Current)
}

func TestComputeDashboard_TotalsAreAllTime(t *testing.T) {
	old := fixedNow.AddDate(-2, 0, 0)
	reader := &fakeClickReader{
		urls: []domain.URL{
			ownedURL("u1", "user-a", old),
			ownedURL("u2", "user-a", fixedNow.Add(-time.Hour)),
			ownedURL("u3", "user-b", old),
		},
		clicks: []domain.Click{
			click("u1", "v1", old.Add(time.Hour)),
			click("u1", "v2", fixedNow.Add(-time.Hour)),
			click("u2", "v2", fixedNow.Add(-time.Minute)),
			click("u3", "v9", fixedNow.Add(-time.Minute)),
		},
	}
	agg := newAggregator(reader)

	res, err := agg.ComputeDashboard(context.Background(), usecase.DashboardInput{
		OwnerUserID: "user-a",
		Period:      "7d",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.Summary.TotalURLs)
	assert.Equal(t, int64(3), res.Summary.TotalClicks)
	assert.Equal(t, int64(2), res.Summary.UniqueClicks)
	assert.Equal(t, int64(2), res.Summary.ClicksInPeriod)
	assert.Equal(t, 1.5, res.Summary.AvgClicksPerURL)

	// u2 was created inside the window
	assert.Equal(t, domain.Comparison{Current: 2, Previous: 1, Change: 1, ChangePercentage: 100}, res.Comparison.URLs)

	require.Len(t, res.TopURLs, 2)
	assert.Equal(t, int64(1), res.TopURLs[0].Clicks)
	assert.Equal(t, "c-u1", res.TopURLs[0].ShortCode)
	assert.Equal(t, "c-u2", res.TopURLs[1].ShortCode)
}

// ------------------------------------------------------------
// PERIODS
// ------------------------------------------------------------

func TestComputeDashboard_InvalidPeriod(t *testing.T) {
	reader := &fakeClickReader{}
	agg := newAggregator(reader)

	res, err := agg.ComputeDashboard(context.Background(), usecase.DashboardInput{
		OwnerUserID: "user-a",
		Period:      "3weeks",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrInvalidPeriod))
	assert.Nil(t, res)
	assert.Zero(t, reader.called.Load(), "store should not be queried for an invalid period")
}

func TestComputeDashboard_SeriesLengthPerPeriod(t *testing.T) {
	expected := map[string]int{
		"1h":  1,
		"24h": 2, // rolling window crosses midnight
		"7d":  7,
		"30d": 30,
		"90d": 90,
		"6m":  182,
		"1y":  365,
	}

	reader := &fakeClickReader{
		urls: []domain.URL{ownedURL("u1", "user-a", fixedNow.AddDate(-2, 0, 0))},
	}
	agg := newAggregator(reader)

	for _, period := range usecase.Periods {
		t.Run(period, func(t *testing.T) {
			res, err := agg.ComputeDashboard(context.Background(), usecase.DashboardInput{
				OwnerUserID: "user-a",
				Period:      period,
			})
			require.NoError(t, err)
			require.Len(t, res.ClicksOverTime, expected[period])

			for i := 1; i < len(res.ClicksOverTime); i++ {
				assert.Less(t, res.ClicksOverTime[i-1].Date, res.ClicksOverTime[i].Date)
			}
		})
	}
}

// ------------------------------------------------------------
// BREAKDOWNS
// ------------------------------------------------------------

func TestComputeDashboard_BreakdownsRankedAndLimited(t *testing.T) {
	reader := &fakeClickReader{
		urls: []domain.URL{ownedURL("u1", "user-a", fixedNow.AddDate(0, -1, 0))},
	}
	browsers := []string{"Chrome", "Chrome", "Chrome", "Safari", "Firefox", "Edge", ""}
	for i, b := range browsers {
		c := click("u1", fmt.Sprintf("v%d", i), fixedNow.Add(-time.Duration(i+1)*time.Hour))
		c.Browser = b
		if i%2 == 0 {
			c.ReferrerDomain = ""
		}
		reader.clicks = append(reader.clicks, c)
	}
	agg := newAggregator(reader, usecase.WithTopLimit(3))

	res, err := agg.ComputeDashboard(context.Background(), usecase.DashboardInput{
		OwnerUserID: "user-a",
		Period:      "7d",
	})
	require.NoError(t, err)

	require.Len(t, res.Browsers, 3)
	assert.Equal(t, "Chrome", res.Browsers[0].Value)
	assert.Equal(t, int64(3), res.Browsers[0].Clicks)
	// single-click browsers tie, so they come out alphabetically
	assert.Equal(t, "Edge", res.Browsers[1].Value)
	assert.Equal(t, "Firefox", res.Browsers[2].Value)

	require.Len(t, res.Referrers, 2)
	assert.Equal(t, "Direct", res.Referrers[0].Value)
	assert.Equal(t, int64(4), res.Referrers[0].Clicks)

	sum := 0.0
	for _, r := range res.Referrers {
		sum += r.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)

	require.Len(t, res.Cities, 1)
	assert.Equal(t, "Berlin", res.Cities[0].Value)
	assert.Equal(t, "Germany", res.Cities[0].Country)
}

func TestComputeDashboard_RequestLimitOverridesDefault(t *testing.T) {
	reader := &fakeClickReader{
		urls: []domain.URL{ownedURL("u1", "user-a", fixedNow.AddDate(0, -1, 0))},
	}
	for i, country := range []string{"France", "Spain", "Italy"} {
		c := click("u1", "v", fixedNow.Add(-time.Duration(i+1)*time.Hour))
		c.Country = country
		reader.clicks = append(reader.clicks, c)
	}
	agg := newAggregator(reader)

	res, err := agg.ComputeDashboard(context.Background(), usecase.DashboardInput{
		OwnerUserID: "user-a",
		Period:      "7d",
		Limit:       1,
	})
	require.NoError(t, err)
	require.Len(t, res.Countries, 1)
	assert.Equal(t, "France", res.Countries[0].Value)
}

// ------------------------------------------------------------
// PURITY
// ------------------------------------------------------------

func TestComputeDashboard_Idempotent(t *testing.T) {
	reader := &fakeClickReader{
		urls: []domain.URL{
			ownedURL("u1", "user-a", fixedNow.AddDate(0, -2, 0)),
			ownedURL("u2", "user-a", fixedNow.AddDate(0, 0, -3)),
		},
	}
	for i := range 40 {
		c := click(fmt.Sprintf("u%d", i%2+1), fmt.Sprintf("v%d", i%7), fixedNow.Add(-time.Duration(i*5)*time.Hour))
		c.Device = []string{"Desktop", "Mobile", "Tablet", "Unknown"}[i%4]
		reader.clicks = append(reader.clicks, c)
	}
	agg := newAggregator(reader)
	in := usecase.DashboardInput{OwnerUserID: "user-a", Period: "30d"}

	first, err := agg.ComputeDashboard(context.Background(), in)
	require.NoError(t, err)
	second, err := agg.ComputeDashboard(context.Background(), in)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

// ------------------------------------------------------------
// STORE ERRORS
// ------------------------------------------------------------

func TestComputeDashboard_StoreError(t *testing.T) {
	reader := &fakeClickReader{
		urls: []domain.URL{ownedURL("u1", "user-a", fixedNow)},
		err:  errors.New("connection refused"),
	}
	agg := newAggregator(reader)

	res, err := agg.ComputeDashboard(context.Background(), usecase.DashboardInput{
		OwnerUserID: "user-a",
		Period:      "7d",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrStoreUnavailable))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Nil(t, res, "no partial result on error")
}

func TestComputeDashboard_ContextCanceled(t *testing.T) {
	reader := &fakeClickReader{
		urls: []domain.URL{ownedURL("u1", "user-a", fixedNow)},
		err:  context.Canceled,
	}
	agg := newAggregator(reader)

	_, err := agg.ComputeDashboard(context.Background(), usecase.DashboardInput{
		OwnerUserID: "user-a",
		Period:      "7d",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, errors.Is(err, usecase.ErrStoreUnavailable))
}

// ------------------------------------------------------------
// URL ANALYTICS
// ------------------------------------------------------------

func TestComputeURLAnalytics_OtherOwner(t *testing.T) {
	reader := &fakeClickReader{
		urls:   []domain.URL{ownedURL("u1", "user-b", fixedNow)},
		clicks: []domain.Click{click("u1", "v1", fixedNow.Add(-time.Hour))},
	}
	agg := newAggregator(reader)

	res, err := agg.ComputeURLAnalytics(context.Background(), usecase.URLAnalyticsInput{
		URLID:       "u1",
		OwnerUserID: "user-a",
		Period:      "7d",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrNotFound))
	assert.Nil(t, res)
}

func TestComputeURLAnalytics_MissingAndAnonymous(t *testing.T) {
	reader := &fakeClickReader{
		urls: []domain.URL{ownedURL("anon", "", fixedNow)},
	}
	agg := newAggregator(reader)

	for _, id := range []string{"missing", "anon"} {
		_, err := agg.ComputeURLAnalytics(context.Background(), usecase.URLAnalyticsInput{
			URLID:       id,
			OwnerUserID: "",
			Period:      "7d",
		})
		assert.True(t, errors.Is(err, usecase.ErrNotFound), "url %s", id)
	}
}

func TestComputeURLAnalytics_InvalidPeriodBeforeLookup(t *testing.T) {
	reader := &fakeClickReader{}
	agg := newAggregator(reader)

	_, err := agg.ComputeURLAnalytics(context.Background(), usecase.URLAnalyticsInput{
		URLID:       "u1",
		OwnerUserID: "user-a",
		Period:      "2d",
	})
	assert.True(t, errors.Is(err, usecase.ErrInvalidPeriod))
	assert.Zero(t, reader.called.Load())
}

func TestComputeURLAnalytics_NoClicks(t *testing.T) {
	reader := &fakeClickReader{
		urls: []domain.URL{ownedURL("u1", "user-a", fixedNow.AddDate(0, 0, -1))},
	}
	agg := newAggregator(reader)

	res, err := agg.ComputeURLAnalytics(context.Background(), usecase.URLAnalyticsInput{
		URLID:       "u1",
		OwnerUserID: "user-a",
		Period:      "30d",
	})
	require.NoError(t, err)

	assert.Nil(t, res.Summary.FirstClick)
	assert.Nil(t, res.Summary.LastClick)
	assert.Nil(t, res.Summary.PeakDay)
	assert.Zero(t, res.Summary.AvgClicksPerDay)
	assert.Len(t, res.ClicksOverTime, 30)
	assert.Len(t, res.HourlyDistribution, 24)
	assert.Len(t, res.WeeklyDistribution, 7)
	assert.Empty(t, res.Countries)
}

func TestComputeURLAnalytics_Distributions(t *testing.T) {
	created := fixedNow.AddDate(-1, 0, 0)
	first := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	reader := &fakeClickReader{
		urls: []domain.URL{ownedURL("u1", "user-a", created)},
		clicks: []domain.Click{
			click("u1", "v0", first),
			// 2026-03-10 is a Tuesday, 2026-03-12 a Thursday
			click("u1", "v1", time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC)),
			click("u1", "v2", time.Date(2026, 3, 10, 9, 45, 0, 0, time.UTC)),
			click("u1", "v1", time.Date(2026, 3, 12, 21, 0, 0, 0, time.UTC)),
			click("u1", "v3", time.Date(2026, 3, 12, 9, 5, 0, 0, time.UTC)),
			click("u1", "v3", time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC)),
		},
	}
	agg := newAggregator(reader)

	res, err := agg.ComputeURLAnalytics(context.Background(), usecase.URLAnalyticsInput{
		URLID:       "u1",
		OwnerUserID: "user-a",
		Period:      "7d",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", res.URL.ID)
	assert.Equal(t, int64(6), res.Summary.TotalClicks)
	assert.Equal(t, int64(4), res.Summary.UniqueClicks)
	assert.Equal(t, int64(5), res.Summary.ClicksInPeriod)
	assert.InDelta(t, 5.0/7.0, res.Summary.AvgClicksPerDay, 1e-9)

	require.NotNil(t, res.Summary.PeakDay)
	assert.Equal(t, domain.PeakDay{Date: "2026-03-10", Clicks: 2}, *res.Summary.PeakDay)

	require.NotNil(t, res.Summary.FirstClick)
	assert.True(t, res.Summary.FirstClick.Equal(first))
	require.NotNil(t, res.Summary.LastClick)
	assert.True(t, res.Summary.LastClick.Equal(time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC)))

	assert.Equal(t, int64(3), res.HourlyDistribution[9].Clicks)
	assert.Equal(t, int64(1), res.HourlyDistribution[21].Clicks)
	assert.Equal(t, 9, res.HourlyDistribution[9].Hour)

	assert.Equal(t, "Sunday", res.WeeklyDistribution[0].Day)
	assert.Equal(t, int64(1), res.WeeklyDistribution[0].Clicks)
	assert.Equal(t, int64(2), res.WeeklyDistribution[2].Clicks)
	assert.Equal(t, int64(2), res.WeeklyDistribution[4].Clicks)

	assert.Equal(t, domain.Comparison{Current: 5, Previous: 0, Change: 5, ChangePercentage: 100}, res.Comparison.Clicks)
	assert.Equal(t, int64(3), res.Comparison.UniqueClicks.Current)
}

func TestComputeURLAnalytics_AvgClicksPerDayRollingPeriods(t *testing.T) {
	var clicks []domain.Click
	for i := range 4 {
		clicks = append(clicks, click("u1", fmt.Sprintf("a%d", i), time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)))
	}
	for i := range 5 {
		clicks = append(clicks, click("u1", fmt.Sprintf("b%d", i), time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC)))
	}
	clicks = append(clicks, click("u1", "c0", time.Date(2026, 3, 15, 11, 30, 0, 0, time.UTC)))

	reader := &fakeClickReader{
		urls:   []domain.URL{ownedURL("u1", "user-a", fixedNow.AddDate(0, -1, 0))},
		clicks: clicks,
	}
	agg := newAggregator(reader)

	tests := []struct {
		period   string
		inPeriod int64
		avg      float64
		days     int
	}{
		// [03-14 12:00, 03-15 12:00) touches two dates but is one day long
		{"24h", 10, 10, 2},
		{"1h", 1, 1, 1},
		{"7d", 10, 10.0 / 7.0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			res, err := agg.ComputeURLAnalytics(context.Background(), usecase.URLAnalyticsInput{
				URLID:       "u1",
				OwnerUserID: "user-a",
				Period:      tt.period,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.inPeriod, res.Summary.ClicksInPeriod)
			assert.InDelta(t, tt.avg, res.Summary.AvgClicksPerDay, 1e-9)
			assert.Len(t, res.ClicksOverTime, tt.days)
		})
	}
}
