package usecase

import (
	"errors"
	"testing"
	"time"

	"link-analytics-service/internal/analytics/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_DivisionGuard(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     domain.Comparison
	}{
		{"both zero", 0, 0, domain.Comparison{}},
		{"from zero", 5, 0, domain.Comparison{Current: 5, Change: 5, ChangePercentage: 100}},
		{"growth", 15, 10, domain.Comparison{Current: 15, Previous: 10, Change: 5, ChangePercentage: 50}},
		{"decline", 5, 10, domain.Comparison{Current: 5, Previous: 10, Change: -5, ChangePercentage: -50}},
		{"to zero", 0, 4, domain.Comparison{Previous: 4, Change: -4, ChangePercentage: -100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compare(tt.current, tt.previous))
		})
	}
}

func TestResolveWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 30, 0, 0, time.UTC)

	w, err := ResolveWindow("7d", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), w.End)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, w.Start, w.PreviousEnd)
	assert.Equal(t, w.End.Sub(w.Start), w.PreviousEnd.Sub(w.PreviousStart))

	w, err = ResolveWindow("1h", now)
	require.NoError(t, err)
	assert.Equal(t, now, w.End)
	assert.Equal(t, now.Add(-time.Hour), w.Start)
	assert.Equal(t, now.Add(-2*time.Hour), w.PreviousStart)

	w, err = ResolveWindow("6m", now)
	require.NoError(t, err)
	assert.Len(t, windowDays(w), 182)

	_, err = ResolveWindow("30D", now)
	assert.True(t, errors.Is(err, ErrInvalidPeriod))
	_, err = ResolveWindow("", now)
	assert.True(t, errors.Is(err, ErrInvalidPeriod))
}

func TestResolveWindow_NonUTCClock(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 2026-03-16 02:00 in UTC+9 is still 2026-03-15 in UTC
	now := time.Date(2026, 3, 16, 2, 0, 0, 0, loc)

	w, err := ResolveWindow("30d", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), w.End)

	days := windowDays(w)
	require.Len(t, days, 30)
	assert.Equal(t, "2026-03-15", dateKey(days[29]))
}

func TestPeakDay_EarliestWinsTies(t *testing.T) {
	series := []domain.DailyClicks{
		{Date: "2026-03-01", Clicks: 1},
		{Date: "2026-03-02", Clicks: 4},
		{Date: "2026-03-03", Clicks: 4},
		{Date: "2026-03-04", Clicks: 0},
	}
	assert.Equal(t, &domain.PeakDay{Date: "2026-03-02", Clicks: 4}, peakDay(series))
	assert.Nil(t, peakDay([]domain.DailyClicks{{Date: "2026-03-01"}}))
}

func TestRank_NormalisesMissingValues(t *testing.T) {
	clicks := []domain.Click{
		{Country: "", City: "", Device: "unknown", Browser: " ", ReferrerDomain: ""},
		{Country: "Japan", City: "Osaka", Device: "Mobile", Browser: "Safari", ReferrerDomain: "t.co"},
	}

	b := breakdowns(clicks, 10)

	require.Len(t, b.Countries, 2)
	assert.Equal(t, "Japan", b.Countries[0].Value)
	assert.Equal(t, "Unknown", b.Countries[1].Value)
	assert.Equal(t, 50.0, b.Countries[1].Percentage)

	assert.Equal(t, "Unknown", b.Devices[1].Value)
	assert.Equal(t, "Unknown", b.Browsers[1].Value)
	assert.Equal(t, "Direct", b.Referrers[0].Value)
	assert.Equal(t, "Unknown", b.Cities[1].Value)
	assert.Equal(t, "Unknown", b.Cities[1].Country)
}

func TestWindowLengthDays(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 30, 0, 0, time.UTC)

	for period, want := range map[string]int64{"1h": 1, "24h": 1, "7d": 7, "30d": 30, "6m": 182, "1y": 365} {
		w, err := ResolveWindow(period, now)
		require.NoError(t, err)
		assert.Equal(t, want, windowLengthDays(w), period)
	}
}
