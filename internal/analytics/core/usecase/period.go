package usecase

import (
	"fmt"
	"time"

	"link-analytics-service/internal/analytics/core/domain"
)

const day = 24 * time.Hour

type periodSpec struct {
	length time.Duration
	// aligned windows end at the next UTC midnight so they cover whole days
	aligned bool
}

var periods = map[string]periodSpec{
	"1h":  {length: time.Hour},
	"24h": {length: day},
	"7d":  {length: 7 * day, aligned: true},
	"30d": {length: 30 * day, aligned: true},
	"90d": {length: 90 * day, aligned: true},
	"6m":  {length: 182 * day, aligned: true},
	"1y":  {length: 365 * day, aligned: true},
}

// Periods lists the accepted symbolic periods, shortest first.
var Periods = []string{"1h", "24h", "7d", "30d", "90d", "6m", "1y"}

// ResolveWindow maps a symbolic period to its aggregation window relative
// to now.
func ResolveWindow(period string, now time.Time) (domain.Window, error) {
	p, ok := periods[period]
	if !ok {
		return domain.Window{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	end := now.UTC()
	if p.aligned {
		end = truncateDay(end).Add(day)
	}
	start := end.Add(-p.length)

	return domain.Window{
		Start:         start,
		End:           end,
		PreviousStart: start.Add(-p.length),
		PreviousEnd:   start,
	}, nil
}

// windowDays returns every UTC date touched by [w.Start, w.End), ascending.
func windowDays(w domain.Window) []time.Time {
	var days []time.Time
	last := w.End.Add(-time.Nanosecond)
	for d := truncateDay(w.Start); !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// windowLengthDays is the window length in whole days, at least 1. Rolling
// sub-day windows count as one day.
func windowLengthDays(w domain.Window) int64 {
	return max(1, int64(w.End.Sub(w.Start)/day))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
