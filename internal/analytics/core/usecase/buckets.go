package usecase

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"link-analytics-service/internal/analytics/core/domain"
)

const (
	unknownValue = "Unknown"
	directValue  = "Direct"
)

type visitorSet map[string]struct{}

func (s visitorSet) add(key string) { s[key] = struct{}{} }

func distinctVisitors(clicks []domain.Click) int64 {
	seen := make(visitorSet, len(clicks))
	for _, c := range clicks {
		seen.add(c.VisitorKey)
	}
	return int64(len(seen))
}

// dailySeries buckets clicks per UTC day. Every day in days gets an entry,
// including days without clicks.
func dailySeries(clicks []domain.Click, days []time.Time) []domain.DailyClicks {
	counts := make(map[string]int64, len(days))
	visitors := make(map[string]visitorSet, len(days))
	for _, c := range clicks {
		k := dateKey(c.Timestamp)
		counts[k]++
		if visitors[k] == nil {
			visitors[k] = visitorSet{}
		}
		visitors[k].add(c.VisitorKey)
	}

	series := make([]domain.DailyClicks, 0, len(days))
	for _, d := range days {
		k := dateKey(d)
		series = append(series, domain.DailyClicks{
			Date:         k,
			Clicks:       counts[k],
			UniqueClicks: int64(len(visitors[k])),
		})
	}
	return series
}

func hourlyDistribution(clicks []domain.Click) []domain.HourlyClicks {
	var counts [24]int64
	for _, c := range clicks {
		counts[c.Timestamp.UTC().Hour()]++
	}
	out := make([]domain.HourlyClicks, 24)
	for h := range 24 {
		out[h] = domain.HourlyClicks{Hour: h, Clicks: counts[h]}
	}
	return out
}

// weeklyDistribution has one entry per weekday, Sunday first.
func weeklyDistribution(clicks []domain.Click) []domain.WeekdayClicks {
	var counts [7]int64
	for _, c := range clicks {
		counts[c.Timestamp.UTC().Weekday()]++
	}
	out := make([]domain.WeekdayClicks, 7)
	for d := range 7 {
		out[d] = domain.WeekdayClicks{Day: time.Weekday(d).String(), Clicks: counts[d]}
	}
	return out
}

// peakDay picks the busiest day; the earliest date wins ties. It returns
// nil when the series has no clicks at all.
func peakDay(series []domain.DailyClicks) *domain.PeakDay {
	var peak *domain.PeakDay
	for _, d := range series {
		if d.Clicks == 0 {
			continue
		}
		if peak == nil || d.Clicks > peak.Clicks {
			peak = &domain.PeakDay{Date: d.Date, Clicks: d.Clicks}
		}
	}
	return peak
}

type groupKey struct {
	value   string
	country string
}

func breakdowns(clicks []domain.Click, limit int) domain.Breakdowns {
	countries := map[groupKey]int64{}
	cities := map[groupKey]int64{}
	devices := map[groupKey]int64{}
	browsers := map[groupKey]int64{}
	referrers := map[groupKey]int64{}

	for _, c := range clicks {
		country := orDefault(c.Country, unknownValue)
		countries[groupKey{value: country}]++
		cities[groupKey{value: orDefault(c.City, unknownValue), country: country}]++
		devices[groupKey{value: orDefault(c.Device, unknownValue)}]++
		browsers[groupKey{value: orDefault(c.Browser, unknownValue)}]++
		referrers[groupKey{value: orDefault(c.ReferrerDomain, directValue)}]++
	}

	total := int64(len(clicks))
	return domain.Breakdowns{
		Countries: rank(countries, total, limit),
		Cities:    rank(cities, total, limit),
		Devices:   rank(devices, total, limit),
		Browsers:  rank(browsers, total, limit),
		Referrers: rank(referrers, total, limit),
	}
}

// rank orders groups by clicks descending, then by value and country so
// equal counts always come out in the same order.
func rank(groups map[groupKey]int64, total int64, limit int) []domain.Breakdown {
	out := make([]domain.Breakdown, 0, len(groups))
	for k, n := range groups {
		out = append(out, domain.Breakdown{
			Value:      k.value,
			Country:    k.country,
			Clicks:     n,
			Percentage: percentage(n, total),
		})
	}

	slices.SortFunc(out, func(a, b domain.Breakdown) int {
		if c := cmp.Compare(b.Clicks, a.Clicks); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Value, b.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Country, b.Country)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func compare(current, previous int64) domain.Comparison {
	change := current - previous
	var pct float64
	switch {
	case previous != 0:
		pct = float64(change) / float64(previous) * 100
	case current > 0:
		pct = 100
	}
	return domain.Comparison{
		Current:          current,
		Previous:         previous,
		Change:           change,
		ChangePercentage: pct,
	}
}

func ratio(n, d int64) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

func percentage(n, total int64) float64 {
	return ratio(n, total) * 100
}

func orDefault(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, unknownValue) {
		return fallback
	}
	return v
}
