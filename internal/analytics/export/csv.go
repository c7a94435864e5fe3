// Package export flattens analytics results into CSV. Every row is
// section,key,value,extra.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"link-analytics-service/internal/analytics/core/domain"
)

var header = []string{"section", "key", "value", "extra"}

func WriteDashboardCSV(w io.Writer, res *domain.DashboardAnalytics) error {
	cw := csv.NewWriter(w)
	rows := [][]string{header}

	rows = append(rows,
		row("period", "period", res.Period, ""),
		row("window", "start", res.Window.Start.Format(time.RFC3339), ""),
		row("window", "end", res.Window.End.Format(time.RFC3339), ""),
		row("summary", "totalUrls", itoa(res.Summary.TotalURLs), ""),
		row("summary", "totalClicks", itoa(res.Summary.TotalClicks), ""),
		row("summary", "uniqueClicks", itoa(res.Summary.UniqueClicks), ""),
		row("summary", "clicksInPeriod", itoa(res.Summary.ClicksInPeriod), ""),
		row("summary", "avgClicksPerUrl", ftoa(res.Summary.AvgClicksPerURL), ""),
		row("summary", "clickRate", ftoa(res.Summary.ClickRate), ""),
	)
	rows = append(rows, comparisonRows("clicks", res.Comparison.Clicks)...)
	rows = append(rows, comparisonRows("uniqueClicks", res.Comparison.UniqueClicks)...)
	rows = append(rows, comparisonRows("urls", res.Comparison.URLs)...)
	rows = append(rows, seriesRows(res.ClicksOverTime)...)

	for _, u := range res.TopURLs {
		rows = append(rows, row("topUrls", u.ShortCode, itoa(u.Clicks), itoa(u.UniqueClicks)))
	}
	rows = append(rows, breakdownRows(res.Breakdowns)...)

	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

func WriteURLAnalyticsCSV(w io.Writer, res *domain.URLAnalytics) error {
	cw := csv.NewWriter(w)
	rows := [][]string{header}

	rows = append(rows,
		row("url", "id", res.URL.ID, ""),
		row("url", "shortCode", res.URL.ShortCode, ""),
		row("url", "originalUrl", res.URL.OriginalURL, ""),
		row("period", "period", res.Period, ""),
		row("window", "start", res.Window.Start.Format(time.RFC3339), ""),
		row("window", "end", res.Window.End.Format(time.RFC3339), ""),
		row("summary", "totalClicks", itoa(res.Summary.TotalClicks), ""),
		row("summary", "uniqueClicks", itoa(res.Summary.UniqueClicks), ""),
		row("summary", "clicksInPeriod", itoa(res.Summary.ClicksInPeriod), ""),
		row("summary", "avgClicksPerDay", ftoa(res.Summary.AvgClicksPerDay), ""),
	)
	if p := res.Summary.PeakDay; p != nil {
		rows = append(rows, row("summary", "peakDay", p.Date, itoa(p.Clicks)))
	}
	rows = append(rows, comparisonRows("clicks", res.Comparison.Clicks)...)
	rows = append(rows, comparisonRows("uniqueClicks", res.Comparison.UniqueClicks)...)
	rows = append(rows, seriesRows(res.ClicksOverTime)...)

	for _, h := range res.HourlyDistribution {
		rows = append(rows, row("hourlyDistribution", strconv.Itoa(h.Hour), itoa(h.Clicks), ""))
	}
	for _, d := range res.WeeklyDistribution {
		rows = append(rows, row("weeklyDistribution", d.Day, itoa(d.Clicks), ""))
	}
	rows = append(rows, breakdownRows(res.Breakdowns)...)

	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

func comparisonRows(name string, c domain.Comparison) [][]string {
	section := "comparison." + name
	return [][]string{
		row(section, "current", itoa(c.Current), ""),
		row(section, "previous", itoa(c.Previous), ""),
		row(section, "change", itoa(c.Change), ""),
		row(section, "changePercentage", ftoa(c.ChangePercentage), ""),
	}
}

// seriesRows: value is clicks, extra is unique clicks.
func seriesRows(series []domain.DailyClicks) [][]string {
	rows := make([][]string, 0, len(series))
	for _, d := range series {
		rows = append(rows, row("clicksOverTime", d.Date, itoa(d.Clicks), itoa(d.UniqueClicks)))
	}
	return rows
}

// breakdownRows: value is clicks, extra is the percentage.
func breakdownRows(b domain.Breakdowns) [][]string {
	var rows [][]string
	add := func(section string, list []domain.Breakdown, withCountry bool) {
		for _, g := range list {
			key := g.Value
			if withCountry {
				key = g.Value + ", " + g.Country
			}
			rows = append(rows, row(section, key, itoa(g.Clicks), ftoa(g.Percentage)))
		}
	}
	add("topCountries", b.Countries, false)
	add("topCities", b.Cities, true)
	add("topDevices", b.Devices, false)
	add("topBrowsers", b.Browsers, false)
	add("topReferrers", b.Referrers, false)
	return rows
}

func row(section, key, value, extra string) []string {
	return []string{section, key, value, extra}
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
