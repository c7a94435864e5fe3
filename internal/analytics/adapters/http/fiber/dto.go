package fiber

import (
	"time"

	"link-analytics-service/internal/analytics/core/domain"
)

type WindowResponse struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	PreviousStart time.Time `json:"previousStart"`
	PreviousEnd   time.Time `json:"previousEnd"`
}

type ComparisonResponse struct {
	Current          int64   `json:"current"`
	Previous         int64   `json:"previous"`
	Change           int64   `json:"change"`
	ChangePercentage float64 `json:"changePercentage"`
}

type DailyClicksResponse struct {
	Date         string `json:"date" example:"2026-03-14"`
	Clicks       int64  `json:"clicks"`
	UniqueClicks int64  `json:"uniqueClicks"`
}

type TopURLResponse struct {
	ID           string    `json:"id"`
	ShortCode    string    `json:"shortCode"`
	Title        string    `json:"title"`
	OriginalURL  string    `json:"originalUrl"`
	Clicks       int64     `json:"clicks"`
	UniqueClicks int64     `json:"uniqueClicks"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CountryStat struct {
	Country    string  `json:"country" example:"DE"`
	Clicks     int64   `json:"clicks"`
	Percentage float64 `json:"percentage"`
}

type CityStat struct {
	Country    string  `json:"country" example:"DE"`
	City       string  `json:"city" example:"Berlin"`
	Clicks     int64   `json:"clicks"`
	Percentage float64 `json:"percentage"`
}

type DeviceStat struct {
	Device     string  `json:"device" example:"Mobile"`
	Clicks     int64   `json:"clicks"`
	Percentage float64 `json:"percentage"`
}

type BrowserStat struct {
	Browser    string  `json:"browser" example:"Firefox"`
	Clicks     int64   `json:"clicks"`
	Percentage float64 `json:"percentage"`
}

type ReferrerStat struct {
	Referrer   string  `json:"referrer" example:"ycombinator.com"`
	Domain     string  `json:"domain" example:"ycombinator.com"`
	Clicks     int64   `json:"clicks"`
	Percentage float64 `json:"percentage"`
}

type DashboardSummaryResponse struct {
	TotalURLs       int64   `json:"totalUrls"`
	TotalClicks     int64   `json:"totalClicks"`
	UniqueClicks    int64   `json:"uniqueClicks"`
	ClicksInPeriod  int64   `json:"clicksInPeriod"`
	AvgClicksPerURL float64 `json:"avgClicksPerUrl"`
	ClickRate       float64 `json:"clickRate"`
}

type DashboardComparisonResponse struct {
	Clicks       ComparisonResponse `json:"clicks"`
	UniqueClicks ComparisonResponse `json:"uniqueClicks"`
	URLs         ComparisonResponse `json:"urls"`
}

type DashboardChartsResponse struct {
	ClicksOverTime []DailyClicksResponse `json:"clicksOverTime"`
	TopURLs        []TopURLResponse      `json:"topUrls"`
	TopCountries   []CountryStat         `json:"topCountries"`
	TopCities      []CityStat            `json:"topCities"`
	TopDevices     []DeviceStat          `json:"topDevices"`
	TopBrowsers    []BrowserStat         `json:"topBrowsers"`
	TopReferrers   []ReferrerStat        `json:"topReferrers"`
}

type DashboardResponse struct {
	Period     string                      `json:"period" example:"30d"`
	Window     WindowResponse              `json:"window"`
	Summary    DashboardSummaryResponse    `json:"summary"`
	Comparison DashboardComparisonResponse `json:"comparison"`
	Charts     DashboardChartsResponse     `json:"charts"`
}

type URLInfoResponse struct {
	ID          string    `json:"id"`
	ShortCode   string    `json:"shortCode"`
	Title       string    `json:"title"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PeakDayResponse struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}

type URLSummaryResponse struct {
	TotalClicks     int64            `json:"totalClicks"`
	UniqueClicks    int64            `json:"uniqueClicks"`
	ClicksInPeriod  int64            `json:"clicksInPeriod"`
	AvgClicksPerDay float64          `json:"avgClicksPerDay"`
	PeakDay         *PeakDayResponse `json:"peakDay,omitempty"`
	FirstClick      *time.Time       `json:"firstClick,omitempty"`
	LastClick       *time.Time       `json:"lastClick,omitempty"`
}

type URLComparisonResponse struct {
	Clicks       ComparisonResponse `json:"clicks"`
	UniqueClicks ComparisonResponse `json:"uniqueClicks"`
}

type HourlyClicksResponse struct {
	Hour   int   `json:"hour"`
	Clicks int64 `json:"clicks"`
}

type WeekdayClicksResponse struct {
	Day    string `json:"day" example:"Monday"`
	Clicks int64  `json:"clicks"`
}

type URLChartsResponse struct {
	ClicksOverTime     []DailyClicksResponse   `json:"clicksOverTime"`
	HourlyDistribution []HourlyClicksResponse  `json:"hourlyDistribution"`
	WeeklyDistribution []WeekdayClicksResponse `json:"weeklyDistribution"`
	TopCountries       []CountryStat           `json:"topCountries"`
	TopCities          []CityStat              `json:"topCities"`
	TopDevices         []DeviceStat            `json:"topDevices"`
	TopBrowsers        []BrowserStat           `json:"topBrowsers"`
	TopReferrers       []ReferrerStat          `json:"topReferrers"`
}

type URLAnalyticsResponse struct {
	URL        URLInfoResponse       `json:"url"`
	Period     string                `json:"period" example:"7d"`
	Window     WindowResponse        `json:"window"`
	Summary    URLSummaryResponse    `json:"summary"`
	Comparison URLComparisonResponse `json:"comparison"`
	Charts     URLChartsResponse     `json:"charts"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_period"`
	Message string `json:"message" example:"invalid period: \"3weeks\""`
}

// ToDashboardResponse maps the aggregator result onto the JSON contract.
func ToDashboardResponse(res *domain.DashboardAnalytics) DashboardResponse {
	topURLs := make([]TopURLResponse, 0, len(res.TopURLs))
	for _, u := range res.TopURLs {
		topURLs = append(topURLs, TopURLResponse{
			ID:           u.ID,
			ShortCode:    u.ShortCode,
			Title:        u.Title,
			OriginalURL:  u.OriginalURL,
			Clicks:       u.Clicks,
			UniqueClicks: u.UniqueClicks,
			CreatedAt:    u.CreatedAt,
		})
	}

	return DashboardResponse{
		Period: res.Period,
		Window: toWindow(res.Window),
		Summary: DashboardSummaryResponse{
			TotalURLs:       res.Summary.TotalURLs,
			TotalClicks:     res.Summary.TotalClicks,
			UniqueClicks:    res.Summary.UniqueClicks,
			ClicksInPeriod:  res.Summary.ClicksInPeriod,
			AvgClicksPerURL: res.Summary.AvgClicksPerURL,
			ClickRate:       res.Summary.ClickRate,
		},
		Comparison: DashboardComparisonResponse{
			Clicks:       toComparison(res.Comparison.Clicks),
			UniqueClicks: toComparison(res.Comparison.UniqueClicks),
			URLs:         toComparison(res.Comparison.URLs),
		},
		Charts: DashboardChartsResponse{
			ClicksOverTime: toSeries(res.ClicksOverTime),
			TopURLs:        topURLs,
			TopCountries:   toCountries(res.Countries),
			TopCities:      toCities(res.Cities),
			TopDevices:     toDevices(res.Devices),
			TopBrowsers:    toBrowsers(res.Browsers),
			TopReferrers:   toReferrers(res.Referrers),
		},
	}
}

func ToURLAnalyticsResponse(res *domain.URLAnalytics) URLAnalyticsResponse {
	var peak *PeakDayResponse
	if p := res.Summary.PeakDay; p != nil {
		peak = &PeakDayResponse{Date: p.Date, Clicks: p.Clicks}
	}

	hourly := make([]HourlyClicksResponse, 0, len(res.HourlyDistribution))
	for _, h := range res.HourlyDistribution {
		hourly = append(hourly, HourlyClicksResponse{Hour: h.Hour, Clicks: h.Clicks})
	}
	weekly := make([]WeekdayClicksResponse, 0, len(res.WeeklyDistribution))
	for _, d := range res.WeeklyDistribution {
		weekly = append(weekly, WeekdayClicksResponse{Day: d.Day, Clicks: d.Clicks})
	}

	return URLAnalyticsResponse{
		URL: URLInfoResponse{
			ID:          res.URL.ID,
			ShortCode:   res.URL.ShortCode,
			Title:       res.URL.Title,
			OriginalURL: res.URL.OriginalURL,
			CreatedAt:   res.URL.CreatedAt,
		},
		Period: res.Period,
		Window: toWindow(res.Window),
		Summary: URLSummaryResponse{
			TotalClicks:     res.Summary.TotalClicks,
			UniqueClicks:    res.Summary.UniqueClicks,
			ClicksInPeriod:  res.Summary.ClicksInPeriod,
			AvgClicksPerDay: res.Summary.AvgClicksPerDay,
			PeakDay:         peak,
			FirstClick:      res.Summary.FirstClick,
			LastClick:       res.Summary.LastClick,
		},
		Comparison: URLComparisonResponse{
			Clicks:       toComparison(res.Comparison.Clicks),
			UniqueClicks: toComparison(res.Comparison.UniqueClicks),
		},
		Charts: URLChartsResponse{
			ClicksOverTime:     toSeries(res.ClicksOverTime),
			HourlyDistribution: hourly,
			WeeklyDistribution: weekly,
			TopCountries:       toCountries(res.Countries),
			TopCities:          toCities(res.Cities),
			TopDevices:         toDevices(res.Devices),
			TopBrowsers:        toBrowsers(res.Browsers),
			TopReferrers:       toReferrers(res.Referrers),
		},
	}
}

func toWindow(w domain.Window) WindowResponse {
	return WindowResponse{
		Start:         w.Start,
		End:           w.End,
		PreviousStart: w.PreviousStart,
		PreviousEnd:   w.PreviousEnd,
	}
}

func toComparison(c domain.Comparison) ComparisonResponse {
	return ComparisonResponse{
		Current:          c.Current,
		Previous:         c.Previous,
		Change:           c.Change,
		ChangePercentage: c.ChangePercentage,
	}
}

func toSeries(series []domain.DailyClicks) []DailyClicksResponse {
	out := make([]DailyClicksResponse, 0, len(series))
	for _, d := range series {
		out = append(out, DailyClicksResponse{Date: d.Date, Clicks: d.Clicks, UniqueClicks: d.UniqueClicks})
	}
	return out
}

func toCountries(list []domain.Breakdown) []CountryStat {
	out := make([]CountryStat, 0, len(list))
	for _, b := range list {
		out = append(out, CountryStat{Country: b.Value, Clicks: b.Clicks, Percentage: b.Percentage})
	}
	return out
}

func toCities(list []domain.Breakdown) []CityStat {
	out := make([]CityStat, 0, len(list))
	for _, b := range list {
		out = append(out, CityStat{Country: b.Country, City: b.Value, Clicks: b.Clicks, Percentage: b.Percentage})
	}
	return out
}

func toDevices(list []domain.Breakdown) []DeviceStat {
	out := make([]DeviceStat, 0, len(list))
	for _, b := range list {
		out = append(out, DeviceStat{Device: b.Value, Clicks: b.Clicks, Percentage: b.Percentage})
	}
	return out
}

func toBrowsers(list []domain.Breakdown) []BrowserStat {
	out := make([]BrowserStat, 0, len(list))
	for _, b := range list {
		out = append(out, BrowserStat{Browser: b.Value, Clicks: b.Clicks, Percentage: b.Percentage})
	}
	return out
}

// toReferrers: only the registrable domain is stored, so referrer and
// domain carry the same value.
func toReferrers(list []domain.Breakdown) []ReferrerStat {
	out := make([]ReferrerStat, 0, len(list))
	for _, b := range list {
		out = append(out, ReferrerStat{Referrer: b.Value, Domain: b.Value, Clicks: b.Clicks, Percentage: b.Percentage})
	}
	return out
}
