package domain

import "time"

// Click is the read model of a recorded click event.
type Click struct {
	URLID          string
	Timestamp      time.Time
	VisitorKey     string
	Country        string
	City           string
	Device         string
	Browser        string
	ReferrerDomain string
}

type URL struct {
	ID          string
	OwnerID     string // empty for anonymous links
	ShortCode   string
	Title       string
	OriginalURL string
	CreatedAt   time.Time
}

// Window is a half-open interval [Start, End) plus the equal-length
// interval immediately before it.
type Window struct {
	Start         time.Time
	End           time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time
}

type Comparison struct {
	Current          int64
	Previous         int64
	Change           int64
	ChangePercentage float64
}

type DailyClicks struct {
	Date         string // YYYY-MM-DD, UTC
	Clicks       int64
	UniqueClicks int64
}

type HourlyClicks struct {
	Hour   int
	Clicks int64
}

type WeekdayClicks struct {
	Day    string
	Clicks int64
}

type PeakDay struct {
	Date   string
	Clicks int64
}

type TopURL struct {
	ID           string
	ShortCode    string
	Title        string
	OriginalURL  string
	Clicks       int64
	UniqueClicks int64
	CreatedAt    time.Time
}

// Breakdown is one ranked group of a top-N dimension list. For the city
// breakdown Value is the city name and Country is filled in.
type Breakdown struct {
	Value      string
	Country    string
	Clicks     int64
	Percentage float64
}

type Breakdowns struct {
	Countries []Breakdown
	Cities    []Breakdown
	Devices   []Breakdown
	Browsers  []Breakdown
	Referrers []Breakdown
}

type DashboardSummary struct {
	TotalURLs       int64
	TotalClicks     int64
	UniqueClicks    int64
	ClicksInPeriod  int64
	AvgClicksPerURL float64
	ClickRate       float64
}

type DashboardComparison struct {
	Clicks       Comparison
	UniqueClicks Comparison
	URLs         Comparison
}

type DashboardAnalytics struct {
	Period         string
	Window         Window
	Summary        DashboardSummary
	Comparison     DashboardComparison
	ClicksOverTime []DailyClicks
	TopURLs        []TopURL
	Breakdowns
}

type URLSummary struct {
	TotalClicks     int64
	UniqueClicks    int64
	ClicksInPeriod  int64
	AvgClicksPerDay float64
	PeakDay         *PeakDay
	FirstClick      *time.Time
	LastClick       *time.Time
}

type URLComparison struct {
	Clicks       Comparison
	UniqueClicks Comparison
}

type URLAnalytics struct {
	URL                URL
	Period             string
	Window             Window
	Summary            URLSummary
	Comparison         URLComparison
	ClicksOverTime     []DailyClicks
	HourlyDistribution []HourlyClicks
	WeeklyDistribution []WeekdayClicks
	Breakdowns
}
