package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	Aggregations = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analytics_aggregation_duration_seconds",
		Help:    "Time spent computing analytics.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "outcome"})
	ClickIngests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "click_ingest_total",
		Help: "Ingested clicks by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(Requests, RequestDuration, Aggregations, ClickIngests)
}

// Middleware records request count and latency per route template.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		route := c.Route().Path
		if route == "" {
			route = "unknown"
		}

		Requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

func ObserveAggregation(operation string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	Aggregations.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
}

// RecordClickIngest counts n clicks with the given outcome
// (created, duplicate, rejected, failed).
func RecordClickIngest(outcome string, n int) {
	if n <= 0 {
		return
	}
	ClickIngests.WithLabelValues(outcome).Add(float64(n))
}
