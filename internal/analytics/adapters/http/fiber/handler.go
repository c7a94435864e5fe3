package fiber

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"link-analytics-service/internal/analytics/core/domain"
	"link-analytics-service/internal/analytics/core/usecase"
	"link-analytics-service/internal/analytics/export"
	"link-analytics-service/internal/platform/auth"
	"link-analytics-service/internal/platform/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const (
	defaultPeriod = "30d"
	maxLimit      = 100
)

type AnalyticsUseCase interface {
	ComputeDashboard(ctx context.Context, in usecase.DashboardInput) (*domain.DashboardAnalytics, error)
	ComputeURLAnalytics(ctx context.Context, in usecase.URLAnalyticsInput) (*domain.URLAnalytics, error)
}

type AnalyticsHandler struct {
	uc      AnalyticsUseCase
	timeout time.Duration
}

// NewAnalyticsHandler builds the handler. A zero timeout leaves the request
// context untouched.
func NewAnalyticsHandler(uc AnalyticsUseCase, timeout time.Duration) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, timeout: timeout}
}

// GetDashboard godoc
// @Summary Dashboard analytics
// @Description Aggregates clicks over every URL owned by the caller and compares the period with the one before it
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param period query string false "Period: 1h | 24h | 7d | 30d | 90d | 6m | 1y" default(30d)
// @Param limit query int false "Top-N size for rankings"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	res, err := h.dashboard(c)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(ToDashboardResponse(res))
}

// ExportDashboardCSV godoc
// @Summary Dashboard analytics as CSV
// @Tags Analytics
// @Produce text/csv
// @Security BearerAuth
// @Param period query string false "Period: 1h | 24h | 7d | 30d | 90d | 6m | 1y" default(30d)
// @Param limit query int false "Top-N size for rankings"
// @Success 200 {string} string "section,key,value,extra rows"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /analytics/dashboard/export [get]
func (h *AnalyticsHandler) ExportDashboardCSV(c *fiber.Ctx) error {
	res, err := h.dashboard(c)
	if err != nil {
		return h.writeError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteDashboardCSV(&buf, res); err != nil {
		return h.writeError(c, err)
	}
	return sendCSV(c, fmt.Sprintf("dashboard-%s.csv", res.Period), buf.Bytes())
}

// GetURLAnalytics godoc
// @Summary Analytics for one URL
// @Description Per-URL analytics including hourly and weekday distributions
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param id path string true "URL id"
// @Param period query string false "Period: 1h | 24h | 7d | 30d | 90d | 6m | 1y" default(30d)
// @Param limit query int false "Top-N size for rankings"
// @Success 200 {object} URLAnalyticsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/urls/{id} [get]
func (h *AnalyticsHandler) GetURLAnalytics(c *fiber.Ctx) error {
	res, err := h.urlAnalytics(c)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(ToURLAnalyticsResponse(res))
}

// ExportURLAnalyticsCSV godoc
// @Summary Analytics for one URL as CSV
// @Tags Analytics
// @Produce text/csv
// @Security BearerAuth
// @Param id path string true "URL id"
// @Param period query string false "Period: 1h | 24h | 7d | 30d | 90d | 6m | 1y" default(30d)
// @Success 200 {string} string "section,key,value,extra rows"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /analytics/urls/{id}/export [get]
func (h *AnalyticsHandler) ExportURLAnalyticsCSV(c *fiber.Ctx) error {
	res, err := h.urlAnalytics(c)
	if err != nil {
		return h.writeError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteURLAnalyticsCSV(&buf, res); err != nil {
		return h.writeError(c, err)
	}
	return sendCSV(c, fmt.Sprintf("url-%s-%s.csv", res.URL.ShortCode, res.Period), buf.Bytes())
}

func (h *AnalyticsHandler) dashboard(c *fiber.Ctx) (*domain.DashboardAnalytics, error) {
	owner := auth.UserID(c)
	if owner == "" {
		return nil, errUnauthenticated
	}
	limit, err := parseLimit(c)
	if err != nil {
		return nil, err
	}

	ctx, cancel := h.context(c)
	defer cancel()

	start := time.Now()
	res, err := h.uc.ComputeDashboard(ctx, usecase.DashboardInput{
		OwnerUserID: owner,
		Period:      c.Query("period", defaultPeriod),
		Limit:       limit,
	})
	metrics.ObserveAggregation("dashboard", start, err)
	return res, err
}

func (h *AnalyticsHandler) urlAnalytics(c *fiber.Ctx) (*domain.URLAnalytics, error) {
	owner := auth.UserID(c)
	if owner == "" {
		return nil, errUnauthenticated
	}
	limit, err := parseLimit(c)
	if err != nil {
		return nil, err
	}

	ctx, cancel := h.context(c)
	defer cancel()

	start := time.Now()
	res, err := h.uc.ComputeURLAnalytics(ctx, usecase.URLAnalyticsInput{
		URLID:       c.Params("id"),
		OwnerUserID: owner,
		Period:      c.Query("period", defaultPeriod),
		Limit:       limit,
	})
	metrics.ObserveAggregation("url", start, err)
	return res, err
}

func (h *AnalyticsHandler) context(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

var (
	errUnauthenticated = errors.New("unauthenticated")
	errInvalidLimit    = errors.New("limit must be an integer between 1 and 100")
)

func parseLimit(c *fiber.Ctx) (int, error) {
	raw := c.Query("limit", "")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxLimit {
		return 0, errInvalidLimit
	}
	return n, nil
}

func (h *AnalyticsHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errUnauthenticated):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error: "unauthorized",
		})
	case errors.Is(err, errInvalidLimit):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_limit",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_period",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error: "not_found",
		})
	case errors.Is(err, usecase.ErrStoreUnavailable):
		log.Error().Err(err).Str("path", c.Path()).Msg("analytics store unavailable")
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error: "store_unavailable",
		})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("analytics")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func sendCSV(c *fiber.Ctx, filename string, body []byte) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Status(http.StatusOK).Send(body)
}
