package fiber

import (
	"context"
	"errors"
	"net/http"

	"link-analytics-service/internal/clicks/adapters/geo"
	"link-analytics-service/internal/clicks/core/ports"
	"link-analytics-service/internal/clicks/core/usecase"
	"link-analytics-service/internal/platform/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type RecordClickUseCase interface {
	Execute(ctx context.Context, in usecase.RecordClickInput) (bool, error)
	BulkRecordClicks(ctx context.Context, in usecase.BulkRecordClicksInput) (usecase.BulkRecordClicksResult, error)
}

type ClickHandler struct {
	recordUC RecordClickUseCase
}

func NewClickHandler(recordUC RecordClickUseCase) *ClickHandler {
	return &ClickHandler{recordUC: recordUC}
}

// CreateClick godoc
// @Summary Record a click
// @Description Stores a single click with idempotency handling
// @Tags Clicks
// @Accept json
// @Produce json
// @Param X-Ingest-Token header string false "Internal ingest token"
// @Param request body CreateClickRequest true "Click payload"
// @Success 201 {object} CreateClickResponse
// @Success 200 {object} CreateClickResponse "Duplicate click"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /clicks [post]
func (h *ClickHandler) CreateClick(c *fiber.Ctx) error {
	var req CreateClickRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	created, err := h.recordUC.Execute(c.UserContext(), h.toInput(c, req))
	if err != nil {
		return h.writeError(c, err, 1)
	}

	if !created {
		metrics.RecordClickIngest("duplicate", 1)
		return c.Status(http.StatusOK).JSON(CreateClickResponse{
			Status: "duplicate",
		})
	}

	metrics.RecordClickIngest("created", 1)
	return c.Status(http.StatusCreated).JSON(CreateClickResponse{
		Status: "created",
	})
}

// BulkCreateClicks godoc
// @Summary Bulk record clicks
// @Description Accepts a list of clicks and stores them individually
// @Tags Clicks
// @Accept json
// @Produce json
// @Param X-Ingest-Token header string false "Internal ingest token"
// @Param request body BulkCreateClicksRequest true "Bulk click payload"
// @Success 201 {object} BulkCreateClicksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /clicks/bulk [post]
func (h *ClickHandler) BulkCreateClicks(c *fiber.Ctx) error {
	var req BulkCreateClicksRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Clicks) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "clicks_list_required",
		})
	}

	inputs := make([]usecase.RecordClickInput, len(req.Clicks))
	for i, item := range req.Clicks {
		inputs[i] = h.toInput(c, item)
	}

	result, err := h.recordUC.BulkRecordClicks(
		c.UserContext(),
		usecase.BulkRecordClicksInput{Clicks: inputs},
	)
	metrics.RecordClickIngest("created", result.Created)
	metrics.RecordClickIngest("duplicate", result.Duplicates)
	if err != nil {
		return h.writeError(c, err, len(inputs)-result.Created-result.Duplicates)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateClicksResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

// toInput fills request-derived defaults: the caller IP, its User-Agent and
// any CDN geo headers.
func (h *ClickHandler) toInput(c *fiber.Ctx, req CreateClickRequest) usecase.RecordClickInput {
	in := usecase.RecordClickInput{
		URLID:      req.URLID,
		Timestamp:  req.Timestamp,
		IP:         req.IP,
		VisitorKey: req.VisitorKey,
		UserAgent:  req.UserAgent,
		Referrer:   req.Referrer,
		Geo:        geo.HintsFromHeaders(func(key string) string { return c.Get(key) }),
	}
	if in.IP == "" && in.VisitorKey == "" {
		in.IP = c.IP()
	}
	if in.UserAgent == "" {
		in.UserAgent = c.Get(fiber.HeaderUserAgent)
	}
	return in
}

func (h *ClickHandler) writeError(c *fiber.Ctx, err error, failed int) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidClick),
		errors.Is(err, usecase.ErrFutureTime):
		metrics.RecordClickIngest("rejected", failed)
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_click",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrUnknownURL):
		metrics.RecordClickIngest("rejected", failed)
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "unknown_url",
			Message: err.Error(),
		})
	default:
		metrics.RecordClickIngest("failed", failed)
		log.Error().Err(err).Msg("record click")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
