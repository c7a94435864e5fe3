package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	analyticsHttp "link-analytics-service/internal/analytics/adapters/http/fiber"
	"link-analytics-service/internal/analytics/core/usecase"
	"link-analytics-service/internal/analytics/export"
)

const maxLimit = 100

// Execute implements the go-flags Commander interface for DashboardCommand.
func (c *DashboardCommand) Execute(args []string) error {
	if c.Owner == "" {
		return fmt.Errorf("--owner is required for dashboard command")
	}
	if err := checkOptions(c.Limit, c.Format); err != nil {
		return err
	}

	ctx := context.Background()
	agg, closeFn, err := c.env.open(ctx, c.env.globals)
	if err != nil {
		return err
	}
	defer closeFn()

	res, err := agg.ComputeDashboard(ctx, usecase.DashboardInput{
		OwnerUserID: c.Owner,
		Period:      c.Period,
		Limit:       c.Limit,
	})
	if err != nil {
		return fmt.Errorf("dashboard analytics: %w", err)
	}

	if c.Format == "csv" {
		return export.WriteDashboardCSV(c.env.out, res)
	}
	return writeJSON(c.env.out, analyticsHttp.ToDashboardResponse(res))
}

// Execute implements the go-flags Commander interface for URLCommand.
func (c *URLCommand) Execute(args []string) error {
	if c.ID == "" {
		return fmt.Errorf("--id is required for url command")
	}
	if c.Owner == "" {
		return fmt.Errorf("--owner is required for url command")
	}
	if err := checkOptions(c.Limit, c.Format); err != nil {
		return err
	}

	ctx := context.Background()
	agg, closeFn, err := c.env.open(ctx, c.env.globals)
	if err != nil {
		return err
	}
	defer closeFn()

	res, err := agg.ComputeURLAnalytics(ctx, usecase.URLAnalyticsInput{
		URLID:       c.ID,
		OwnerUserID: c.Owner,
		Period:      c.Period,
		Limit:       c.Limit,
	})
	if err != nil {
		return fmt.Errorf("url analytics %s: %w", c.ID, err)
	}

	if c.Format == "csv" {
		return export.WriteURLAnalyticsCSV(c.env.out, res)
	}
	return writeJSON(c.env.out, analyticsHttp.ToURLAnalyticsResponse(res))
}

func checkOptions(limit int, format string) error {
	if limit < 0 || limit > maxLimit {
		return fmt.Errorf("--limit must be between 1 and %d", maxLimit)
	}
	switch format {
	case "json", "csv":
		return nil
	default:
		return fmt.Errorf("unknown format %q (use json or csv)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
