// Package report implements the offline analytics report command line.
package report

import (
	"context"
	"fmt"
	"io"
	"os"

	"link-analytics-service/internal/analytics/core/domain"
	"link-analytics-service/internal/analytics/core/usecase"
	"link-analytics-service/internal/platform/config"
	"link-analytics-service/internal/platform/logging"
	"link-analytics-service/internal/storage"

	goflags "github.com/jessevdk/go-flags"
)

// Aggregator is the part of the analytics use case the report commands need.
type Aggregator interface {
	ComputeDashboard(ctx context.Context, in usecase.DashboardInput) (*domain.DashboardAnalytics, error)
	ComputeURLAnalytics(ctx context.Context, in usecase.URLAnalyticsInput) (*domain.URLAnalytics, error)
}

// Opener builds an Aggregator from the global flags. The returned close
// function releases whatever the aggregator reads from.
type Opener func(ctx context.Context, globals *GlobalFlags) (Aggregator, func() error, error)

type commands struct {
	Dashboard *DashboardCommand
	URL       *URLCommand
}

type env struct {
	globals *GlobalFlags
	open    Opener
	out     io.Writer
}

func buildParser(open Opener, out io.Writer) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	// errors are printed once by the caller
	parser := goflags.NewParser(&globals, goflags.HelpFlag|goflags.PassDoubleDash)
	parser.Name = "report"
	parser.LongDescription = "Print dashboard or per-link click analytics straight from the click store."

	e := &env{globals: &globals, open: open, out: out}
	cmds := &commands{
		Dashboard: &DashboardCommand{env: e},
		URL:       &URLCommand{env: e},
	}

	parser.AddCommand("dashboard", "Owner dashboard analytics", "Aggregate every link of an owner over a period and compare it with the period before.", cmds.Dashboard)
	parser.AddCommand("url", "Single link analytics", "Aggregate one link over a period, including hourly and weekday distributions.", cmds.URL)

	return parser, &globals, cmds
}

// Run parses os.Args and runs the matched subcommand against the configured store.
func Run() error {
	return RunWithArgs(nil, StoreOpener, os.Stdout)
}

// RunWithArgs parses args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(args []string, open Opener, out io.Writer) error {
	parser, _, _ := buildParser(open, out)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok && flagsErr.Type == goflags.ErrHelp {
			fmt.Fprintln(out, flagsErr.Message)
			return nil
		}
		return err
	}
	return nil
}

// StoreOpener loads the service configuration and opens the configured
// click store, the same way the API server does.
func StoreOpener(ctx context.Context, globals *GlobalFlags) (Aggregator, func() error, error) {
	if globals.Config != "" {
		if err := os.Setenv("CONFIG_FILE", globals.Config); err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	level := "warn"
	if globals.Verbose {
		level = "debug"
	}
	logging.Setup(level)

	backend, err := storage.Open(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	agg := usecase.NewAggregator(backend.Reader, usecase.WithTopLimit(cfg.Analytics.TopLimit))
	return agg, backend.Close, nil
}
