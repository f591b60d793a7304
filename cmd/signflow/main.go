package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/itchan-dev/signflow/internal/setup"
	"github.com/itchan-dev/signflow/shared/config"
	internal_errors "github.com/itchan-dev/signflow/shared/errors"
	"github.com/itchan-dev/signflow/shared/logger"
	"github.com/itchan-dev/signflow/shared/metrics"
)

const metricsPushTimeout = 5 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}

// run executes one render-and-send cycle and returns the process exit code.
func run(ctx context.Context, args []string) int {
	flags := flag.NewFlagSet("signflow", flag.ContinueOnError)
	configFolder := flags.String("config_folder", "config", "path to folder with public.yaml and private.yaml")
	contractPath := flags.String("contract", "", "path to contract data yaml (bundled data when empty)")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configFolder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}
	logger.Initialize(cfg.Public.Log.Level, strings.EqualFold(cfg.Public.Log.Format, "json"))

	if gateway := cfg.Public.Metrics.PushgatewayURL; gateway != "" {
		defer pushMetrics(gateway)
	}

	contract, err := config.LoadContract(*contractPath)
	if err != nil {
		logger.Log.Error("failed to load contract data", "error", err)
		return 1
	}

	logger.Log.Info("starting carbone to subnoto integration")
	deps := setup.SetupDependencies(cfg, contract)

	ref, err := deps.Pipeline.Run(ctx)
	if err != nil {
		attrs := []any{"error", err}
		var stageErr *internal_errors.StageError
		if errors.As(err, &stageErr) {
			attrs = append(attrs, "stage", stageErr.Stage)
		}
		logger.Log.Error("process failed", attrs...)
		return 1
	}

	logger.Log.Info("process completed successfully", "envelope_uuid", ref.EnvelopeUUID)
	return 0
}

func pushMetrics(gateway string) {
	ctx, cancel := context.WithTimeout(context.Background(), metricsPushTimeout)
	defer cancel()
	if err := metrics.Push(ctx, gateway); err != nil {
		logger.Log.Warn("failed to push metrics", "error", err)
	}
}
