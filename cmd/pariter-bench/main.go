// Command pariter-bench drives generated data through the reference bridge
// and reports the result together with the split statistics.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/pariter/bridge"
	"github.com/kbukum/pariter/logger"
	"github.com/kbukum/pariter/observability"
	"github.com/kbukum/pariter/version"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2

	shutdownTimeout = 5 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, opts, err := loadConfig(args, stderr)
	switch {
	case err == pflag.ErrHelp:
		return exitOK
	case err != nil:
		fmt.Fprintf(stderr, "%s: %v\n", serviceName, err)
		return exitConfig
	case opts.showVersion:
		fmt.Fprintf(stdout, "%s %s\n", serviceName, version.Get())
		return exitOK
	}

	runID := uuid.NewString()
	log := logger.NewWithWriter(&cfg.Logging, cfg.Name, stderr).
		WithFields(logger.Fields(logger.FieldRunID, runID))
	logger.SetGlobalLogger(log)

	shutdown, err := observability.Setup(ctx, cfg.Observability)
	if err != nil {
		log.Error("telemetry setup failed", logger.ErrorFields("observability.setup", err))
		return exitConfig
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			log.Warn("telemetry shutdown failed", logger.ErrorFields("observability.shutdown", err))
		}
	}()

	if err := execute(ctx, cfg, runID, log, stdout); err != nil {
		log.Error("workload failed", logger.ErrorFields(cfg.Workload, err))
		return exitFailed
	}
	return exitOK
}

func execute(ctx context.Context, cfg *benchConfig, runID string, log *logger.Logger, stdout io.Writer) error {
	workload, err := lookupWorkload(cfg.Workload)
	if err != nil {
		return err
	}

	metrics, err := observability.NewBridgeMetrics(observability.Meter(serviceName))
	if err != nil {
		return err
	}
	b, err := bridge.New(cfg.Bridge,
		bridge.WithLogger(log.WithComponent("bridge")),
		bridge.WithMetrics(metrics),
		bridge.WithWorkload(cfg.Workload),
	)
	if err != nil {
		return err
	}

	ctx, span := observability.StartSpan(ctx, "pariter.bench.run", trace.WithAttributes(
		attribute.String(observability.AttrRunID, runID),
		attribute.String(observability.AttrWorkload, cfg.Workload),
		attribute.String(observability.AttrCostPolicy, cfg.policy.String()),
		attribute.Int(observability.AttrLen, cfg.Size),
	))
	defer span.End()

	log.Info("workload started", logger.Fields(
		logger.FieldWorkload, cfg.Workload,
		logger.FieldLen, cfg.Size,
		logger.FieldPolicy, cfg.policy.String(),
	))

	start := time.Now()
	result, stats, err := workload(ctx, b, cfg.Size, cfg.policy)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	log.Info("workload finished",
		logger.Fields("result", result),
		logger.Fields(
			logger.FieldSplits, stats.Splits,
			logger.FieldLeaves, stats.Leaves,
			logger.FieldItems, stats.Items,
			logger.FieldDepth, stats.MaxDepth,
		),
		logger.DurationFields(cfg.Workload, time.Since(start)),
	)
	fmt.Fprintf(stdout, "workload=%s result=%g items=%d splits=%d leaves=%d max_depth=%d\n",
		cfg.Workload, result, stats.Items, stats.Splits, stats.Leaves, stats.MaxDepth)
	return nil
}
