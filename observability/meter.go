package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// InitMeter installs a global meter provider exporting over OTLP HTTP.
// The returned provider must be shut down on exit.
func InitMeter(ctx context.Context, cfg Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(newResource(cfg)),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// DriveStats is the subset of bridge statistics recorded as metrics.
type DriveStats struct {
	Splits   int
	Leaves   int
	Items    int
	MaxDepth int
}

// BridgeMetrics holds the instruments recorded for each bridge drive.
type BridgeMetrics struct {
	drives   metric.Int64Counter
	splits   metric.Int64Counter
	leaves   metric.Int64Counter
	items    metric.Int64Counter
	depth    metric.Int64Histogram
	duration metric.Float64Histogram
}

// NewBridgeMetrics creates bridge instruments on meter.
func NewBridgeMetrics(meter metric.Meter) (*BridgeMetrics, error) {
	drives, err := meter.Int64Counter("pariter.bridge.drives",
		metric.WithDescription("Completed bridge drives by workload and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pariter.bridge.drives counter: %w", err)
	}

	splits, err := meter.Int64Counter("pariter.bridge.splits",
		metric.WithDescription("Producer splits performed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pariter.bridge.splits counter: %w", err)
	}

	leaves, err := meter.Int64Counter("pariter.bridge.leaves",
		metric.WithDescription("Leaf producers run to completion or abandonment"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pariter.bridge.leaves counter: %w", err)
	}

	items, err := meter.Int64Counter("pariter.bridge.items",
		metric.WithDescription("Items produced and consumed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pariter.bridge.items counter: %w", err)
	}

	depth, err := meter.Int64Histogram("pariter.bridge.depth",
		metric.WithDescription("Deepest split level reached per drive"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pariter.bridge.depth histogram: %w", err)
	}

	duration, err := meter.Float64Histogram("pariter.bridge.duration",
		metric.WithDescription("Duration of bridge drives in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pariter.bridge.duration histogram: %w", err)
	}

	return &BridgeMetrics{
		drives:   drives,
		splits:   splits,
		leaves:   leaves,
		items:    items,
		depth:    depth,
		duration: duration,
	}, nil
}

// RecordDrive records one finished drive. err is nil on success.
func (m *BridgeMetrics) RecordDrive(ctx context.Context, workload string, stats DriveStats, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	attrs := metric.WithAttributes(attribute.String(AttrWorkload, workload))

	m.drives.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrWorkload, workload),
		attribute.String(AttrStatus, status),
	))
	m.splits.Add(ctx, int64(stats.Splits), attrs)
	m.leaves.Add(ctx, int64(stats.Leaves), attrs)
	m.items.Add(ctx, int64(stats.Items), attrs)
	m.depth.Record(ctx, int64(stats.MaxDepth), attrs)
	m.duration.Record(ctx, d.Seconds(), attrs)
}
