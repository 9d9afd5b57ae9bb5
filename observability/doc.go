// Package observability provides OpenTelemetry tracing and metrics for the
// reference bridge and the pariter-bench tool.
//
// Tracing and metrics export over OTLP HTTP when enabled:
//
//	shutdown, err := observability.Setup(ctx, cfg)
//	defer shutdown(ctx)
//
// Bridge instruments are created on any meter, including the global one,
// which is a no-op until Setup installs a provider:
//
//	metrics, err := observability.NewBridgeMetrics(observability.Meter("pariter"))
//	metrics.RecordDrive(ctx, "zip", stats, duration, nil)
package observability
