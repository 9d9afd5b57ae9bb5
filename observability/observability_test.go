package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("bench")
	if cfg.ServiceName != "bench" {
		t.Errorf("expected ServiceName 'bench', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" || !cfg.Insecure {
		t.Errorf("expected insecure localhost:4318, got %s insecure=%v", cfg.Endpoint, cfg.Insecure)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
	if cfg.Enabled {
		t.Error("expected export disabled by default")
	}
}

func TestApplyDefaults_KeepsExplicitEndpoint(t *testing.T) {
	cfg := Config{Endpoint: "collector:4318"}
	cfg.ApplyDefaults()
	if cfg.Endpoint != "collector:4318" || cfg.Insecure {
		t.Errorf("expected explicit endpoint kept secure, got %s insecure=%v", cfg.Endpoint, cfg.Insecure)
	}
}

func TestNewBridgeMetrics_Noop(t *testing.T) {
	m, err := NewBridgeMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	m.RecordDrive(context.Background(), "zip", DriveStats{Splits: 1}, time.Millisecond, nil)
	m.RecordDrive(context.Background(), "zip", DriveStats{}, time.Millisecond, fmt.Errorf("x"))
}

func TestBridgeMetrics_Recorded(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	m, err := NewBridgeMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	m.RecordDrive(ctx, "enumerate", DriveStats{Splits: 3, Leaves: 4, Items: 100, MaxDepth: 2}, 10*time.Millisecond, nil)
	m.RecordDrive(ctx, "enumerate", DriveStats{Splits: 1, Leaves: 2, Items: 50, MaxDepth: 1}, 5*time.Millisecond, nil)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if s, ok := md.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range s.DataPoints {
					sums[md.Name] += dp.Value
				}
			}
		}
	}

	want := map[string]int64{
		"pariter.bridge.drives": 2,
		"pariter.bridge.splits": 4,
		"pariter.bridge.leaves": 6,
		"pariter.bridge.items":  150,
	}
	for name, v := range want {
		if sums[name] != v {
			t.Errorf("%s: got %d, want %d", name, sums[name], v)
		}
	}
}

func TestStartSpan_Recorded(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer tp.Shutdown(context.Background())

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	_, span := StartSpan(context.Background(), SpanBridgeDrive)
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 || spans[0].Name != SpanBridgeDrive {
		t.Fatalf("expected one %s span, got %v", SpanBridgeDrive, spans)
	}
}

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("expected no-op shutdown, got %v", err)
	}
}

func TestInitTracerSamplingRates(t *testing.T) {
	prev := otel.GetTracerProvider()
	defer otel.SetTracerProvider(prev)

	for _, rate := range []float64{1.0, 0.0, 0.5} {
		t.Run(fmt.Sprintf("rate %.1f", rate), func(t *testing.T) {
			cfg := DefaultConfig("test")
			cfg.SampleRate = rate
			tp, err := InitTracer(context.Background(), cfg)
			if err != nil {
				t.Fatalf("InitTracer: %v", err)
			}
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			_ = tp.Shutdown(ctx)
		})
	}
}
