package bridge

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/pariter/errors"
	"github.com/kbukum/pariter/logger"
	"github.com/kbukum/pariter/observability"
	"github.com/kbukum/pariter/parallel"
	"github.com/kbukum/pariter/producer"
)

const defaultWorkload = "default"

// Stats describes the shape of one drive.
type Stats struct {
	Splits   int
	Leaves   int
	Items    int
	MaxDepth int
}

func (s Stats) fields() map[string]any {
	return logger.Fields(
		logger.FieldSplits, s.Splits,
		logger.FieldLeaves, s.Leaves,
		logger.FieldItems, s.Items,
		logger.FieldDepth, s.MaxDepth,
	)
}

// Bridge holds the split policy and the telemetry sinks for drives.
type Bridge struct {
	cfg      Config
	workload string
	log      *logger.Logger
	metrics  *observability.BridgeMetrics
	tracer   trace.Tracer
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger. Defaults to the global logger.
func WithLogger(l *logger.Logger) Option {
	return func(b *Bridge) { b.log = l }
}

// WithMetrics records every drive on m.
func WithMetrics(m *observability.BridgeMetrics) Option {
	return func(b *Bridge) { b.metrics = m }
}

// WithTracer sets the tracer used for drive spans.
func WithTracer(t trace.Tracer) Option {
	return func(b *Bridge) { b.tracer = t }
}

// WithWorkload labels logs, spans and metrics of every drive.
func WithWorkload(name string) Option {
	return func(b *Bridge) { b.workload = name }
}

// New validates cfg and returns a Bridge.
func New(cfg Config, opts ...Option) (*Bridge, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Bridge{cfg: cfg, workload: defaultWorkload}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = logger.WithComponent("bridge")
	}
	if b.tracer == nil {
		b.tracer = observability.DefaultTracer()
	}
	return b, nil
}

// Config returns the effective configuration.
func (b *Bridge) Config() Config { return b.cfg }

// Run hands the iterator off to its producer and drives it into c.
func Run[T, S, R any](ctx context.Context, b *Bridge, it parallel.Iterator[T, S], c Consumer[T, R]) (R, Stats, error) {
	p, shared := it.IntoProducer()
	return Drive(ctx, b, p, shared, c)
}

// Drive splits p recursively and feeds every leaf into the matching half of
// c. Left halves run before right halves, so consumers observe items in
// index order.
func Drive[T, S, R any](ctx context.Context, b *Bridge, p producer.Producer[T, S], shared S, c Consumer[T, R]) (R, Stats, error) {
	start := time.Now()
	length := p.Len()

	ctx, span := b.tracer.Start(ctx, observability.SpanBridgeDrive, trace.WithAttributes(
		attribute.String(observability.AttrWorkload, b.workload),
		attribute.Int(observability.AttrLen, length),
	))
	defer span.End()

	d := &driver[T, S, R]{ctx: ctx, cfg: b.cfg, shared: shared}
	result, err := d.run(p, c, 0)
	elapsed := time.Since(start)

	span.SetAttributes(
		attribute.Int(observability.AttrSplits, d.stats.Splits),
		attribute.Int(observability.AttrLeaves, d.stats.Leaves),
		attribute.Int(observability.AttrItems, d.stats.Items),
		attribute.Int(observability.AttrMaxDepth, d.stats.MaxDepth),
	)
	if b.metrics != nil {
		b.metrics.RecordDrive(ctx, b.workload, observability.DriveStats(d.stats), elapsed, err)
	}

	log := b.log.WithFields(logger.Fields(
		logger.FieldWorkload, b.workload,
		logger.FieldLen, length,
	))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("drive aborted", logger.ErrorFields("drive", err), d.stats.fields())
		return result, d.stats, err
	}
	if log.DebugEnabled() {
		log.Debug("drive finished", d.stats.fields(), logger.DurationFields("drive", elapsed))
	}
	return result, d.stats, nil
}

type driver[T, S, R any] struct {
	ctx    context.Context
	cfg    Config
	shared S
	stats  Stats
}

func (d *driver[T, S, R]) run(p producer.Producer[T, S], c Consumer[T, R], depth int) (R, error) {
	d.stats.MaxDepth = max(d.stats.MaxDepth, depth)
	if c.Full() {
		return c.Result(), nil
	}

	n := p.Len()
	if !d.shouldSplit(p, n, depth) {
		return d.leaf(p, c)
	}

	mid := n / 2
	lp, rp := p.SplitAt(mid)
	lc, rc := c.SplitAt(mid)
	d.stats.Splits++

	left, err := d.run(lp, lc, depth+1)
	if err != nil {
		return left, err
	}
	right, err := d.run(rp, rc, depth+1)
	if err != nil {
		return right, err
	}
	return c.Reduce(left, right), nil
}

func (d *driver[T, S, R]) shouldSplit(p producer.Producer[T, S], n, depth int) bool {
	return n > d.cfg.MinLen &&
		depth < d.cfg.MaxDepth &&
		p.Cost(d.shared, n) > d.cfg.SplitThreshold
}

func (d *driver[T, S, R]) leaf(p producer.Producer[T, S], c Consumer[T, R]) (R, error) {
	if err := d.ctx.Err(); err != nil {
		var zero R
		return zero, errors.Cancelled("bridge drive", err)
	}
	d.stats.Leaves++
	for n := p.Len(); n > 0 && !c.Full(); n-- {
		c.Consume(p.Produce(d.shared))
		d.stats.Items++
	}
	return c.Result(), nil
}
