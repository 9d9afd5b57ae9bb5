package main

import (
	"context"
	"fmt"

	"github.com/kbukum/pariter/bridge"
	"github.com/kbukum/pariter/parallel"
	"github.com/kbukum/pariter/producer"
)

// workloadFunc runs one benchmark shape over n generated items.
type workloadFunc func(ctx context.Context, b *bridge.Bridge, n int, policy producer.CostPolicy) (float64, bridge.Stats, error)

var workloads = map[string]workloadFunc{
	"enumerate": runEnumerate,
	"zip":       runZip,
	"dot":       runDot,
}

func lookupWorkload(name string) (workloadFunc, error) {
	fn, ok := workloads[name]
	if !ok {
		return nil, fmt.Errorf("unknown workload %q", name)
	}
	return fn, nil
}

// runEnumerate computes sum(i * data[i]) with data[i] = i mod 1000.
func runEnumerate(ctx context.Context, b *bridge.Bridge, n int, _ producer.CostPolicy) (float64, bridge.Stats, error) {
	data := make([]int, n)
	for i := range data {
		data[i] = i % 1000
	}

	type item = producer.Indexed[*int]
	it := parallel.Enumerate[*int, producer.Unit](parallel.FromSlice(data))
	sum := bridge.Fold(
		func() int64 { return 0 },
		func(acc int64, x item) int64 { return acc + int64(x.Index)*int64(*x.Item) },
		func(a, b int64) int64 { return a + b },
	)
	res, stats, err := bridge.Run[item, producer.Unit, int64](ctx, b, it, sum)
	return float64(res), stats, err
}

// runZip counts the pairs of two slices whose lengths differ by a quarter,
// exercising truncation.
func runZip(ctx context.Context, b *bridge.Bridge, n int, policy producer.CostPolicy) (float64, bridge.Stats, error) {
	xs, ys := make([]int, n), make([]int, n-n/4)
	for i := range xs {
		xs[i] = i
	}
	for i := range ys {
		ys[i] = n - i
	}

	type pair = producer.Pair[*int, *int]
	it := parallel.Zip[*int, producer.Unit, *int, producer.Unit](
		parallel.FromSlice(xs), parallel.FromSlice(ys), parallel.WithCostPolicy(policy))
	res, stats, err := bridge.Run[pair, producer.Pair[producer.Unit, producer.Unit], int](ctx, b, it, bridge.Count[pair]())
	return float64(res), stats, err
}

// runDot computes the dot product of [0, 1, 2, ...] with a constant 2 vector
// a quarter shorter.
func runDot(ctx context.Context, b *bridge.Bridge, n int, policy producer.CostPolicy) (float64, bridge.Stats, error) {
	xs, ys := make([]float64, n), make([]float64, n-n/4)
	for i := range xs {
		xs[i] = float64(i)
	}
	for i := range ys {
		ys[i] = 2
	}

	type pair = producer.Pair[*float64, *float64]
	it := parallel.Zip[*float64, producer.Unit, *float64, producer.Unit](
		parallel.FromSlice(xs), parallel.FromSlice(ys), parallel.WithCostPolicy(policy))
	dot := bridge.Fold(
		func() float64 { return 0 },
		func(acc float64, p pair) float64 { return acc + (*p.First)*(*p.Second) },
		func(a, b float64) float64 { return a + b },
	)
	return bridge.Run[pair, producer.Pair[producer.Unit, producer.Unit], float64](ctx, b, it, dot)
}
