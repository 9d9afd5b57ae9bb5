package parallel

import "github.com/kbukum/pariter/producer"

// ZipOption configures a ZipIter.
type ZipOption func(*zipOptions)

type zipOptions struct {
	policy producer.CostPolicy
}

// WithCostPolicy selects how the two sides' cost estimates are combined.
// Defaults to producer.CostSum.
func WithCostPolicy(policy producer.CostPolicy) ZipOption {
	return func(o *zipOptions) { o.policy = policy }
}

// ZipIter pairs two iterators positionally.
type ZipIter[A, SA, B, SB any] struct {
	a    Iterator[A, SA]
	b    Iterator[B, SB]
	opts zipOptions
	handoff
}

// Zip pairs a and b. The result has the length of the shorter input; the
// extra items of the longer one are dropped.
func Zip[A, SA, B, SB any](a Iterator[A, SA], b Iterator[B, SB], opts ...ZipOption) *ZipIter[A, SA, B, SB] {
	it := &ZipIter[A, SA, B, SB]{a: a, b: b}
	for _, opt := range opts {
		opt(&it.opts)
	}
	return it
}

func (it *ZipIter[A, SA, B, SB]) Len() int        { return min(it.a.Len(), it.b.Len()) }
func (it *ZipIter[A, SA, B, SB]) UpperBound() int { return it.Len() }

// CostPolicy returns the configured cost policy.
func (it *ZipIter[A, SA, B, SB]) CostPolicy() producer.CostPolicy { return it.opts.policy }

func (it *ZipIter[A, SA, B, SB]) IntoProducer() (producer.Producer[producer.Pair[A, B], producer.Pair[SA, SB]], producer.Pair[SA, SB]) {
	it.take("ZipIter.IntoProducer")
	p, sharedP := it.a.IntoProducer()
	q, sharedQ := it.b.IntoProducer()
	shared := producer.Pair[SA, SB]{First: sharedP, Second: sharedQ}
	return producer.NewZip(p, q, it.opts.policy), shared
}
