package producer

// Zip pairs two producers positionally. Its length is the shorter of the
// two; items beyond that on the longer side are never produced.
type Zip[A, SA, B, SB any] struct {
	p      Producer[A, SA]
	q      Producer[B, SB]
	policy CostPolicy
}

// NewZip pairs p and q, combining their cost estimates with policy.
func NewZip[A, SA, B, SB any](p Producer[A, SA], q Producer[B, SB], policy CostPolicy) *Zip[A, SA, B, SB] {
	return &Zip[A, SA, B, SB]{p: p, q: q, policy: policy}
}

func (z *Zip[A, SA, B, SB]) Len() int {
	return min(z.p.Len(), z.q.Len())
}

// Policy returns the policy used to combine the two cost estimates.
func (z *Zip[A, SA, B, SB]) Policy() CostPolicy { return z.policy }

func (z *Zip[A, SA, B, SB]) Cost(shared Pair[SA, SB], items int) float64 {
	return z.policy.Combine(z.p.Cost(shared.First, items), z.q.Cost(shared.Second, items))
}

// SplitAt splits both sides at the same index. index is bounded by the
// zipped length, not by either side's own length.
func (z *Zip[A, SA, B, SB]) SplitAt(index int) (Producer[Pair[A, B], Pair[SA, SB]], Producer[Pair[A, B], Pair[SA, SB]]) {
	if debugAssertions {
		checkSplit("Zip.SplitAt", index, z.Len())
	}
	pLeft, pRight := z.p.SplitAt(index)
	qLeft, qRight := z.q.SplitAt(index)
	return &Zip[A, SA, B, SB]{p: pLeft, q: qLeft, policy: z.policy},
		&Zip[A, SA, B, SB]{p: pRight, q: qRight, policy: z.policy}
}

// Produce takes one item from the first side, then one from the second.
func (z *Zip[A, SA, B, SB]) Produce(shared Pair[SA, SB]) Pair[A, B] {
	if debugAssertions {
		checkProduce("Zip.Produce", z.Len())
	}
	a := z.p.Produce(shared.First)
	b := z.q.Produce(shared.Second)
	return Pair[A, B]{First: a, Second: b}
}
