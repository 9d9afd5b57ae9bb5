// Package parallel exposes indexed traversals to a fork-join scheduler.
//
// An Iterator reports its exact length and hands over its full range once,
// as a producer.Producer plus the shared context that producer expects.
// Combinators compose structurally: Enumerate passes the shared context
// through, Zip pairs the contexts of its two sides.
//
//	xs := []int{10, 20, 30}
//	ys := []string{"a", "b"}
//	it := parallel.Zip(parallel.Enumerate(parallel.FromSlice(xs)), parallel.FromSlice(ys))
//	it.Len() // 2
//	p, shared := it.IntoProducer()
package parallel
