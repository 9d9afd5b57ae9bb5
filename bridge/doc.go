// Package bridge drives a producer and a consumer through the split/produce
// recursion a fork-join scheduler would perform, sequentially and inline.
//
// It is the reference implementation of the scheduler side of the producer
// contract: it consults Len and Cost to decide whether to split, splits the
// producer and the consumer at the same index, runs the left half to
// completion before the right half, and combines results with the
// consumer's Reduce. It never starts goroutines; a concurrent scheduler may
// run the two halves on different workers because they share nothing but
// the read-only backing data.
//
// # Consumers
//
//   - Fold: accumulate with identity/fold/reduce functions
//   - ForEach: call a function for every item
//   - Count: count items
//   - Find: stop as soon as an item matches (early abandonment)
//
// # Usage
//
//	b, err := bridge.New(bridge.Config{SplitThreshold: 4096})
//	it := parallel.Enumerate(parallel.FromSlice(xs))
//	sum, stats, err := bridge.Run(ctx, b, it, bridge.Fold(
//	    func() int { return 0 },
//	    func(acc int, item producer.Indexed[*int]) int { return acc + item.Index * *item.Item },
//	    func(a, b int) int { return a + b },
//	))
package bridge
