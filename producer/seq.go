package producer

import "iter"

// All drains p sequentially in order. Stopping the range early abandons the
// remaining items, which is always safe.
func All[T, S any](p Producer[T, S], shared S) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p.Len() > 0 {
			if !yield(p.Produce(shared)) {
				return
			}
		}
	}
}
