package parallel

import (
	"github.com/kbukum/pariter/errors"
	"github.com/kbukum/pariter/producer"
)

// Bounded reports an upper bound on the number of items, used by schedulers
// to size splits.
type Bounded interface {
	UpperBound() int
}

// Iterator is a length-known traversal that can be turned into a producer.
type Iterator[T, S any] interface {
	Bounded
	// Len is the exact number of items the producer will yield.
	Len() int
	// IntoProducer hands over the full range. It may be called at most once.
	IntoProducer() (producer.Producer[T, S], S)
}

// handoff guards the one-time IntoProducer transfer.
type handoff struct {
	taken bool
}

func (h *handoff) take(op string) {
	if h.taken {
		panic(errors.ContractViolation(op, "IntoProducer called more than once"))
	}
	h.taken = true
}

// SliceIter iterates a borrowed slice, yielding pointers to its elements.
type SliceIter[T any] struct {
	items []T
	handoff
}

// FromSlice returns an iterator over items. items must not be modified
// until every producer derived from it is done.
func FromSlice[T any](items []T) *SliceIter[T] {
	return &SliceIter[T]{items: items}
}

func (it *SliceIter[T]) Len() int        { return len(it.items) }
func (it *SliceIter[T]) UpperBound() int { return it.Len() }

func (it *SliceIter[T]) IntoProducer() (producer.Producer[*T, producer.Unit], producer.Unit) {
	it.take("SliceIter.IntoProducer")
	return producer.NewSlice(it.items), producer.Unit{}
}
