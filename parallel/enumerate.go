package parallel

import "github.com/kbukum/pariter/producer"

// EnumerateIter tags every item of its base with its position.
type EnumerateIter[T, S any] struct {
	base Iterator[T, S]
	handoff
}

// Enumerate wraps base so each item is paired with its index.
func Enumerate[T, S any](base Iterator[T, S]) *EnumerateIter[T, S] {
	return &EnumerateIter[T, S]{base: base}
}

func (it *EnumerateIter[T, S]) Len() int        { return it.base.Len() }
func (it *EnumerateIter[T, S]) UpperBound() int { return it.Len() }

func (it *EnumerateIter[T, S]) IntoProducer() (producer.Producer[producer.Indexed[T], S], S) {
	it.take("EnumerateIter.IntoProducer")
	base, shared := it.base.IntoProducer()
	return producer.NewEnumerate(base, 0), shared
}
