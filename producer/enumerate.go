package producer

// Enumerate wraps a producer and tags each item with its absolute position.
type Enumerate[T, S any] struct {
	base   Producer[T, S]
	offset int
}

// NewEnumerate wraps base. offset is the absolute position of base's first
// remaining item, 0 for an unsplit sequence.
func NewEnumerate[T, S any](base Producer[T, S], offset int) *Enumerate[T, S] {
	return &Enumerate[T, S]{base: base, offset: offset}
}

func (e *Enumerate[T, S]) Len() int { return e.base.Len() }

// Offset returns the absolute position of the next item.
func (e *Enumerate[T, S]) Offset() int { return e.offset }

// Cost is the base cost; position tagging is free.
func (e *Enumerate[T, S]) Cost(shared S, items int) float64 {
	return e.base.Cost(shared, items)
}

func (e *Enumerate[T, S]) SplitAt(index int) (Producer[Indexed[T], S], Producer[Indexed[T], S]) {
	if debugAssertions {
		checkSplit("Enumerate.SplitAt", index, e.base.Len())
	}
	left, right := e.base.SplitAt(index)
	return &Enumerate[T, S]{base: left, offset: e.offset},
		&Enumerate[T, S]{base: right, offset: e.offset + index}
}

func (e *Enumerate[T, S]) Produce(shared S) Indexed[T] {
	item := e.base.Produce(shared)
	index := e.offset
	e.offset++
	return Indexed[T]{Index: index, Item: item}
}
