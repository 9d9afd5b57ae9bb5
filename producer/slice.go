package producer

// Slice produces borrowed pointers into a read-only slice. The backing array
// must not be written while any producer derived from it is alive.
type Slice[T any] struct {
	items []T
}

// NewSlice returns a producer over all of items.
func NewSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items}
}

func (s *Slice[T]) Len() int { return len(s.items) }

// Cost is linear in the number of items.
func (s *Slice[T]) Cost(_ Unit, items int) float64 {
	return float64(items)
}

func (s *Slice[T]) SplitAt(index int) (Producer[*T, Unit], Producer[*T, Unit]) {
	if debugAssertions {
		checkSplit("Slice.SplitAt", index, len(s.items))
	}
	// cap the left view so it cannot reach into the right half
	left := s.items[:index:index]
	right := s.items[index:]
	return &Slice[T]{items: left}, &Slice[T]{items: right}
}

// Produce returns a pointer to the first remaining element. Callers must not
// write through it.
func (s *Slice[T]) Produce(_ Unit) *T {
	if debugAssertions {
		checkProduce("Slice.Produce", len(s.items))
	}
	head := &s.items[0]
	s.items = s.items[1:]
	return head
}
