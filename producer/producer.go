package producer

// Producer is a splittable, strictly ordered cursor over a bounded range of
// items of type T. Shared is read-only side-channel data of type S threaded
// into every Cost and Produce call; a producer never retains or mutates it.
type Producer[T, S any] interface {
	// Len returns the number of items left to produce.
	Len() int
	// Cost estimates the work of producing items items. Scheduling hint only.
	Cost(shared S, items int) float64
	// SplitAt partitions the remaining range into the first index items and
	// the rest. Requires 0 <= index <= Len(). The receiver must not be used
	// afterwards.
	SplitAt(index int) (Producer[T, S], Producer[T, S])
	// Produce removes and returns the first remaining item. Requires Len() > 0.
	Produce(shared S) T
}

// Unit is the shared context of producers that need none.
type Unit struct{}

// Indexed is an item tagged with its absolute position in the unsplit sequence.
type Indexed[T any] struct {
	Index int
	Item  T
}

// Pair holds two values positionally combined by Zip. It is both the zip
// item type and the zip shared-context type.
type Pair[A, B any] struct {
	First  A
	Second B
}
