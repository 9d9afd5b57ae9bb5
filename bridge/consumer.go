package bridge

import "sync/atomic"

// Consumer receives produced items. It is split alongside the producer so
// each half folds its own items; Reduce combines the left and right results
// in order.
type Consumer[T, R any] interface {
	// SplitAt returns consumers for the first index items and the rest.
	// Called only before any item has been consumed.
	SplitAt(index int) (Consumer[T, R], Consumer[T, R])
	// Consume folds one item.
	Consume(item T)
	// Full reports that no further items are needed.
	Full() bool
	// Result returns the folded value.
	Result() R
	// Reduce combines the results of a left and a right half.
	Reduce(left, right R) R
}

type foldConsumer[T, R any] struct {
	acc      R
	identity func() R
	fold     func(R, T) R
	reduce   func(R, R) R
}

// Fold returns a consumer that starts each half at identity(), folds items
// with fold, and merges halves with reduce.
func Fold[T, R any](identity func() R, fold func(R, T) R, reduce func(R, R) R) Consumer[T, R] {
	return &foldConsumer[T, R]{acc: identity(), identity: identity, fold: fold, reduce: reduce}
}

func (f *foldConsumer[T, R]) SplitAt(int) (Consumer[T, R], Consumer[T, R]) {
	return Fold(f.identity, f.fold, f.reduce), Fold(f.identity, f.fold, f.reduce)
}

func (f *foldConsumer[T, R]) Consume(item T)         { f.acc = f.fold(f.acc, item) }
func (f *foldConsumer[T, R]) Full() bool             { return false }
func (f *foldConsumer[T, R]) Result() R              { return f.acc }
func (f *foldConsumer[T, R]) Reduce(left, right R) R { return f.reduce(left, right) }

// ForEach returns a consumer calling fn for every item. fn must be safe for
// concurrent use if halves run on different goroutines.
func ForEach[T any](fn func(T)) Consumer[T, struct{}] {
	return Fold(
		func() struct{} { return struct{}{} },
		func(_ struct{}, item T) struct{} { fn(item); return struct{}{} },
		func(struct{}, struct{}) struct{} { return struct{}{} },
	)
}

// Count returns a consumer counting items.
func Count[T any]() Consumer[T, int] {
	return Fold(
		func() int { return 0 },
		func(n int, _ T) int { return n + 1 },
		func(a, b int) int { return a + b },
	)
}

// Match is the result of Find.
type Match[T any] struct {
	Item T
	OK   bool
}

type findConsumer[T any] struct {
	pred  func(T) bool
	found *atomic.Bool
	match Match[T]
}

// Find returns a consumer that stops every half once any item satisfies
// pred. Under the sequential bridge the match is the first in order.
func Find[T any](pred func(T) bool) Consumer[T, Match[T]] {
	return &findConsumer[T]{pred: pred, found: new(atomic.Bool)}
}

func (f *findConsumer[T]) SplitAt(int) (Consumer[T, Match[T]], Consumer[T, Match[T]]) {
	return &findConsumer[T]{pred: f.pred, found: f.found},
		&findConsumer[T]{pred: f.pred, found: f.found}
}

func (f *findConsumer[T]) Consume(item T) {
	if !f.match.OK && f.pred(item) {
		f.match = Match[T]{Item: item, OK: true}
		f.found.Store(true)
	}
}

func (f *findConsumer[T]) Full() bool       { return f.found.Load() }
func (f *findConsumer[T]) Result() Match[T] { return f.match }

func (f *findConsumer[T]) Reduce(left, right Match[T]) Match[T] {
	if left.OK {
		return left
	}
	return right
}
