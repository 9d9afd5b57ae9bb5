package producer

import "math/rand/v2"

func drain[T, S any](p Producer[T, S], shared S) []T {
	var out []T
	for item := range All(p, shared) {
		out = append(out, item)
	}
	return out
}

func deref[T any](ptrs []*T) []T {
	out := make([]T, len(ptrs))
	for i, p := range ptrs {
		out[i] = *p
	}
	return out
}

// randomLeaves splits p at random indices up to depth levels deep and
// returns the resulting leaves in logical order.
func randomLeaves[T, S any](r *rand.Rand, p Producer[T, S], depth int) []Producer[T, S] {
	if depth == 0 || r.IntN(4) == 0 {
		return []Producer[T, S]{p}
	}
	left, right := p.SplitAt(r.IntN(p.Len() + 1))
	return append(randomLeaves(r, left, depth-1), randomLeaves(r, right, depth-1)...)
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i * 10
	}
	return out
}

func equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
