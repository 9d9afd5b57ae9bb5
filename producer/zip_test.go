package producer

import (
	"math/rand/v2"
	"testing"
)

type intZip = Producer[Pair[*int, *int], Pair[Unit, Unit]]

func newIntZip(a, b []int, policy CostPolicy) intZip {
	return NewZip[*int, Unit, *int, Unit](NewSlice(a), NewSlice(b), policy)
}

func pairs(items []Pair[*int, *int]) [][2]int {
	out := make([][2]int, len(items))
	for i, it := range items {
		out[i] = [2]int{*it.First, *it.Second}
	}
	return out
}

func TestZip_LengthLaw(t *testing.T) {
	tests := []struct {
		name string
		a, b int
	}{
		{"both empty", 0, 0},
		{"left empty", 0, 5},
		{"right empty", 5, 0},
		{"equal", 6, 6},
		{"left shorter", 3, 9},
		{"right shorter", 9, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			z := newIntZip(seq(tc.a), seq(tc.b), CostSum)
			if got, want := z.Len(), min(tc.a, tc.b); got != want {
				t.Errorf("got len %d, want %d", got, want)
			}
			if got := len(drain(z, Pair[Unit, Unit]{})); got != min(tc.a, tc.b) {
				t.Errorf("produced %d items, want %d", got, min(tc.a, tc.b))
			}
		})
	}
}

func TestZip_Truncation(t *testing.T) {
	z := newIntZip([]int{1, 2, 3, 4}, []int{9, 8}, CostSum)
	got := pairs(drain(z, Pair[Unit, Unit]{}))
	want := [][2]int{{1, 9}, {2, 8}}
	if !equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestZip_SplitKeepsSidesAligned(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7}
	b := []int{10, 20, 30, 40, 50}
	z := newIntZip(a, b, CostSum)
	left, right := z.SplitAt(2)
	if left.Len() != 2 || right.Len() != 3 {
		t.Fatalf("got lens %d/%d, want 2/3", left.Len(), right.Len())
	}
	rl, rr := right.SplitAt(3)
	if rr.Len() != 0 {
		t.Errorf("expected empty tail after splitting at zipped length, got %d", rr.Len())
	}

	var got [][2]int
	for _, leaf := range []intZip{left, rl, rr} {
		got = append(got, pairs(drain(leaf, Pair[Unit, Unit]{}))...)
	}
	want := [][2]int{{1, 10}, {2, 20}, {3, 30}, {4, 40}, {5, 50}}
	if !equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestZip_RandomNestedSplits(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 9))
	for trial := range 200 {
		a, b := seq(r.IntN(30)), seq(r.IntN(30))
		for i := range b {
			b[i]++
		}
		z := newIntZip(a, b, CostSum)

		var got [][2]int
		for _, leaf := range randomLeaves(r, z, 6) {
			got = append(got, pairs(drain(leaf, Pair[Unit, Unit]{}))...)
		}

		n := min(len(a), len(b))
		if len(got) != n {
			t.Fatalf("trial %d: got %d pairs, want %d", trial, len(got), n)
		}
		for i, p := range got {
			if p != [2]int{a[i], b[i]} {
				t.Fatalf("trial %d: pair %d got %v, want %v", trial, i, p, [2]int{a[i], b[i]})
			}
		}
	}
}

func TestZip_OfEnumerate(t *testing.T) {
	e := NewEnumerate[*int, Unit](NewSlice([]int{7, 8, 9}), 0)
	var z Producer[Pair[Indexed[*int], *string], Pair[Unit, Unit]] = NewZip[Indexed[*int], Unit, *string, Unit](
		e, NewSlice([]string{"a", "b"}), CostSum)

	left, right := z.SplitAt(1)
	first := left.Produce(Pair[Unit, Unit]{})
	second := right.Produce(Pair[Unit, Unit]{})
	if first.First.Index != 0 || *first.First.Item != 7 || *first.Second != "a" {
		t.Errorf("first: got (%d,%d,%s)", first.First.Index, *first.First.Item, *first.Second)
	}
	if second.First.Index != 1 || *second.First.Item != 8 || *second.Second != "b" {
		t.Errorf("second: got (%d,%d,%s)", second.First.Index, *second.First.Item, *second.Second)
	}
	if right.Len() != 0 {
		t.Errorf("expected right exhausted, got len %d", right.Len())
	}
}

// scaled is a producer whose cost depends on its shared context, used to
// check that Zip routes each half of the shared pair to the right side.
type scaled struct {
	Slice[int]
}

func (s *scaled) Cost(shared float64, items int) float64 { return shared * float64(items) }

func (s *scaled) SplitAt(index int) (Producer[*int, float64], Producer[*int, float64]) {
	l, r := s.Slice.SplitAt(index)
	return &scaled{Slice: *l.(*Slice[int])}, &scaled{Slice: *r.(*Slice[int])}
}

func (s *scaled) Produce(_ float64) *int { return s.Slice.Produce(Unit{}) }

func TestZip_CostPolicies(t *testing.T) {
	p := &scaled{Slice: *NewSlice(seq(10))}
	q := &scaled{Slice: *NewSlice(seq(10))}
	shared := Pair[float64, float64]{First: 2, Second: 5}

	sum := NewZip[*int, float64, *int, float64](p, q, CostSum)
	if got := sum.Cost(shared, 4); got != 28 {
		t.Errorf("sum: got %v, want 28", got)
	}

	mx := NewZip[*int, float64, *int, float64](p, q, CostMax)
	if got := mx.Cost(shared, 4); got != 20 {
		t.Errorf("max: got %v, want 20", got)
	}
}

func TestZip_CostMonotonic(t *testing.T) {
	for _, policy := range []CostPolicy{CostSum, CostMax} {
		t.Run(policy.String(), func(t *testing.T) {
			z := newIntZip(seq(8), seq(5), policy)
			prev := 0.0
			for items := 0; items <= 64; items++ {
				c := z.Cost(Pair[Unit, Unit]{}, items)
				if c < 0 || c < prev {
					t.Fatalf("items=%d: cost %v not monotonic non-negative (prev %v)", items, c, prev)
				}
				prev = c
			}
		})
	}
}

func TestZip_PolicySurvivesSplit(t *testing.T) {
	z := newIntZip(seq(8), seq(8), CostMax)
	left, right := z.SplitAt(4)
	for _, half := range []intZip{left, right} {
		if got := half.(*Zip[*int, Unit, *int, Unit]).Policy(); got != CostMax {
			t.Errorf("got policy %v, want max", got)
		}
	}
}
