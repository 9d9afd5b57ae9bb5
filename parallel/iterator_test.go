package parallel

import (
	"testing"

	"github.com/kbukum/pariter/errors"
	"github.com/kbukum/pariter/producer"
)

func collect[T, S any](it Iterator[T, S]) []T {
	p, shared := it.IntoProducer()
	var out []T
	for item := range producer.All(p, shared) {
		out = append(out, item)
	}
	return out
}

func expectViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		appErr, ok := recover().(*errors.AppError)
		if !ok || appErr.Code != errors.ErrCodeContractViolation {
			t.Fatalf("expected CONTRACT_VIOLATION panic, got %v", appErr)
		}
	}()
	fn()
}

func TestFromSlice(t *testing.T) {
	it := FromSlice([]int{4, 5, 6})
	if it.Len() != 3 || it.UpperBound() != 3 {
		t.Errorf("got len %d upper %d, want 3/3", it.Len(), it.UpperBound())
	}
	got := collect[*int, producer.Unit](it)
	if len(got) != 3 || *got[0] != 4 || *got[2] != 6 {
		t.Errorf("unexpected items %v", got)
	}
}

func TestFromSlice_LenMatchesProduced(t *testing.T) {
	for _, n := range []int{0, 1, 17} {
		it := FromSlice(make([]string, n))
		want := it.Len()
		if got := len(collect[*string, producer.Unit](it)); got != want {
			t.Errorf("n=%d: produced %d, Len() said %d", n, got, want)
		}
	}
}

func TestIntoProducer_OnlyOnce(t *testing.T) {
	tests := []struct {
		name string
		into func()
	}{
		{"slice", func() {
			it := FromSlice([]int{1})
			it.IntoProducer()
			it.IntoProducer()
		}},
		{"enumerate", func() {
			it := Enumerate[*int, producer.Unit](FromSlice([]int{1}))
			it.IntoProducer()
			it.IntoProducer()
		}},
		{"zip", func() {
			it := Zip[*int, producer.Unit, *int, producer.Unit](FromSlice([]int{1}), FromSlice([]int{2}))
			it.IntoProducer()
			it.IntoProducer()
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) { expectViolation(t, tc.into) })
	}
}

func TestEnumerate(t *testing.T) {
	it := Enumerate[*int, producer.Unit](FromSlice([]int{10, 20, 30}))
	if it.Len() != 3 || it.UpperBound() != 3 {
		t.Errorf("got len %d upper %d, want 3/3", it.Len(), it.UpperBound())
	}
	for i, item := range collect[producer.Indexed[*int], producer.Unit](it) {
		if item.Index != i || *item.Item != (i+1)*10 {
			t.Errorf("got (%d,%d) at %d", item.Index, *item.Item, i)
		}
	}
}

func TestZip(t *testing.T) {
	it := Zip[*int, producer.Unit, *int, producer.Unit](FromSlice([]int{1, 2, 3, 4}), FromSlice([]int{9, 8}))
	if it.Len() != 2 || it.UpperBound() != 2 {
		t.Errorf("got len %d upper %d, want 2/2", it.Len(), it.UpperBound())
	}
	if it.CostPolicy() != producer.CostSum {
		t.Errorf("expected default sum policy, got %v", it.CostPolicy())
	}
	got := collect[producer.Pair[*int, *int], producer.Pair[producer.Unit, producer.Unit]](it)
	if len(got) != 2 {
		t.Fatalf("got %d pairs, want 2", len(got))
	}
	if *got[0].First != 1 || *got[0].Second != 9 || *got[1].First != 2 || *got[1].Second != 8 {
		t.Errorf("got (%d,%d),(%d,%d), want (1,9),(2,8)",
			*got[0].First, *got[0].Second, *got[1].First, *got[1].Second)
	}
}

func TestZip_WithCostPolicy(t *testing.T) {
	it := Zip[*int, producer.Unit, *int, producer.Unit](
		FromSlice(make([]int, 10)), FromSlice(make([]int, 10)),
		WithCostPolicy(producer.CostMax))
	p, shared := it.IntoProducer()
	if got := p.Cost(shared, 10); got != 10 {
		t.Errorf("max policy: got cost %v, want 10", got)
	}
}

func TestZip_SharedContextIsPaired(t *testing.T) {
	inner := Zip[*int, producer.Unit, *int, producer.Unit](FromSlice([]int{1}), FromSlice([]int{2}))
	outer := Zip[producer.Pair[*int, *int], producer.Pair[producer.Unit, producer.Unit], *string, producer.Unit](
		inner, FromSlice([]string{"x", "y"}))
	p, shared := outer.IntoProducer()
	var _ producer.Pair[producer.Pair[producer.Unit, producer.Unit], producer.Unit] = shared
	if p.Len() != 1 {
		t.Errorf("got len %d, want 1", p.Len())
	}
	item := p.Produce(shared)
	if *item.First.First != 1 || *item.First.Second != 2 || *item.Second != "x" {
		t.Errorf("unexpected item (%d,%d,%s)", *item.First.First, *item.First.Second, *item.Second)
	}
}

func TestEnumerateOfZip(t *testing.T) {
	it := Enumerate[producer.Pair[*int, *int], producer.Pair[producer.Unit, producer.Unit]](
		Zip[*int, producer.Unit, *int, producer.Unit](FromSlice([]int{1, 2, 3}), FromSlice([]int{4, 5, 6, 7})))
	p, shared := it.IntoProducer()
	left, right := p.SplitAt(2)
	r := right.Produce(shared)
	l := left.Produce(shared)
	if l.Index != 0 || *l.Item.First != 1 || *l.Item.Second != 4 {
		t.Errorf("left: got (%d,%d,%d)", l.Index, *l.Item.First, *l.Item.Second)
	}
	if r.Index != 2 || *r.Item.First != 3 || *r.Item.Second != 6 {
		t.Errorf("right: got (%d,%d,%d)", r.Index, *r.Item.First, *r.Item.Second)
	}
}
