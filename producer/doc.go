// Package producer provides splittable cursors over indexed data.
//
// A Producer owns a contiguous range of items. A scheduler asks it for a
// cost estimate, splits it into disjoint halves with SplitAt, and eventually
// pulls items one at a time with Produce. Combinators wrap other producers
// structurally, so arbitrarily deep and repeated splitting keeps item order,
// absolute positions and pairwise correspondence exactly as a sequential
// loop would.
//
// # Producers
//
//   - Slice: read-only view into a borrowed slice, yields *T
//   - Enumerate: tags each item with its absolute position
//   - Zip: pairs two producers positionally, truncating to the shorter one
//
// # Preconditions
//
// SplitAt(index) requires 0 <= index <= Len(). Produce requires Len() > 0.
// Neither is checked on the hot path. Building with -tags pariterdebug
// enables assertions that panic with a CONTRACT_VIOLATION *errors.AppError.
//
// # Usage
//
//	var p producer.Producer[producer.Indexed[*int], producer.Unit]
//	p = producer.NewEnumerate(producer.NewSlice(xs), 0)
//	left, right := p.SplitAt(p.Len() / 2)
//	for item := range producer.All(left, producer.Unit{}) {
//	    fmt.Println(item.Index, *item.Item)
//	}
//	_ = right
package producer
