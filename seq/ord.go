package seq

import (
	"sort"

	"github.com/npillmayer/gap/maybe"
	"golang.org/x/exp/constraints"
)

// Numeric constrains the summable element types.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Min returns the smallest element, if there is one.
func Min[T constraints.Ordered](xs []T) maybe.Maybe[T] {
	if len(xs) == 0 {
		return maybe.Nothing[T]()
	}
	min := xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
	}
	return maybe.Just(min)
}

// Max returns the largest element, if there is one.
func Max[T constraints.Ordered](xs []T) maybe.Maybe[T] {
	if len(xs) == 0 {
		return maybe.Nothing[T]()
	}
	max := xs[0]
	for _, x := range xs[1:] {
		if x > max {
			max = x
		}
	}
	return maybe.Just(max)
}

// Sum adds up the elements; zero for an empty slice.
func Sum[T Numeric](xs []T) T {
	var sum T
	for _, x := range xs {
		sum += x
	}
	return sum
}

// SortBy returns a copy of xs ordered by less. The input stays as it is.
func SortBy[T any](xs []T, less func(a, b T) bool) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// Range counts from from up to, but not including, upto. A descending
// range counts down.
func Range[N constraints.Integer](from, upto N) []N {
	if from == upto {
		return []N{}
	}
	step := N(1)
	n := int64(upto) - int64(from) // the span may not fit into N
	if upto < from {
		step = -step
		n = -n
	}
	out := make([]N, 0, int(n))
	for i := from; i != upto; i += step {
		out = append(out, i)
	}
	return out
}
