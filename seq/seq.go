/*
Package seq holds the everyday slice helpers of the toolkit: transforms,
searches and selections over plain Go slices. Everything is eager,
synchronous and allocation-fresh: inputs are never written to, results
are always new slices.
*/
package seq

import (
	"github.com/npillmayer/gap/maybe"
)

// Map applies f to every element, left to right.
func Map[T, U any](xs []T, f func(T) U) []U {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		out = append(out, f(x))
	}
	return out
}

// Filter keeps the elements satisfying pred, in order.
func Filter[T any](xs []T, pred func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if pred(x) {
			out = append(out, x)
		}
	}
	return out
}

// Each calls f on every element, left to right.
func Each[T any](xs []T, f func(T)) {
	for _, x := range xs {
		f(x)
	}
}

// Reduce folds xs from the left onto acc.
func Reduce[T, A any](xs []T, acc A, f func(A, T) A) A {
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// Find returns the first element satisfying pred.
func Find[T any](xs []T, pred func(T) bool) maybe.Maybe[T] {
	for _, x := range xs {
		if pred(x) {
			return maybe.Just(x)
		}
	}
	return maybe.Nothing[T]()
}

// FindIndex returns the index of the first element satisfying pred, or -1.
func FindIndex[T any](xs []T, pred func(T) bool) int {
	for i, x := range xs {
		if pred(x) {
			return i
		}
	}
	return -1
}

// IndexOf returns the index of the first occurrence of x, or -1.
func IndexOf[T comparable](xs []T, x T) int {
	for i, e := range xs {
		if e == x {
			return i
		}
	}
	return -1
}

// Contains reports whether x occurs in xs.
func Contains[T comparable](xs []T, x T) bool {
	return IndexOf(xs, x) >= 0
}

// Every reports whether all elements satisfy pred. An empty slice does.
func Every[T any](xs []T, pred func(T) bool) bool {
	for _, x := range xs {
		if !pred(x) {
			return false
		}
	}
	return true
}

// Some reports whether at least one element satisfies pred.
func Some[T any](xs []T, pred func(T) bool) bool {
	for _, x := range xs {
		if pred(x) {
			return true
		}
	}
	return false
}

// Head returns the first element, if there is one.
func Head[T any](xs []T) maybe.Maybe[T] {
	if len(xs) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(xs[0])
}

// Last returns the final element, if there is one.
func Last[T any](xs []T) maybe.Maybe[T] {
	if len(xs) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(xs[len(xs)-1])
}

// Tail returns a copy of everything after the first element. The tail of
// an empty slice is empty.
func Tail[T any](xs []T) []T {
	if len(xs) == 0 {
		return []T{}
	}
	out := make([]T, len(xs)-1)
	copy(out, xs[1:])
	return out
}

// Take returns a copy of the first n elements, fewer if xs is shorter.
func Take[T any](xs []T, n int) []T {
	if n > len(xs) {
		n = len(xs)
	}
	if n < 0 {
		n = 0
	}
	out := make([]T, n)
	copy(out, xs[:n])
	return out
}

// Drop returns a copy of xs without its first n elements.
func Drop[T any](xs []T, n int) []T {
	if n > len(xs) {
		n = len(xs)
	}
	if n < 0 {
		n = 0
	}
	out := make([]T, len(xs)-n)
	copy(out, xs[n:])
	return out
}

// Reverse returns the elements in reverse order.
func Reverse[T any](xs []T) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}

// Uniq drops duplicates, keeping the first occurrence of each value.
func Uniq[T comparable](xs []T) []T {
	seen := make(map[T]bool, len(xs))
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

// Compact drops the zero values.
func Compact[T comparable](xs []T) []T {
	var zero T
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if x != zero {
			out = append(out, x)
		}
	}
	return out
}

// Flatten concatenates a slice of slices into one.
func Flatten[T any](xss [][]T) []T {
	n := 0
	for _, xs := range xss {
		n += len(xs)
	}
	out := make([]T, 0, n)
	for _, xs := range xss {
		out = append(out, xs...)
	}
	return out
}

// Chunk splits xs into runs of the given size; the last run may be
// shorter. Sizes below 1 yield no chunks.
func Chunk[T any](xs []T, size int) [][]T {
	if size < 1 {
		return nil
	}
	out := make([][]T, 0, (len(xs)+size-1)/size)
	for start := 0; start < len(xs); start += size {
		end := start + size
		if end > len(xs) {
			end = len(xs)
		}
		chunk := make([]T, end-start)
		copy(chunk, xs[start:end])
		out = append(out, chunk)
	}
	return out
}

// GroupBy buckets the elements by key, keeping encounter order inside
// each bucket.
func GroupBy[T any, K comparable](xs []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, x := range xs {
		k := key(x)
		out[k] = append(out[k], x)
	}
	return out
}
