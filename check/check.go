/*
Package check provides predicates and predicate combinators.

Predicates are plain functions from a value to bool, so every helper in
package seq that expects a test function accepts them directly. The
dynamic tests Nil, Zero and Empty work on values of any type and are
therefore assignable to Predicate[any].
*/
package check

import "reflect"

// Predicate is a boolean test on values of type T.
type Predicate[T any] func(T) bool

// Not inverts p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// And combines predicates conjunctively. With no predicates given it
// holds vacuously.
func And[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates disjunctively. With no predicates given it
// never holds.
func Or[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Eq creates a test for equality with a fixed value.
func Eq[T comparable](want T) Predicate[T] {
	return func(v T) bool {
		return v == want
	}
}

// Neq creates a test for inequality with a fixed value.
func Neq[T comparable](want T) Predicate[T] {
	return Not(Eq(want))
}

// In creates a membership test for a fixed set of values.
func In[T comparable](set ...T) Predicate[T] {
	return func(v T) bool {
		for _, s := range set {
			if v == s {
				return true
			}
		}
		return false
	}
}

// Nil reports whether v is nil. Typed nil pointers, maps, slices,
// channels and function values count as nil, which a bare comparison
// to nil would miss once they are boxed in an interface.
func Nil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Zero reports whether v is the zero value of its type. nil is zero.
func Zero(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}

// sized is satisfied by values that know their element count, among
// them the Dict, List and Str types of package obj.
type sized interface {
	Len() int
}

// Empty reports whether v holds no elements. Values with a Len method
// report through it; strings, slices, arrays, maps and channels are
// measured reflectively. nil is empty, and so is every value that has
// no notion of length at all.
func Empty(v any) bool {
	if Nil(v) {
		return true
	}
	if s, ok := v.(sized); ok {
		return s.Len() == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Array, reflect.Slice, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	}
	return true
}
