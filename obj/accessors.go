package obj

import (
	"github.com/npillmayer/gap"
	"github.com/npillmayer/gap/check"
)

// Accessor builders. Instead of writing a closure per field, callers
// fix arguments of generic accessors through the function layer of
// package gap and get back plain Go functions.

// Value returns the value stored under key in d, or nil if d is nil
// or the key is absent. It is the generic accessor that Getter fixes
// the key argument of.
func Value(d *Dict, key string) any {
	return d.Get(key)
}

// Getter builds a field getter for a fixed key.
//
//	name := obj.Getter("name")
//	name(person)            // person.Get("name")
//
// The key occupies the second slot of Value, so the dictionary is
// left as an argument gap to be filled per call.
func Getter(key string) func(*Dict) any {
	bound := gap.Bind(Value, gap.Hole, key)
	return func(d *Dict) any {
		v, err := bound.Call(d)
		if err != nil {
			tracer().Errorf("getter for %q: %v", key, err)
			return nil
		}
		return v
	}
}

// ItemAt builds an index getter for lists.
func ItemAt(i int) func(*List) any {
	bound := gap.Bind(gap.Method("At"), gap.Hole, i)
	return func(l *List) any {
		v, err := bound.Call(l)
		if err != nil {
			tracer().Errorf("item getter for %d: %v", i, err)
			return nil
		}
		return v
	}
}

// Picker builds a projection onto a fixed set of keys.
func Picker(keys ...string) func(*Dict) *Dict {
	slots := make([]any, 0, len(keys)+1)
	slots = append(slots, gap.Hole)
	for _, k := range keys {
		slots = append(slots, k)
	}
	bound := gap.Bind(gap.Method("Pick"), slots...)
	return func(d *Dict) *Dict {
		v, err := bound.Call(d)
		if err != nil {
			tracer().Errorf("picker %v: %v", keys, err)
			return NewDict()
		}
		if pick, ok := v.(*Dict); ok {
			return pick
		}
		return NewDict()
	}
}

// Assign builds a store for a fixed key, staged through the curry
// engine: the dictionary arrives first, the value second.
//
//	rename := obj.Assign("name")(person)
//	rename("Ada")           // person.Set("name", "Ada")
func Assign(key string) func(*Dict) func(any) error {
	curried := gap.Curry(func(d *Dict, v any) error {
		return d.Set(key, v)
	}, gap.Arity(2))
	return func(d *Dict) func(any) error {
		step := curried.Call(d)
		return func(v any) error {
			_, err := step.Call(v).Result()
			return err
		}
	}
}

// HasKey builds a predicate telling if a dictionary carries an entry
// under key. The result combines with the operators of package check.
func HasKey(key string) check.Predicate[*Dict] {
	return func(d *Dict) bool {
		return d.Has(key)
	}
}

// ValueIs builds a predicate comparing the entry under key against a
// fixed value.
func ValueIs(key string, want any) check.Predicate[*Dict] {
	get := Getter(key)
	return func(d *Dict) bool {
		return get(d) == want
	}
}
