package gap

import (
	"fmt"
	"reflect"
)

// ArityOf reports the declared parameter count of fn: the number of
// parameters of a Go function (only the fixed part, for variadic ones),
// or the remaining expectation of a bound or curried function. Method
// handles and opaque callables carry no parameter count; currying those
// needs the explicit Arity option.
func ArityOf(fn any) (int, error) {
	switch f := fn.(type) {
	case *Fn:
		return f.Arity()
	case *Bound:
		return f.Arity()
	case *Curried:
		return f.remaining()
	case *HoleCurried:
		return f.remaining()
	case *Capped:
		return f.n, nil
	case *MethodFn:
		return 0, fmt.Errorf("%w: arity of method %q is unknown until a receiver is supplied", ErrPending, f.name)
	}
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return 0, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	n := t.NumIn()
	if t.IsVariadic() {
		n--
	}
	return n, nil
}

// Capped enforces a fixed parameter count on a callable by cutting every
// call down to the first n arguments.
type Capped struct {
	target any
	n      int
}

// Ary wraps fn so that calls forward at most n arguments; extras are
// dropped before the target sees them. Useful for handing argument-greedy
// callbacks to iteration helpers.
func Ary(fn any, n int) *Capped {
	if n < 0 {
		n = 0
	}
	return &Capped{target: fn, n: n}
}

// Call applies the target to the first n of args.
func (c *Capped) Call(args ...any) (any, error) {
	if len(args) > c.n {
		args = args[:c.n]
	}
	return apply(c.target, args)
}

// Arity reports the enforced parameter count.
func (c *Capped) Arity() (int, error) {
	return c.n, nil
}
