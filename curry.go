package gap

import "fmt"

// Curried is an auto-curried function: it accumulates arguments call by
// call until its arity is satisfied, then applies the target once. Every
// step returns a fresh instance and the receiver is never written to, so
// any intermediate can be kept, shared and completed several times over.
type Curried struct {
	target any
	need   int // target arity; negative means "infer on first call"
	strict bool
	have   []any
	fired  bool
	out    any
	err    error
}

// Option configures curried functions at creation time.
type Option func(Curried) Curried

// Arity fixes the target arity explicitly. Without it the arity is
// inferred from the target's declared parameter count, which is not
// possible for method handles and opaque callables.
func Arity(n int) Option {
	return func(c Curried) Curried {
		c.need = n
		return c
	}
}

// Strict makes overshooting an error: every call must supply at most the
// number of arguments still missing, and a call crossing that line
// completes with ErrArityMismatch. Undershooting stays what it always
// is, one more currying step.
func Strict() Option {
	return func(c Curried) Curried {
		c.strict = true
		return c
	}
}

// Curry returns the auto-curried form of fn.
//
//	add := func(a, b, c int) int { return a + b + c }
//	add3 := gap.Curry(add)
//	add3.Call(1).Call(2).Call(3).Result()   // 6, nil
//	add3.Call(1, 2).Call(3).Result()        // 6, nil
//
// An arity of 0 or 1 degenerates to direct invocation on the first call,
// which is fine. Extra arguments in the call that completes accumulation
// pass through to fn behind the first arity ones, so variadic tails keep
// working.
func Curry(fn any, opts ...Option) *Curried {
	c := Curried{target: fn, need: -1}
	for _, opt := range opts {
		c = opt(c)
	}
	return &c
}

// Call accumulates args onto the prefix collected so far and returns the
// next step. When the running total reaches the arity, the returned step
// is complete: Done reports true and Result holds the outcome of
// applying the target.
func (c *Curried) Call(args ...any) *Curried {
	if c.fired {
		return &Curried{target: c.target, need: c.need, strict: c.strict, fired: true,
			err: fmt.Errorf("%w: curried function already completed", ErrNotCallable)}
	}
	need, err := c.arity()
	if err != nil {
		return &Curried{target: c.target, need: c.need, strict: c.strict, fired: true, err: err}
	}
	if c.strict {
		if rest := need - len(c.have); len(args) > rest {
			return &Curried{target: c.target, need: need, strict: true, have: c.have, fired: true,
				err: fmt.Errorf("%w: %d arguments for %d remaining slots", ErrArityMismatch, len(args), rest)}
		}
	}
	have := make([]any, len(c.have), len(c.have)+len(args))
	copy(have, c.have)
	have = append(have, args...)
	next := &Curried{target: c.target, need: need, strict: c.strict, have: have}
	if len(have) >= need {
		tracer().Debugf("curry of arity %d fires with %d arguments", need, len(have))
		next.fired = true
		next.out, next.err = apply(c.target, have)
	}
	return next
}

// Done reports whether the chain has completed, by satisfying its arity
// or by failing terminally.
func (c *Curried) Done() bool {
	return c.fired
}

// Result returns the outcome of the completing call. On a chain that is
// still accumulating it returns ErrPending.
func (c *Curried) Result() (any, error) {
	if !c.fired {
		return nil, fmt.Errorf("%w (%d arguments accumulated)", ErrPending, len(c.have))
	}
	return c.out, c.err
}

func (c *Curried) arity() (int, error) {
	if c.need >= 0 {
		return c.need, nil
	}
	return ArityOf(c.target)
}

// remaining is the arity still to satisfy, used when a Curried is itself
// the target of further currying.
func (c *Curried) remaining() (int, error) {
	need, err := c.arity()
	if err != nil {
		return 0, err
	}
	rest := need - len(c.have)
	if rest < 0 {
		rest = 0
	}
	return rest, nil
}

// HoleCurried is the placeholder-driven curry variant. Where Curried
// accumulates strictly left to right, a HoleCurried call may leave gaps
// with Hole; later calls fill the earliest gaps first and everything
// beyond appends. It fires as soon as the number of concrete slots
// reaches the arity, with any gaps still open resolving to the absent
// value.
type HoleCurried struct {
	target any
	need   int
	slots  []any
	fired  bool
	out    any
	err    error
}

// CurryHole curries fn so that pending arguments can be reordered with
// Hole:
//
//	div := gap.CurryHole(func(a, b float64) float64 { return a / b })
//	div.Call(gap.Hole, 2.0).Call(9.0).Result()   // 4.5, nil
//
// Arity is inferred unless fixed with the Arity option. Strict does not
// apply to this variant and is ignored.
func CurryHole(fn any, opts ...Option) *HoleCurried {
	c := Curried{target: fn, need: -1}
	for _, opt := range opts {
		c = opt(c)
	}
	return &HoleCurried{target: fn, need: c.need}
}

// Call merges args into the bound slots and returns the next step. When
// enough slots hold concrete values, the returned step is complete.
func (h *HoleCurried) Call(args ...any) *HoleCurried {
	if h.fired {
		return &HoleCurried{target: h.target, need: h.need, fired: true,
			err: fmt.Errorf("%w: curried function already completed", ErrNotCallable)}
	}
	need := h.need
	if need < 0 {
		var err error
		if need, err = ArityOf(h.target); err != nil {
			return &HoleCurried{target: h.target, need: h.need, fired: true, err: err}
		}
	}
	slots := merge(h.slots, args)
	next := &HoleCurried{target: h.target, need: need, slots: slots}
	if len(slots)-gaps(slots) >= need {
		tracer().Debugf("hole curry of arity %d fires with %d slots (%d open)", need, len(slots), gaps(slots))
		next.fired = true
		next.out, next.err = apply(h.target, fill(slots, nil))
	}
	return next
}

// Done reports whether the chain has completed.
func (h *HoleCurried) Done() bool {
	return h.fired
}

// Result returns the outcome of the completing call, or ErrPending while
// slots are still open.
func (h *HoleCurried) Result() (any, error) {
	if !h.fired {
		return nil, fmt.Errorf("%w (%d concrete slots, %d open)", ErrPending, len(h.slots)-gaps(h.slots), gaps(h.slots))
	}
	return h.out, h.err
}

func (h *HoleCurried) remaining() (int, error) {
	need := h.need
	if need < 0 {
		var err error
		if need, err = ArityOf(h.target); err != nil {
			return 0, err
		}
	}
	rest := need - (len(h.slots) - gaps(h.slots))
	if rest < 0 {
		rest = 0
	}
	return rest, nil
}
