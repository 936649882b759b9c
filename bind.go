package gap

// Bound is a partially applied function: a target callable plus an
// ordered list of bound slots, each either a concrete value or the Hole.
// Bound functions are immutable; rebinding wraps, it never mutates.
type Bound struct {
	target any
	slots  []any
}

// Bind captures fn together with a mixed list of concrete arguments and
// Holes and returns the partial application. fn may be a Go function, a
// lifted Fn, another Bound, a curried function, a method handle, or any
// Callable; whether it really is callable is checked when the result is
// called, binding only records intent. A receiver bound to fn beforehand
// stays bound, Bind does not touch receiver semantics.
//
// Calling the result resolves the slots against the call-time arguments:
//
//	div := func(a, b float64) float64 { return a / b }
//	half := gap.Bind(div, gap.Hole, 2.0)
//	half.Call(9.0)                       // 4.5 == div(9, 2)
//
// Holes are recognized in the slots given here only; a Hole among the
// call-time arguments passes through as a literal value.
func Bind(fn any, slots ...any) *Bound {
	bound := make([]any, len(slots))
	copy(bound, slots)
	return &Bound{target: fn, slots: bound}
}

// Call resolves the bound slots against args and applies the target to
// the final vector. Calls are independent of each other; the receiver is
// never written to, so a Bound may be shared freely.
func (b *Bound) Call(args ...any) (any, error) {
	vector := fill(b.slots, args)
	tracer().Debugf("bound call: %d slots and %d args give %d", len(b.slots), len(args), len(vector))
	return apply(b.target, vector)
}

// Arity reports how many call-time arguments the Bound still expects:
// its unfilled Holes plus the target parameters its slot list does not
// cover. Fails when the target's own arity cannot be determined.
func (b *Bound) Arity() (int, error) {
	n, err := ArityOf(b.target)
	if err != nil {
		return 0, err
	}
	need := gaps(b.slots)
	if more := n - len(b.slots); more > 0 {
		need += more
	}
	return need, nil
}
