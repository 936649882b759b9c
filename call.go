package gap

import (
	"fmt"
	"reflect"
)

// Callable is the contract for applying a value to arguments. Lifted,
// bound and method functions implement it, and Bind accepts any
// implementation, so callables compose freely.
type Callable interface {
	Call(args ...any) (any, error)
}

// Fn is a Go function lifted for dynamic application.
type Fn struct {
	fv reflect.Value
}

// Lift wraps a Go function value so it can take part in binding and
// currying. Whether fn really is a function is checked when the result
// is called, not here.
func Lift(fn any) *Fn {
	return &Fn{fv: reflect.ValueOf(fn)}
}

// Call applies the lifted function to args.
func (f *Fn) Call(args ...any) (any, error) {
	return invoke(f.fv, args)
}

// Arity reports the declared parameter count, counting only the fixed
// part for variadic functions.
func (f *Fn) Arity() (int, error) {
	if !f.fv.IsValid() || f.fv.Kind() != reflect.Func {
		return 0, fmt.Errorf("%w: %s", ErrNotCallable, describe(f.fv))
	}
	t := f.fv.Type()
	n := t.NumIn()
	if t.IsVariadic() {
		n--
	}
	return n, nil
}

// apply dispatches one call on a target of any supported shape: a raw Go
// function, a lifted/bound/method function, a curried function in either
// flavor, or a user-supplied Callable.
func apply(target any, args []any) (any, error) {
	switch f := target.(type) {
	case *Fn:
		return f.Call(args...)
	case *Bound:
		return f.Call(args...)
	case *Curried:
		step := f.Call(args...)
		if step.Done() {
			return step.Result()
		}
		return step, nil
	case *HoleCurried:
		step := f.Call(args...)
		if step.Done() {
			return step.Result()
		}
		return step, nil
	case Callable:
		return f.Call(args...)
	}
	return invoke(reflect.ValueOf(target), args)
}

// invoke calls a reflected function value with a dynamic argument
// vector. A nil argument becomes the zero value of its parameter type,
// as do missing trailing arguments; extra arguments beyond a fixed
// parameter list are dropped. The last result, when its declared type is
// error, is split off as the call's error; of the remaining results a
// single one is returned bare, several as a []any.
func invoke(fv reflect.Value, args []any) (any, error) {
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %s", ErrNotCallable, describe(fv))
	}
	if fv.IsNil() {
		return nil, fmt.Errorf("%w: nil function", ErrNotCallable)
	}
	t := fv.Type()
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}
	in := make([]reflect.Value, 0, len(args))
	for i := 0; i < fixed; i++ {
		var a any
		if i < len(args) {
			a = args[i]
		}
		av, err := conform(a, t.In(i))
		if err != nil {
			return nil, fmt.Errorf("argument %d: %v", i, err)
		}
		in = append(in, av)
	}
	if t.IsVariadic() {
		vt := t.In(fixed).Elem()
		for i := fixed; i < len(args); i++ {
			av, err := conform(args[i], vt)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %v", i, err)
			}
			in = append(in, av)
		}
	}
	tracer().Debugf("invoke %s with %d arguments", t, len(in))
	return collect(fv.Call(in))
}

// conform adapts one dynamic argument to a parameter type.
func conform(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		return reflect.Zero(pt), nil
	}
	av := reflect.ValueOf(a)
	if av.Type().AssignableTo(pt) {
		return av, nil
	}
	if isNumeric(av.Kind()) && isNumeric(pt.Kind()) {
		return av.Convert(pt), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %T as %s", a, pt)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// collect maps reflected call results onto the (value, error) shape.
func collect(out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type() == errType {
		if e := out[n-1].Interface(); e != nil {
			err = e.(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	vals := make([]any, len(out))
	for i, v := range out {
		vals[i] = v.Interface()
	}
	return vals, err
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

func describe(fv reflect.Value) string {
	if !fv.IsValid() {
		return "untyped nil"
	}
	return fv.Type().String()
}
