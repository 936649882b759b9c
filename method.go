package gap

import (
	"fmt"
	"reflect"
)

// MethodFn lifts a method, looked up by name on whatever receiver
// arrives at call time, into a free function: the first argument is the
// receiver, the remaining ones forward positionally to the method. The
// receiver type need not be known in advance.
type MethodFn struct {
	name string
}

// Method returns the free-function form of the named method.
//
//	slice := gap.Method("Slice")
//	slice.Call(lst, 1, 3)   // lst.Slice(1, 3), whatever type lst is
//
// A receiver without the method fails with ErrNotCallable when called,
// not when the handle is made. For the capability families this module
// ships itself (slicing and concatenation over sequences and strings)
// package obj declares explicit interfaces, so typed code can dispatch
// without a name lookup.
func Method(name string) *MethodFn {
	return &MethodFn{name: name}
}

// Call invokes the method on the first argument as receiver.
func (m *MethodFn) Call(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: method %q needs a receiver", ErrNotCallable, m.name)
	}
	recv := args[0]
	if recv == nil {
		return nil, fmt.Errorf("%w: nil receiver for method %q", ErrNotCallable, m.name)
	}
	mv := reflect.ValueOf(recv).MethodByName(m.name)
	if !mv.IsValid() {
		return nil, fmt.Errorf("%w: %T has no method %q", ErrNotCallable, recv, m.name)
	}
	tracer().Debugf("method %q resolved on %T", m.name, recv)
	return invoke(mv, args[1:])
}

// Name returns the method name the handle resolves.
func (m *MethodFn) Name() string {
	return m.name
}
