package gap

import "errors"

// Errors of the dynamic layer. All of them surface at call time, never
// at binding time: Bind, Curry and Method only record intent.
var (
	// ErrNotCallable means a value that was about to be applied to
	// arguments cannot be: not a function, or a method name missing on
	// the receiver at hand.
	ErrNotCallable = errors.New("value is not callable")

	// ErrArityMismatch means a strict curried function was called with
	// more arguments than the remaining arity admits.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrPending means an answer was requested that still needs
	// arguments: the result of a curried chain short of its arity, or
	// the arity of a method handle that has not seen a receiver.
	ErrPending = errors.New("pending further arguments")
)
