package obj

// Capability interfaces for the method families shared by List and
// Str. Code that wants "anything sliceable" states so with a type
// parameter instead of reaching for reflection; the dynamic
// counterpart gap.Method("Slice") arrives at the same methods without
// the compile-time guarantee.

// Slicer is the capability of cutting a contiguous piece out of a
// sequence value.
type Slicer[S any] interface {
	Slice(from, to int) S
}

// Concater is the capability of appending a sequence value of the
// same type.
type Concater[S any] interface {
	Concat(other S) S
}

var (
	_ Slicer[*List]   = (*List)(nil)
	_ Slicer[Str]     = Str("")
	_ Concater[*List] = (*List)(nil)
	_ Concater[Str]   = Str("")
)

// Cut cuts the piece between index from (inclusive) and to
// (exclusive) out of v.
func Cut[S Slicer[S]](v S, from, to int) S {
	return v.Slice(from, to)
}

// Join appends b to a.
func Join[S Concater[S]](a, b S) S {
	return a.Concat(b)
}
