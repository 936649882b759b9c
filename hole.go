package gap

// Hole marks one slot of a bound argument list as "fill this in later".
// It is a single process-wide sentinel, compared by identity; no user
// value, nil included, ever equals it, and it is never handed through to
// a wrapped function. Holes carry meaning only in the slot list given to
// Bind or CurryHole: a Hole among call-time arguments is an ordinary
// value.
var Hole = hole{}

type hole struct{}

func (hole) String() string {
	return "_"
}

// isHole tests a slot for the placeholder.
func isHole(v any) bool {
	_, ok := v.(hole)
	return ok
}
