package obj

// Freeze locks the graph below root against mutation and returns root
// itself, not a copy. Every Dict and List reachable from root is
// marked frozen exactly once, shared nodes and self-references
// included, so cyclic graphs terminate. Freezing an already frozen
// value again, or freezing a scalar, is a no-op and never an error.
//
// After Freeze returns, Set, Del, SetAt and Push on any reachable
// node fail with ErrFrozen. Deriving methods continue to work and
// yield unfrozen values.
//
// Concurrent Freeze calls may overlap on shared nodes; marking is
// atomic and idempotent, so no locking is required.
func Freeze(root any) any {
	count := 0
	_ = Walk(root, func(node any) error {
		switch n := node.(type) {
		case *Dict:
			n.mark()
		case *List:
			n.mark()
		}
		count++
		return nil
	})
	tracer().Debugf("freeze reached %d nodes", count)
	return root
}

// Frozen tells if v is frozen. Values other than Dict and List carry
// no mutable state of their own and count as frozen from the start.
func Frozen(v any) bool {
	switch n := v.(type) {
	case *Dict:
		return n.isFrozen()
	case *List:
		return n.isFrozen()
	}
	return true
}
