package gap

// fill resolves a bound slot list against call-time arguments and
// returns the final argument vector: concrete slots are copied verbatim,
// each Hole consumes the next unconsumed argument, and leftover
// arguments append at the end, in order. A Hole left unfilled resolves
// to nil, the absent value; the wrapped function sees the zero value of
// the parameter. That is a legitimate deferred-binding outcome, not an
// error.
//
// The slot list is never written to; every call builds a fresh vector.
func fill(slots []any, args []any) []any {
	vector := make([]any, 0, len(slots)+len(args))
	next := 0
	for _, s := range slots {
		if isHole(s) {
			if next < len(args) {
				vector = append(vector, args[next])
				next++
			} else {
				vector = append(vector, nil)
			}
			continue
		}
		vector = append(vector, s)
	}
	return append(vector, args[next:]...)
}

// merge folds call-time arguments into a slot list while keeping the
// list open for further calls: arguments fill the earliest unfilled
// Holes positionally, leftover arguments append as new slots. An
// argument that is itself a Hole counts positionally but keeps its slot
// open, and appended Holes open new slots. Used by the placeholder-driven
// curry variant, where every call may carry fresh gaps.
//
// The given slot list is left untouched; the result is a fresh list.
func merge(slots []any, args []any) []any {
	out := make([]any, len(slots), len(slots)+len(args))
	copy(out, slots)
	next := 0
	for i := 0; i < len(out) && next < len(args); i++ {
		if isHole(out[i]) {
			out[i] = args[next]
			next++
		}
	}
	return append(out, args[next:]...)
}

// gaps counts the unfilled Holes in a slot list.
func gaps(slots []any) int {
	n := 0
	for _, s := range slots {
		if isHole(s) {
			n++
		}
	}
	return n
}
