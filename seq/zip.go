package seq

// Pair is an ordered couple, the element type of Zip and the entry type
// of the object layer's Pairs.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P builds a Pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns both halves.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// Zip couples xs and ys elementwise, stopping at the shorter one.
func Zip[A, B any](xs []A, ys []B) []Pair[A, B] {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = P(xs[i], ys[i])
	}
	return out
}

// ZipWith combines xs and ys elementwise with f, stopping at the shorter
// one.
func ZipWith[A, B, C any](xs []A, ys []B, f func(A, B) C) []C {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	out := make([]C, n)
	for i := 0; i < n; i++ {
		out[i] = f(xs[i], ys[i])
	}
	return out
}

// Unzip splits pairs into their left and right halves.
func Unzip[A, B any](ps []Pair[A, B]) ([]A, []B) {
	xs := make([]A, len(ps))
	ys := make([]B, len(ps))
	for i, p := range ps {
		xs[i], ys[i] = p.Decompose()
	}
	return xs, ys
}
