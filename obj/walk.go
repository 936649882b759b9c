package obj

// Visit is a callback handed to Walk, called once per node. Returning
// a non-nil error aborts the walk and surfaces the error to the
// caller of Walk.
type Visit func(node any) error

// Walk traverses the graph below root depth-first in pre-order,
// calling visit once for every distinct composite node, i.e. every
// Dict and List. A node shared by several parents is visited a single
// time no matter how many edges lead to it, and reference cycles
// terminate. Scalar values are not visited.
//
// Dict entries are descended in sorted key order, so walks over the
// same graph are deterministic.
func Walk(root any, visit Visit) error {
	seen := make(map[any]bool)
	return walk(root, visit, seen)
}

// walk keeps the visited set in seen, keyed by node identity. Nodes
// enter seen before their children are descended, which is what cuts
// self-references short.
func walk(node any, visit Visit, seen map[any]bool) error {
	switch n := node.(type) {
	case *Dict:
		if n == nil || seen[n] {
			return nil
		}
		seen[n] = true
		if err := visit(n); err != nil {
			return err
		}
		for _, k := range n.Keys() {
			if err := walk(n.fields[k], visit, seen); err != nil {
				return err
			}
		}
	case *List:
		if n == nil || seen[n] {
			return nil
		}
		seen[n] = true
		if err := visit(n); err != nil {
			return err
		}
		for _, item := range n.items {
			if err := walk(item, visit, seen); err != nil {
				return err
			}
		}
	}
	return nil
}
