package obj

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the graph below v as an indented tree, one line per
// value, for trace output and test logs. Dict entries appear in
// sorted key order. An edge leading back to a node already rendered
// is cut off and marked with '↩', so cyclic graphs render fine.
func Dump(v any) string {
	p := tp.New()
	seen := make(map[any]bool)
	dump("", v, p, seen)
	return p.String()
}

func dump(prefix string, v any, p tp.Tree, seen map[any]bool) {
	switch n := v.(type) {
	case *Dict:
		if n == nil {
			p.AddNode(prefix + "{}")
			return
		}
		if seen[n] {
			p.AddNode(prefix + "↩ dict")
			return
		}
		seen[n] = true
		branch := p.AddBranch(fmt.Sprintf("%sdict(%d)%s", prefix, n.Len(), frozenMark(n)))
		for _, k := range n.Keys() {
			dump(k+": ", n.fields[k], branch, seen)
		}
	case *List:
		if n == nil {
			p.AddNode(prefix + "[]")
			return
		}
		if seen[n] {
			p.AddNode(prefix + "↩ list")
			return
		}
		seen[n] = true
		branch := p.AddBranch(fmt.Sprintf("%slist(%d)%s", prefix, n.Len(), frozenMark(n)))
		for i, item := range n.items {
			dump(fmt.Sprintf("%d: ", i), item, branch, seen)
		}
	case Str:
		p.AddNode(fmt.Sprintf("%s%q", prefix, string(n)))
	default:
		p.AddNode(fmt.Sprintf("%s%v", prefix, v))
	}
}

func frozenMark(v any) string {
	if Frozen(v) {
		return " ⊠"
	}
	return ""
}
