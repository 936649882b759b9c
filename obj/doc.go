/*
Package obj implements a dynamic object layer: dictionaries, lists and
strings that may be assembled into arbitrarily shaped graphs, walked,
deep-frozen and queried without knowing their static types.

Values of this package are boxed in Dict, List and Str. Boxing buys two
things a plain map or slice cannot give: a stable identity for graph
traversal, and a freeze flag that turns a whole reachable graph
immutable in place (see Freeze). Mutating operations on frozen values
return ErrFrozen; deriving operations like With, Pick or Concat never
mutate and may be used freely on frozen values.

Accessors built from the dynamic function layer of package gap live in
this package as well, closing the loop between the two halves of the
module: a field getter is just Value bound to a fixed key.
*/
package obj

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gap.obj'.
func tracer() tracing.Trace {
	return tracing.Select("gap.obj")
}
