/*
Package gap builds functions from functions: partial application with
argument gaps, arity-driven auto-currying, and lifting of methods into
free functions. It works on any Go function via reflection and is the
dynamic substrate of this module; the subpackages carry the typed
helpers built on top of it.

The package is named after its central concept: a bound argument list
may contain gaps, marked with Hole, to be filled at call time.
*/
package gap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gap.core'.
func tracer() tracing.Trace {
	return tracing.Select("gap.core")
}
