/*
Package textfile loads OS text files as skiprope ropes.

Files are read in fragments and appended to a rope, splitting fragments only
at UTF-8 rune boundaries. Loading may be done asynchronously; clients can
subscribe to fragment-progress events while the load is running and take
ownership of the rope when it completes.

BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package textfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
