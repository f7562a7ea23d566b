/*
Package inspect prints the tree structure behind an ordered set to a console.

Output is meant for humans debugging a set: every node shows its key together
with the height of its subtree and the cached subtree maximum. Keys are
coloured when printing to an interactive terminal.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package inspect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordset'
func tracer() tracing.Trace {
	return tracing.Select("ordset")
}
