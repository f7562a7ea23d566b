/*
Package avltree provides the balanced search tree backing ordered sets.

The tree is an AVL tree augmented in two ways:
  - every node caches the maximum key of its subtree, which lets lower-bound
    queries prune whole subtrees without scanning them,
  - every node carries a back-link to its structural parent, which lets
    callers step to the in-order successor or predecessor of a node without
    an auxiliary stack.

The package is intentionally not a complete container. It stores keys only,
does not count elements and does not hand out iterators; package ordset
builds the public set type on top of it.

Parent links are navigation aids, not ownership edges. Every structural
change re-derives height, cached maximum and the parent links of the
children of each node on the path back to the root.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package avltree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'ordset'
func tracer() tracing.Trace {
	return tracing.Select("ordset")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
