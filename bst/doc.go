/*
Package bst implements an immutable persistent unbalanced binary search
tree, usable both as an ordered set and as a key-value map.

An immutable persistent tree has copy-on-write behaviour: Each “modification”
of a tree (inserting a member or binding a key) creates a copy, leaving the
original unmodified. Under the hood, copy-on-write re-allocates the nodes
along the path from the root to the point of change only, sharing every
untouched sibling subtree between original and copy, transparently to
clients. Nodes are never mutated after construction, therefore any number of
goroutines may read any number of tree incarnations concurrently without
synchronization.

No re-balancing is done: the depth of a tree is whatever insertion order
produces. Keys inserted in monotonic order degenerate the tree into a linked
chain of depth n, and the recursive algorithms track that depth one stack
frame per level; with Go's growable goroutine stacks this supports trees
millions of levels deep before resources run out.

Searching uses candidate tracking: instead of testing equality at every
node, the descent carries the tightest key seen so far that is ≤ the search
key and defers the equality test to the point where the search falls off the
tree. This costs exactly depth ordering-comparisons plus one terminal
equality test, instead of up to two comparisons per level.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.bst'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.bst")
}
