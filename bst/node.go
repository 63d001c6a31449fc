package bst

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// node is a single tree node. A nil *node is the canonical empty tree.
// Nodes are never mutated after construction; subtrees are shared freely
// between tree incarnations.
//
// Invariant: every key in left compares less than key, every key in right
// compares greater, transitively through the whole subtree, for every
// incarnation ever produced.
type node[K constraints.Ordered, V any] struct {
	left  *node[K, V]
	key   K
	value V
	right *node[K, V]
}

// singleton creates a one-node subtree with two empty children.
func singleton[K constraints.Ordered, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value}
}

// lookup locates key in the subtree below n. It seeds the candidate with n
// itself before descending; an empty tree short-circuits to absent, as
// there is no candidate to seed.
func (n *node[K, V]) lookup(key K) (V, bool) {
	if n == nil {
		var none V
		return none, false
	}
	return n.lookupWithCandidate(key, n)
}

// lookupWithCandidate carries the tightest node seen so far whose key is
// ≤ key along the current path. A single equality test against the
// candidate decides once the descent falls off the tree.
func (n *node[K, V]) lookupWithCandidate(key K, candidate *node[K, V]) (V, bool) {
	assertThat(candidate != nil, "candidate has to be seeded before descending")
	if n == nil {
		tracer().Debugf("lookup: bottom reached, comparing %v against candidate %v", key, candidate.key)
		if key == candidate.key {
			return candidate.value, true
		}
		var none V
		return none, false
	}
	if key < n.key {
		tracer().Debugf("lookup: %v < %v, descending left", key, n.key)
		return n.left.lookupWithCandidate(key, candidate)
	}
	tracer().Debugf("lookup: %v ≥ %v, descending right with new candidate", key, n.key)
	return n.right.lookupWithCandidate(key, n)
}

// tryInsert attempts a path-copying insert of key below n. It reports
// ok=false as soon as key turns out to be present already, signalling the
// no-op to the caller before any node has been allocated. Reaching the
// bottom of the tree with the key still unseen creates a singleton.
func (n *node[K, V]) tryInsert(key K, value V) (cow *node[K, V], ok bool) {
	if n == nil {
		tracer().Debugf("insert: creating singleton for %v", key)
		return singleton(key, value), true
	}
	if key < n.key {
		if left, ok := n.left.tryInsert(key, value); ok {
			return &node[K, V]{left: left, key: n.key, value: n.value, right: n.right}, true
		}
	} else if key > n.key {
		if right, ok := n.right.tryInsert(key, value); ok {
			return &node[K, V]{left: n.left, key: n.key, value: n.value, right: right}, true
		}
	}
	return nil, false
}

// bind path-copies the descent to key and re-allocates the nodes along the
// way. Unlike tryInsert, binding an existing key is never a no-op: the node
// carrying the key is replaced by one carrying the new key and value.
func (n *node[K, V]) bind(key K, value V) *node[K, V] {
	if n == nil {
		tracer().Debugf("bind: creating singleton for %v", key)
		return singleton(key, value)
	}
	if key < n.key {
		tracer().Debugf("bind: %v < %v, re-allocating with new left subtree", key, n.key)
		return &node[K, V]{left: n.left.bind(key, value), key: n.key, value: n.value, right: n.right}
	}
	if key > n.key {
		tracer().Debugf("bind: %v > %v, re-allocating with new right subtree", key, n.key)
		return &node[K, V]{left: n.left, key: n.key, value: n.value, right: n.right.bind(key, value)}
	}
	// equal: the new key object becomes canonical
	tracer().Debugf("bind: replacing binding of %v", key)
	return &node[K, V]{left: n.left, key: key, value: value, right: n.right}
}

func (n *node[K, V]) size() int {
	if n == nil {
		return 0
	}
	return n.left.size() + 1 + n.right.size()
}

func (n *node[K, V]) depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(msg)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
