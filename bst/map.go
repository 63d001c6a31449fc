package bst

import (
	"fmt"
	"strings"

	"github.com/npillmayer/persistent/maybe"
	"golang.org/x/exp/constraints"
)

// Map is an immutable persistent key-value map over ordered keys. An empty
// instance is usable as an empty map, i.e. this is legal:
//
//     m := bst.Map[int, string]{}.Bind(1, "one")
//
// returning a map associating 1 with "one".
//
// Map shares its tree skeleton with Set.
type Map[K constraints.Ordered, V any] struct {
	root *node[K, V]
}

// EmptyMap creates a map containing nothing. No allocation takes place: the
// empty map is canonically represented by the zero value.
func EmptyMap[K constraints.Ordered, V any]() Map[K, V] {
	return Map[K, V]{}
}

// --- API -------------------------------------------------------------------

// IsEmpty is true if m contains no bindings.
func (m Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Bind returns a copy of m with key bound to value. It always succeeds.
// The copy re-allocates the nodes on the path from the root to key only,
// sharing every untouched subtree with m. Binding a key already present
// replaces its value in the copy, m itself keeps the old binding; the key
// held by the copy is the newly given one.
func (m Map[K, V]) Bind(key K, value V) Map[K, V] {
	tracer().Debugf("bind: new incarnation for key %v", key)
	return Map[K, V]{root: m.root.bind(key, value)}
}

// Lookup returns the value bound to key, or Nothing if key is not a key of
// m. Absence is a normal result, never an error. The search tracks a
// candidate during descent.
func (m Map[K, V]) Lookup(key K) maybe.Maybe[V] {
	tracer().Debugf("lookup: searching for key %v", key)
	if value, found := m.root.lookup(key); found {
		return maybe.Just(value)
	}
	return maybe.Nothing[V]()
}

// Size returns the number of bindings of m, walking the tree.
func (m Map[K, V]) Size() int {
	return m.root.size()
}

// Depth returns the depth of the tree backing m. Without re-balancing this
// is dictated by binding order; monotonic binding produces depth Size().
func (m Map[K, V]) Depth() int {
	return m.root.depth()
}

// --- Debugging -------------------------------------------------------------

func (m Map[K, V]) String() string {
	b := strings.Builder{}
	b.WriteRune('⟨')
	first := true
	m.root.each(func(key K, value V) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(fmt.Sprintf("%v→%v", key, value))
	})
	b.WriteRune('⟩')
	return b.String()
}
