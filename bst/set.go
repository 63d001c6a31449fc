package bst

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Set is an immutable persistent ordered set. An empty instance is usable
// as an empty set, i.e. this is legal:
//
//     s := bst.Set[int]{}.Insert(1).Insert(2)
//
// returning a set containing the members 1 and 2.
//
// Set shares its tree skeleton with Map; it carries no payload per member.
type Set[T constraints.Ordered] struct {
	root *node[T, struct{}]
}

// EmptySet creates a set containing nothing. No allocation takes place: the
// empty set is canonically represented by the zero value.
func EmptySet[T constraints.Ordered]() Set[T] {
	return Set[T]{}
}

// --- API -------------------------------------------------------------------

// IsEmpty is true if s contains no members.
func (s Set[T]) IsEmpty() bool {
	return s.root == nil
}

// Insert returns a copy of s with value as a member. It always succeeds.
// The copy re-allocates the nodes on the path from the root to the
// insertion point only, sharing every untouched subtree with s. If value
// already is a member, no path is copied at all and the returned set shares
// the complete tree of s.
func (s Set[T]) Insert(value T) Set[T] {
	if root, ok := s.root.tryInsert(value, struct{}{}); ok {
		tracer().Debugf("insert: new incarnation for member %v", value)
		return Set[T]{root: root}
	}
	tracer().Debugf("insert: %v already a member, sharing tree", value)
	return Set[T]{root: s.root}
}

// Member tests whether value is a member of s, using a candidate-tracking
// search.
func (s Set[T]) Member(value T) bool {
	_, found := s.root.lookup(value)
	return found
}

// Size returns the number of members of s, walking the tree.
func (s Set[T]) Size() int {
	return s.root.size()
}

// Depth returns the depth of the tree backing s. Without re-balancing this
// is dictated by insertion order; monotonic insertion produces depth Size().
func (s Set[T]) Depth() int {
	return s.root.depth()
}

// --- Debugging -------------------------------------------------------------

func (s Set[T]) String() string {
	b := strings.Builder{}
	b.WriteRune('⟨')
	first := true
	s.root.each(func(key T, _ struct{}) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(fmt.Sprintf("%v", key))
	})
	b.WriteRune('⟩')
	return b.String()
}

// each calls f for every entry of the subtree below n, in key order.
func (n *node[K, V]) each(f func(K, V)) {
	if n == nil {
		return
	}
	n.left.each(f)
	f(n.key, n.value)
	n.right.each(f)
}
