package bst

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/exp/constraints"
)

func TestSetEmptyContainsNothing(t *testing.T) {
	s := EmptySet[int]()
	if !s.IsEmpty() {
		t.Error("expected EmptySet() to be empty, isn't")
	}
	if s.Member(0) {
		t.Error("expected empty set to contain nothing, contains 0")
	}
	if s.Size() != 0 || s.Depth() != 0 {
		t.Errorf("expected empty set to have size and depth 0, has %d | %d", s.Size(), s.Depth())
	}
}

func TestSetInsertedValuesAreMembers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.bst")
	defer teardown()
	//
	s := EmptySet[int]().Insert(3).Insert(5)
	t.Logf("s =\n%s", s.Print())
	if !s.Member(3) {
		t.Error("expected 3 to be a member, isn't")
	}
	if !s.Member(5) {
		t.Error("expected 5 to be a member, isn't")
	}
	if s.Member(42) {
		t.Error("expected 42 not to be a member, is")
	}
}

func TestSetDuplicateInsertSharesTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.bst")
	defer teardown()
	//
	s := EmptySet[int]().Insert(3).Insert(5).Insert(1)
	dup := s.Insert(5)
	if dup.root != s.root {
		t.Error("expected duplicate insert to share the complete tree, doesn't")
	}
	if dup.Size() != s.Size() {
		t.Errorf("expected duplicate insert to keep size %d, has %d", s.Size(), dup.Size())
	}
}

func TestSetInsertLeavesOriginalUntouched(t *testing.T) {
	s1 := EmptySet[int]().Insert(3).Insert(5)
	s2 := s1.Insert(4)
	if s1.Member(4) {
		t.Error("expected original set to be unaffected by later insert, isn't")
	}
	if !s2.Member(4) {
		t.Error("expected 4 to be a member of the new incarnation, isn't")
	}
	if s1.Size() != 2 || s2.Size() != 3 {
		t.Errorf("expected sizes 2 | 3, have %d | %d", s1.Size(), s2.Size())
	}
}

func TestSetInsertSharesSiblingSubtrees(t *testing.T) {
	s1 := EmptySet[int]().Insert(4).Insert(2).Insert(6).Insert(1).Insert(3)
	s2 := s1.Insert(7) // descends right only
	if s2.root == s1.root {
		t.Error("expected insert to re-allocate the root, didn't")
	}
	if s2.root.left != s1.root.left {
		t.Error("expected untouched left subtree to be shared, isn't")
	}
}

func TestSetInvariantHolds(t *testing.T) {
	s := EmptySet[int]()
	for _, v := range []int{8, 3, 10, 1, 6, 14, 4, 7, 13, 3, 6} {
		s = s.Insert(v)
		if !ordered(s.root) {
			t.Logf("s =\n%s", s.Print())
			t.Fatalf("expected search-tree invariant to hold after inserting %d, doesn't", v)
		}
	}
	if s.Size() != 9 { // two duplicates
		t.Errorf("expected 9 distinct members, have %d", s.Size())
	}
}

func TestSetDegeneratesToChain(t *testing.T) {
	s := EmptySet[int]()
	for v := 1; v <= 50; v++ {
		s = s.Insert(v) // monotonic order, no re-balancing
	}
	if s.Depth() != 50 {
		t.Errorf("expected monotonic insertion to produce depth 50, produced %d", s.Depth())
	}
}

func TestSetString(t *testing.T) {
	s := EmptySet[int]().Insert(5).Insert(3).Insert(8)
	if s.String() != "⟨3 5 8⟩" {
		t.Errorf("expected ⟨3 5 8⟩, got %s", s)
	}
}

// ---------------------------------------------------------------------------

// ordered checks the search-tree invariant for every node below n.
func ordered[K constraints.Ordered, V any](n *node[K, V]) bool {
	return orderedWithin(n, nil, nil)
}

func orderedWithin[K constraints.Ordered, V any](n *node[K, V], lower, upper *K) bool {
	if n == nil {
		return true
	}
	if lower != nil && n.key <= *lower {
		return false
	}
	if upper != nil && n.key >= *upper {
		return false
	}
	return orderedWithin(n.left, lower, &n.key) && orderedWithin(n.right, &n.key, upper)
}
