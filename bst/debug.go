package bst

import (
	"fmt"

	tp "github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// Print renders the inner tree structure of a set, for debugging purposes.
func (s Set[T]) Print() string {
	return printTree(s.root, func(n *node[T, struct{}]) string {
		return fmt.Sprintf("⟨%v⟩", n.key)
	})
}

// Print renders the inner tree structure of a map, for debugging purposes.
func (m Map[K, V]) Print() string {
	return printTree(m.root, func(n *node[K, V]) string {
		return fmt.Sprintf("⟨%v→%v⟩", n.key, n.value)
	})
}

func printTree[K constraints.Ordered, V any](root *node[K, V], label func(*node[K, V]) string) string {
	printer := tp.New()
	printNode(printer, root, label)
	return printer.String()
}

func printNode[K constraints.Ordered, V any](printer tp.Tree, n *node[K, V], label func(*node[K, V]) string) {
	if n == nil {
		printer.AddNode("_")
		return
	}
	if n.left == nil && n.right == nil {
		printer.AddNode(label(n))
		return
	}
	branch := printer.AddBranch(label(n))
	printNode(branch, n.left, label)
	printNode(branch, n.right, label)
}
