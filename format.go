package redblack

import (
	"strings"
)

// String returns a canonical snapshot of the tree's structure, useful for
// comparing shapes in tests. Nodes are listed in pre-order; an inner node is
// followed by its children in parentheses, with "-" for an absent child.
// An empty tree is rendered as "-".
//
// Inserting 10, 20, 30 results in
//
//	20B(10(R),30(R))
func (t *Tree[K]) String() string {
	if t == nil || t.root == nil {
		return "-"
	}
	var b strings.Builder
	writeSnapshot(&b, t.root)
	return b.String()
}

func writeSnapshot[K any](b *strings.Builder, n *Node[K]) {
	if n == nil {
		b.WriteString("-")
		return
	}
	b.WriteString(n.String())
	if n.isLeaf() {
		return
	}
	b.WriteByte('(')
	writeSnapshot(b, n.left)
	b.WriteByte(',')
	writeSnapshot(b, n.right)
	b.WriteByte(')')
}
