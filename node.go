package redblack

import "fmt"

// Color is the color of a tree node.
type Color uint8

// Nodes are either red or black. Nil references count as black.
const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Node is a colored key holder within a red-black tree.
//
// Children are owned by their parent node; the parent reference is a
// back-link only.
type Node[K any] struct {
	key    K
	color  Color
	left   *Node[K]
	right  *Node[K]
	parent *Node[K]
}

func newNode[K any](key K, parent *Node[K]) *Node[K] {
	return &Node[K]{
		key:    key,
		color:  Red,
		parent: parent,
	}
}

// String renders a node as "key(R)" if it is red and "keyB" if it is black.
func (n *Node[K]) String() string {
	if n == nil {
		return "-"
	}
	if n.color == Red {
		return fmt.Sprintf("%v(R)", n.key)
	}
	return fmt.Sprintf("%vB", n.key)
}

// --- Helpers ---------------------------------------------------------------

func colorOf[K any](n *Node[K]) Color {
	if n == nil {
		return Black
	}
	return n.color
}

func isRed[K any](n *Node[K]) bool {
	return n != nil && n.color == Red
}

func (n *Node[K]) isLeaf() bool {
	return n.left == nil && n.right == nil
}
