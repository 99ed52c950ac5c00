package redblack

import (
	"slices"
	"testing"
)

// makeChain builds an unbalanced tree by plain search tree placement, without
// fix-up. Colors are irrelevant for rotation tests.
func makeChain(keys ...int) *Tree[int] {
	tree := New[int]()
	for _, k := range keys {
		tree.place(k)
	}
	return tree
}

func checkParentLinks[K any](t *testing.T, tree *Tree[K]) {
	t.Helper()
	if tree.root != nil && tree.root.parent != nil {
		t.Fatalf("root %v has a parent", tree.root)
	}
	var walk func(*Node[K])
	walk = func(n *Node[K]) {
		for _, c := range []*Node[K]{n.left, n.right} {
			if c == nil {
				continue
			}
			if c.parent != n {
				t.Fatalf("broken parent link at %v", c)
			}
			walk(c)
		}
	}
	if tree.root != nil {
		walk(tree.root)
	}
}

func TestRotateLeftAtRoot(t *testing.T) {
	tree := makeChain(4, 2, 8, 6, 10)
	before := keysInOrder(tree)
	x := tree.root
	y := x.right
	tree.rotateLeft(x)
	if tree.root != y || y.left != x || x.parent != y {
		t.Fatalf("rotation did not lift right child to root: %s", tree)
	}
	if x.right == nil || x.right.key != 6 {
		t.Errorf("expected inner subtree 6 to move below %v", x)
	}
	if after := keysInOrder(tree); !slices.Equal(before, after) {
		t.Errorf("in-order sequence changed: %v -> %v", before, after)
	}
	checkParentLinks(t, tree)
}

func TestRotateRightAtRoot(t *testing.T) {
	tree := makeChain(8, 4, 10, 2, 6)
	before := keysInOrder(tree)
	x := tree.root
	y := x.left
	tree.rotateRight(x)
	if tree.root != y || y.right != x || x.parent != y {
		t.Fatalf("rotation did not lift left child to root: %s", tree)
	}
	if y.parent != nil {
		t.Errorf("new root must not have a parent")
	}
	if after := keysInOrder(tree); !slices.Equal(before, after) {
		t.Errorf("in-order sequence changed: %v -> %v", before, after)
	}
	checkParentLinks(t, tree)
}

func TestRotateBelowRoot(t *testing.T) {
	tree := makeChain(50, 20, 80, 10, 30, 25, 35, 70, 90, 60)
	before := keysInOrder(tree)
	// rotate every inner node in both directions and back again
	var inner []*Node[int]
	var collect func(*Node[int])
	collect = func(n *Node[int]) {
		if n == nil {
			return
		}
		inner = append(inner, n)
		collect(n.left)
		collect(n.right)
	}
	collect(tree.root)
	for _, n := range inner {
		if n.right != nil {
			parent := n.parent
			tree.rotateLeft(n)
			if parent != nil && n.parent.parent != parent {
				t.Fatalf("rotated subtree not reattached to %v", parent)
			}
			if after := keysInOrder(tree); !slices.Equal(before, after) {
				t.Fatalf("rotate-left at %d changed in-order sequence: %v", n.key, after)
			}
			checkParentLinks(t, tree)
			tree.rotateRight(n.parent)
			checkParentLinks(t, tree)
		}
		if n.left != nil {
			tree.rotateRight(n)
			if after := keysInOrder(tree); !slices.Equal(before, after) {
				t.Fatalf("rotate-right at %d changed in-order sequence: %v", n.key, after)
			}
			checkParentLinks(t, tree)
			tree.rotateLeft(n.parent)
			checkParentLinks(t, tree)
		}
	}
	if after := keysInOrder(tree); !slices.Equal(before, after) {
		t.Errorf("in-order sequence changed: %v -> %v", before, after)
	}
}
