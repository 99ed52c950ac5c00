package redblack

// Rotations are the only operations changing the shape of a tree. Both keep
// the in-order sequence of keys intact.
//
//	     x                 y
//	    / \   rotateLeft  / \
//	   a   y    ----->   x   c
//	      / \           / \
//	     b   c         a   b
//
// rotateRight is the inverse.

// rotateLeft requires x.right to be present.
func (t *Tree[K]) rotateLeft(x *Node[K]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replaceChild(x, y)
	y.left = x
	x.parent = y
	t.emit(OpRotateLeft, x)
}

// rotateRight requires x.left to be present.
func (t *Tree[K]) rotateRight(x *Node[K]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	t.replaceChild(x, y)
	y.right = x
	x.parent = y
	t.emit(OpRotateRight, x)
}

// replaceChild lets y take over the position of x below x's parent, or the
// root position if x is the root.
func (t *Tree[K]) replaceChild(x, y *Node[K]) {
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
}
