package redblack

// fixInsert restores the red-black properties after n has been placed as a
// red leaf.
//
// As long as n and its parent are both red, one of three cases applies,
// mirrored depending on the side of the parent below the grandparent:
//
//	case 1: the uncle is red. Parent and uncle turn black, the grandparent turns
//	        red, and the violation may now sit at the grandparent.
//	case 2: the uncle is black and n is an inner grandchild. A rotation at the
//	        parent turns this into case 3.
//	case 3: the uncle is black and n is an outer grandchild. Recolor parent and
//	        grandparent and rotate at the grandparent. This ends the loop.
//
// Case 1 moves up two levels, cases 2 and 3 terminate, so the loop runs at most
// height/2 times.
func (t *Tree[K]) fixInsert(n *Node[K]) {
	for n.parent != nil && n.parent.color == Red {
		parent := n.parent
		gparent := parent.parent // parent is red, thus not the root
		if parent == gparent.left {
			if uncle := gparent.right; isRed(uncle) {
				tracer().Debugf("fix-up case 1 at %v", gparent)
				t.recolor(parent, uncle, gparent)
				n = gparent
				continue
			}
			if n == parent.right {
				tracer().Debugf("fix-up case 2 at %v", parent)
				t.rotateLeft(parent)
				n, parent = parent, n
			}
			tracer().Debugf("fix-up case 3 at %v", gparent)
			t.recolor(parent, nil, gparent)
			t.rotateRight(gparent)
		} else {
			if uncle := gparent.left; isRed(uncle) {
				tracer().Debugf("fix-up case 1 at %v (mirrored)", gparent)
				t.recolor(parent, uncle, gparent)
				n = gparent
				continue
			}
			if n == parent.left {
				tracer().Debugf("fix-up case 2 at %v (mirrored)", parent)
				t.rotateRight(parent)
				n, parent = parent, n
			}
			tracer().Debugf("fix-up case 3 at %v (mirrored)", gparent)
			t.recolor(parent, nil, gparent)
			t.rotateLeft(gparent)
		}
	}
	t.root.color = Black
	t.emit(OpBlackRoot, t.root)
}

// recolor paints parent and uncle (if present) black and gparent red.
func (t *Tree[K]) recolor(parent, uncle, gparent *Node[K]) {
	parent.color = Black
	if uncle != nil {
		uncle.color = Black
	}
	gparent.color = Red
	t.emit(OpRecolor, gparent)
}
