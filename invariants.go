package redblack

import (
	"fmt"
	"math"
)

// Check validates the red-black properties, search tree order, parent links
// and the height bound of a tree. It returns an error wrapping
// ErrInvariantViolation for the first violation found.
//
// Check is intended for tests and debugging; it visits every node.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrInvariantViolation, t.root)
	}
	if t.root.color != Black {
		return fmt.Errorf("%w: root %v is not black", ErrInvariantViolation, t.root)
	}
	stats, err := t.checkNode(t.root, bounds[K]{})
	if err != nil {
		return err
	}
	if limit := 2 * math.Log2(float64(stats.count+1)); float64(stats.height) > limit {
		return fmt.Errorf("%w: height %d exceeds bound %.2f for %d nodes",
			ErrInvariantViolation, stats.height, limit, stats.count)
	}
	return nil
}

// bounds holds the key range a subtree has to respect: keys must be ≥ lo (if
// set) and ≤ hi (if set). New keys equal to an existing key are placed to its
// right, but rotations may move equal keys to either side, so the bounds are
// inclusive and amount to a non-decreasing in-order sequence.
type bounds[K any] struct {
	lo, hi       K
	hasLo, hasHi bool
}

type subtreeStats struct {
	count       int
	height      int
	blackHeight int // excluding the subtree root
}

func (t *Tree[K]) checkNode(n *Node[K], b bounds[K]) (subtreeStats, error) {
	if n == nil {
		return subtreeStats{}, nil
	}
	if n.color != Red && n.color != Black {
		return subtreeStats{}, fmt.Errorf("%w: node %v has invalid color %d",
			ErrInvariantViolation, n, n.color)
	}
	if b.hasLo && t.compare(n.key, b.lo) < 0 {
		return subtreeStats{}, fmt.Errorf("%w: key of %v is less than ancestor key %v",
			ErrInvariantViolation, n, b.lo)
	}
	if b.hasHi && t.compare(n.key, b.hi) > 0 {
		return subtreeStats{}, fmt.Errorf("%w: key of %v is greater than ancestor key %v",
			ErrInvariantViolation, n, b.hi)
	}
	for _, child := range []*Node[K]{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			return subtreeStats{}, fmt.Errorf("%w: broken parent link at %v",
				ErrInvariantViolation, child)
		}
		if n.color == Red && child.color == Red {
			return subtreeStats{}, fmt.Errorf("%w: red node %v has red child %v",
				ErrInvariantViolation, n, child)
		}
	}
	lb, rb := b, b
	lb.hi, lb.hasHi = n.key, true
	rb.lo, rb.hasLo = n.key, true
	left, err := t.checkNode(n.left, lb)
	if err != nil {
		return subtreeStats{}, err
	}
	right, err := t.checkNode(n.right, rb)
	if err != nil {
		return subtreeStats{}, err
	}
	lbh := left.blackHeight + blackCount(n.left)
	rbh := right.blackHeight + blackCount(n.right)
	if lbh != rbh {
		return subtreeStats{}, fmt.Errorf("%w: unequal black-height below %v (%d != %d)",
			ErrInvariantViolation, n, lbh, rbh)
	}
	return subtreeStats{
		count:       left.count + right.count + 1,
		height:      max(left.height, right.height) + 1,
		blackHeight: lbh,
	}, nil
}

// blackCount is 1 for black nodes, including nil.
func blackCount[K any](n *Node[K]) int {
	if colorOf(n) == Black {
		return 1
	}
	return 0
}
