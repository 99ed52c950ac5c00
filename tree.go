package redblack

import (
	"cmp"

	"github.com/guiguan/caster"
)

// Tree is an insert-only red-black tree of keys of type K.
//
// The zero value is not usable; create trees with New or NewFunc.
type Tree[K any] struct {
	root    *Node[K]
	compare func(a, b K) int
	events  *caster.Caster // optional broadcaster for structural events
}

// New creates an empty tree for keys with a natural order.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{compare: cmp.Compare[K]}
}

// NewFunc creates an empty tree ordering its keys by compare, which must
// return a negative number if a < b, a positive number if a > b and zero
// otherwise. compare has to be a total order.
//
// NewFunc panics with ErrIllegalArguments if compare is nil.
func NewFunc[K any](compare func(a, b K) int) *Tree[K] {
	if compare == nil {
		panic(ErrIllegalArguments)
	}
	return &Tree[K]{compare: compare}
}

// Insert adds key to the tree. Keys equal to an existing key are inserted
// after it. Insert never fails; a panic from the comparison function is
// passed on to the caller.
func (t *Tree[K]) Insert(key K) {
	n := t.place(key)
	t.emit(OpPlace, n)
	t.fixInsert(n)
}

// place descends the tree as an ordinary binary search tree and attaches a new
// red node at the first free child slot. Equal keys go to the right.
func (t *Tree[K]) place(key K) *Node[K] {
	var parent *Node[K]
	less := false
	for x := t.root; x != nil; {
		parent = x
		if less = t.compare(key, x.key) < 0; less {
			x = x.left
		} else {
			x = x.right
		}
	}
	n := newNode(key, parent)
	switch {
	case parent == nil:
		t.root = n
	case less:
		parent.left = n
	default:
		parent.right = n
	}
	return n
}
