package redblack

import (
	"github.com/guiguan/caster"
)

// Operation denotes a structural step taken during an insertion.
type Operation uint8

// Operations reported by a tree to an attached broadcaster.
const (
	OpPlace       Operation = iota // a new red node has been attached
	OpRecolor                      // parent (and uncle) turned black, grandparent red
	OpRotateLeft                   // left rotation around a node
	OpRotateRight                  // right rotation around a node
	OpBlackRoot                    // the root has been forced black, insertion complete
)

func (op Operation) String() string {
	switch op {
	case OpPlace:
		return "place"
	case OpRecolor:
		return "recolor"
	case OpRotateLeft:
		return "rotate-left"
	case OpRotateRight:
		return "rotate-right"
	case OpBlackRoot:
		return "black-root"
	}
	return "unknown"
}

// Event is published for every structural step of an insertion. Key is the
// key of the node the step pivots on: the new node for OpPlace, the
// grandparent for OpRecolor, the rotated node for rotations and the root for
// OpBlackRoot.
type Event struct {
	Op  Operation
	Key any
}

// Broadcast attaches a broadcaster to the tree. Every subsequent insertion
// publishes its steps as Event messages, in the order they are performed.
// Calling Broadcast with nil detaches a broadcaster.
//
// The caller owns the broadcaster and is responsible for closing it.
// Publishing blocks until the broadcaster accepts the message, so subscribers
// should use buffered subscriptions or drain them continuously.
func (t *Tree[K]) Broadcast(c *caster.Caster) {
	t.events = c
}

func (t *Tree[K]) emit(op Operation, n *Node[K]) {
	if t.events == nil {
		return
	}
	if !t.events.Pub(Event{Op: op, Key: n.key}) {
		tracer().Infof("event broadcaster closed, detaching")
		t.events = nil
	}
}
