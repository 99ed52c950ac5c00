/*
Package redblack implements an insert-only ordered container as a red-black tree.

# Red-Black Trees

A red-black tree is a binary search tree whose nodes carry one extra bit of
information, a color. Colors constrain the shape of the tree such that no path
from the root to a leaf is more than twice as long as any other path. The
constraints are:

1. Every node is either red or black.
2. The root is black.
3. Every nil reference (leaf) is black.
4. A red node never has a red child.
5. For every node, all paths from the node to a descendant leaf contain the
same number of black nodes.

Keys are kept in search tree order. Equal keys are permitted; a key equal to
an existing one is placed to the right of it, so duplicates retain their order
of insertion.

After a new node has been placed as a red leaf, properties 2 and 4 may be
broken. The tree repairs them by walking upwards from the new node, recoloring
and rotating, which bounds the height of a tree with n nodes to 2·log₂(n+1)
and every insertion to O(log n) steps.

The tree offers insertion only. There is no lookup, deletion or iteration;
clients are expected to wrap it with the operations they need. For inspection
the tree may be rendered as a canonical snapshot string, as Graphviz DOT, as
colored console output or as an HTML fragment.

Trees are not safe for concurrent mutation.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package redblack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'redblack'
func tracer() tracing.Trace {
	return tracing.Select("redblack")
}

// TreeError is an error type for the redblack module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrInvariantViolation is flagged by Check for a tree which does not satisfy
// the red-black properties or search tree order.
const ErrInvariantViolation = TreeError("red-black invariant violated")
