/*
Package hashmap provides a chained hash map with array-doubling.

The map is independent of the red-black tree of package redblack. It keeps its
entries in a table of singly linked buckets. Before an entry is put into the
map, the table is doubled in size if the number of entries has reached the
configured load factor of the current capacity; all entries are then
re-inserted into the new table.

Maps are not safe for concurrent use.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package hashmap

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'redblack.hashmap'
func tracer() tracing.Trace {
	return tracing.Select("redblack.hashmap")
}

// ErrIllegalArguments signals an invalid map configuration.
var ErrIllegalArguments = errors.New("hashmap: illegal arguments")
