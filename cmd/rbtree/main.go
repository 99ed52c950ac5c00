/*
Command rbtree inserts keys into a red-black tree and renders the result.

Usage:

	rbtree [flags] key…

Keys are treated as integers if all of them parse as such, otherwise as
strings. Keys may also be read from stdin, separated by whitespace, if no
key arguments are given.

Flags:

	-f, --format   output format: snapshot, console, dot or html (default "console")
	    --strings  treat keys as strings even if they look like numbers
	    --check    validate the red-black properties after inserting
	-t, --trace    trace fix-up steps to stderr
*/
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
