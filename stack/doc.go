/*
Package stack implements an immutable persistent stack, i.e. a singly-linked
cons list with positional access.

An immutable persistent stack has copy-on-write behaviour: Each “modification”
of the stack (pushing an item or replacing an item at a position) creates a
copy, leaving the original unmodified. Under the hood, copy-on-write retains
most of the memory held by the original: a push allocates a single cell which
links to the original as its tail, and replacing the item at position i
re-allocates the cells up to and including position i only, sharing the whole
suffix after i between original and copy, transparently to clients.

Cells are never mutated after construction, therefore any number of
goroutines may read any number of stack incarnations concurrently without
synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.stack'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.stack")
}

// StackError is the error type for the stack package.
type StackError string

func (e StackError) Error() string {
	return string(e)
}

// ErrNoSuchElement is flagged by Head and Tail when called on an empty stack.
const ErrNoSuchElement = StackError("no such element in empty stack")

// ErrIndexOutOfRange is flagged by Get and Update whenever a stack position
// is not strictly less than the length of the stack.
const ErrIndexOutOfRange = StackError("stack index out of range")
