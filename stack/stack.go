package stack

import (
	"fmt"
	"strings"
)

// Stack is an immutable persistent stack. An empty instance is usable as an
// empty stack, i.e. this is legal:
//
//     s := stack.Stack[int]{}.Cons(1).Cons(2)
//
// returning a stack of two items with 2 on top.
type Stack[T any] struct {
	top *cell[T]
}

// cell is a single link of the chain a stack is made of. Cells are never
// mutated after construction; tail chains are shared freely between stack
// incarnations.
type cell[T any] struct {
	value T
	tail  *cell[T]
}

// Empty creates an empty stack. No allocation takes place: the empty stack
// is canonically represented by the zero value.
func Empty[T any]() Stack[T] {
	return Stack[T]{}
}

// --- API -------------------------------------------------------------------

// IsEmpty is true if s contains no items.
func (s Stack[T]) IsEmpty() bool {
	return s.top == nil
}

// Cons returns a copy of s with value pushed on top. It always succeeds and
// allocates exactly one cell, which links to s as its shared tail.
func (s Stack[T]) Cons(value T) Stack[T] {
	return Stack[T]{top: &cell[T]{value: value, tail: s.top}}
}

// Head returns the top item of s, flagging ErrNoSuchElement for an
// empty stack.
func (s Stack[T]) Head() (T, error) {
	if s.top == nil {
		var none T
		return none, ErrNoSuchElement
	}
	return s.top.value, nil
}

// Tail returns the stack below the top item of s, flagging ErrNoSuchElement
// for an empty stack. No allocation takes place: the returned stack is the
// existing shared suffix of s.
func (s Stack[T]) Tail() (Stack[T], error) {
	if s.top == nil {
		return Stack[T]{}, ErrNoSuchElement
	}
	return Stack[T]{top: s.top.tail}, nil
}

// Size returns the number of items in s. The size is not cached anywhere; it
// is recomputed on every call by walking the chain.
func (s Stack[T]) Size() int {
	var n int
	for c := s.top; c != nil; c = c.tail {
		n++
	}
	return n
}

// Get returns the item at position i, counting from the top starting at 0.
// Positions not strictly less than the length of s flag ErrIndexOutOfRange.
// Running off the chain is the out-of-range condition; no size pre-check
// takes place.
func (s Stack[T]) Get(i int) (T, error) {
	var none T
	if i < 0 {
		return none, ErrIndexOutOfRange
	}
	for c := s.top; c != nil; c = c.tail {
		if i == 0 {
			return c.value, nil
		}
		i--
	}
	tracer().Debugf("get: ran off the chain with %d positions left", i)
	return none, ErrIndexOutOfRange
}

// Update returns a copy of s with the item at position i replaced by value,
// flagging ErrIndexOutOfRange like Get does. The copy re-allocates the cells
// at positions 0…i and shares the whole suffix after i with s; s itself is
// left untouched.
func (s Stack[T]) Update(i int, value T) (Stack[T], error) {
	if i < 0 {
		return Stack[T]{}, ErrIndexOutOfRange
	}
	tracer().Debugf("update: copying cells 0…%d", i)
	cow, err := update(s.top, i, value)
	if err != nil {
		return Stack[T]{}, err
	}
	return Stack[T]{top: cow}, nil
}

// update descends to position i and path-copies the cells along the way.
// The recursion bottoming out before i reaches 0 is exactly the
// out-of-range condition.
func update[T any](c *cell[T], i int, value T) (*cell[T], error) {
	if c == nil {
		tracer().Debugf("update: ran off the chain with %d positions left", i)
		return nil, ErrIndexOutOfRange
	}
	if i == 0 {
		tracer().Debugf("update: re-allocating target cell, sharing tail")
		return &cell[T]{value: value, tail: c.tail}, nil
	}
	cow, err := update(c.tail, i-1, value)
	if err != nil {
		return nil, err
	}
	return &cell[T]{value: c.value, tail: cow}, nil
}

// Suffixes returns the stack of all suffixes of s, longest first, always
// ending with the empty suffix. Every returned suffix aliases the
// corresponding chain of s; no cells of s are copied.
//
// Suffixes is a package-level function: as a method its signature would
// nest the receiver's own type and never terminate instantiation.
func Suffixes[T any](s Stack[T]) Stack[Stack[T]] {
	return suffixes(s.top)
}

func suffixes[T any](c *cell[T]) Stack[Stack[T]] {
	if c == nil {
		return Empty[Stack[T]]().Cons(Stack[T]{})
	}
	return suffixes(c.tail).Cons(Stack[T]{top: c})
}

// --- Debugging -------------------------------------------------------------

func (s Stack[T]) String() string {
	b := strings.Builder{}
	b.WriteRune('⟨')
	for c := s.top; c != nil; c = c.tail {
		if c != s.top {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", c.value))
	}
	b.WriteRune('⟩')
	return b.String()
}
