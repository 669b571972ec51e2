// Package satchel provides a container that guards a sequence of elements
// against structural mutation while leaving the elements themselves free to
// change. The satchel owns the only durable copy of the sequence; every way
// of looking inside hands out a fresh structural copy, so nothing a caller
// does to what it received can change the satchel's length or order.
//
// Four access modes are offered, from most to least permissive:
//
//	Values    mutable working copy; caller may restructure it freely
//	Immutable read-only view; structural mutators return ErrUnsupported
//	Iterator  single-pass traversal; Remove returns ErrUnsupported
//	Each      callback per element; the sequence is never revealed
//
// Element handles are shared between the satchel and every copy it hands
// out. Mutating an element's own state through any handle is always allowed
// and visible everywhere; only the sequence structure is protected.
//
// A Satchel is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own synchronization.
package satchel

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when a caller attempts a structural mutation
// (append, remove, clear) on an immutable view or a traversal.
var ErrUnsupported = errors.New("structural mutation not supported")

// Satchel owns an ordered sequence of elements. The zero value is an empty
// satchel; New is the usual way to construct one.
type Satchel[E any] struct {
	originals []E
}

// New returns a satchel backed by a structural copy of items. The copy
// shares element handles with items but not the sequence itself, so later
// changes to the caller's slice do not reach the satchel, and vice versa.
func New[E any](items []E) *Satchel[E] {
	s := &Satchel[E]{originals: make([]E, len(items))}
	copy(s.originals, items)
	return s
}

// Len returns the number of elements in the satchel.
func (s *Satchel[E]) Len() int {
	return len(s.originals)
}

// working returns a fresh structural copy of the backing sequence. Every
// exposing operation derives its own copy, so a copy corrupted by one caller
// never leaks into a later call.
func (s *Satchel[E]) working() []E {
	w := make([]E, len(s.originals))
	copy(w, s.originals)
	return w
}

// Values returns a mutable working copy of the sequence. The caller owns the
// returned slice and may restructure it at will; doing so has no effect on
// the satchel. Element handles are shared, so element-state mutation through
// the copy is visible through every other handle.
func (s *Satchel[E]) Values() []E {
	return s.working()
}

// Immutable returns a read-only view of a fresh working copy. The view's
// structural mutators (Append, Remove, Clear) always fail with
// ErrUnsupported; element-state mutation through At remains possible.
func (s *Satchel[E]) Immutable() View[E] {
	return &view[E]{items: s.working()}
}

// Iterator returns a single-pass traversal over a fresh working copy. Each
// call yields an independent traversal; a traversal cannot be restarted.
// Iterator.Remove always fails with ErrUnsupported.
func (s *Satchel[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{items: s.working()}
}

// Each applies action to every element of a fresh working copy, in order,
// synchronously on the caller's goroutine. The sequence container itself is
// never exposed, only individual elements.
func (s *Satchel[E]) Each(action func(E)) {
	for _, e := range s.working() {
		action(e)
	}
}

// String renders the current content, mostly for demos and debugging.
func (s *Satchel[E]) String() string {
	return fmt.Sprint(s.originals)
}
