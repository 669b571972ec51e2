package satchel

// View is a read-only view of a satchel's sequence. Read access and
// element-state mutation are unrestricted; the structural mutators are
// present so that an illegal call fails loudly with ErrUnsupported rather
// than compiling into silence elsewhere, but they never succeed.
//
// View is sealed: the only implementation is the one handed out by
// Satchel.Immutable, so there is no path from a View back to a writable
// sequence.
type View[E any] interface {
	// Len returns the number of elements in the view.
	Len() int
	// At returns the element at index i. The handle is shared with the
	// satchel, so element-state mutation through it is visible everywhere.
	At(i int) E
	// Values returns a mutable copy of the view's content, structurally
	// independent of both the view and the satchel.
	Values() []E
	// Iterator returns a single-pass traversal over the view's content.
	Iterator() *Iterator[E]
	// Append always fails with ErrUnsupported.
	Append(item E) error
	// Remove always fails with ErrUnsupported.
	Remove(i int) error
	// Clear always fails with ErrUnsupported.
	Clear() error

	seal()
}

// view wraps an already-derived working copy. It never aliases the
// satchel's backing sequence, so even a bug here could not restructure it.
type view[E any] struct {
	items []E
}

func (v *view[E]) Len() int {
	return len(v.items)
}

func (v *view[E]) At(i int) E {
	return v.items[i]
}

func (v *view[E]) Values() []E {
	out := make([]E, len(v.items))
	copy(out, v.items)
	return out
}

func (v *view[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{items: v.items}
}

func (v *view[E]) Append(item E) error {
	return ErrUnsupported
}

func (v *view[E]) Remove(i int) error {
	return ErrUnsupported
}

func (v *view[E]) Clear() error {
	return ErrUnsupported
}

func (v *view[E]) seal() {}
