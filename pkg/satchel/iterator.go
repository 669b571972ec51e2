package satchel

// Iterator is a lazy, single-pass traversal over a working copy of a
// satchel's sequence. A traversal is finite and cannot be restarted; call
// Satchel.Iterator again for a new one. Removal through the traversal is
// always rejected.
//
// Usage follows the Next-then-Value shape:
//
//	it := s.Iterator()
//	for it.Next() {
//		e := it.Value()
//		...
//	}
type Iterator[E any] struct {
	items []E
	pos   int
}

// Next advances the traversal and reports whether an element is available.
func (it *Iterator[E]) Next() bool {
	if it.pos >= len(it.items) {
		return false
	}
	it.pos++
	return true
}

// Value returns the element the last successful Next advanced to. Calling
// Value before the first Next, or after Next has returned false past the
// end, is a programming error and panics on the index.
func (it *Iterator[E]) Value() E {
	return it.items[it.pos-1]
}

// Remove always fails with ErrUnsupported: a traversal never grants the
// right to restructure the sequence it walks.
func (it *Iterator[E]) Remove() error {
	return ErrUnsupported
}
