package list

import "iter"

// Iterator walks a List from front to back. It starts at the head of the list
// as it was when Iter was called.
//
// Any mutation of the list after the iterator was created invalidates it: the
// next call to Next reports the end of the sequence. Handles the iterator
// already returned are unaffected.
type Iterator[T any] struct {
	cursor *node[T]

	// l is dropped once the iterator is exhausted.
	l   *List[T]
	gen uint64
}

// Iter returns an iterator positioned at the first item in the list. It does
// not modify the list.
func (l *List[T]) Iter() *Iterator[T] {
	it := &Iterator[T]{
		cursor: l.head,
		gen:    l.gen,
	}
	if it.cursor != nil {
		it.l = l
	}
	return it
}

// Next returns a handle to the item under the cursor and advances the cursor.
// The bool is false when the iterator is exhausted or invalidated. Once Next
// returns false it always returns false.
func (it *Iterator[T]) Next() (Handle[T], bool) {
	if it.cursor == nil {
		return Handle[T]{}, false
	}
	if it.l.gen != it.gen {
		it.stop()
		return Handle[T]{}, false
	}
	n := it.cursor
	it.cursor = n.next
	if it.cursor == nil {
		it.stop()
	}
	return Handle[T]{v: n.data}, true
}

func (it *Iterator[T]) stop() {
	it.cursor = nil
	it.l = nil
}

// All returns an iterator over the values in the list, front to back, for use
// with range. Mutating the list inside the loop ends the loop after the
// current value.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			if !yield(h.Value()) {
				return
			}
		}
	}
}
