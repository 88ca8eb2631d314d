package list

// Handle is a read-only reference to an item that was stored in a List. It is
// returned by iteration and by the Pop and peek functions instead of a copy of
// the item, and it keeps the item alive on its own: a handle stays valid after
// the item is popped, after the list is cleared, and after the list itself is
// dropped. Several handles may refer to the same item.
//
// The zero Handle refers to nothing.
type Handle[T any] struct {
	v *T
}

// Value returns a copy of the item. It returns the zero value of T if the
// handle is not valid. If T contains pointers, the caller must not write
// through them; items are immutable once inserted.
func (h Handle[T]) Value() T {
	if h.v == nil {
		var zero T
		return zero
	}
	return *h.v
}

// Valid reports whether the handle refers to an item.
func (h Handle[T]) Valid() bool {
	return h.v != nil
}

// Same reports whether h and o refer to the same stored item. Member
// comparison is based on identity, not content: two pushes of equal values
// produce handles that are not the same.
func (h Handle[T]) Same(o Handle[T]) bool {
	return h.v != nil && h.v == o.v
}
