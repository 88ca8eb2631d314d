// Package list implements a double-ended linked list with forward iteration.
package list

// node is a single element of the chain. A nil *node is an empty link. data is
// set once by the push that creates the node and never written again; only
// next and prev change while the node is linked.
type node[T any] struct {
	next, prev *node[T]
	data       *T
}

func newNode[T any](v T) *node[T] {
	return &node[T]{data: &v}
}

// detach clears both links so a removed node holds nothing alive.
func (n *node[T]) detach() {
	n.next = nil
	n.prev = nil
}

// List implements a doubly linked-list that only grows and shrinks at its
// ends. Head, tail, and size are tracked internally, so all operations are
// constant time unless noted otherwise. The zero value is an empty list ready
// to use.
//
// The list is not thread-safe. Callers that share a list between goroutines
// must guard every call, including iteration, with their own lock.
type List[T any] struct {
	head, tail *node[T]
	size       int

	// gen counts mutations. Iterators created before the latest mutation are
	// invalid.
	gen uint64
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the length of the list. This function is constant time.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil && l.tail == nil
}

// Front returns a handle to the first item in the list without removing it.
// The bool is false if the list is empty.
func (l *List[T]) Front() (Handle[T], bool) {
	if l.head == nil {
		return Handle[T]{}, false
	}
	return Handle[T]{v: l.head.data}, true
}

// Back returns a handle to the last item in the list without removing it. The
// bool is false if the list is empty.
func (l *List[T]) Back() (Handle[T], bool) {
	if l.tail == nil {
		return Handle[T]{}, false
	}
	return Handle[T]{v: l.tail.data}, true
}

// PushBack appends v to the list.
func (l *List[T]) PushBack(v T) {
	n := newNode(v)
	if l.tail == nil {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.size++
	l.gen++
}

// PushFront prepends v to the list.
func (l *List[T]) PushFront(v T) {
	n := newNode(v)
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.size++
	l.gen++
}

// PopBack removes the last item from the list and returns a handle to it. The
// bool is false if the list was empty, in which case nothing changes.
func (l *List[T]) PopBack() (Handle[T], bool) {
	n := l.tail
	if n == nil {
		return Handle[T]{}, false
	}
	l.tail = n.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	n.detach()
	l.size--
	l.gen++
	return Handle[T]{v: n.data}, true
}

// PopFront removes the first item from the list and returns a handle to it.
// The bool is false if the list was empty, in which case nothing changes.
func (l *List[T]) PopFront() (Handle[T], bool) {
	n := l.head
	if n == nil {
		return Handle[T]{}, false
	}
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	n.detach()
	l.size--
	l.gen++
	return Handle[T]{v: n.data}, true
}

// Clear removes every item from the list. Nodes are detached one at a time in
// a loop, so lists of any length are torn down without deep call stacks.
// Handles to removed items stay valid. This function is O(n).
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.detach()
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
	l.gen++
}
