package list

// Element is a list element.
type Element[V any] struct {
	next, prev *Element[V]
	list       *List[V]
	Value      V
}

// Next returns the raw next link.
//
// It is nil for the back element of a linear list and the front element
// of a circular list.
func (e *Element[V]) Next() *Element[V] {
	return e.next
}

// Prev returns the raw prev link.
//
// It is always nil in a singly linked list. In a doubly linked list it is
// nil for the front element of a linear list and the back element of a
// circular list.
func (e *Element[V]) Prev() *Element[V] {
	return e.prev
}

// detach clears the links so a removed element does not keep its
// former neighbours reachable.
func (e *Element[V]) detach() {
	e.next = nil
	e.prev = nil
	e.list = nil
}
