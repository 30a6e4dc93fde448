/*
Package list implements a linked list whose topology is chosen at construction.

All four combinations of singly/doubly linked and linear/circular share one
implementation: splices only wire the junction they touch and normalize
re-establishes the closing links for the configured topology afterwards.
*/
package list

// List is a linked list with a fixed topology.
//
// The zero value is a ready to use empty linear singly linked list.
type List[V any] struct {
	head *Element[V]
	tail *Element[V]
	len  int
	topo Topology
}

// New creates an empty list with topology t.
func New[V any](t Topology) *List[V] {
	if !t.Valid() {
		panic("list: invalid topology")
	}

	return &List[V]{topo: t}
}

// Topology returns the topology of list l.
func (l *List[V]) Topology() Topology {
	return l.topo
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	return l.head
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *Element[V] {
	return l.tail
}

// PushFront inserts a value at the front of list l and returns the new element.
func (l *List[V]) PushFront(value V) *Element[V] {
	e := &Element[V]{Value: value, list: l}

	if l.len == 0 {
		l.head = e
		l.tail = e
	} else {
		e.next = l.head
		if l.topo.IsDoubly() {
			l.head.prev = e
		}
		l.head = e
	}

	l.len++
	l.normalize()

	return e
}

// PushBack inserts a value at the back of list l and returns the new element.
func (l *List[V]) PushBack(value V) *Element[V] {
	e := &Element[V]{Value: value, list: l}

	if l.len == 0 {
		l.head = e
		l.tail = e
	} else {
		l.tail.next = e
		if l.topo.IsDoubly() {
			e.prev = l.tail
		}
		l.tail = e
	}

	l.len++
	l.normalize()

	return e
}

// InsertBefore inserts a value immediately before mark and returns the new element.
// If mark == l.Front(), the new element becomes the front element.
//
// In a doubly linked list the predecessor is read from mark in O(1).
// In a singly linked list it is found by a scan from the front in O(n).
func (l *List[V]) InsertBefore(value V, mark *Element[V]) *Element[V] {
	l.mustOwn(mark)

	if mark == l.head {
		return l.PushFront(value)
	}

	if !l.topo.IsDoubly() {
		return l.InsertAfter(value, l.predecessor(mark))
	}

	pred := mark.prev
	e := &Element[V]{Value: value, list: l}
	e.next = mark
	e.prev = pred
	mark.prev = e
	pred.next = e

	l.len++
	l.normalize()

	return e
}

// InsertAfter inserts a value immediately after mark and returns the new element.
// If mark == l.Back(), the new element becomes the back element.
func (l *List[V]) InsertAfter(value V, mark *Element[V]) *Element[V] {
	l.mustOwn(mark)

	if mark == l.tail {
		return l.PushBack(value)
	}

	e := &Element[V]{Value: value, list: l}
	e.next = mark.next
	mark.next = e
	if l.topo.IsDoubly() {
		e.prev = mark
		e.next.prev = e
	}

	l.len++
	l.normalize()

	return e
}

// Remove an element from the list and return its value.
//
// In a singly linked list the predecessor of e is found by a scan from the front.
func (l *List[V]) Remove(e *Element[V]) V {
	l.mustOwn(e)

	if l.len == 1 {
		l.head = nil
		l.tail = nil
		l.len = 0
		e.detach()
		return e.Value
	}

	next := e.next
	var prev *Element[V]
	if l.topo.IsDoubly() {
		prev = e.prev
	} else {
		prev = l.predecessor(e)
	}

	if e == l.head {
		l.head = next
	}
	if e == l.tail {
		l.tail = prev
	}

	if prev != nil {
		prev.next = next
	}
	if l.topo.IsDoubly() && next != nil {
		next.prev = prev
	}

	l.len--
	l.normalize()
	e.detach()

	return e.Value
}

// At returns the element at index i or nil if i is out of range.
// It walks from the front in O(i).
func (l *List[V]) At(i int) *Element[V] {
	if i < 0 || i >= l.len {
		return nil
	}

	e := l.head
	for ; i > 0; i-- {
		e = e.next
	}

	return e
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	e := l.head
	for i := 0; i < l.len; i++ {
		next := e.next
		if !f(e) {
			return
		}
		e = next
	}
}

// Clear removes all elements.
func (l *List[V]) Clear() {
	e := l.head
	for i := 0; i < l.len; i++ {
		next := e.next
		e.detach()
		e = next
	}

	l.head = nil
	l.tail = nil
	l.len = 0
}

// predecessor returns the element linking to e or nil.
// A linear list has no predecessor for the front element.
func (l *List[V]) predecessor(e *Element[V]) *Element[V] {
	p := l.head
	for i := 0; i < l.len; i++ {
		if p.next == e {
			return p
		}
		p = p.next
	}

	return nil
}

// normalize re-establishes the closing links for the list topology.
func (l *List[V]) normalize() {
	if l.len == 0 {
		l.head = nil
		l.tail = nil
		return
	}

	if l.topo.IsCircular() {
		l.tail.next = l.head
		if l.topo.IsDoubly() {
			l.head.prev = l.tail
		}
	} else {
		l.tail.next = nil
		if l.topo.IsDoubly() {
			l.head.prev = nil
		}
	}
}

func (l *List[V]) mustOwn(e *Element[V]) {
	if e == nil || e.list != l {
		panic("list: invalid element")
	}
}
