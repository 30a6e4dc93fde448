/*
Package testing provides structural assertions shared by the list and number test suites.
*/
package testing

import (
	"github.com/mgnsk/numlist/list"
	. "github.com/onsi/gomega"
)

// ExpectValidList asserts the head, tail, size and closing-link invariants of l
// for its topology.
func ExpectValidList[V any](g *WithT, l *list.List[V]) {
	topo := l.Topology()

	if l.Len() == 0 {
		g.Expect(l.Front()).To(BeNil(), "front of an empty list")
		g.Expect(l.Back()).To(BeNil(), "back of an empty list")
		return
	}

	g.Expect(l.Front()).NotTo(BeNil())
	g.Expect(l.Back()).NotTo(BeNil())

	// Walk next links size times.
	forward := make([]*list.Element[V], 0, l.Len())
	e := l.Front()
	for i := 0; i < l.Len(); i++ {
		g.Expect(e).NotTo(BeNil(), "next chain ended after %d of %d elements", i, l.Len())
		forward = append(forward, e)
		e = e.Next()
	}

	g.Expect(forward[len(forward)-1]).To(BeIdenticalTo(l.Back()), "last walked element is the back")

	if topo.IsCircular() {
		g.Expect(e).To(BeIdenticalTo(l.Front()), "circular walk returns to the front")
	} else {
		g.Expect(e).To(BeNil(), "linear walk ends at nil")
	}

	if !topo.IsDoubly() {
		for _, el := range forward {
			g.Expect(el.Prev()).To(BeNil(), "singly linked elements have no prev")
		}
		return
	}

	// Walk prev links from the back; it must reverse the forward walk.
	e = l.Back()
	for i := len(forward) - 1; i >= 0; i-- {
		g.Expect(e).To(BeIdenticalTo(forward[i]), "prev walk at index %d", i)
		e = e.Prev()
	}

	if topo.IsCircular() {
		g.Expect(l.Front().Prev()).To(BeIdenticalTo(l.Back()), "front.prev is the back")
	} else {
		g.Expect(l.Front().Prev()).To(BeNil(), "front.prev is nil")
	}
}

// Values collects the list values in forward order.
func Values[V any](l *list.List[V]) []V {
	values := make([]V, 0, l.Len())

	l.Do(func(e *list.Element[V]) bool {
		values = append(values, e.Value)
		return true
	})

	return values
}

// Topologies lists every supported topology.
var Topologies = []list.Topology{
	list.LinearSingly,
	list.CircularSingly,
	list.LinearDoubly,
	list.CircularDoubly,
}
