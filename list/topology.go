package list

// Topology selects how list elements are linked.
//
// It is a set of two independent flags. The zero value is a linear
// singly linked list.
type Topology uint8

// Topology flags.
const (
	// Circular closes the list: the back element links to the front.
	Circular Topology = 1 << iota
	// Doubly maintains prev links in addition to next links.
	Doubly
)

// Topology variants.
const (
	LinearSingly   Topology = 0
	CircularSingly          = Circular
	LinearDoubly            = Doubly
	CircularDoubly          = Circular | Doubly
)

// IsCircular reports whether the back element links to the front.
func (t Topology) IsCircular() bool {
	return t&Circular != 0
}

// IsDoubly reports whether elements carry prev links.
func (t Topology) IsDoubly() bool {
	return t&Doubly != 0
}

// Valid reports whether t holds only known flags.
func (t Topology) Valid() bool {
	return t&^(Circular|Doubly) == 0
}

func (t Topology) String() string {
	switch t {
	case LinearSingly:
		return "linear-singly"
	case CircularSingly:
		return "circular-singly"
	case LinearDoubly:
		return "linear-doubly"
	case CircularDoubly:
		return "circular-doubly"
	default:
		return "invalid"
	}
}
