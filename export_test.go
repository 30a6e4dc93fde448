package numlist

import "github.com/mgnsk/numlist/list"

// DigitList exposes the digit list for structural assertions.
func DigitList(n *Number) *list.List[Digit] {
	return n.digits
}
