package numlist

import (
	"math/big"

	"github.com/mgnsk/numlist/list"
)

// ChangeScale returns a new number holding the same value in the additional base.
// The receiver is not modified.
func (n *Number) ChangeScale() *Number {
	return n.derive(&n.value, n.config.AdditionalBase)
}

// Apply applies the configured operation to the values of n and arg and
// returns the result as a new number in the primary base.
// Neither operand is modified.
//
// A Sequence that is not a *Number is read in the primary base. If one of
// its digits does not fit, the operand is zero.
func (n *Number) Apply(arg Sequence) *Number {
	return n.derive(n.config.Operation.Eval(&n.value, n.operand(arg)), n.config.PrimaryBase)
}

func (n *Number) operand(arg Sequence) *big.Int {
	switch a := arg.(type) {
	case nil:
		return new(big.Int)
	case *Number:
		if a == nil {
			return new(big.Int)
		}
		return &a.value
	}

	digits := make([]Digit, 0, arg.Len())
	arg.Do(func(_ int, d Digit) bool {
		digits = append(digits, d)
		return true
	})

	v, err := ValueFromDigits(digits, n.config.PrimaryBase)
	if err != nil {
		n.logger.Warn("operand does not fit the primary base, using zero", "error", err)
	}

	return v
}

// SortAscending sorts the digits in ascending order.
func (n *Number) SortAscending() {
	n.countingSort(false)
}

// SortDescending sorts the digits in descending order.
func (n *Number) SortDescending() {
	n.countingSort(true)
}

// countingSort overwrites the digits in place in O(n + base)
// without relinking any element.
func (n *Number) countingSort(descending bool) {
	if n.Len() < 2 {
		return
	}

	counts := make([]int, n.base)
	n.digits.Do(func(e *list.Element[Digit]) bool {
		counts[e.Value]++
		return true
	})

	e := n.digits.Front()
	emit := func(d Digit) {
		for k := counts[d]; k > 0; k-- {
			e.Value = d
			e = e.Next()
		}
	}

	if descending {
		for d := len(counts) - 1; d >= 0; d-- {
			emit(Digit(d))
		}
	} else {
		for d := range counts {
			emit(Digit(d))
		}
	}

	n.recompute()
}

// RotateLeft moves the most significant digit to the least significant position.
func (n *Number) RotateLeft() {
	if n.Len() < 2 {
		return
	}

	first := n.digits.Front().Value
	e := n.digits.Front()
	for i := 1; i < n.Len(); i++ {
		e.Value = e.Next().Value
		e = e.Next()
	}
	e.Value = first

	n.recompute()
}

// RotateRight moves the least significant digit to the most significant position.
func (n *Number) RotateRight() {
	if n.Len() < 2 {
		return
	}

	carry := n.digits.Back().Value
	e := n.digits.Front()
	for i := 0; i < n.Len(); i++ {
		e.Value, carry = carry, e.Value
		e = e.Next()
	}

	n.recompute()
}

// Swap exchanges the digits at indexes i and j.
// It reports false and leaves the number unchanged if either index is out of range.
func (n *Number) Swap(i, j int) bool {
	a := n.digits.At(i)
	b := n.digits.At(j)
	if a == nil || b == nil {
		return false
	}

	if a != b {
		a.Value, b.Value = b.Value, a.Value
		n.recompute()
	}

	return true
}
