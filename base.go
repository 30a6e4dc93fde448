package numlist

import (
	"math/big"
	"strconv"
)

// Digit is a single symbol of a number in its base, 0 <= Digit < base.
type Digit uint8

// Base is a numeral system radix from the supported catalog.
type Base uint8

// Supported bases.
const (
	Binary      Base = 2
	Ternary     Base = 3
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// Bases is the base catalog in selector order.
var Bases = [...]Base{Binary, Ternary, Octal, Decimal, Hexadecimal}

// Valid reports whether b is in the catalog.
func (b Base) Valid() bool {
	switch b {
	case Binary, Ternary, Octal, Decimal, Hexadecimal:
		return true
	default:
		return false
	}
}

// Fits reports whether d is a digit of base b.
func (b Base) Fits(d Digit) bool {
	return uint8(d) < uint8(b)
}

func (b Base) String() string {
	return strconv.Itoa(int(b))
}

func (b Base) bigInt() *big.Int {
	return big.NewInt(int64(b))
}

// Operation is the binary operation applied by Number.Apply.
type Operation uint8

// Operations in selector order.
const (
	// Add returns a + b.
	Add Operation = iota
	// Sub returns a - b clamped to zero.
	Sub
	// Mul returns a * b.
	Mul
	// Div returns a / b, or zero when b is zero.
	Div
	// Mod returns a mod b, or zero when b is zero.
	Mod
	// And returns the bitwise a & b.
	And
	// Or returns the bitwise a | b.
	Or
)

var operationNames = [...]string{
	Add: "add",
	Sub: "sub",
	Mul: "mul",
	Div: "div",
	Mod: "mod",
	And: "and",
	Or:  "or",
}

// Valid reports whether op is a known operation.
func (op Operation) Valid() bool {
	return int(op) < len(operationNames)
}

func (op Operation) String() string {
	if !op.Valid() {
		return "invalid"
	}
	return operationNames[op]
}

// Eval applies op to a and b and returns a new non-negative value.
// Negative operands are treated as zero.
func (op Operation) Eval(a, b *big.Int) *big.Int {
	x := nonNegative(a)
	y := nonNegative(b)
	r := new(big.Int)

	switch op {
	case Add:
		r.Add(x, y)
	case Sub:
		if r.Sub(x, y).Sign() < 0 {
			r.SetInt64(0)
		}
	case Mul:
		r.Mul(x, y)
	case Div:
		if y.Sign() != 0 {
			r.Quo(x, y)
		}
	case Mod:
		if y.Sign() != 0 {
			r.Rem(x, y)
		}
	case And:
		r.And(x, y)
	case Or:
		r.Or(x, y)
	}

	return r
}

func nonNegative(x *big.Int) *big.Int {
	if x == nil || x.Sign() < 0 {
		return new(big.Int)
	}
	return x
}
