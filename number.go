/*
Package numlist implements a non-negative arbitrary-precision integer stored as a
linked list of digits.

The list topology, the primary and additional bases and the binary operation
are fixed per number by a Config. The value of a number is kept consistent
with its digits after every call returns.
*/
package numlist

import (
	"hash/maphash"
	"iter"
	"math/big"

	"github.com/hashicorp/go-hclog"
	"github.com/mgnsk/numlist/list"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var hashSeed = maphash.MakeSeed()

// Sequence is a read-only ordered view of digits, most significant first.
type Sequence interface {
	Len() int
	Do(f func(i int, d Digit) bool)
}

var _ Sequence = (*Number)(nil)

// Number is a non-negative integer stored as a list of digits in a base.
//
// A Number must not be copied after first use and is not safe for concurrent use.
type Number struct {
	digits *list.List[Digit]
	value  big.Int
	base   Base
	config Config
	logger hclog.Logger
	fs     afero.Fs
}

// New creates an empty number in the primary base.
func New(opts ...Option) *Number {
	o := buildOptions(opts)
	return newNumber(o.config, o.config.PrimaryBase, o.logger, o.fs)
}

// Parse creates a number from a decimal string in the primary base.
//
// Invalid input, including a negative number, yields an empty number.
func Parse(s string, opts ...Option) *Number {
	n := New(opts...)

	v, ok := ParseDecimal(s)
	if !ok {
		n.logger.Debug("invalid decimal input, number is empty", "input", s)
		return n
	}

	n.setValue(v)

	return n
}

// FromValue creates a number from a value in the primary base.
// Negative values are treated as zero.
func FromValue(x *big.Int, opts ...Option) *Number {
	n := New(opts...)
	n.setValue(nonNegative(x))
	return n
}

func newNumber(config Config, base Base, logger hclog.Logger, fs afero.Fs) *Number {
	return &Number{
		digits: list.New[Digit](config.Topology),
		base:   base,
		config: config,
		logger: logger,
		fs:     fs,
	}
}

// derive creates a number with the configuration of n holding x in base.
func (n *Number) derive(x *big.Int, base Base) *Number {
	d := newNumber(n.config, base, n.logger, n.fs)
	d.setValue(x)
	return d
}

// Len returns the number of digits.
func (n *Number) Len() int {
	return n.digits.Len()
}

// IsEmpty reports whether the number has no digits.
func (n *Number) IsEmpty() bool {
	return n.digits.Len() == 0
}

// Base returns the base the digits are expressed in.
func (n *Number) Base() Base {
	return n.base
}

// Config returns the configuration of the number.
func (n *Number) Config() Config {
	return n.config
}

// Value returns a copy of the represented value.
func (n *Number) Value() *big.Int {
	return new(big.Int).Set(&n.value)
}

// Get returns the digit at index i.
func (n *Number) Get(i int) (d Digit, ok bool) {
	if e := n.digits.At(i); e != nil {
		return e.Value, true
	}
	return 0, false
}

// Set replaces the digit at index i and returns the old digit.
func (n *Number) Set(i int, d Digit) (old Digit, err error) {
	if err := n.validate(d); err != nil {
		return 0, err
	}

	e := n.digits.At(i)
	if e == nil {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d with length %d", i, n.Len())
	}

	old, e.Value = e.Value, d
	n.recompute()

	return old, nil
}

// Add appends a digit as the least significant digit.
func (n *Number) Add(d Digit) error {
	if err := n.validate(d); err != nil {
		return err
	}

	n.digits.PushBack(d)
	n.value.Mul(&n.value, n.base.bigInt())
	n.value.Add(&n.value, big.NewInt(int64(d)))

	return nil
}

// AddAll appends digits in order. Either all digits are appended or,
// if any digit does not fit the base, none.
func (n *Number) AddAll(digits ...Digit) error {
	return n.AddAllAt(n.Len(), digits...)
}

// InsertAt inserts a digit before the digit at index i.
// An index <= 0 inserts at the front and an index >= Len() appends.
func (n *Number) InsertAt(i int, d Digit) error {
	if err := n.validate(d); err != nil {
		return err
	}

	n.insert(i, d)
	n.recompute()

	return nil
}

// AddAllAt inserts digits in order starting at index i, clamped to [0, Len()].
// Either all digits are inserted or, if any digit does not fit the base, none.
func (n *Number) AddAllAt(i int, digits ...Digit) error {
	if err := n.validate(digits...); err != nil {
		return err
	}

	if len(digits) == 0 {
		return nil
	}

	i = max(0, min(i, n.Len()))
	for _, d := range digits {
		n.insert(i, d)
		i++
	}
	n.recompute()

	return nil
}

// RemoveAt removes the digit at index i and returns it.
func (n *Number) RemoveAt(i int) (d Digit, ok bool) {
	e := n.digits.At(i)
	if e == nil {
		return 0, false
	}

	d = n.digits.Remove(e)
	n.recompute()

	return d, true
}

// Remove removes the first occurrence of d and reports whether it was present.
func (n *Number) Remove(d Digit) bool {
	if e := n.find(d); e != nil {
		n.digits.Remove(e)
		n.recompute()
		return true
	}
	return false
}

// RemoveAll removes every occurrence of each given digit and reports
// whether the number changed.
func (n *Number) RemoveAll(digits ...Digit) bool {
	set := digitSet(digits)
	return n.removeIf(func(d Digit) bool {
		return set[d]
	})
}

// RetainAll removes every digit not among the given digits and reports
// whether the number changed. Without arguments it clears the number.
func (n *Number) RetainAll(digits ...Digit) bool {
	set := digitSet(digits)
	return n.removeIf(func(d Digit) bool {
		return !set[d]
	})
}

// Clear removes all digits. The value becomes zero.
func (n *Number) Clear() {
	n.digits.Clear()
	n.value.SetInt64(0)
}

// Contains reports whether d is one of the digits.
func (n *Number) Contains(d Digit) bool {
	return n.find(d) != nil
}

// ContainsAll reports whether every given digit is one of the digits.
func (n *Number) ContainsAll(digits ...Digit) bool {
	for _, d := range digits {
		if !n.Contains(d) {
			return false
		}
	}
	return true
}

// IndexOf returns the index of the first occurrence of d or -1.
func (n *Number) IndexOf(d Digit) int {
	index := -1
	n.Do(func(i int, v Digit) bool {
		if v == d {
			index = i
			return false
		}
		return true
	})
	return index
}

// LastIndexOf returns the index of the last occurrence of d or -1.
func (n *Number) LastIndexOf(d Digit) int {
	index := -1
	n.Do(func(i int, v Digit) bool {
		if v == d {
			index = i
		}
		return true
	})
	return index
}

// SubList returns an independent copy of the digits in [from, to) in the same base.
// Bounds are clamped to the number.
func (n *Number) SubList(from, to int) *Number {
	from = max(0, from)
	to = max(from, min(to, n.Len()))

	sub := newNumber(n.config, n.base, n.logger, n.fs)

	e := n.digits.At(from)
	for i := from; i < to; i++ {
		sub.digits.PushBack(e.Value)
		e = e.Next()
	}
	sub.recompute()

	return sub
}

// Do calls function f on each digit in order, most significant first.
// If f returns false, Do stops the iteration.
// f must not change n.
func (n *Number) Do(f func(i int, d Digit) bool) {
	i := 0
	n.digits.Do(func(e *list.Element[Digit]) bool {
		ok := f(i, e.Value)
		i++
		return ok
	})
}

// All returns an iterator over indexes and digits, most significant first.
func (n *Number) All() iter.Seq2[int, Digit] {
	return n.Do
}

// Digits returns the digits as a slice, most significant first.
func (n *Number) Digits() []Digit {
	digits := make([]Digit, 0, n.Len())
	n.Do(func(_ int, d Digit) bool {
		digits = append(digits, d)
		return true
	})
	return digits
}

// String renders the digits in the number's base using 0-9 and A-F.
// An empty number renders as the empty string.
func (n *Number) String() string {
	return FormatDigits(n.Digits())
}

// DecimalString renders the value in decimal.
func (n *Number) DecimalString() string {
	return n.value.String()
}

// Equal reports whether n and o represent the same value,
// regardless of base or topology.
func (n *Number) Equal(o *Number) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.value.Cmp(&o.value) == 0
}

// Hash returns a hash of the value, consistent with Equal within a process.
func (n *Number) Hash() uint64 {
	return maphash.Bytes(hashSeed, n.value.Bytes())
}

func (n *Number) validate(digits ...Digit) error {
	for _, d := range digits {
		if !n.base.Fits(d) {
			return errors.Wrapf(ErrDigitOutOfRange, "digit %d for base %d", d, n.base)
		}
	}
	return nil
}

// insert places d before the digit at index i without updating the value.
// A singly linked list splices after the predecessor found by an index walk.
func (n *Number) insert(i int, d Digit) {
	switch {
	case i <= 0:
		n.digits.PushFront(d)
	case i >= n.digits.Len():
		n.digits.PushBack(d)
	case n.digits.Topology().IsDoubly():
		n.digits.InsertBefore(d, n.digits.At(i))
	default:
		n.digits.InsertAfter(d, n.digits.At(i-1))
	}
}

func (n *Number) find(d Digit) *list.Element[Digit] {
	var found *list.Element[Digit]
	n.digits.Do(func(e *list.Element[Digit]) bool {
		if e.Value == d {
			found = e
			return false
		}
		return true
	})
	return found
}

func (n *Number) removeIf(f func(d Digit) bool) bool {
	var removed []*list.Element[Digit]
	n.digits.Do(func(e *list.Element[Digit]) bool {
		if f(e.Value) {
			removed = append(removed, e)
		}
		return true
	})

	if len(removed) == 0 {
		return false
	}

	for _, e := range removed {
		n.digits.Remove(e)
	}
	n.recompute()

	return true
}

// setValue replaces the digits with the digits of x.
func (n *Number) setValue(x *big.Int) {
	n.digits.Clear()
	for _, d := range DigitsFromValue(x, n.base) {
		n.digits.PushBack(d)
	}
	n.value.Set(x)
}

// recompute folds the digits into the value.
func (n *Number) recompute() {
	bigBase := n.base.bigInt()
	var bd big.Int

	n.value.SetInt64(0)
	n.digits.Do(func(e *list.Element[Digit]) bool {
		bd.SetUint64(uint64(e.Value))
		n.value.Mul(&n.value, bigBase)
		n.value.Add(&n.value, &bd)
		return true
	})
}

func digitSet(digits []Digit) map[Digit]bool {
	set := make(map[Digit]bool, len(digits))
	for _, d := range digits {
		set[d] = true
	}
	return set
}
