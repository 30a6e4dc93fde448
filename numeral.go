package numlist

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

const digitChars = "0123456789ABCDEF"

// ParseDecimal parses a non-negative decimal integer.
//
// Leading and trailing whitespace is ignored. Anything else than a non-empty
// run of ASCII decimal digits, including a sign, reports ok == false.
func ParseDecimal(s string) (v *big.Int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, false
		}
	}

	return new(big.Int).SetString(s, 10)
}

// DigitsFromValue returns the digits of x in the given base, most significant first.
// Zero yields a single zero digit. Negative values are treated as zero.
func DigitsFromValue(x *big.Int, base Base) []Digit {
	v := new(big.Int).Set(nonNegative(x))
	if v.Sign() == 0 {
		return []Digit{0}
	}

	var (
		bigBase = base.bigInt()
		mod     big.Int
		rev     []Digit
	)

	for v.Sign() > 0 {
		v.DivMod(v, bigBase, &mod)
		rev = append(rev, Digit(mod.Uint64()))
	}

	digits := make([]Digit, len(rev))
	for i, d := range rev {
		digits[len(rev)-1-i] = d
	}

	return digits
}

// ValueFromDigits folds digits given most significant first into a value.
// An empty slice yields zero.
func ValueFromDigits(digits []Digit, base Base) (*big.Int, error) {
	var (
		bigBase = base.bigInt()
		bd      big.Int
		x       = new(big.Int)
	)

	for i, d := range digits {
		if !base.Fits(d) {
			return new(big.Int), errors.Wrapf(ErrDigitOutOfRange, "digit %d at %d: expected 0..%d", d, i, base-1)
		}
		bd.SetUint64(uint64(d))
		x.Mul(x, bigBase)
		x.Add(x, &bd)
	}

	return x, nil
}

// FormatDigits renders digits with 0-9 and A-F.
func FormatDigits(digits []Digit) string {
	var sb strings.Builder
	sb.Grow(len(digits))

	for _, d := range digits {
		sb.WriteByte(digitChar(d))
	}

	return sb.String()
}

func digitChar(d Digit) byte {
	if int(d) < len(digitChars) {
		return digitChars[d]
	}
	return '?'
}
