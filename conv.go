package fixed

import (
	"fmt"
	"strings"
)

// digitAlphabet maps digit values to characters for parsing and printing.
// It caps the bases that have a textual form at 36; arithmetic itself
// works up to MaxBase.
const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Parse interprets s as a fixed-point number in the given base and
// returns it in canonical form. s is an optional + or - sign followed by
// digits with at most one radix point; digits above 9 are the letters a-z
// in either case. The scale of the result is the number of digits after
// the point in s.
func Parse(s string, base int) (*Num, error) {
	if base < 2 || base > len(digitAlphabet) {
		return nil, fmt.Errorf("fixed: invalid base %d", base)
	}
	orig := s
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	intPart, fracPart, pointed := strings.Cut(s, ".")
	if pointed && strings.Contains(fracPart, ".") {
		return nil, fmt.Errorf("fixed: parsing %q: multiple radix points", orig)
	}
	if len(intPart)+len(fracPart) == 0 {
		return nil, fmt.Errorf("fixed: parsing %q: no digits", orig)
	}

	mant := make([]Word, 0, len(intPart)+len(fracPart)+1)
	if intPart == "" {
		// keep at least one integer digit
		mant = append(mant, 0)
	}
	for _, part := range []string{intPart, fracPart} {
		for _, c := range part {
			d, err := digitVal(c, base)
			if err != nil {
				return nil, fmt.Errorf("fixed: parsing %q: %v", orig, err)
			}
			mant = append(mant, d)
		}
	}
	z := &Num{mant: mant, intLen: len(mant) - len(fracPart), neg: neg}
	return z.norm(), nil
}

func digitVal(c rune, base int) (Word, error) {
	var d int
	switch {
	case '0' <= c && c <= '9':
		d = int(c - '0')
	case 'a' <= c && c <= 'z':
		d = int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		d = int(c-'A') + 10
	default:
		return 0, fmt.Errorf("invalid digit %q", c)
	}
	if d >= base {
		return 0, fmt.Errorf("invalid digit %q for base %d", c, base)
	}
	return Word(d), nil
}

// New is a base-10 convenience for Parse.
func New(digits string) (*Num, error) {
	return Parse(digits, 10)
}

// MustParse is like Parse but panics on error. It simplifies the safe
// initialization of package-level values.
func MustParse(s string, base int) *Num {
	z, err := Parse(s, base)
	if err != nil {
		panic(err)
	}
	return z
}

// Text is String with the base made explicit. It panics when the base
// has no textual form, and in debug builds it verifies that every digit
// of x is a valid digit in that base.
func (x *Num) Text(base int) string {
	if base < 2 || base > len(digitAlphabet) {
		panic(fmt.Sprintf("fixed: base %d has no textual form", base))
	}
	if debugFixed {
		for _, d := range x.mant {
			if int(d) >= base {
				panic(fmt.Sprintf("fixed: digit %d not valid in base %d", d, base))
			}
		}
	}
	return x.String()
}

// String formats x with the same digit alphabet Parse reads, so values in
// bases up to 36 round-trip. A fractional part is printed only when x
// carries fractional digits, trailing zeros included: the scale of a
// value is part of its textual form.
func (x *Num) String() string {
	if len(x.mant) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(len(x.mant) + 2)
	if x.neg {
		sb.WriteByte('-')
	}
	if x.intLen == 0 {
		sb.WriteByte('0')
	}
	for i, d := range x.mant {
		if i == x.intLen {
			sb.WriteByte('.')
		}
		sb.WriteByte(digitAlphabet[d])
	}
	return sb.String()
}
