package fixed

import (
	"fmt"
	"math/bits"
)

const debugFixed = true

// A Word holds a single digit in [0, base).
type Word uint

// MaxBase is the largest base supported by the arithmetic kernels: the
// quotient-digit refinement step computes values up to base**3 - 1, which
// must fit in a Word. 2097151 on 64-bit platforms, 1023 on 32-bit ones.
const MaxBase = 1<<(bits.UintSize/3) - 1

// A Num is an arbitrary-precision fixed-point number: a sign, a sequence
// of digits with the most significant digit first, and a count of digits
// belonging to the integer part. The remaining digits form the fractional
// part. Digits are in [0, base) for a base chosen by the caller and passed
// to each operation; a Num does not record the base it was built in.
//
// A canonical Num has at least one integer digit and no leading zero
// digits beyond the first. Fractional digits are never trimmed, so a
// value keeps the scale an operation gave it. The zero value denotes 0
// and is usable as an operand.
//
// Operations never mutate their operands; they return fresh values.
type Num struct {
	mant   []Word
	intLen int
	neg    bool
}

// Zero returns a canonical 0 with no fractional digits.
func Zero() *Num {
	return &Num{mant: []Word{0}, intLen: 1}
}

// Len returns the total number of digits of x.
func (x *Num) Len() int { return len(x.mant) }

// IntDigits returns the number of integer-part digits of x.
func (x *Num) IntDigits() int { return x.intLen }

// FracDigits returns the number of fractional digits (the scale) of x.
func (x *Num) FracDigits() int { return len(x.mant) - x.intLen }

// IsZero reports whether x has the value 0, at any scale.
func (x *Num) IsZero() bool {
	for _, d := range x.mant {
		if d != 0 {
			return false
		}
	}
	return true
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0
//	+1 if x >   0
//
func (x *Num) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Signbit reports whether x carries a negative sign.
func (x *Num) Signbit() bool { return x.neg }

// Neg returns -x. The result of negating a zero is a non-negative zero.
func (x *Num) Neg() *Num {
	z := x.clone()
	z.neg = !z.neg && !z.IsZero()
	return z
}

// Abs returns |x|.
func (x *Num) Abs() *Num {
	z := x.clone()
	z.neg = false
	return z
}

func (x *Num) clone() *Num {
	z := &Num{mant: make([]Word, len(x.mant)), intLen: x.intLen, neg: x.neg}
	copy(z.mant, x.mant)
	return z
}

// norm strips leading zero digits while more than one integer digit
// remains, and clears the sign of a zero value. Fractional digits are
// left alone so the scale of the result is preserved.
func (z *Num) norm() *Num {
	i := 0
	for i < z.intLen-1 && z.mant[i] == 0 {
		i++
	}
	if i > 0 {
		z.mant = z.mant[i:]
		z.intLen -= i
	}
	if z.neg && z.IsZero() {
		z.neg = false
	}
	return z
}

// digit returns the digit at position p, where p counts leftward from the
// radix point: p >= 0 addresses integer digits (p == 0 is the units
// digit), p < 0 addresses fractional digits. Positions outside x read as
// zero, which is what radix-point alignment needs.
func (x *Num) digit(p int) Word {
	i := x.intLen - 1 - p
	if i < 0 || i >= len(x.mant) {
		return 0
	}
	return x.mant[i]
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x *Num) Cmp(y *Num) int {
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	c := ucmp(x, y)
	if xs < 0 {
		c = -c
	}
	return c
}

// ucmp compares |x| and |y| by scanning aligned digit positions from the
// most significant downward.
func ucmp(x, y *Num) int {
	hi := x.intLen
	if y.intLen > hi {
		hi = y.intLen
	}
	lo := -x.FracDigits()
	if f := -y.FracDigits(); f < lo {
		lo = f
	}
	for p := hi - 1; p >= lo; p-- {
		dx, dy := x.digit(p), y.digit(p)
		if dx != dy {
			if dx < dy {
				return -1
			}
			return 1
		}
	}
	return 0
}

func checkBase(b int) {
	if b < 2 || b > MaxBase {
		panic(fmt.Sprintf("base %d out of range [2, %d]", b, MaxBase))
	}
}

func checkScale(scale int) {
	if scale < 0 {
		panic(fmt.Sprintf("negative scale %d", scale))
	}
}

func (x *Num) validate() {
	if !debugFixed {
		// avoid performance bugs
		panic("validate called but debugFixed is not set")
	}
	if len(x.mant) == 0 {
		// the zero value
		return
	}
	if x.intLen < 0 || x.intLen > len(x.mant) {
		panic(fmt.Sprintf("intLen %d out of range for %d digits", x.intLen, len(x.mant)))
	}
	if x.intLen > 1 && x.mant[0] == 0 {
		panic("leading zero digit in a multi-digit integer part")
	}
	if x.neg && x.IsZero() {
		panic("negative zero")
	}
}
