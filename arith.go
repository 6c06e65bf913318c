package fixed

// This file implements the digit-array primitives everything else is
// built from. All of them operate most-significant-digit-first, in a
// caller-supplied base, and most of them work on windows of a larger
// buffer identified by an end index: the window covers the n digits
// ending at (and including) that index. The windowing is what lets the
// division loop walk a single working buffer without reslicing or
// reallocating per iteration.

// mulDigit sets z to x*d in base b and returns the final carry. x and z
// must have the same length and may be the same slice. A d of 0 zero
// fills z and a d of 1 copies x; both cases must stay special-cased so
// they cannot introduce spurious carries. A caller that can receive a
// nonzero carry must reserve a leading slot for it in its own buffer;
// the returned value is never written anywhere by mulDigit itself.
func mulDigit(z, x []Word, d, b Word) Word {
	switch d {
	case 0:
		for i := range z {
			z[i] = 0
		}
		return 0
	case 1:
		copy(z, x)
		return 0
	}
	var c Word
	for i := len(x) - 1; i >= 0; i-- {
		v := x[i]*d + c
		z[i] = v % b
		c = v / b
	}
	return c
}

// subRange subtracts the vEnd+1 digits of v ending at index vEnd from the
// window of u ending at index uEnd, propagating borrows right to left.
// The returned borrow-out is 1 when the window went negative.
func subRange(u []Word, uEnd int, v []Word, vEnd int, b Word) Word {
	borrow := 0
	for i, k := uEnd, vEnd; k >= 0; i, k = i-1, k-1 {
		val := int(u[i]) - int(v[k]) - borrow
		borrow = 0
		if val < 0 {
			val += int(b)
			borrow = 1
		}
		u[i] = Word(val)
	}
	return Word(borrow)
}

// addRange adds the vEnd+1 digits of v ending at index vEnd into the
// window of u ending at index uEnd. The returned carry-out is 1 when the
// sum overflowed the window's most significant digit.
func addRange(u []Word, uEnd int, v []Word, vEnd int, b Word) Word {
	var carry Word
	for i, k := uEnd, vEnd; k >= 0; i, k = i-1, k-1 {
		val := u[i] + v[k] + carry
		carry = 0
		if val >= b {
			val -= b
			carry = 1
		}
		u[i] = val
	}
	return carry
}

// mulCore returns x*y in base b as a fresh digit slice of length
// len(x)+len(y), most significant digit first, possibly with leading
// zeros. Plain schoolbook multiplication.
func mulCore(x, y []Word, b Word) []Word {
	z := make([]Word, len(x)+len(y))
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] == 0 {
			continue
		}
		var c Word
		for j := len(y) - 1; j >= 0; j-- {
			v := z[i+j+1] + x[i]*y[j] + c
			z[i+j+1] = v % b
			c = v / b
		}
		z[i] += c
	}
	return z
}
