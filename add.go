package fixed

// Add returns x+y in base b. The result keeps the larger of the two
// operand scales.
func Add(x, y *Num, b int) *Num {
	if debugFixed {
		x.validate()
		y.validate()
		checkBase(b)
	}
	if x.neg == y.neg {
		z := uadd(x, y, Word(b))
		z.neg = x.neg
		return z.norm()
	}
	// Mixed signs: subtract the smaller magnitude from the larger one and
	// take the larger operand's sign. norm clears the sign when the
	// magnitudes cancel.
	var z *Num
	if ucmp(x, y) >= 0 {
		z = usub(x, y, Word(b))
		z.neg = x.neg
	} else {
		z = usub(y, x, Word(b))
		z.neg = y.neg
	}
	return z.norm()
}

// Sub returns x-y in base b.
func Sub(x, y *Num, b int) *Num {
	return Add(x, y.Neg(), b)
}

// uadd returns |x|+|y| with the operands aligned on the radix point. The
// result has one extra integer digit to absorb the final carry.
func uadd(x, y *Num, b Word) *Num {
	il := x.intLen
	if y.intLen > il {
		il = y.intLen
	}
	il++
	fl := x.FracDigits()
	if f := y.FracDigits(); f > fl {
		fl = f
	}
	z := make([]Word, il+fl)
	copy(z[il-x.intLen:], x.mant)
	if len(y.mant) > 0 {
		if c := addRange(z, il+y.FracDigits()-1, y.mant, len(y.mant)-1, b); c != 0 {
			for zi := il - y.intLen - 1; c != 0; zi-- {
				v := z[zi] + c
				c = 0
				if v >= b {
					v -= b
					c = 1
				}
				z[zi] = v
			}
		}
	}
	return &Num{mant: z, intLen: il}
}

// usub returns |x|-|y|; |x| must not be smaller than |y|.
func usub(x, y *Num, b Word) *Num {
	il := x.intLen
	if y.intLen > il {
		il = y.intLen
	}
	fl := x.FracDigits()
	if f := y.FracDigits(); f > fl {
		fl = f
	}
	z := make([]Word, il+fl)
	copy(z[il-x.intLen:], x.mant)
	if len(y.mant) > 0 {
		if bw := subRange(z, il+y.FracDigits()-1, y.mant, len(y.mant)-1, b); bw != 0 {
			for zi := il - y.intLen - 1; bw != 0; zi-- {
				if debugFixed && zi < 0 {
					panic("usub: subtrahend larger than minuend")
				}
				if z[zi] == 0 {
					z[zi] = b - 1
				} else {
					z[zi]--
					bw = 0
				}
			}
		}
	}
	return &Num{mant: z, intLen: il}
}
