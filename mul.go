package fixed

// Mul returns x*y in base b. The result's scale is the sum of the operand
// scales, the usual fixed-point product shape.
func Mul(x, y *Num, b int) *Num {
	if debugFixed {
		x.validate()
		y.validate()
		checkBase(b)
	}
	z := &Num{
		mant:   mulCore(x.mant, y.mant, Word(b)),
		intLen: x.intLen + y.intLen,
		neg:    x.neg != y.neg,
	}
	return z.norm()
}
