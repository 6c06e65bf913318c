package fixed

// Mod returns x - y*(x/y) in base b, with the inner quotient truncated to
// scale fractional digits. With scale 0 this is the integer remainder.
// The division engine itself produces no remainder; computing it from the
// quotient costs one multiply and one subtract and keeps the hot division
// loop free of remainder bookkeeping.
func Mod(x, y *Num, b, scale int) (*Num, error) {
	q, err := Div(x, y, b, scale)
	if err != nil {
		return nil, err
	}
	return Sub(x, Mul(y, q, b), b), nil
}
