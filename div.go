package fixed

import "errors"

// ErrDivisionByZero is returned by Div and Mod when the divisor has the
// value zero.
var ErrDivisionByZero = errors.New("fixed: division by zero")

// Div returns x/y in base b, truncated to scale fractional digits. It is
// an implementation of Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) adapted
// to fixed-point digit strings: the operands are copied into working
// buffers sized from their shapes and the requested scale, both copies
// are scaled so the divisor's leading digit is at least b/2, and the
// quotient digits are then produced one at a time from a two-digit trial
// guess refined with a third digit.
//
// The quotient carries exactly scale fractional digits; the discarded
// remainder can be recovered as x - y*(x/y), which is how Mod computes
// it. The only input error is a zero divisor; scale must not be
// negative.
func Div(x, y *Num, b, scale int) (*Num, error) {
	if debugFixed {
		x.validate()
		y.validate()
		checkBase(b)
		checkScale(scale)
	}
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	q := divCore(x, y, Word(b), scale)
	if x.neg != y.neg && !q.IsZero() {
		q.neg = true
	}
	return q, nil
}

// divCore divides |x| by |y|, with y known to be nonzero.
//
// Buffer layout: the working dividend u gets one leading guard slot (the
// slot Algorithm D writes normalization and add-back carries into), plus
// offset slots when the requested scale exceeds the scale the operand
// shapes produce on their own, plus two digits of lookahead padding for
// the three-digit refinement reads. The working divisor v gets the same
// padding so v[1] and the multiply scratch stay in bounds for a one-digit
// divisor. Both copies are owned by this call; the caller's digit slices
// are never written.
func divCore(x, y *Num, b Word, scale int) *Num {
	// intWidth anchors where division output begins: integer digits of
	// the dividend plus fractional digits of the divisor.
	intWidth := x.IntDigits() + y.FracDigits()
	fracDelta := x.FracDigits() - y.FracDigits()
	offset := 0
	if fracDelta < scale {
		offset = scale - fracDelta
	}

	u := make([]Word, len(x.mant)+offset+3)
	copy(u[1:], x.mant)
	v := make([]Word, len(y.mant)+offset+3)
	copy(v, y.mant)

	// Strip the divisor's leading zero digits, and only those: trailing
	// zeros are kept, so a divisor whose significant digits are followed
	// by structural zero padding keeps its full width.
	width := len(y.mant)
	for v[0] == 0 {
		v = v[1:]
		width--
	}

	if width > intWidth+scale {
		// The divisor is wider than anything the requested scale can
		// resolve: the quotient is exactly zero, shaped as one integer
		// digit plus scale fractional digits. The main loop's bound
		// arithmetic is meaningless in this regime, so this return is
		// load-bearing, not an optimization.
		return &Num{mant: make([]Word, 1+scale), intLen: 1}
	}
	produced := scale + 1
	if width <= intWidth {
		produced = intWidth - width + scale + 1
	}
	q := &Num{mant: make([]Word, produced), intLen: produced - scale}

	// D1. Normalize so v[0] >= b/2. This is what bounds the trial digit
	// below to overshoot by at most 2 before refinement.
	if norm := b / (v[0] + 1); norm != 1 {
		c := mulDigit(u[:len(x.mant)+offset+1], u[:len(x.mant)+offset+1], norm, b)
		if debugFixed && c != 0 {
			panic("carry out of the dividend's guard slot")
		}
		c = mulDigit(v[:width], v[:width], norm, b)
		if debugFixed && c != 0 {
			panic("normalization grew the divisor")
		}
	}

	// Scratch for the multiply-and-subtract step, reused across
	// iterations: width digits of product plus one carry digit.
	temp := make([]Word, width+1)

	j := 0
	if width > intWidth {
		j = width - intWidth
	}
	for i := 0; i <= intWidth+scale-width; i, j = i+1, j+1 {
		// D3. Guess the next quotient digit from the top two dividend
		// digits. When they can't distinguish (u[i] equals the divisor's
		// leading digit) the guess saturates at the largest digit.
		qg := b - 1
		if v[0] != u[i] {
			qg = (u[i]*b + u[i+1]) / v[0]
		}
		// Refine against the divisor's second digit and a third dividend
		// digit. At most two decrements are ever needed.
		if v[1]*qg > (u[i]*b+u[i+1]-v[0]*qg)*b+u[i+2] {
			qg--
			if v[1]*qg > (u[i]*b+u[i+1]-v[0]*qg)*b+u[i+2] {
				qg--
			}
		}
		if qg != 0 {
			// D4. Multiply and subtract.
			temp[0] = mulDigit(temp[1:], v[:width], qg, b)
			if subRange(u, i+width, temp, width, b) != 0 {
				// D6. The guess was still one too large: undo by adding
				// the divisor back. The carry out of the window's top
				// cancels the borrow and must not propagate further.
				qg--
				addRange(u, i+width, v, width-1, b)
			}
		}
		q.mant[j] = qg
	}
	return q.norm()
}
