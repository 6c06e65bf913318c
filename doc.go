/*
Package fixed implements arbitrary-precision fixed-point arithmetic over
digit strings in a caller-chosen base.

A Num is a sign, a most-significant-first sequence of digits, and a count
of integer-part digits; the remaining digits are the fractional part.
There is no fixed bit width and no binary representation: every operation
works digit by digit in the base it is given, which need not be a
machine-friendly value (any base from 2 through MaxBase is accepted, and
bases up to 36 have a textual form).

Values are built with Parse or MustParse and rendered with String:

	x := fixed.MustParse("1000", 10)
	y := fixed.MustParse("3", 10)
	q, err := fixed.Div(x, y, 10, 4) // 333.3333, err == nil

Operations are package-level functions taking their operands, the base,
and, where a result scale is not implied by the operands, the number of
fractional digits to produce. Operands are never mutated; results are
fresh values in canonical form (no leading zero digits beyond the first,
zero is non-negative). Fractional digits are never trimmed: a quotient
requested at scale 4 carries exactly 4 fractional digits, zeros included.

Division is the heart of the package: an implementation of Knuth's
Algorithm D over decimal (or arbitrary-base) fixed-point numbers, with
the quotient truncated toward zero at the requested scale. It is the only
operation with an input error (a zero divisor); everything else is total.
The remainder is deliberately not produced by Div; Mod recovers it as
x - y*(x/y).

All operations are pure functions without shared state and may be called
concurrently on independent values.
*/
package fixed
