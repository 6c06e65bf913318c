// Command arbdiv divides two fixed-point numbers, or cross-checks the
// division engine against a reference decimal implementation on randomly
// generated operands.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/shopspring/decimal"

	"github.com/arbmath/fixed"
)

var (
	app       = kingpin.New("arbdiv", "Arbitrary-precision fixed-point division driver.")
	base      = app.Flag("base", "Digit base of the operands.").Default("10").Int()
	scale     = app.Flag("scale", "Fractional digits in the quotient.").Default("20").Int()
	trials    = app.Flag("random", "Run N random differential trials instead of dividing the operands.").Short('n').Default("0").Int()
	seed      = app.Flag("seed", "Seed for the random operand generator.").Default("1").Int64()
	maxDigits = app.Flag("max-digits", "Largest operand length generated in random mode.").Default("40").Int()
	operands  = app.Arg("operands", "Dividend and divisor.").Strings()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if *base < 2 || *base > 36 {
		app.Fatalf("base %d has no textual form (want 2..36)", *base)
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	if *trials > 0 {
		os.Exit(runRandom(logger))
	}

	if len(*operands) != 2 {
		app.Fatalf("expected a dividend and a divisor, got %d operands", len(*operands))
	}
	x, err := fixed.Parse((*operands)[0], *base)
	if err != nil {
		app.Fatalf("%v", err)
	}
	y, err := fixed.Parse((*operands)[1], *base)
	if err != nil {
		app.Fatalf("%v", err)
	}
	q, err := fixed.Div(x, y, *base, *scale)
	if err != nil {
		app.Fatalf("%v", err)
	}
	fmt.Println(q)
}

func runRandom(logger log.Logger) int {
	rng := rand.New(rand.NewSource(*seed))
	failures := 0
	for i := 0; i < *trials; i++ {
		xs := randOperand(rng)
		ys := randOperand(rng)
		x := fixed.MustParse(xs, *base)
		y := fixed.MustParse(ys, *base)
		sc := rng.Intn(*scale + 1)

		q, err := fixed.Div(x, y, *base, sc)
		if err != nil {
			if y.IsZero() {
				continue
			}
			logger.Log("msg", "unexpected error", "dividend", xs, "divisor", ys, "scale", sc, "err", err)
			failures++
			continue
		}
		if !check(q, x, y, xs, ys, sc, logger) {
			failures++
		}
	}
	logger.Log("msg", "done", "trials", *trials, "base", *base, "failures", failures)
	if failures > 0 {
		return 1
	}
	return 0
}

// check verifies a quotient: against shopspring/decimal in base 10, and
// by reconstruction (0 <= |x| - |y|*|q| < |y| in the last place) in any
// other base, where no reference implementation is available.
func check(q, x, y *fixed.Num, xs, ys string, sc int, logger log.Logger) bool {
	if *base == 10 {
		dx, err := decimal.NewFromString(xs)
		if err != nil {
			logger.Log("msg", "reference rejected operand", "operand", xs, "err", err)
			return false
		}
		dy, _ := decimal.NewFromString(ys)
		want, _ := dx.QuoRem(dy, int32(sc))
		got, err := decimal.NewFromString(q.String())
		if err != nil || !want.Equal(got) {
			logger.Log("msg", "mismatch", "dividend", xs, "divisor", ys, "scale", sc,
				"got", q.String(), "want", want.String())
			return false
		}
		return true
	}

	xa, ya, qa := x.Abs(), y.Abs(), q.Abs()
	r := fixed.Sub(xa, fixed.Mul(ya, qa, *base), *base)
	bound := fixed.Mul(ya, unitInLastPlace(sc), *base)
	if r.Sign() < 0 || r.Cmp(bound) >= 0 {
		logger.Log("msg", "reconstruction failed", "dividend", xs, "divisor", ys, "scale", sc,
			"quotient", q.String(), "residue", r.String())
		return false
	}
	return true
}

func unitInLastPlace(sc int) *fixed.Num {
	if sc == 0 {
		return fixed.MustParse("1", *base)
	}
	return fixed.MustParse("0."+strings.Repeat("0", sc-1)+"1", *base)
}

// randOperand produces a random-length digit string, optionally signed,
// optionally with a fractional part.
func randOperand(rng *rand.Rand) string {
	var sb strings.Builder
	if rng.Intn(2) == 0 {
		sb.WriteByte('-')
	}
	writeDigits := func(n int) {
		const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
		for i := 0; i < n; i++ {
			sb.WriteByte(alphabet[rng.Intn(*base)])
		}
	}
	writeDigits(1 + rng.Intn(*maxDigits))
	if rng.Intn(2) == 0 {
		sb.WriteByte('.')
		writeDigits(1 + rng.Intn(*maxDigits))
	}
	return sb.String()
}
