package fixed

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulDigit(t *testing.T) {
	td := []struct {
		x []Word
		d Word
		b Word
		z []Word
		c Word
	}{
		{[]Word{1, 2, 3}, 0, 10, []Word{0, 0, 0}, 0},
		{[]Word{1, 2, 3}, 1, 10, []Word{1, 2, 3}, 0},
		{[]Word{1, 2, 3}, 2, 10, []Word{2, 4, 6}, 0},
		{[]Word{9, 9}, 9, 10, []Word{9, 1}, 8},
		{[]Word{0, 9, 9}, 9, 10, []Word{8, 9, 1}, 0}, // guard slot absorbs the carry
		{[]Word{15, 15}, 15, 16, []Word{15, 1}, 14},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := make([]Word, len(d.x))
			c := mulDigit(z, d.x, d.d, d.b)
			require.Equal(t, d.z, z)
			require.Equal(t, d.c, c)
		})
	}
}

func TestMulDigitInPlace(t *testing.T) {
	z := []Word{0, 4, 7}
	c := mulDigit(z, z, 6, 10)
	require.Equal(t, []Word{2, 8, 2}, z) // 047*6 = 282
	require.Equal(t, Word(0), c)
}

func TestSubRange(t *testing.T) {
	td := []struct {
		u      []Word
		uEnd   int
		v      []Word
		vEnd   int
		want   []Word
		borrow Word
	}{
		// 53 - 14 = 39 inside a wider buffer
		{[]Word{9, 5, 3, 2}, 2, []Word{1, 4}, 1, []Word{9, 3, 9, 2}, 0},
		// single-digit window goes negative
		{[]Word{0, 1, 2, 3}, 1, []Word{9}, 0, []Word{0, 2, 2, 3}, 1},
		// borrow chains through the window
		{[]Word{1, 0, 0}, 2, []Word{0, 0, 1}, 2, []Word{0, 9, 9}, 0},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			bw := subRange(d.u, d.uEnd, d.v, d.vEnd, 10)
			require.Equal(t, d.want, d.u)
			require.Equal(t, d.borrow, bw)
		})
	}
}

func TestAddRange(t *testing.T) {
	td := []struct {
		u     []Word
		uEnd  int
		v     []Word
		vEnd  int
		want  []Word
		carry Word
	}{
		{[]Word{9, 5, 3, 2}, 2, []Word{1, 4}, 1, []Word{9, 6, 7, 2}, 0},
		// carry out of the window's top digit is returned, not written
		{[]Word{9, 9}, 1, []Word{1}, 0, []Word{9, 0}, 1},
		{[]Word{1, 9, 9}, 2, []Word{0, 0, 1}, 2, []Word{2, 0, 0}, 0},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c := addRange(d.u, d.uEnd, d.v, d.vEnd, 10)
			require.Equal(t, d.want, d.u)
			require.Equal(t, d.carry, c)
		})
	}
}

func TestMulCore(t *testing.T) {
	td := []struct {
		x, y []Word
		b    Word
		z    []Word
	}{
		{[]Word{1, 2}, []Word{3, 4}, 10, []Word{0, 4, 0, 8}},
		{[]Word{9, 9}, []Word{9, 9}, 10, []Word{9, 8, 0, 1}},
		{[]Word{0}, []Word{5}, 10, []Word{0, 0}},
		// 48*48 = 2304 = 6501 in base 7
		{[]Word{6, 6}, []Word{6, 6}, 7, []Word{6, 5, 0, 1}},
		// 5*5 = 25 = 0x19
		{[]Word{5}, []Word{5}, 16, []Word{1, 9}},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, d.z, mulCore(d.x, d.y, d.b))
		})
	}
}
