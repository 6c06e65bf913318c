package fixed

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	td := []struct {
		x, y string
		base int
		want string
	}{
		{"1.5", "2.25", 10, "3.75"},
		{"99", "1", 10, "100"},
		{"0.9", "0.1", 10, "1.0"},
		{"-5", "3", 10, "-2"},
		{"5", "-3", 10, "2"},
		{"3", "-5", 10, "-2"},
		{"-2.5", "2.5", 10, "0.0"},
		{"0", "0", 10, "0"},
		{"f", "1", 16, "10"},
		{"1", "1", 2, "10"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			x, y := MustParse(d.x, d.base), MustParse(d.y, d.base)
			require.Equal(t, d.want, Add(x, y, d.base).String())
			require.Equal(t, d.want, Add(y, x, d.base).String())
		})
	}
}

func TestSub(t *testing.T) {
	td := []struct {
		x, y string
		base int
		want string
	}{
		{"5", "3", 10, "2"},
		{"3", "5", 10, "-2"},
		{"1", "0.999", 10, "0.001"},
		{"100", "1", 10, "99"},
		{"-3", "-5", 10, "2"},
		{"10", "1", 16, "f"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			x, y := MustParse(d.x, d.base), MustParse(d.y, d.base)
			require.Equal(t, d.want, Sub(x, y, d.base).String())
		})
	}
}

func TestMul(t *testing.T) {
	td := []struct {
		x, y string
		base int
		want string
	}{
		{"12", "34", 10, "408"},
		{"0.5", "0.5", 10, "0.25"},
		{"9.9", "9.9", 10, "98.01"},
		{"-3", "3", 10, "-9"},
		{"-3", "-3", 10, "9"},
		{"1000", "0", 10, "0"},
		{"ff", "ff", 16, "fe01"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			x, y := MustParse(d.x, d.base), MustParse(d.y, d.base)
			require.Equal(t, d.want, Mul(x, y, d.base).String())
		})
	}
}

func TestMod(t *testing.T) {
	td := []struct {
		x, y  string
		scale int
		want  string
	}{
		{"7", "3", 0, "1"},
		{"-7", "3", 0, "-1"},
		{"7", "-3", 0, "1"},
		{"10", "2.5", 0, "0.0"},
		{"7.25", "0.5", 0, "0.25"},
		{"1", "3", 4, "0.0001"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			x, y := MustParse(d.x, 10), MustParse(d.y, 10)
			r, err := Mod(x, y, 10, d.scale)
			require.NoError(t, err)
			require.Equal(t, d.want, r.String())
		})
	}
}
