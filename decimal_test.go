// Copyright 2025 Spyros Dellas. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(tb testing.TB, s string) *Decimal {
	tb.Helper()
	d, err := NewFromString(s)
	if err != nil {
		tb.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestDecimal_New(t *testing.T) {
	for _, test := range []struct {
		coeff int64
		exp   int32
		want  string
	}{
		{0, 0, "0"},
		{0, 2, "0E+2"},
		{5, -1, "0.5"},
		{-12, -1, "-1.2"},
		{42, 0, "42"},
		{-1, 3, "-1E+3"},
	} {
		if got := New(test.coeff, test.exp).String(); got != test.want {
			t.Errorf("New(%d, %d) = %s, want %s", test.coeff, test.exp, got, test.want)
		}
	}
}

func TestDecimal_NewWithForm(t *testing.T) {
	for _, test := range []struct {
		form Form
		neg  bool
		want string
	}{
		{Infinite, false, "Infinity"},
		{Infinite, true, "-Infinity"},
		{NaN, false, "NaN"},
		{NaNSignaling, true, "-sNaN"},
		{Finite, true, "-0"},
	} {
		if got := NewWithForm(test.form, test.neg).String(); got != test.want {
			t.Errorf("NewWithForm(%v, %t) = %s, want %s", test.form, test.neg, got, test.want)
		}
	}
}

func TestDecimal_ZeroValue(t *testing.T) {
	var d Decimal
	if !d.IsZero() || d.String() != "0" {
		t.Fatalf("zero value is %s, want 0", d.String())
	}
	if d.Sign() != 0 {
		t.Fatalf("zero value has sign %d", d.Sign())
	}
}

func TestDecimal_SetFloat64(t *testing.T) {
	for _, test := range []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{0.1, "0.1"},
		{1.5, "1.5"},
		{-42, "-42"},
		{100, "1E+2"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	} {
		d, err := new(Decimal).SetFloat64(test.f)
		if err != nil {
			t.Fatalf("SetFloat64(%v): %v", test.f, err)
		}
		if got := d.String(); got != test.want {
			t.Errorf("SetFloat64(%v) = %s, want %s", test.f, got, test.want)
		}
	}
}

func TestDecimal_Float64(t *testing.T) {
	for _, test := range []struct {
		in   string
		want float64
	}{
		{"0.1", 0.1},
		{"-2.5", -2.5},
		{"1E+2", 100},
		{"0", 0},
	} {
		got, err := mustParse(t, test.in).Float64()
		if err != nil {
			t.Fatalf("Float64(%s): %v", test.in, err)
		}
		if got != test.want {
			t.Errorf("Float64(%s) = %v, want %v", test.in, got, test.want)
		}
	}

	if f, err := mustParse(t, "Infinity").Float64(); err != nil || !math.IsInf(f, 1) {
		t.Errorf("Float64(Infinity) = %v, %v", f, err)
	}
	if f, err := mustParse(t, "NaN").Float64(); err != nil || !math.IsNaN(f) {
		t.Errorf("Float64(NaN) = %v, %v", f, err)
	}
}

func TestDecimal_Int64(t *testing.T) {
	for _, test := range []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"-0", 0},
		{"123", 123},
		{"-5", -5},
		{"12.0", 12},
		{"1E+2", 100},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
	} {
		got, err := mustParse(t, test.in).Int64()
		if err != nil {
			t.Fatalf("Int64(%s): %v", test.in, err)
		}
		if got != test.want {
			t.Errorf("Int64(%s) = %d, want %d", test.in, got, test.want)
		}
	}

	for _, in := range []string{"1.5", "9223372036854775808", "1E+19", "Infinity", "NaN"} {
		if v, err := mustParse(t, in).Int64(); err == nil {
			t.Errorf("Int64(%s) = %d, want error", in, v)
		}
	}
}

func TestDecimal_Sign(t *testing.T) {
	for _, test := range []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"-0", 0},
		{"0.00", 0},
		{"3", 1},
		{"-3", -1},
		{"Infinity", 1},
		{"-Infinity", -1},
		{"NaN", 1},
		{"-NaN", -1},
	} {
		if got := mustParse(t, test.in).Sign(); got != test.want {
			t.Errorf("Sign(%s) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestDecimal_NumDigits(t *testing.T) {
	for _, test := range []struct {
		in   string
		want int64
	}{
		{"0", 1},
		{"9", 1},
		{"10", 2},
		{"999", 3},
		{"1000", 4},
		{"1E+10", 1},
		{"123456789012345678901234567890123456789", 39},
	} {
		if got := mustParse(t, test.in).NumDigits(); got != test.want {
			t.Errorf("NumDigits(%s) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestDecimal_AdjustedExponent(t *testing.T) {
	for _, test := range []struct {
		in   string
		want int64
	}{
		{"5", 0},
		{"123.45", 2},
		{"0.001", -3},
		{"1E+10", 10},
		{"12E+10", 11},
	} {
		if got := mustParse(t, test.in).AdjustedExponent(); got != test.want {
			t.Errorf("AdjustedExponent(%s) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestDecimal_Reduce(t *testing.T) {
	for _, test := range []struct {
		in, want string
	}{
		{"10.00", "1E+1"},
		{"120", "1.2E+2"},
		{"5", "5"},
		{"0.500", "0.5"},
		{"-0.00", "-0"},
		{"0E+5", "0"},
		{"Infinity", "Infinity"},
		{"NaN12", "NaN12"},
	} {
		if got := new(Decimal).Reduce(mustParse(t, test.in)).String(); got != test.want {
			t.Errorf("Reduce(%s) = %s, want %s", test.in, got, test.want)
		}
	}

	// Reducing in place works.
	d := mustParse(t, "1.200")
	if got := d.Reduce(d).String(); got != "1.2" {
		t.Errorf("in-place Reduce = %s, want 1.2", got)
	}
}

func TestDecimal_Modf(t *testing.T) {
	for _, test := range []struct {
		in, integ, frac string
	}{
		{"12.34", "12", "0.34"},
		{"-12.34", "-12", "-0.34"},
		{"0.5", "0", "0.5"},
		{"-0.5", "-0", "-0.5"},
		{"123", "123", "0"},
		{"-123", "-123", "-0"},
		{"1E+2", "1E+2", "0"},
		{"2.00", "2", "0.00"},
		{"0", "0", "0"},
		{"Infinity", "Infinity", "0"},
		{"-Infinity", "-Infinity", "-0"},
	} {
		integ, frac := new(Decimal), new(Decimal)
		mustParse(t, test.in).Modf(integ, frac)
		if integ.String() != test.integ || frac.String() != test.frac {
			t.Errorf("Modf(%s) = %s, %s, want %s, %s",
				test.in, integ, frac, test.integ, test.frac)
		}
	}
}

func TestDecimal_ModfAliasing(t *testing.T) {
	// The destination may alias the operand.
	d := mustParse(t, "-12.34")
	frac := new(Decimal)
	d.Modf(d, frac)
	if d.String() != "-12" || frac.String() != "-0.34" {
		t.Errorf("aliased Modf = %s, %s", d, frac)
	}

	d = mustParse(t, "-12.34")
	integ := new(Decimal)
	d.Modf(integ, d)
	if integ.String() != "-12" || d.String() != "-0.34" {
		t.Errorf("aliased Modf = %s, %s", integ, d)
	}
}

func TestDecimal_NegAbs(t *testing.T) {
	x := mustParse(t, "-1.5")
	if got := new(Decimal).Neg(x).String(); got != "1.5" {
		t.Errorf("Neg(-1.5) = %s", got)
	}
	if got := new(Decimal).Abs(x).String(); got != "1.5" {
		t.Errorf("Abs(-1.5) = %s", got)
	}
	if got := new(Decimal).Neg(mustParse(t, "0")).String(); got != "-0" {
		t.Errorf("Neg(0) = %s, want -0", got)
	}
	if got := new(Decimal).Neg(mustParse(t, "Infinity")).String(); got != "-Infinity" {
		t.Errorf("Neg(Infinity) = %s", got)
	}
}

func TestDecimal_Cmp(t *testing.T) {
	for _, test := range []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"-0", "0", 0},
		{"0.00", "0E+2", 0},
		{"1E+1", "10", 0},
		{"10.0", "10", 0},
		{"2", "1", 1},
		{"-2", "1", -1},
		{"0.009", "0.01", -1},
		{"-1", "-2", 1},
		{"123456789", "123456788", 1},
		{"-Infinity", "-1E+5", -1},
		{"Infinity", "1E+5", 1},
		{"Infinity", "Infinity", 0},
		{"NaN", "Infinity", 1},
		{"-NaN", "-Infinity", -1},
		{"NaN", "NaN", 0},
		{"sNaN", "1", 1},
	} {
		if got := mustParse(t, test.x).Cmp(mustParse(t, test.y)); got != test.want {
			t.Errorf("Cmp(%s, %s) = %d, want %d", test.x, test.y, got, test.want)
		}
	}
}

func TestDecimal_CmpTotal(t *testing.T) {
	for _, test := range []struct {
		x, y string
		want int
	}{
		{"1.00", "1.0", -1},
		{"1.0", "1", -1},
		{"10", "1E+1", -1},
		{"1E+1", "10", 1},
		{"-1.0", "-1.00", -1},
		{"-0", "0", -1},
		{"0.00", "0", -1},
		{"-Infinity", "-1E+5", -1},
		{"Infinity", "NaN", -1},
		{"sNaN", "NaN", -1},
		{"NaN1", "NaN2", -1},
		{"-NaN2", "-NaN1", -1},
		{"-NaN", "-sNaN", -1},
		{"Infinity", "Infinity", 0},
		{"NaN5", "NaN5", 0},
		{"1.2", "1.2", 0},
	} {
		if got := mustParse(t, test.x).CmpTotal(mustParse(t, test.y)); got != test.want {
			t.Errorf("CmpTotal(%s, %s) = %d, want %d", test.x, test.y, got, test.want)
		}
	}
}

func TestDecimal_SetPreservesRepresentation(t *testing.T) {
	x := mustParse(t, "1.00")
	d := new(Decimal).Set(x)
	require.Equal(t, int32(-2), d.Exponent)
	require.Equal(t, "1.00", d.String())
	require.Zero(t, d.CmpTotal(x))

	// Mutating the copy leaves the original alone.
	d.Coeff.SetInt64(999)
	require.Equal(t, "1.00", x.String())
}

func BenchmarkDecimal_Cmp(b *testing.B) {
	x := mustParse(b, "123456.789")
	y := mustParse(b, "123456.7891")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Cmp(y)
	}
}

func BenchmarkDecimal_NumDigits(b *testing.B) {
	x := mustParse(b, "123456789012345678901234567890")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.NumDigits()
	}
}
