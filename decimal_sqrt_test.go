// Copyright 2025 Spyros Dellas. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContext_Sqrt(t *testing.T) {
	for _, test := range []struct {
		prec  uint32
		x     string
		want  string
		flags Condition
	}{
		{10, "4", "2", 0},
		{10, "100", "10", 0},
		{10, "1E+2", "1E+1", 0},
		{10, "0.04", "0.2", 0},
		{10, "1.21", "1.1", 0},
		{10, "152.2756", "12.34", 0},

		// Exact roots land on the ideal exponent floor(exp/2), keeping the
		// trailing zeros the operand's precision calls for.
		{10, "1.00", "1.0", 0},
		{10, "0.000", "0.00", 0},
		{5, "1.000000000000000000", "1.0000", 0},

		{10, "2", "1.414213562", Inexact | Rounded},
		{10, "7", "2.645751311", Inexact | Rounded},
		{28, "2", "1.414213562373095048801688724", Inexact | Rounded},
		{28, "3", "1.732050807568877293527446342", Inexact | Rounded},
		{28, "0.5", "0.7071067811865475244008443621", Inexact | Rounded},

		{10, "0", "0", 0},
		{10, "-0", "-0", 0},
		{10, "0E+3", "0E+1", 0},
		{10, "Infinity", "Infinity", 0},
		{10, "NaN123", "NaN123", 0},
	} {
		c := testCtx(test.prec)
		d := new(Decimal)
		res, err := c.Sqrt(d, mustParse(t, test.x))
		if err != nil {
			t.Fatalf("Sqrt(%s): %v", test.x, err)
		}
		if got := d.String(); got != test.want || res != test.flags {
			t.Errorf("prec %d: Sqrt(%s) = %s [%s], want %s [%s]",
				test.prec, test.x, got, res, test.want, test.flags)
		}
	}
}

func TestContext_SqrtInvalid(t *testing.T) {
	c := testCtx(10)
	d := new(Decimal)

	for _, x := range []string{"-1", "-0.0001", "-Infinity"} {
		res, err := c.Sqrt(d, mustParse(t, x))
		require.NoError(t, err)
		require.True(t, res.InvalidOperation(), "Sqrt(%s)", x)
		require.Equal(t, "NaN", d.String(), "Sqrt(%s)", x)
	}

	res, err := c.Sqrt(d, mustParse(t, "sNaN9"))
	require.NoError(t, err)
	require.True(t, res.InvalidOperation())
	require.Equal(t, "NaN9", d.String())
}

// TestContext_SqrtSquareError squares the computed root back and checks the
// error bound. If got is the root of x to p digits, got = √x + k with
// |k| < 10**(-p+1), so |got² - x| ≈ |2k√x| < 10**(-p+1) × got, ignoring the
// k² term.
func TestContext_SqrtSquareError(t *testing.T) {
	for _, x := range []string{"2", "3", "5", "7", "0.5", "0.003", "152.2756", "123456789"} {
		for _, prec := range []uint32{7, 9, 16, 19, 34} {
			c := testCtx(prec)
			got := new(Decimal)
			if _, err := c.Sqrt(got, mustParse(t, x)); err != nil {
				t.Fatalf("prec %d: Sqrt(%s): %v", prec, x, err)
			}

			// Nine guard digits keep the check itself from rounding.
			ed := MakeErrDecimal(testCtx(prec + 9))
			sq, diff, maxErr := new(Decimal), new(Decimal), new(Decimal)
			ed.Mul(sq, got, got)
			ed.Sub(diff, sq, mustParse(t, x))
			ed.Abs(diff, diff)
			ed.Mul(maxErr, New(1, -int32(prec)+1), got)
			require.NoError(t, ed.Err())

			if diff.Cmp(maxErr) >= 0 {
				t.Errorf("prec %d: Sqrt(%s) = %s: error %s exceeds %s",
					prec, x, got, diff, maxErr)
			}
		}
	}
}

func BenchmarkContext_Sqrt(b *testing.B) {
	x := New(2, 0)
	for _, prec := range []uint32{9, 19, 38, 76, 300} {
		c := BaseContext.WithPrecision(prec)
		d := new(Decimal)
		b.Run(fmt.Sprintf("%d", prec), func(b *testing.B) {
			b.ReportAllocs()
			for n := 0; n < b.N; n++ {
				c.Sqrt(d, x)
			}
		})
	}
}
