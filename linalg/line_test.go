// Copyright 2025 Spyros Dellas. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SpyrosDellas/decimal"
)

func mustLine(tb testing.TB, a, b, k string) Line {
	tb.Helper()
	l, err := NewLine(mustVector(tb, a, b), k)
	require.NoError(tb, err)
	return l
}

func TestNewLine_Errors(t *testing.T) {
	_, err := NewLine(mustVector(t, "1", "2", "3"), "4")
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = NewLine(mustVector(t, "1", "2"), "nope")
	var pe *decimal.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestLine_Basepoint(t *testing.T) {
	// The first normal coefficient is zero, so the base point sits on the
	// second axis.
	l := mustLine(t, "0", "5", "2.5")
	bp, err := l.Basepoint()
	require.NoError(t, err)
	if s := bp.String(); s != "Vector: (0, 0.5)" {
		t.Errorf("basepoint = %s", s)
	}

	// A base point always satisfies the line equation.
	l = mustLine(t, "10.115", "7.09", "0.1")
	bp, err = l.Basepoint()
	require.NoError(t, err)
	dot, err := l.Normal().Dot(bp)
	require.NoError(t, err)
	resid := new(decimal.Decimal)
	_, err = DefaultContext.Sub(resid, dot, l.Constant())
	require.NoError(t, err)
	resid.Abs(resid)
	if resid.Cmp(decimal.New(1, -25)) >= 0 {
		t.Errorf("n·basepoint = %s, want %s", dot, l.Constant())
	}

	_, err = mustLine(t, "0", "0", "1").Basepoint()
	require.ErrorIs(t, err, ErrZeroVector)
	require.EqualError(t, err, "line has no base point: cannot normalize the zero vector")
}

func TestLine_ParallelEqual(t *testing.T) {
	l1 := mustLine(t, "10.115", "7.09", "0.1")
	l2 := mustLine(t, "10.115", "7.09", "3.025")
	l5 := mustLine(t, "1.182", "5.562", "6.744")
	l6 := mustLine(t, "1.773", "8.343", "9.525")

	tests := []struct {
		name            string
		a, b            Line
		parallel, equal bool
	}{
		{"same normal, different constant", l1, l2, true, false},
		{"same line", l1, l1, true, true},
		{"scaled normal, different line", l5, l6, true, false},
		{"scaled equation", mustLine(t, "4.046", "2.836", "1.21"),
			mustLine(t, "10.115", "7.09", "3.025"), true, true},
		{"crossing", mustLine(t, "7.204", "3.182", "8.68"),
			mustLine(t, "8.172", "4.114", "9.883"), false, false},
	}
	for _, tc := range tests {
		par, err := tc.a.IsParallelTo(tc.b)
		require.NoError(t, err, tc.name)
		if par != tc.parallel {
			t.Errorf("%s: IsParallelTo = %v, want %v", tc.name, par, tc.parallel)
		}
		eq, err := tc.a.Equal(tc.b)
		require.NoError(t, err, tc.name)
		if eq != tc.equal {
			t.Errorf("%s: Equal = %v, want %v", tc.name, eq, tc.equal)
		}
	}

	// Degenerate lines with zero normals compare by constant only.
	z1 := mustLine(t, "0", "0", "1")
	z2 := mustLine(t, "0", "0", "1.0")
	z3 := mustLine(t, "0", "0", "2")
	eq, err := z1.Equal(z2)
	require.NoError(t, err)
	if !eq {
		t.Error("0 = 1 and 0 = 1.0 should be equal")
	}
	eq, err = z1.Equal(z3)
	require.NoError(t, err)
	if eq {
		t.Error("0 = 1 and 0 = 2 should differ")
	}
	eq, err = z1.Equal(l1)
	require.NoError(t, err)
	if eq {
		t.Error("degenerate line equals a proper line")
	}
}

func TestLine_Intersect(t *testing.T) {
	l1 := mustLine(t, "10.115", "7.09", "0.1")
	l2 := mustLine(t, "10.115", "7.09", "3.025")
	l3 := mustLine(t, "7.204", "3.182", "8.68")
	l4 := mustLine(t, "8.172", "4.114", "9.883")
	l5 := mustLine(t, "1.182", "5.562", "6.744")
	l6 := mustLine(t, "1.773", "8.343", "9.525")

	res, err := l1.Intersect(l2)
	require.NoError(t, err)
	if res.Rel != Parallel {
		t.Errorf("l1 × l2 = %s, want parallel", res.Rel)
	}

	res, err = l5.Intersect(l6)
	require.NoError(t, err)
	if res.Rel != Parallel {
		t.Errorf("l5 × l6 = %s, want parallel", res.Rel)
	}

	res, err = l6.Intersect(l6)
	require.NoError(t, err)
	if res.Rel != Coincident {
		t.Errorf("l6 × l6 = %s, want coincident", res.Rel)
	}

	res, err = l3.Intersect(l4)
	require.NoError(t, err)
	if res.Rel != Intersecting {
		t.Fatalf("l3 × l4 = %s, want intersecting", res.Rel)
	}
	if x, y := quantize3(t, &res.X), quantize3(t, &res.Y); x != "1.173" || y != "0.073" {
		t.Errorf("l3 × l4 = (%s, %s), want (1.173, 0.073)", x, y)
	}

	// The point satisfies both equations.
	for _, l := range []Line{l3, l4} {
		ed := decimal.MakeErrDecimal(DefaultContext)
		lhs := new(decimal.Decimal)
		t1, t2 := new(decimal.Decimal), new(decimal.Decimal)
		ed.Mul(t1, l.Normal().At(0), &res.X)
		ed.Mul(t2, l.Normal().At(1), &res.Y)
		ed.Add(lhs, t1, t2)
		ed.Sub(lhs, lhs, l.Constant())
		ed.Abs(lhs, lhs)
		require.NoError(t, ed.Err())
		if lhs.Cmp(decimal.New(1, -25)) >= 0 {
			t.Errorf("%s: residual %s at the intersection point", l, lhs)
		}
	}
}

func TestLine_String(t *testing.T) {
	tests := []struct {
		a, b, k string
		want    string
	}{
		{"10.115", "7.09", "0.1", "10.115x_1 + 7.090x_2 = 0.100"},
		{"1.182", "-5.562", "6.744", "1.182x_1 - 5.562x_2 = 6.744"},
		{"1", "-1", "2", "x_1 - x_2 = 2"},
		{"-2", "0", "3.5", "-2x_1 = 3.500"},
		{"0", "0", "3", "0 = 3"},
		{"0", "4.6", "1.005", "4.600x_2 = 1.005"},
		{"2.00", "7", "-4", "2x_1 + 7x_2 = -4"},
	}
	for _, tc := range tests {
		l := mustLine(t, tc.a, tc.b, tc.k)
		if got := l.String(); got != tc.want {
			t.Errorf("Line(%s, %s, %s).String() = %q, want %q", tc.a, tc.b, tc.k, got, tc.want)
		}
	}
}

func TestRelationship_String(t *testing.T) {
	for rel, want := range map[Relationship]string{
		Intersecting:    "intersecting",
		Parallel:        "parallel",
		Coincident:      "coincident",
		Relationship(9): "unknown",
	} {
		if got := rel.String(); got != want {
			t.Errorf("Relationship(%d).String() = %q, want %q", rel, got, want)
		}
	}
}
