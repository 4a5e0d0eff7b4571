// Copyright 2025 Spyros Dellas. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/SpyrosDellas/decimal"
)

// A Line is a 2-D line in normal form, n·x = k. The direction of the line
// is orthogonal to the normal vector n.
type Line struct {
	ctx    *decimal.Context
	normal Vector
	k      decimal.Decimal
	tol    decimal.Decimal
}

// Relationship classifies how two lines relate in the plane.
type Relationship int

const (
	// Intersecting lines cross in exactly one point.
	Intersecting Relationship = iota
	// Parallel lines never meet.
	Parallel
	// Coincident lines are the same line.
	Coincident
)

func (r Relationship) String() string {
	switch r {
	case Intersecting:
		return "intersecting"
	case Parallel:
		return "parallel"
	case Coincident:
		return "coincident"
	}
	return "unknown"
}

// An Intersection is the result of intersecting two lines. X and Y are set
// only when Rel is Intersecting.
type Intersection struct {
	Rel  Relationship
	X, Y decimal.Decimal
}

// NewLine returns the line normal·x = constant. The normal vector must be
// two-dimensional; the constant is parsed exactly as a decimal literal.
func NewLine(normal Vector, constant string) (Line, error) {
	if normal.Dimension() != 2 {
		return Line{}, errors.Wrapf(ErrDimensionMismatch,
			"line normal must be 2-d, got %d-d", normal.Dimension())
	}
	k, err := decimal.NewFromString(constant)
	if err != nil {
		return Line{}, errors.Wrap(err, "constant term")
	}
	l := Line{ctx: normal.ctx, normal: normal, tol: normal.tol}
	l.k.Set(k)
	return l, nil
}

// Normal returns the normal vector of l.
func (l Line) Normal() Vector {
	return l.normal
}

// Constant returns a copy of the constant term of l.
func (l Line) Constant() *decimal.Decimal {
	return new(decimal.Decimal).Set(&l.k)
}

// firstNonzero returns the index of the first normal coefficient whose
// magnitude reaches the tolerance.
func (l Line) firstNonzero() (int, bool) {
	abs := new(decimal.Decimal)
	for i := range l.normal.coords {
		abs.Abs(&l.normal.coords[i])
		if abs.Cmp(&l.tol) >= 0 {
			return i, true
		}
	}
	return 0, false
}

// Basepoint returns a point on l, chosen on the axis of the first nonzero
// normal coefficient. A line with a zero normal vector has no base point;
// the error wraps ErrZeroVector.
func (l Line) Basepoint() (Vector, error) {
	i, ok := l.firstNonzero()
	if !ok {
		return Vector{}, errors.Wrap(ErrZeroVector, "line has no base point")
	}
	ed := decimal.MakeErrDecimal(l.ctx)
	coords := make([]decimal.Decimal, l.normal.Dimension())
	ed.Quo(&coords[i], &l.k, &l.normal.coords[i])
	return l.normal.result(coords), ed.Err()
}

// IsParallelTo reports whether l and o have parallel normal vectors.
func (l Line) IsParallelTo(o Line) (bool, error) {
	return l.normal.IsParallelTo(o.normal)
}

// Equal reports whether l and o describe the same line: they must be
// parallel and the vector connecting their base points must lie along the
// lines, orthogonal to the normal.
func (l Line) Equal(o Line) (bool, error) {
	if lz, err := l.normal.IsZero(); err != nil {
		return false, err
	} else if lz {
		oz, err := o.normal.IsZero()
		if err != nil || !oz {
			return false, err
		}
		// Both degenerate: equal when the constants agree.
		diff := new(decimal.Decimal)
		if _, err := l.ctx.Sub(diff, &l.k, &o.k); err != nil {
			return false, err
		}
		diff.Abs(diff)
		return diff.Cmp(&l.tol) < 0, nil
	} else if oz, err := o.normal.IsZero(); err != nil || oz {
		return false, err
	}

	if par, err := l.IsParallelTo(o); err != nil || !par {
		return false, err
	}

	bl, err := l.Basepoint()
	if err != nil {
		return false, err
	}
	bo, err := o.Basepoint()
	if err != nil {
		return false, err
	}
	conn, err := bl.Sub(bo)
	if err != nil {
		return false, err
	}
	if cz, err := conn.IsZero(); err != nil || cz {
		return cz, err
	}
	return conn.IsOrthogonalTo(l.normal)
}

// Intersect locates the intersection of l and o: the shared point for
// intersecting lines, or a Parallel or Coincident relationship.
func (l Line) Intersect(o Line) (Intersection, error) {
	if eq, err := l.Equal(o); err != nil {
		return Intersection{}, err
	} else if eq {
		return Intersection{Rel: Coincident}, nil
	}
	if par, err := l.IsParallelTo(o); err != nil {
		return Intersection{}, err
	} else if par {
		return Intersection{Rel: Parallel}, nil
	}

	// Cramer's rule for ax + by = c, dx + ey = f.
	a, b, c := &l.normal.coords[0], &l.normal.coords[1], &l.k
	d, e, f := &o.normal.coords[0], &o.normal.coords[1], &o.k

	ed := decimal.MakeErrDecimal(l.ctx)
	den := new(decimal.Decimal)
	t1, t2 := new(decimal.Decimal), new(decimal.Decimal)
	ed.Mul(t1, a, e)
	ed.Mul(t2, b, d)
	ed.Sub(den, t1, t2)

	res := Intersection{Rel: Intersecting}
	ed.Mul(t1, c, e)
	ed.Mul(t2, b, f)
	ed.Sub(t1, t1, t2)
	ed.Quo(&res.X, t1, den)

	ed.Mul(t1, a, f)
	ed.Mul(t2, d, c)
	ed.Sub(t1, t1, t2)
	ed.Quo(&res.Y, t1, den)

	return res, ed.Err()
}

// String renders l as an equation in x_1 and x_2 with all terms quantized
// to three decimal places, e.g. "10.115x_1 + 7.090x_2 = 0.100". Coefficients
// that quantize to zero are dropped; a zero normal reads "0 = k".
func (l Line) String() string {
	ctx := l.ctx.WithTraps(0)
	one := decimal.New(1, 0)

	var terms []string
	for i := range l.normal.coords {
		q := quantized(ctx, &l.normal.coords[i])
		if q.Sign() == 0 {
			continue
		}
		var b strings.Builder
		if q.Sign() < 0 {
			b.WriteString("-")
		} else if len(terms) > 0 {
			b.WriteString("+")
		}
		if len(terms) > 0 {
			b.WriteString(" ")
		}
		q.Abs(q)
		if q.Cmp(one) != 0 {
			b.WriteString(coefficient(q))
		}
		fmt.Fprintf(&b, "x_%d", i+1)
		terms = append(terms, b.String())
	}

	lhs := "0"
	if len(terms) > 0 {
		lhs = strings.Join(terms, " ")
	}
	return lhs + " = " + coefficient(quantized(ctx, &l.k))
}

// quantized rounds d to three decimal places.
func quantized(ctx *decimal.Context, d *decimal.Decimal) *decimal.Decimal {
	q := new(decimal.Decimal)
	ctx.Quantize(q, d, -3)
	return q
}

// coefficient renders q positionally, dropping the fraction when it is zero
// so whole coefficients read as integers.
func coefficient(q *decimal.Decimal) string {
	var integ, frac decimal.Decimal
	q.Modf(&integ, &frac)
	if frac.Sign() == 0 {
		return integ.Text('f')
	}
	return q.Text('f')
}
