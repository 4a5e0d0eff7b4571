// Copyright 2025 Spyros Dellas. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg provides small dense vectors and 2-D lines computed in
// decimal arithmetic, so coordinates like 0.1 are held and combined exactly
// instead of as binary approximations.
package linalg

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/SpyrosDellas/decimal"
)

// Typed errors returned by vector and line operations. Wrapped variants keep
// these reachable through errors.Is.
var (
	ErrNoCoordinates       = errors.New("coordinates must be non-empty")
	ErrDimensionMismatch   = errors.New("dimension mismatch")
	ErrZeroVector          = errors.New("cannot normalize the zero vector")
	ErrNotThreeDimensional = errors.New("cross product is only defined in three dimensions")
)

// DefaultContext is the context vectors compute under when none is given:
// 30 significant digits with otherwise default settings.
var DefaultContext = decimal.BaseContext.WithPrecision(30)

// defaultTolerance bounds the comparison predicates (IsZero, IsParallelTo,
// IsOrthogonalTo, line equality).
var defaultTolerance = decimal.New(1, -15)

// A Vector is an immutable sequence of decimal coordinates together with the
// context its operations compute under. Operations return new Vectors; the
// receiver and arguments are never modified, so Vectors can be shared freely.
type Vector struct {
	ctx    *decimal.Context
	tol    decimal.Decimal
	coords []decimal.Decimal
}

// NewVector returns a Vector with the given coordinates, each parsed exactly
// as a decimal literal. A nil ctx selects DefaultContext.
func NewVector(ctx *decimal.Context, coords ...string) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, ErrNoCoordinates
	}
	if ctx == nil {
		ctx = DefaultContext
	}
	v := Vector{ctx: ctx, coords: make([]decimal.Decimal, len(coords))}
	v.tol.Set(defaultTolerance)
	for i, s := range coords {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return Vector{}, errors.Wrapf(err, "coordinate %d", i)
		}
		v.coords[i].Set(d)
	}
	return v, nil
}

// WithTolerance returns a copy of v using tol for the comparison predicates.
func (v Vector) WithTolerance(tol *decimal.Decimal) Vector {
	r := v
	r.tol = decimal.Decimal{}
	r.tol.Set(tol)
	return r
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int {
	return len(v.coords)
}

// At returns a copy of coordinate i.
func (v Vector) At(i int) *decimal.Decimal {
	return new(decimal.Decimal).Set(&v.coords[i])
}

// String renders the coordinates in scientific notation, so the
// representation each coordinate was computed at shows through.
func (v Vector) String() string {
	var b strings.Builder
	b.WriteString("Vector: (")
	for i := range v.coords {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.coords[i].String())
	}
	b.WriteString(")")
	return b.String()
}

// Equal reports coordinate-wise value equality: representations may differ,
// so (1E+1) and (10) are equal. Vectors of different dimensions are not.
func (v Vector) Equal(o Vector) bool {
	if len(v.coords) != len(o.coords) {
		return false
	}
	for i := range v.coords {
		if v.coords[i].Cmp(&o.coords[i]) != 0 {
			return false
		}
	}
	return true
}

// result returns a Vector sharing v's context and tolerance over coords.
func (v Vector) result(coords []decimal.Decimal) Vector {
	return Vector{ctx: v.ctx, tol: v.tol, coords: coords}
}

func (v Vector) sameDimension(o Vector, op string) error {
	if len(v.coords) != len(o.coords) {
		return errors.Wrapf(ErrDimensionMismatch, "%s of %d-d and %d-d vectors",
			op, len(v.coords), len(o.coords))
	}
	return nil
}

// Add returns v + o.
func (v Vector) Add(o Vector) (Vector, error) {
	if err := v.sameDimension(o, "Add"); err != nil {
		return Vector{}, err
	}
	ed := decimal.MakeErrDecimal(v.ctx)
	coords := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		ed.Add(&coords[i], &v.coords[i], &o.coords[i])
	}
	return v.result(coords), ed.Err()
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) (Vector, error) {
	if err := v.sameDimension(o, "Sub"); err != nil {
		return Vector{}, err
	}
	ed := decimal.MakeErrDecimal(v.ctx)
	coords := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		ed.Sub(&coords[i], &v.coords[i], &o.coords[i])
	}
	return v.result(coords), ed.Err()
}

// Scale returns v with every coordinate multiplied by k.
func (v Vector) Scale(k *decimal.Decimal) (Vector, error) {
	ed := decimal.MakeErrDecimal(v.ctx)
	coords := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		ed.Mul(&coords[i], &v.coords[i], k)
	}
	return v.result(coords), ed.Err()
}

// Dot returns the inner product of v and o.
func (v Vector) Dot(o Vector) (*decimal.Decimal, error) {
	if err := v.sameDimension(o, "Dot"); err != nil {
		return nil, err
	}
	ed := decimal.MakeErrDecimal(v.ctx)
	sum := new(decimal.Decimal)
	prod := new(decimal.Decimal)
	for i := range v.coords {
		ed.Mul(prod, &v.coords[i], &o.coords[i])
		ed.Add(sum, sum, prod)
	}
	return sum, ed.Err()
}

// Magnitude returns the Euclidean norm of v, computed with the decimal
// square root so the result carries the context precision.
func (v Vector) Magnitude() (*decimal.Decimal, error) {
	ed := decimal.MakeErrDecimal(v.ctx)
	sum := new(decimal.Decimal)
	sq := new(decimal.Decimal)
	for i := range v.coords {
		ed.Mul(sq, &v.coords[i], &v.coords[i])
		ed.Add(sum, sum, sq)
	}
	ed.Sqrt(sum, sum)
	return sum, ed.Err()
}

// Normalized returns the unit vector in the direction of v. The magnitude
// must be exactly nonzero; a zero vector yields ErrZeroVector.
func (v Vector) Normalized() (Vector, error) {
	m, err := v.Magnitude()
	if err != nil {
		return Vector{}, err
	}
	if m.Sign() == 0 {
		return Vector{}, ErrZeroVector
	}
	ed := decimal.MakeErrDecimal(v.ctx)
	coords := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		ed.Quo(&coords[i], &v.coords[i], m)
	}
	return v.result(coords), ed.Err()
}

// IsZero reports whether the magnitude of v is below the tolerance.
func (v Vector) IsZero() (bool, error) {
	m, err := v.Magnitude()
	if err != nil {
		return false, err
	}
	return m.Cmp(&v.tol) < 0, nil
}

// AngleWith returns the angle between v and o in radians. The cosine is
// evaluated in decimal and only the final arccosine falls back to float64.
// Either operand being the zero vector is an error wrapping ErrZeroVector.
func (v Vector) AngleWith(o Vector) (float64, error) {
	nv, err := v.Normalized()
	if err != nil {
		return 0, errors.Wrap(err, "cannot compute an angle")
	}
	no, err := o.Normalized()
	if err != nil {
		return 0, errors.Wrap(err, "cannot compute an angle")
	}
	dot, err := nv.Dot(no)
	if err != nil {
		return 0, err
	}
	f, err := dot.Float64()
	if err != nil {
		return 0, err
	}
	return math.Acos(f), nil
}

// AngleWithDegrees returns the angle between v and o in degrees.
func (v Vector) AngleWithDegrees(o Vector) (float64, error) {
	rad, err := v.AngleWith(o)
	if err != nil {
		return 0, err
	}
	return rad * 180 / math.Pi, nil
}

// IsOrthogonalTo reports whether the inner product of v and o is below the
// tolerance in magnitude.
func (v Vector) IsOrthogonalTo(o Vector) (bool, error) {
	dot, err := v.Dot(o)
	if err != nil {
		return false, err
	}
	dot.Abs(dot)
	return dot.Cmp(&v.tol) < 0, nil
}

// IsParallelTo reports whether v and o point along the same or opposite
// directions within the tolerance. The zero vector is parallel to everything.
func (v Vector) IsParallelTo(o Vector) (bool, error) {
	if vz, err := v.IsZero(); err != nil || vz {
		return vz, err
	}
	if oz, err := o.IsZero(); err != nil || oz {
		return oz, err
	}

	// | |v·o| - ‖v‖‖o‖ | < tol, the Cauchy-Schwarz equality case.
	dot, err := v.Dot(o)
	if err != nil {
		return false, err
	}
	mv, err := v.Magnitude()
	if err != nil {
		return false, err
	}
	mo, err := o.Magnitude()
	if err != nil {
		return false, err
	}
	ed := decimal.MakeErrDecimal(v.ctx)
	diff := new(decimal.Decimal)
	dot.Abs(dot)
	ed.Mul(diff, mv, mo)
	ed.Sub(diff, dot, diff)
	ed.Abs(diff, diff)
	if err := ed.Err(); err != nil {
		return false, err
	}
	return diff.Cmp(&v.tol) < 0, nil
}

// ProjectOnto returns the component of v parallel to o, (v·ô)ô. Projecting
// onto the zero vector is an error wrapping ErrZeroVector.
func (v Vector) ProjectOnto(o Vector) (Vector, error) {
	unit, err := o.Normalized()
	if err != nil {
		return Vector{}, errors.Wrap(err, "no unique parallel component")
	}
	d, err := v.Dot(unit)
	if err != nil {
		return Vector{}, err
	}
	return unit.Scale(d)
}

// OrthogonalTo returns the component of v orthogonal to o, v minus the
// projection of v onto o.
func (v Vector) OrthogonalTo(o Vector) (Vector, error) {
	par, err := v.ProjectOnto(o)
	if err != nil {
		if errors.Is(err, ErrZeroVector) {
			return Vector{}, errors.Wrap(ErrZeroVector, "no unique orthogonal component")
		}
		return Vector{}, err
	}
	return v.Sub(par)
}

// Cross returns the cross product v × o. Both vectors must be
// three-dimensional.
func (v Vector) Cross(o Vector) (Vector, error) {
	if len(v.coords) != 3 || len(o.coords) != 3 {
		return Vector{}, ErrNotThreeDimensional
	}
	ed := decimal.MakeErrDecimal(v.ctx)
	coords := make([]decimal.Decimal, 3)
	t1, t2 := new(decimal.Decimal), new(decimal.Decimal)

	// x = v1·o2 - v2·o1
	ed.Mul(t1, &v.coords[1], &o.coords[2])
	ed.Mul(t2, &v.coords[2], &o.coords[1])
	ed.Sub(&coords[0], t1, t2)

	// y = v2·o0 - v0·o2
	ed.Mul(t1, &v.coords[2], &o.coords[0])
	ed.Mul(t2, &v.coords[0], &o.coords[2])
	ed.Sub(&coords[1], t1, t2)

	// z = v0·o1 - v1·o0
	ed.Mul(t1, &v.coords[0], &o.coords[1])
	ed.Mul(t2, &v.coords[1], &o.coords[0])
	ed.Sub(&coords[2], t1, t2)

	return v.result(coords), ed.Err()
}
