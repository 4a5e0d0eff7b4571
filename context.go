// Copyright 2025 Spyros Dellas. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math/big"

	"github.com/pkg/errors"
)

// A Context holds the parameters governing arithmetic: working precision,
// rounding mode, exponent range and the set of trapped conditions. There is
// no package level context; operations take theirs explicitly, so two
// libraries using different settings never interfere.
//
// A Context is safe for concurrent use as long as it is not modified.
type Context struct {
	// Precision is the maximum number of coefficient digits in operation
	// results. Zero disables rounding; operations that must bound their
	// work (Quo, Sqrt) reject a zero precision.
	Precision uint32
	// Rounding selects how results are rounded to Precision digits and
	// which result overflow delivers.
	Rounding RoundingMode
	// MaxExponent is the largest adjusted exponent (the exponent of the
	// value written with a single digit before the decimal point) a result
	// may have. Beyond it the operation overflows.
	MaxExponent int32
	// MinExponent is the smallest adjusted exponent of a normal result.
	// Below it results are subnormal and denormalize toward
	// Etiny = MinExponent - (Precision - 1).
	MinExponent int32
	// Traps is the set of conditions a raising operation escalates into an
	// *ArithmeticError.
	Traps Condition
}

const (
	// MaxExponent is the largest exponent the implementation supports.
	// Exponents near the limit make upscaling and rounding compute very
	// large powers of ten and can take seconds per operation.
	MaxExponent = 100000
	// MinExponent is the smallest supported exponent, with the same
	// performance caveat as MaxExponent.
	MinExponent = -MaxExponent
)

// DefaultTraps is the trap set of BaseContext: the systemic range flags,
// the invalid-operation group, and division by zero.
const DefaultTraps = SystemOverflow |
	SystemUnderflow |
	DivisionUndefined |
	DivisionByZero |
	DivisionImpossible |
	InvalidOperation

const (
	errZeroPrecisionStr   = "Context may not have 0 Precision for this operation"
	errExponentOutOfRange = "exponent out of range"
)

// BaseContext is a ready to use default Context: 28 digits, half-even
// rounding, the full exponent range and DefaultTraps. Copy it, directly or
// through the With helpers; do not mutate it.
var BaseContext = Context{
	Precision:   28,
	Rounding:    RoundHalfEven,
	MaxExponent: MaxExponent,
	MinExponent: MinExponent,
	Traps:       DefaultTraps,
}

// NewContext returns a Context with the given parameters.
func NewContext(precision uint32, rounding RoundingMode, minExponent, maxExponent int32, traps Condition) *Context {
	return &Context{
		Precision:   precision,
		Rounding:    rounding,
		MaxExponent: maxExponent,
		MinExponent: minExponent,
		Traps:       traps,
	}
}

// WithPrecision returns a copy of c with precision p.
func (c *Context) WithPrecision(p uint32) *Context {
	r := *c
	r.Precision = p
	return &r
}

// WithRounding returns a copy of c with rounding mode m.
func (c *Context) WithRounding(m RoundingMode) *Context {
	r := *c
	r.Rounding = m
	return &r
}

// WithTraps returns a copy of c with trap set t.
func (c *Context) WithTraps(t Condition) *Context {
	r := *c
	r.Traps = t
	return &r
}

// goError converts flags into an error based on c.Traps.
func (c *Context) goError(flags Condition) (Condition, error) {
	return flags.GoError(c.Traps)
}

// etiny returns the smallest exponent a coefficient digit can occupy.
func (c *Context) etiny() int32 {
	if c.Precision == 0 {
		return c.MinExponent
	}
	return c.MinExponent - int32(c.Precision) + 1
}

// etop returns the largest exponent of a full-precision result.
func (c *Context) etop() int32 {
	if c.Precision == 0 {
		return c.MaxExponent
	}
	return c.MaxExponent - int32(c.Precision) + 1
}

// propagateNaN sets d to the NaN result of an operation on x and y (y may
// be nil for unary operations): the first signaling operand quieted, or
// else the first quiet NaN, payload and sign preserved. A signaling operand
// raises InvalidOperation. At least one operand must be a NaN.
func propagateNaN(d, x, y *Decimal) Condition {
	var res Condition
	nan := x
	switch {
	case x.Form == NaNSignaling:
		res = InvalidOperation
	case y != nil && y.Form == NaNSignaling:
		res = InvalidOperation
		nan = y
	case x.Form == NaN:
	default:
		nan = y
	}
	d.Set(nan)
	d.Form = NaN
	return res
}

// upscale returns the coefficients of a and b scaled to their common
// smaller exponent, and that exponent. The returned big.Ints may point into
// a and b and must not be mutated. Scaling fails if the exponents differ by
// more than the system range.
func upscale(a, b *Decimal) (*big.Int, *big.Int, int32, error) {
	if a.Exponent == b.Exponent {
		return &a.Coeff, &b.Coeff, a.Exponent, nil
	}
	swapped := false
	if a.Exponent < b.Exponent {
		swapped = true
		b, a = a, b
	}
	s := int64(a.Exponent) - int64(b.Exponent)
	if s > MaxExponent {
		return nil, nil, 0, errors.New(errExponentOutOfRange)
	}
	y := new(big.Int).Mul(&a.Coeff, tableExp10(s, nil))
	x := &b.Coeff
	if swapped {
		x, y = y, x
	}
	return y, x, b.Exponent, nil
}

// Add sets d to the sum x+y.
func (c *Context) Add(d, x, y *Decimal) (Condition, error) {
	return c.add(d, x, y, false)
}

// Sub sets d to the difference x-y, computed as x + (-y).
func (c *Context) Sub(d, x, y *Decimal) (Condition, error) {
	return c.add(d, x, y, true)
}

func (c *Context) add(d, x, y *Decimal, negY bool) (Condition, error) {
	// Effective sign of the second operand.
	yn := y.Negative != negY

	if x.Form != Finite || y.Form != Finite {
		var res Condition
		switch {
		case x.IsNaN() || y.IsNaN():
			res = propagateNaN(d, x, y)
		case x.Form == Infinite && y.Form == Infinite && x.Negative != yn:
			res = InvalidOperation
			d.setNaN()
		case x.Form == Infinite:
			d.SetInf(x.Negative)
		default:
			d.SetInf(yn)
		}
		return c.goError(res)
	}

	a, b, s, err := upscale(x, y)
	if err != nil {
		return 0, errors.Wrap(err, "Add")
	}
	av := new(big.Int).Set(a)
	if x.Negative {
		av.Neg(av)
	}
	bv := new(big.Int).Set(b)
	if yn {
		bv.Neg(bv)
	}
	av.Add(av, bv)

	d.Form = Finite
	if av.Sign() == 0 {
		// An exact zero sum of opposite-sign operands is positive, except
		// under RoundFloor.
		if x.Negative == yn {
			d.Negative = x.Negative
		} else {
			d.Negative = c.Rounding == RoundFloor
		}
		d.Coeff.SetInt64(0)
	} else {
		d.Negative = av.Sign() < 0
		d.Coeff.Abs(av)
	}
	d.Exponent = s
	return c.goError(c.round(d, d))
}

// Mul sets d to the product x×y.
func (c *Context) Mul(d, x, y *Decimal) (Condition, error) {
	neg := x.Negative != y.Negative

	if x.Form != Finite || y.Form != Finite {
		var res Condition
		switch {
		case x.IsNaN() || y.IsNaN():
			res = propagateNaN(d, x, y)
		case x.Form == Infinite && y.IsZero() || y.Form == Infinite && x.IsZero():
			res = InvalidOperation
			d.setNaN()
		default:
			d.SetInf(neg)
		}
		return c.goError(res)
	}

	d.Coeff.Mul(&x.Coeff, &y.Coeff)
	d.Form = Finite
	d.Negative = neg
	res := d.setExponent(c, 0, int64(x.Exponent), int64(y.Exponent))
	res |= c.round(d, d)
	return c.goError(res)
}

// Quo sets d to the quotient x/y, rounded to exactly c.Precision digits
// unless the division terminates early at the ideal exponent
// x.Exponent - y.Exponent. c.Precision must be at least 1. Division of a
// nonzero value by zero raises DivisionByZero and yields a signed infinity;
// 0/0 raises DivisionUndefined and yields NaN.
func (c *Context) Quo(d, x, y *Decimal) (Condition, error) {
	if c.Precision == 0 {
		return 0, errors.New(errZeroPrecisionStr)
	}
	neg := x.Negative != y.Negative

	if x.Form != Finite || y.Form != Finite {
		var res Condition
		switch {
		case x.IsNaN() || y.IsNaN():
			res = propagateNaN(d, x, y)
		case x.Form == Infinite && y.Form == Infinite:
			res = InvalidOperation
			d.setNaN()
		case x.Form == Infinite:
			d.SetInf(neg)
		default:
			// Finite over infinity: an exact zero at the bottom of the
			// exponent range.
			res = Clamped
			d.SetInt64(0)
			d.Negative = neg
			d.Exponent = c.etiny()
		}
		return c.goError(res)
	}

	if y.Coeff.Sign() == 0 {
		var res Condition
		if x.Coeff.Sign() == 0 {
			res = DivisionUndefined
			d.setNaN()
		} else {
			res = DivisionByZero
			d.SetInf(neg)
		}
		return c.goError(res)
	}

	ideal := int64(x.Exponent) - int64(y.Exponent)
	if x.Coeff.Sign() == 0 {
		d.Set(decimalZero)
		d.Negative = neg
		return c.goError(d.setExponent(c, 0, ideal))
	}

	// Scale the operands so that dividend/divisor is in [1, 10), counting
	// the scaling in adjust, then produce a Precision digit quotient in one
	// integer division.
	dividend := new(big.Int).Set(&x.Coeff)
	divisor := new(big.Int).Set(&y.Coeff)
	var adjust int64
	if nx, ny := NumDigits(dividend), NumDigits(divisor); nx < ny {
		adjust = ny - nx
		dividend.Mul(dividend, tableExp10(adjust, nil))
	} else if nx > ny {
		adjust = ny - nx
		divisor.Mul(divisor, tableExp10(nx-ny, nil))
	}
	if dividend.Cmp(divisor) < 0 {
		dividend.Mul(dividend, bigTen)
		adjust++
	}

	prec := int64(c.Precision)
	dividend.Mul(dividend, tableExp10(prec-1, nil))
	rem := new(big.Int)
	q := new(big.Int)
	q.QuoRem(dividend, divisor, rem)
	exp := ideal - adjust - (prec - 1)

	var res Condition
	var diff int64
	if rem.Sign() != 0 {
		res = Inexact | Rounded
		half := rem.Mul(rem, bigTwo).Cmp(divisor)
		if c.Rounding.needsIncrement(q, neg, half, false) {
			q.Add(q, bigOne)
			if NumDigits(q) > prec {
				q.Quo(q, bigTen)
				diff = 1
			}
		}
	} else {
		// Exact: prefer the ideal exponent, shedding the zeros the scaling
		// introduced.
		var r big.Int
		tmp := new(big.Int)
		for exp < ideal {
			tmp.QuoRem(q, bigTen, &r)
			if r.Sign() != 0 {
				break
			}
			q.Set(tmp)
			exp++
		}
	}

	d.Form = Finite
	d.Negative = neg
	d.Coeff.Set(q)
	res = d.setExponent(c, res, exp, diff)
	return c.goError(res)
}

// QuoInteger sets d to the integer part of the quotient x/y, with exponent
// 0. If the result needs more than c.Precision digits, DivisionImpossible
// is raised and d is NaN.
func (c *Context) QuoInteger(d, x, y *Decimal) (Condition, error) {
	neg := x.Negative != y.Negative

	if x.Form != Finite || y.Form != Finite {
		var res Condition
		switch {
		case x.IsNaN() || y.IsNaN():
			res = propagateNaN(d, x, y)
		case x.Form == Infinite && y.Form == Infinite:
			res = InvalidOperation
			d.setNaN()
		case x.Form == Infinite:
			d.SetInf(neg)
		default:
			d.SetInt64(0)
			d.Negative = neg
		}
		return c.goError(res)
	}

	var res Condition
	if y.Coeff.Sign() == 0 {
		if x.Coeff.Sign() == 0 {
			res = DivisionUndefined
			d.setNaN()
		} else {
			res = DivisionByZero
			d.SetInf(neg)
		}
		return c.goError(res)
	}

	a, b, _, err := upscale(x, y)
	if err != nil {
		return 0, errors.Wrap(err, "QuoInteger")
	}
	q := new(big.Int).Quo(a, b)
	if prec := int64(c.Precision); prec > 0 && NumDigits(q) > prec {
		d.setNaN()
		return c.goError(DivisionImpossible)
	}
	d.Form = Finite
	d.Negative = neg
	d.Coeff.Set(q)
	d.Exponent = 0
	return c.goError(res)
}

// Rem sets d to the remainder of the integer division x/y:
// x - y×QuoInteger(x, y). The result takes the sign of x and has the
// smaller of the operand exponents; x rem 0 and Inf rem y are invalid.
func (c *Context) Rem(d, x, y *Decimal) (Condition, error) {
	if x.Form != Finite || y.Form != Finite {
		var res Condition
		switch {
		case x.IsNaN() || y.IsNaN():
			res = propagateNaN(d, x, y)
		case x.Form == Infinite:
			res = InvalidOperation
			d.setNaN()
		default:
			// Finite rem infinity leaves x unchanged.
			return c.Round(d, x)
		}
		return c.goError(res)
	}

	if y.Coeff.Sign() == 0 {
		var res Condition
		if x.Coeff.Sign() == 0 {
			res = DivisionUndefined
		} else {
			res = InvalidOperation
		}
		d.setNaN()
		return c.goError(res)
	}

	a, b, s, err := upscale(x, y)
	if err != nil {
		return 0, errors.Wrap(err, "Rem")
	}
	rem := new(big.Int)
	q := new(big.Int)
	q.QuoRem(a, b, rem)
	if prec := int64(c.Precision); prec > 0 && NumDigits(q) > prec {
		d.setNaN()
		return c.goError(DivisionImpossible)
	}
	d.Form = Finite
	d.Negative = x.Negative
	d.Coeff.Set(rem)
	d.Exponent = s
	return c.goError(c.round(d, d))
}

// Cmp sets d to the comparison of the values of x and y: -1 if x < y, 0 if
// x == y (including -0 == 0 and equal values with different exponents), and
// 1 if x > y. NaN operands propagate into d as in any arithmetic operation.
func (c *Context) Cmp(d, x, y *Decimal) (Condition, error) {
	if x.IsNaN() || y.IsNaN() {
		return c.goError(propagateNaN(d, x, y))
	}
	d.SetInt64(int64(x.Cmp(y)))
	return 0, nil
}

// Abs sets d to |x|.
func (c *Context) Abs(d, x *Decimal) (Condition, error) {
	if x.IsNaN() {
		return c.goError(propagateNaN(d, x, nil))
	}
	d.Abs(x)
	return c.Round(d, d)
}

// Neg sets d to x with its sign flipped.
func (c *Context) Neg(d, x *Decimal) (Condition, error) {
	if x.IsNaN() {
		return c.goError(propagateNaN(d, x, nil))
	}
	d.Neg(x)
	return c.Round(d, d)
}

// ScaleB sets d to x scaled by a power of ten, x × 10^s, adjusting only the
// exponent. The usual range checks apply, so scaling can overflow or
// underflow like any other operation.
func (c *Context) ScaleB(d, x *Decimal, s int32) (Condition, error) {
	if x.IsNaN() {
		return c.goError(propagateNaN(d, x, nil))
	}
	if x.Form == Infinite {
		d.Set(x)
		return 0, nil
	}
	d.Set(x)
	res := d.setExponent(c, 0, int64(d.Exponent), int64(s))
	res |= c.round(d, d)
	return c.goError(res)
}

// Quantize sets d to the value of v represented with exponent exp, rounding
// dropped digits. Quantize never raises Underflow or Subnormal; if the
// result would not fit in c.Precision digits, or exp is outside
// [Etiny, MaxExponent], it raises InvalidOperation and d is NaN. Quantizing
// an infinity is likewise invalid.
func (c *Context) Quantize(d, v *Decimal, exp int32) (Condition, error) {
	if v.IsNaN() {
		return c.goError(propagateNaN(d, v, nil))
	}
	if v.Form == Infinite || exp > c.MaxExponent || exp < c.etiny() {
		d.setNaN()
		return c.goError(InvalidOperation)
	}
	res := c.quantize(d, v, exp)
	if prec := int64(c.Precision); prec > 0 && d.NumDigits() > prec {
		d.setNaN()
		return c.goError(InvalidOperation)
	}
	return c.goError(res)
}

func (c *Context) quantize(d, v *Decimal, exp int32) Condition {
	diff := int64(exp) - int64(v.Exponent)
	d.Set(v)
	var res Condition
	if diff < 0 {
		if diff < MinExponent {
			return SystemUnderflow | Underflow
		}
		d.Coeff.Mul(&d.Coeff, tableExp10(-diff, nil))
	} else if diff > 0 {
		res = c.Rounding.shr10(&d.Coeff, d.Negative, diff)
	}
	d.Exponent = exp
	return res
}

// ToIntegral sets d to the value of x rounded to an integer, keeping x's
// sign and raising none of the rounding flags. Values that are already
// integral, and infinities, are returned unchanged.
func (c *Context) ToIntegral(d, x *Decimal) (Condition, error) {
	if x.IsNaN() {
		return c.goError(propagateNaN(d, x, nil))
	}
	if x.Form == Infinite || x.Exponent >= 0 {
		d.Set(x)
		return 0, nil
	}
	res := c.quantize(d, x, 0)
	res &^= Inexact | Rounded
	return c.goError(res)
}

// Ceil sets d to the smallest integer greater than or equal to x.
func (c *Context) Ceil(d, x *Decimal) (Condition, error) {
	if x.IsNaN() {
		return c.goError(propagateNaN(d, x, nil))
	}
	if x.Form == Infinite {
		d.Set(x)
		return 0, nil
	}
	frac := new(Decimal)
	x.Modf(d, frac)
	if frac.Sign() > 0 {
		return c.Add(d, d, decimalOne)
	}
	return c.Round(d, d)
}

// Floor sets d to the largest integer less than or equal to x.
func (c *Context) Floor(d, x *Decimal) (Condition, error) {
	if x.IsNaN() {
		return c.goError(propagateNaN(d, x, nil))
	}
	if x.Form == Infinite {
		d.Set(x)
		return 0, nil
	}
	frac := new(Decimal)
	x.Modf(d, frac)
	if frac.Sign() < 0 {
		return c.Sub(d, d, decimalOne)
	}
	return c.Round(d, d)
}

// Reduce sets d to x rounded to the context and with all trailing
// coefficient zeros removed.
func (c *Context) Reduce(d, x *Decimal) (Condition, error) {
	if x.IsNaN() {
		return c.goError(propagateNaN(d, x, nil))
	}
	res := c.round(d, x)
	d.Reduce(d)
	return c.goError(res)
}
