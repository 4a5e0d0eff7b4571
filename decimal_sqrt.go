// Copyright 2025 Spyros Dellas. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math/big"

	"github.com/pkg/errors"
)

// Sqrt sets d to the square root of x, correctly rounded to c.Precision
// digits. Rounding is always half-even, whatever c.Rounding says, as IEEE
// 754 requires for square root. c.Precision must be at least 1.
//
// The algorithm follows Hull and Abrham, "Properly rounded variable
// precision square root", ACM TOMS 11(3), 1985: a seeded Newton iteration
// on a working precision a few digits above the target, a half-ulp
// correction, then a single final rounding. Exact roots take the ideal
// exponent floor(x.Exponent/2), padded or trimmed within the precision
// limit, so Sqrt of "1.00" is "1.0".
func (c *Context) Sqrt(d, x *Decimal) (Condition, error) {
	if c.Precision == 0 {
		return 0, errors.New(errZeroPrecisionStr)
	}
	if x.IsNaN() {
		return c.goError(propagateNaN(d, x, nil))
	}
	// The root of -0 is -0; all other negative operands are invalid.
	if x.Negative && !x.IsZero() {
		d.setNaN()
		return c.goError(InvalidOperation)
	}
	if x.Form == Infinite {
		d.Set(x)
		return 0, nil
	}
	if x.IsZero() {
		d.Set(x)
		d.Exponent = int32(halfFloor(int64(x.Exponent)))
		return 0, nil
	}

	// Work on f in [0.1, 1) with x = f × 10^e, at a working precision a
	// few digits above both the target and the operand width.
	workp := c.Precision + 1
	if nd := uint32(x.NumDigits()); workp < nd {
		workp = nd
	}
	if workp < 7 {
		workp = 7
	}

	nd := x.NumDigits()
	e := nd + int64(x.Exponent)
	f := new(Decimal).Set(x)
	f.Exponent = int32(-nd)

	nc := BaseContext.WithPrecision(workp)
	ed := MakeErrDecimal(nc)

	// Linear first guess for the root of f, chosen by the parity of e so
	// that e ends up even and halves exactly.
	approx := new(Decimal)
	if e%2 == 0 {
		ed.Mul(approx, New(819, -3), f)
		ed.Add(approx, approx, New(259, -3))
	} else {
		f.Exponent--
		e++
		ed.Mul(approx, New(259, -2), f)
		ed.Add(approx, approx, New(819, -4))
	}

	// Newton: approx = (approx + f/approx) / 2, precision doubling each
	// step. The extra digits over workp absorb the iteration error.
	p := uint32(3)
	maxp := workp + 5
	tmp := new(Decimal)
	for p < maxp {
		p = 2*p - 2
		if p > maxp {
			p = maxp
		}
		nc.Precision = p
		ed.Quo(tmp, f, approx)
		ed.Add(tmp, tmp, approx)
		ed.Mul(approx, tmp, decimalHalf)
	}

	// approx is within one ulp of the root of f. Nudge it onto the
	// correctly rounded workp-digit value by comparing the squares of
	// approx ± half an ulp against f.
	nc.Precision = workp + 2
	halfUlp := New(5, -int32(workp)-1)
	ulp := New(1, -int32(workp))
	sq := new(Decimal)
	ed.Sub(tmp, approx, halfUlp)
	ed.Mul(sq, tmp, tmp)
	if ed.Err() == nil && sq.Cmp(f) >= 0 {
		ed.Sub(approx, approx, ulp)
	} else {
		ed.Add(tmp, approx, halfUlp)
		ed.Mul(sq, tmp, tmp)
		if ed.Err() == nil && sq.Cmp(f) <= 0 {
			ed.Add(approx, approx, ulp)
		}
	}
	if err := ed.Err(); err != nil {
		return 0, err
	}

	// Exactness is decided on exact coefficient arithmetic, not in the
	// working context.
	sq.Coeff.Mul(&approx.Coeff, &approx.Coeff)
	sq.Exponent = approx.Exponent * 2
	sq.Form = Finite
	sq.Negative = false
	exact := sq.Cmp(f) == 0

	nc.Precision = c.Precision
	nc.Rounding = RoundHalfEven
	res := nc.round(d, approx)
	final := int64(d.Exponent) + e/2

	// The root may be exact yet too wide for the target precision; the
	// delivered result is then inexact.
	if exact && !res.Inexact() {
		res &^= Inexact | Rounded
		ideal := halfFloor(int64(x.Exponent))
		if final > ideal {
			pad := final - ideal
			if n := d.NumDigits(); n+pad > int64(c.Precision) {
				pad = int64(c.Precision) - n
			}
			if pad > 0 {
				d.Coeff.Mul(&d.Coeff, tableExp10(pad, nil))
				final -= pad
			}
		} else {
			var r big.Int
			q := new(big.Int)
			for final < ideal {
				q.QuoRem(&d.Coeff, bigTen, &r)
				if r.Sign() != 0 {
					break
				}
				d.Coeff.Set(q)
				final++
			}
		}
	} else {
		res |= Inexact | Rounded
	}

	res = d.setExponent(c, res, final)
	return c.goError(res)
}

// halfFloor returns floor(e/2) for either sign of e.
func halfFloor(e int64) int64 {
	if e < 0 {
		return (e - 1) / 2
	}
	return e / 2
}
