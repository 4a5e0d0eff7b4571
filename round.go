package decimal

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// RoundingMode determines how the coefficient of a result is reduced to the
// Context precision, and which result an overflow delivers.
type RoundingMode uint8

const (
	// RoundHalfEven rounds to nearest; ties go to the neighbor whose last
	// digit is even. This is the default mode of BaseContext.
	RoundHalfEven RoundingMode = iota
	// RoundHalfUp rounds to nearest; ties go away from zero.
	RoundHalfUp
	// RoundHalfDown rounds to nearest; ties go toward zero.
	RoundHalfDown
	// RoundUp rounds away from zero.
	RoundUp
	// RoundDown rounds toward zero, truncating discarded digits.
	RoundDown
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundFloor rounds toward negative infinity. It is the only mode under
	// which an exact zero result of addition can be negative.
	RoundFloor
	// Round05Up rounds toward zero, except that a result ending in 0 or 5 is
	// rounded away instead. A value rounded this way can be rounded again to
	// a smaller precision in any mode without double-rounding error.
	Round05Up
)

var roundingModeNames = [...]string{
	RoundHalfEven: "RoundHalfEven",
	RoundHalfUp:   "RoundHalfUp",
	RoundHalfDown: "RoundHalfDown",
	RoundUp:       "RoundUp",
	RoundDown:     "RoundDown",
	RoundCeiling:  "RoundCeiling",
	RoundFloor:    "RoundFloor",
	Round05Up:     "Round05Up",
}

func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}
	return "RoundingMode(" + strconv.Itoa(int(m)) + ")"
}

// ParseRoundingMode returns the RoundingMode named by s, matching the mode
// names case-insensitively with or without the "Round" prefix, so both
// "RoundHalfEven" and "half-even" parse.
func ParseRoundingMode(s string) (RoundingMode, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	key = strings.TrimPrefix(key, "round")
	for m, name := range roundingModeNames {
		if strings.TrimPrefix(strings.ToLower(name), "round") == key {
			return RoundingMode(m), nil
		}
	}
	return 0, errors.Errorf("unknown rounding mode %q", s)
}

func lastDigit(b *big.Int) uint {
	var m big.Int
	return uint(m.Mod(b, bigTen).Uint64())
}

// needsIncrement reports whether a coefficient q, truncated toward zero,
// must gain one ulp to effect rounding mode m. half compares the discarded
// remainder against half an ulp (-1 below, 0 exactly half, +1 above), and
// exact reports a zero remainder. neg is the sign of the value being
// rounded.
func (m RoundingMode) needsIncrement(q *big.Int, neg bool, half int, exact bool) bool {
	if exact {
		return false
	}
	switch m {
	case RoundHalfEven:
		if half != 0 {
			return half > 0
		}
		return lastDigit(q)&1 == 1
	case RoundHalfUp:
		return half >= 0
	case RoundHalfDown:
		return half > 0
	case RoundUp:
		return true
	case RoundDown:
		return false
	case RoundCeiling:
		return !neg
	case RoundFloor:
		return neg
	case Round05Up:
		ld := lastDigit(q)
		return ld == 0 || ld == 5
	}
	return false
}

// shr10 divides coeff by 10^shift in place, rounding the quotient per m, and
// reports Rounded and Inexact. The rollover from an all-nines coefficient is
// left in place: the result may have one digit more than expected.
func (m RoundingMode) shr10(coeff *big.Int, neg bool, shift int64) Condition {
	e := tableExp10(shift, nil)
	rem := new(big.Int)
	coeff.QuoRem(coeff, e, rem)
	res := Rounded
	exact := rem.Sign() == 0
	half := -1
	if !exact {
		res |= Inexact
		half = rem.Mul(rem, bigTwo).Cmp(e)
	}
	if m.needsIncrement(coeff, neg, half, exact) {
		coeff.Add(coeff, bigOne)
	}
	return res
}

// Round rounds x to the Context precision and exponent range, storing the
// result in d. NaN operands propagate as in any other operation and
// infinities round to themselves.
func (c *Context) Round(d, x *Decimal) (Condition, error) {
	var res Condition
	if x.Form == NaN || x.Form == NaNSignaling {
		res = propagateNaN(d, x, nil)
	} else {
		res = c.round(d, x)
	}
	return c.goError(res)
}

// round rounds x into d. Non-finite values are copied unchanged; the caller
// handles NaN signaling.
func (c *Context) round(d, x *Decimal) Condition {
	d.Set(x)
	if d.Form != Finite {
		return 0
	}
	var res Condition
	var diff int64
	if prec := int64(c.Precision); prec > 0 {
		if nd := d.NumDigits(); nd > prec {
			diff = nd - prec
			res = c.Rounding.shr10(&d.Coeff, d.Negative, diff)
			if NumDigits(&d.Coeff) > prec {
				// 999... rolled over to 1000...
				d.Coeff.Quo(&d.Coeff, bigTen)
				diff++
			}
		}
	}
	return d.setExponent(c, res, int64(d.Exponent), diff)
}

// setExponent sets d's exponent to the sum of xs, enforcing the system and
// Context exponent ranges: zeros clamp, subnormals denormalize to Etiny, and
// results beyond MaxExponent overflow with a mode dependent value. res
// carries flags already raised for this result; setExponent returns it
// augmented with whatever the exponent handling raises.
func (d *Decimal) setExponent(c *Context, res Condition, xs ...int64) Condition {
	var sum int64
	for _, v := range xs {
		if v > MaxExponent {
			return res | SystemOverflow | Overflow
		}
		if v < MinExponent {
			return res | SystemUnderflow | Underflow
		}
		sum += v
	}
	r := int32(sum)

	if d.Coeff.Sign() == 0 {
		// Zeros do not round; their exponent clamps into the representable
		// range.
		if et := c.etiny(); r < et {
			r = et
			res |= Clamped
		}
		if et := c.etop(); r > et {
			r = et
			res |= Clamped
		}
		d.Exponent = r
		return res
	}

	nd := d.NumDigits()
	adj := sum + nd - 1
	if adj > MaxExponent {
		return res | SystemOverflow | Overflow
	}
	if adj < MinExponent {
		return res | SystemUnderflow | Underflow
	}

	if adj > int64(c.MaxExponent) {
		res |= Overflow | Inexact | Rounded
		c.Rounding.overflow(d, c)
		return res
	}

	if adj < int64(c.MinExponent) {
		res |= Subnormal
		if et := c.etiny(); r < et {
			// Denormalize: raise the exponent to Etiny, dropping digits.
			res |= c.Rounding.shr10(&d.Coeff, d.Negative, int64(et)-int64(r))
			if res.Inexact() {
				res |= Underflow
			}
			if d.Coeff.Sign() == 0 {
				// The entire value rounded away.
				res |= Clamped
			}
			r = et
		}
	}

	d.Exponent = r
	return res
}

// overflow delivers the overflow result for mode m into d: an infinity when
// m rounds away from the overflowed boundary, the largest finite number in
// range otherwise. The sign of d must already be set.
func (m RoundingMode) overflow(d *Decimal, c *Context) {
	away := true
	switch m {
	case RoundDown, Round05Up:
		away = false
	case RoundCeiling:
		away = !d.Negative
	case RoundFloor:
		away = d.Negative
	}
	if away || c.Precision == 0 {
		d.SetInf(d.Negative)
		return
	}
	d.Coeff.Sub(tableExp10(int64(c.Precision), nil), bigOne)
	d.Exponent = c.MaxExponent - int32(c.Precision) + 1
}
