package decimal

import (
	"math"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// Form classifies a Decimal.
type Form int8

const (
	// Finite is an ordinary number, including zeros.
	Finite Form = iota
	// Infinite is a positive or negative infinity.
	Infinite
	// NaNSignaling is a signaling NaN. Using one as an operand raises
	// InvalidOperation and the result is the operand quieted to NaN.
	NaNSignaling
	// NaN is a quiet NaN. It propagates through operations, diagnostic
	// payload included.
	NaN
)

// A Decimal is an arbitrary-precision decimal floating-point number. A
// finite Decimal has the value
//
//	(-1)^sign × Coeff × 10^Exponent
//
// where Coeff is a non-negative integer. The representation itself is
// significant: 1E+1 and 10 hold the same value but remain distinguishable,
// and trailing coefficient zeros are preserved, so results carry the
// precision the computation produced. Cmp compares values, CmpTotal compares
// representations.
//
// For the NaN forms, Coeff holds the diagnostic payload (zero meaning no
// payload) and Exponent is zero.
//
// The zero value of Decimal is the finite number 0E+0, ready to use.
//
// Operations that write to a Decimal take it as their first argument, as in
// math/big. A Decimal is safe for concurrent use by multiple goroutines as
// long as none of them writes to it.
type Decimal struct {
	Form     Form
	Negative bool
	Exponent int32
	Coeff    big.Int
}

// debugDecimal enables internal consistency checks while developing.
const debugDecimal = false

func (d *Decimal) validate() {
	if !debugDecimal {
		// avoid performance bugs
		panic("validate called but debugDecimal is not set")
	}
	switch d.Form {
	case Finite:
		if d.Coeff.Sign() < 0 {
			panic("finite number with negative coefficient")
		}
	case Infinite:
		if d.Coeff.Sign() != 0 || d.Exponent != 0 {
			panic("infinity with coefficient or exponent")
		}
	case NaN, NaNSignaling:
		if d.Coeff.Sign() < 0 {
			panic("NaN with negative payload")
		}
		if d.Exponent != 0 {
			panic("NaN with exponent")
		}
	default:
		panic("unknown form")
	}
}

// New returns a finite Decimal with the given coefficient and exponent. The
// sign of coeff becomes the sign of the Decimal.
func New(coeff int64, exponent int32) *Decimal {
	return new(Decimal).SetCoefficient(coeff).SetExponent(exponent)
}

// NewWithForm returns a Decimal of the given form and sign with a zero
// coefficient: an infinity, a NaN without payload, or a signed zero for
// Finite.
func NewWithForm(form Form, negative bool) *Decimal {
	return &Decimal{Form: form, Negative: negative}
}

// Set sets d to a copy of x and returns d.
func (d *Decimal) Set(x *Decimal) *Decimal {
	if debugDecimal {
		x.validate()
	}
	if d != x {
		d.Form = x.Form
		d.Negative = x.Negative
		d.Exponent = x.Exponent
		d.Coeff.Set(&x.Coeff)
	}
	return d
}

// SetInt64 sets d to the finite number x with exponent 0 and returns d.
func (d *Decimal) SetInt64(x int64) *Decimal {
	d.SetCoefficient(x)
	d.Exponent = 0
	return d
}

// SetCoefficient sets d's coefficient, and sign, to x, marks d finite, and
// returns d. The exponent is not changed.
func (d *Decimal) SetCoefficient(x int64) *Decimal {
	d.Form = Finite
	d.Negative = x < 0
	d.Coeff.SetInt64(x)
	d.Coeff.Abs(&d.Coeff)
	return d
}

// SetExponent sets d's exponent to x and returns d.
func (d *Decimal) SetExponent(x int32) *Decimal {
	d.Exponent = x
	return d
}

// SetInf sets d to the infinity with sign given by signbit and returns d.
func (d *Decimal) SetInf(signbit bool) *Decimal {
	d.Form = Infinite
	d.Negative = signbit
	d.Coeff.SetInt64(0)
	d.Exponent = 0
	return d
}

// setNaN sets d to a quiet NaN with no payload and returns d.
func (d *Decimal) setNaN() *Decimal {
	d.Form = NaN
	d.Negative = false
	d.Coeff.SetInt64(0)
	d.Exponent = 0
	return d
}

// SetFloat64 sets d to the shortest decimal that converts back to f and
// returns d. NaN and infinite floats become the corresponding Decimal forms.
func (d *Decimal) SetFloat64(f float64) (*Decimal, error) {
	switch {
	case math.IsNaN(f):
		return d.setNaN(), nil
	case math.IsInf(f, 0):
		return d.SetInf(math.Signbit(f)), nil
	}
	return d.SetString(strconv.FormatFloat(f, 'E', -1, 64))
}

// Int64 returns the int64 value of d. An error is returned if d is not
// finite, has a nonzero fractional part, or does not fit in an int64.
func (d *Decimal) Int64() (int64, error) {
	if d.Form != Finite {
		return 0, errors.Errorf("%s is not finite", d)
	}
	integ, frac := new(Decimal), new(Decimal)
	d.Modf(integ, frac)
	if frac.Sign() != 0 {
		return 0, errors.Errorf("%s: has fractional part", d)
	}
	v := new(big.Int).Set(&integ.Coeff)
	if integ.Exponent > 0 {
		v.Mul(v, tableExp10(int64(integ.Exponent), nil))
	}
	if integ.Negative {
		v.Neg(v)
	}
	if !v.IsInt64() {
		return 0, errors.Errorf("%s: out of int64 range", d)
	}
	return v.Int64(), nil
}

// Float64 returns the float64 nearest to d. The conversion may lose
// information (see strconv.ParseFloat for the rounding and range caveats).
// NaN forms convert to a float64 NaN regardless of payload.
func (d *Decimal) Float64() (float64, error) {
	switch d.Form {
	case NaN, NaNSignaling:
		return math.NaN(), nil
	case Infinite:
		if d.Negative {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}
	return strconv.ParseFloat(d.String(), 64)
}

// Sign returns:
//
//	-1 if d <  0
//	 0 if d is ±0
//	+1 if d >  0
//
// For an infinity the sign of the infinity is returned. For the NaN forms
// the result follows the sign bit.
func (d *Decimal) Sign() int {
	if debugDecimal {
		d.validate()
	}
	if d.Form == Finite && d.Coeff.Sign() == 0 {
		return 0
	}
	if d.Negative {
		return -1
	}
	return 1
}

// IsFinite reports whether d is neither an infinity nor a NaN.
func (d *Decimal) IsFinite() bool {
	return d.Form == Finite
}

// IsInf reports whether d is +Inf or -Inf.
func (d *Decimal) IsInf() bool {
	return d.Form == Infinite
}

// IsNaN reports whether d is a NaN, quiet or signaling.
func (d *Decimal) IsNaN() bool {
	return d.Form == NaN || d.Form == NaNSignaling
}

// IsZero reports whether d is a zero of either sign.
func (d *Decimal) IsZero() bool {
	return d.Form == Finite && d.Coeff.Sign() == 0
}

// AdjustedExponent returns the exponent d would have in scientific notation
// with a single digit before the decimal point, that is
// Exponent + NumDigits - 1. The result is only meaningful for finite d.
func (d *Decimal) AdjustedExponent() int64 {
	return int64(d.Exponent) + d.NumDigits() - 1
}

// Neg sets d to x with the sign bit flipped and returns d.
func (d *Decimal) Neg(x *Decimal) *Decimal {
	d.Set(x)
	d.Negative = !d.Negative
	return d
}

// Abs sets d to x with the sign bit cleared and returns d.
func (d *Decimal) Abs(x *Decimal) *Decimal {
	d.Set(x)
	d.Negative = false
	return d
}

// Reduce sets d to x with all trailing coefficient zeros removed and returns
// d. A zero reduces to 0E+0, keeping its sign. Non-finite values are copied
// unchanged.
func (d *Decimal) Reduce(x *Decimal) *Decimal {
	d.Set(x)
	if d.Form != Finite {
		return d
	}
	if d.Coeff.Sign() == 0 {
		d.Exponent = 0
		return d
	}
	exp := int64(d.Exponent)
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(&d.Coeff, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		d.Coeff.Set(q)
		exp++
	}
	d.Exponent = int32(exp)
	return d
}

// Modf splits d into its integral and fractional parts such that
// d = integ + frac, with integ.Exponent >= 0 and frac.Exponent <= 0. Both
// parts take the sign of d. If d is not finite, integ is set to d and frac
// to a zero of the same sign.
func (d *Decimal) Modf(integ, frac *Decimal) {
	neg := d.Negative

	if d.Form != Finite {
		integ.Set(d)
		frac.SetInt64(0)
		frac.Negative = neg
		return
	}
	exp := d.Exponent

	// No fractional part.
	if exp >= 0 {
		integ.Set(d)
		frac.SetInt64(0)
		frac.Negative = neg
		return
	}
	nd := d.NumDigits()
	// No integral part.
	if -int64(exp) >= nd {
		frac.Set(d)
		integ.SetInt64(0)
		integ.Negative = neg
		return
	}

	e := tableExp10(-int64(exp), nil)
	integ.Coeff.QuoRem(&d.Coeff, e, &frac.Coeff)
	integ.Form, integ.Negative, integ.Exponent = Finite, neg, 0
	frac.Form, frac.Negative, frac.Exponent = Finite, neg, exp
}

// valueClass coarsely orders forms for Cmp: NaNs sort outside the
// infinities, finite values in between.
func (d *Decimal) valueClass() int {
	switch d.Form {
	case Finite:
		return 0
	case Infinite:
		if d.Negative {
			return -2
		}
		return 2
	}
	if d.Negative {
		return -3
	}
	return 3
}

// cmpMag compares |d| and |x|. Both operands must be finite.
func (d *Decimal) cmpMag(x *Decimal) int {
	ds, xs := d.Coeff.Sign(), x.Coeff.Sign()
	if ds == 0 || xs == 0 {
		switch {
		case ds == xs:
			return 0
		case ds == 0:
			return -1
		}
		return 1
	}

	// Compare adjusted exponents before aligning coefficients; alignment
	// can be arbitrarily expensive for wildly different exponents.
	dn := d.NumDigits() + int64(d.Exponent)
	xn := x.NumDigits() + int64(x.Exponent)
	if dn != xn {
		if dn < xn {
			return -1
		}
		return 1
	}

	db, xb := &d.Coeff, &x.Coeff
	diff := int64(d.Exponent) - int64(x.Exponent)
	if diff > 0 {
		db = new(big.Int).Mul(db, tableExp10(diff, nil))
	} else if diff < 0 {
		xb = new(big.Int).Mul(xb, tableExp10(-diff, nil))
	}
	return db.Cmp(xb)
}

// Cmp compares the values of d and x and returns:
//
//	-1 if d <  x
//	 0 if d == x
//	+1 if d >  x
//
// Representations do not matter: 1E+1 and 10 compare equal, and -0 equals 0.
// Infinities compare beyond all finite values. NaNs, which have no value,
// sort below -Inf when negative and above +Inf otherwise; use Context.Cmp to
// surface them as InvalidOperation instead, or CmpTotal for the full
// representation order.
func (d *Decimal) Cmp(x *Decimal) int {
	dc, xc := d.valueClass(), x.valueClass()
	if dc != xc {
		if dc < xc {
			return -1
		}
		return 1
	}
	if dc != 0 {
		// Same side infinities or NaNs.
		return 0
	}

	ds, xs := d.Sign(), x.Sign()
	switch {
	case ds < xs:
		return -1
	case ds > xs:
		return 1
	case ds == 0:
		return 0
	}
	r := d.cmpMag(x)
	if ds < 0 {
		r = -r
	}
	return r
}

// totalRank orders forms for CmpTotal.
func (d *Decimal) totalRank() int {
	var r int
	switch d.Form {
	case Finite:
		r = 1
	case Infinite:
		r = 2
	case NaNSignaling:
		r = 3
	case NaN:
		r = 4
	}
	if d.Negative {
		return -r
	}
	return r
}

// CmpTotal compares the representations of d and x under the total ordering
//
//	-NaN < -sNaN < -Inf < negatives < -0 < 0 < positives < +Inf < +sNaN < +NaN
//
// and returns -1, 0 or +1. Decimals with equal values order by exponent: for
// positive values the smaller exponent comes first, so 1.00 < 1.0 < 1 < 1E+1;
// the order reverses for negative values. NaNs with the same form and sign
// order by payload.
func (d *Decimal) CmpTotal(x *Decimal) int {
	dr, xr := d.totalRank(), x.totalRank()
	if dr != xr {
		if dr < xr {
			return -1
		}
		return 1
	}

	var r int
	switch d.Form {
	case Infinite:
		return 0
	case NaN, NaNSignaling:
		r = d.Coeff.Cmp(&x.Coeff)
	default:
		r = d.cmpMag(x)
		if r == 0 {
			switch {
			case d.Exponent < x.Exponent:
				r = -1
			case d.Exponent > x.Exponent:
				r = 1
			}
		}
	}
	if d.Negative {
		r = -r
	}
	return r
}
