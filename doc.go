// Copyright 2025 Spyros Dellas. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decimal implements arbitrary-precision decimal floating-point
arithmetic, following the General Decimal Arithmetic specification (which
IEEE 754-2008 decimal arithmetic is based on).

A Decimal is a sign, an arbitrary-precision integer coefficient and a
power-of-ten exponent:

	negative × coefficient × 10^exponent

alongside the special forms: the two infinities, quiet NaN and signaling
NaN, the latter two optionally carrying a diagnostic payload. The
representation is not normalized, and operations preserve it: 1E+1, 10 and
10.0 are three distinct representations of equal values, and strings round
trip exactly, trailing zeros and sign of zero included. Comparisons are by
value through Cmp (where 1E+1 and 10 are equal) or by representation
through CmpTotal (where they are not).

The zero value of a Decimal is the number 0E+0, usable without further
initialization:

	x := new(Decimal) // x is a *Decimal of value 0

Rounding and range live in a Context: a working precision, one of eight
rounding modes, the exponent bounds, and the set of trapped conditions.
Every arithmetic operation is a Context method taking an explicit
destination, so there is no package level state to race on:

	c := decimal.BaseContext.WithPrecision(9)
	d := new(decimal.Decimal)
	x, _ := decimal.NewFromString("0.1")
	y, _ := decimal.NewFromString("0.2")
	c.Add(d, x, y) // d is now 0.3, exactly

Operands may alias the destination, so sum.Add-style accumulation

	c.Add(sum, sum, x)

is fine. Operations never mutate their non-destination operands.

Every operation reports a Condition, a bit set of the signals the
computation raised: Inexact when digits were discarded and lost
information, Rounded when any digits were discarded, Overflow, Underflow,
Subnormal, Clamped, DivisionByZero and the invalid-operation group. Flags
are returned, not accumulated; callers who want sticky flags OR them
together, or use ErrDecimal, which strings many operations together with a
single error check at the end. A condition listed in Context.Traps is
escalated into an *ArithmeticError by the operation that raises it; the
rest are reported silently alongside a well-defined result (dividing a
finite nonzero value by zero yields a signed infinity, invalid operations
yield a quiet NaN).

Malformed literals are reported by SetString and friends as *ParseError,
never by panicking.

The package is modelled after cockroachdb/apd and the decNumber reference
implementation; results, including condition flags, ideal exponents and
the treatment of subnormals, agree with the General Decimal Arithmetic
test suite semantics for the implemented operations.
*/
package decimal
