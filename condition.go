// Copyright 2025 Spyros Dellas. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"strings"
)

// A Condition is a set of flags describing what happened during an
// operation. Operations return the complete set of conditions they raised;
// callers inspect individual flags with the predicate methods or escalate a
// chosen subset into errors through Context.Traps.
type Condition uint32

const (
	// SystemOverflow flags an exponent greater than the implementation can
	// handle, independent of the Context bounds. It is always treated as an
	// error.
	SystemOverflow Condition = 1 << iota
	// SystemUnderflow flags an exponent smaller than the implementation can
	// handle, independent of the Context bounds. It is always treated as an
	// error.
	SystemUnderflow
	// Overflow flags a result whose adjusted exponent, after rounding, is
	// greater than Context.MaxExponent. The result delivered depends on the
	// rounding mode. Overflow always comes with Inexact and Rounded.
	Overflow
	// Underflow flags a subnormal result that is also inexact.
	Underflow
	// Inexact flags the discarding of nonzero coefficient digits during
	// rounding.
	Inexact
	// Subnormal flags a nonzero result whose adjusted exponent, before any
	// rounding, is smaller than Context.MinExponent.
	Subnormal
	// Rounded flags that coefficient digits were discarded during rounding,
	// whether or not those digits were zero.
	Rounded
	// DivisionUndefined flags division of zero by zero. It belongs to the
	// invalid-operation group.
	DivisionUndefined
	// DivisionByZero flags division of a nonzero value by zero. The result
	// is an infinity with the exclusive-or of the operand signs.
	DivisionByZero
	// DivisionImpossible flags an integer division or remainder whose
	// integer quotient would need more than Context.Precision digits. It
	// belongs to the invalid-operation group.
	DivisionImpossible
	// InvalidOperation flags an operation with no usable result, such as any
	// operation on a signaling NaN, adding infinities of opposite signs,
	// multiplying zero by an infinity, or the square root of a negative
	// number. Unless a NaN operand supplies one, the result is a quiet NaN.
	InvalidOperation
	// Clamped flags an exponent adjusted to fit the Context bounds without
	// changing the value, as happens to zeros beyond the exponent range and
	// to subnormals that round away entirely.
	Clamped
)

// invalidGroup is the set of conditions escalated by the InvalidOperation
// trap.
const invalidGroup = InvalidOperation | DivisionUndefined | DivisionImpossible

// systemErrors is the set of conditions that are errors regardless of traps.
const systemErrors = SystemOverflow | SystemUnderflow

// Any reports whether any flag is set.
func (r Condition) Any() bool { return r != 0 }

// SystemOverflow reports whether the SystemOverflow flag is set.
func (r Condition) SystemOverflow() bool { return r&SystemOverflow != 0 }

// SystemUnderflow reports whether the SystemUnderflow flag is set.
func (r Condition) SystemUnderflow() bool { return r&SystemUnderflow != 0 }

// Overflow reports whether the Overflow flag is set.
func (r Condition) Overflow() bool { return r&Overflow != 0 }

// Underflow reports whether the Underflow flag is set.
func (r Condition) Underflow() bool { return r&Underflow != 0 }

// Inexact reports whether the Inexact flag is set.
func (r Condition) Inexact() bool { return r&Inexact != 0 }

// Subnormal reports whether the Subnormal flag is set.
func (r Condition) Subnormal() bool { return r&Subnormal != 0 }

// Rounded reports whether the Rounded flag is set.
func (r Condition) Rounded() bool { return r&Rounded != 0 }

// DivisionUndefined reports whether the DivisionUndefined flag is set.
func (r Condition) DivisionUndefined() bool { return r&DivisionUndefined != 0 }

// DivisionByZero reports whether the DivisionByZero flag is set.
func (r Condition) DivisionByZero() bool { return r&DivisionByZero != 0 }

// DivisionImpossible reports whether the DivisionImpossible flag is set.
func (r Condition) DivisionImpossible() bool { return r&DivisionImpossible != 0 }

// InvalidOperation reports whether any flag of the invalid-operation group
// (InvalidOperation, DivisionUndefined, DivisionImpossible) is set.
func (r Condition) InvalidOperation() bool { return r&invalidGroup != 0 }

// Clamped reports whether the Clamped flag is set.
func (r Condition) Clamped() bool { return r&Clamped != 0 }

var conditionNames = [...]struct {
	flag Condition
	name string
}{
	{SystemOverflow, "system overflow"},
	{SystemUnderflow, "system underflow"},
	{Overflow, "overflow"},
	{Underflow, "underflow"},
	{Inexact, "inexact"},
	{Subnormal, "subnormal"},
	{Rounded, "rounded"},
	{DivisionUndefined, "division undefined"},
	{DivisionByZero, "division by zero"},
	{DivisionImpossible, "division impossible"},
	{InvalidOperation, "invalid operation"},
	{Clamped, "clamped"},
}

// String returns the raised flags as a comma separated list.
func (r Condition) String() string {
	var b strings.Builder
	for _, cn := range conditionNames {
		if r&cn.flag == 0 {
			continue
		}
		r &^= cn.flag
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(cn.name)
	}
	if r != 0 {
		// Leftover bits have no name. Report them so they are not silently
		// dropped.
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString("unknown condition")
	}
	return b.String()
}

// GoError converts r into an *ArithmeticError if it intersects traps. The
// systemic flags (SystemOverflow, SystemUnderflow) are errors regardless of
// traps, and the InvalidOperation trap covers the whole invalid-operation
// group. GoError returns r unchanged alongside the error, so untrapped flags
// remain observable.
func (r Condition) GoError(traps Condition) (Condition, error) {
	t := traps | systemErrors
	if t&InvalidOperation != 0 {
		t |= invalidGroup
	}
	if trapped := r & t; trapped != 0 {
		return r, &ArithmeticError{Flags: trapped}
	}
	return r, nil
}

// An ArithmeticError is the error returned by operations that raise a
// trapped condition. Flags holds the trapped subset of the raised
// conditions.
type ArithmeticError struct {
	Flags Condition
}

func (e *ArithmeticError) Error() string {
	return e.Flags.String()
}
