package decimal

// ErrDecimal performs operations on decimals and holds the first error
// encountered: once an operation fails, later calls are skipped, so a long
// calculation needs a single error check at the end. Flags accumulate the
// conditions raised by every operation performed.
type ErrDecimal struct {
	err error
	Ctx *Context
	// Flags holds the conditions raised so far.
	Flags Condition
}

// MakeErrDecimal returns an ErrDecimal operating under ctx.
func MakeErrDecimal(ctx *Context) ErrDecimal {
	return ErrDecimal{Ctx: ctx}
}

// Err returns the first error encountered, or nil.
func (e *ErrDecimal) Err() error {
	return e.err
}

func (e *ErrDecimal) op1(d, x *Decimal, f func(d, x *Decimal) (Condition, error)) *Decimal {
	if e.err != nil {
		return d
	}
	var res Condition
	res, e.err = f(d, x)
	e.Flags |= res
	return d
}

func (e *ErrDecimal) op2(d, x, y *Decimal, f func(d, x, y *Decimal) (Condition, error)) *Decimal {
	if e.err != nil {
		return d
	}
	var res Condition
	res, e.err = f(d, x, y)
	e.Flags |= res
	return d
}

// Abs sets d to |x|.
func (e *ErrDecimal) Abs(d, x *Decimal) *Decimal { return e.op1(d, x, e.Ctx.Abs) }

// Add sets d to x + y.
func (e *ErrDecimal) Add(d, x, y *Decimal) *Decimal { return e.op2(d, x, y, e.Ctx.Add) }

// Ceil sets d to the integer ceiling of x.
func (e *ErrDecimal) Ceil(d, x *Decimal) *Decimal { return e.op1(d, x, e.Ctx.Ceil) }

// Floor sets d to the integer floor of x.
func (e *ErrDecimal) Floor(d, x *Decimal) *Decimal { return e.op1(d, x, e.Ctx.Floor) }

// Mul sets d to x × y.
func (e *ErrDecimal) Mul(d, x, y *Decimal) *Decimal { return e.op2(d, x, y, e.Ctx.Mul) }

// Neg sets d to -x.
func (e *ErrDecimal) Neg(d, x *Decimal) *Decimal { return e.op1(d, x, e.Ctx.Neg) }

// Quantize sets d to v with exponent exp.
func (e *ErrDecimal) Quantize(d, v *Decimal, exp int32) *Decimal {
	if e.err != nil {
		return d
	}
	var res Condition
	res, e.err = e.Ctx.Quantize(d, v, exp)
	e.Flags |= res
	return d
}

// Quo sets d to x / y.
func (e *ErrDecimal) Quo(d, x, y *Decimal) *Decimal { return e.op2(d, x, y, e.Ctx.Quo) }

// QuoInteger sets d to the integer part of x / y.
func (e *ErrDecimal) QuoInteger(d, x, y *Decimal) *Decimal {
	return e.op2(d, x, y, e.Ctx.QuoInteger)
}

// Reduce sets d to x with trailing zeros removed.
func (e *ErrDecimal) Reduce(d, x *Decimal) *Decimal { return e.op1(d, x, e.Ctx.Reduce) }

// Rem sets d to the remainder of x / y.
func (e *ErrDecimal) Rem(d, x, y *Decimal) *Decimal { return e.op2(d, x, y, e.Ctx.Rem) }

// Round sets d to x rounded to the context.
func (e *ErrDecimal) Round(d, x *Decimal) *Decimal { return e.op1(d, x, e.Ctx.Round) }

// ScaleB sets d to x × 10^s.
func (e *ErrDecimal) ScaleB(d, x *Decimal, s int32) *Decimal {
	if e.err != nil {
		return d
	}
	var res Condition
	res, e.err = e.Ctx.ScaleB(d, x, s)
	e.Flags |= res
	return d
}

// Sqrt sets d to the square root of x.
func (e *ErrDecimal) Sqrt(d, x *Decimal) *Decimal { return e.op1(d, x, e.Ctx.Sqrt) }

// Sub sets d to x - y.
func (e *ErrDecimal) Sub(d, x, y *Decimal) *Decimal { return e.op2(d, x, y, e.Ctx.Sub) }

// ToIntegral sets d to x rounded to an integer.
func (e *ErrDecimal) ToIntegral(d, x *Decimal) *Decimal { return e.op1(d, x, e.Ctx.ToIntegral) }

// Int64 returns x as an int64.
func (e *ErrDecimal) Int64(x *Decimal) int64 {
	if e.err != nil {
		return 0
	}
	var v int64
	v, e.err = x.Int64()
	return v
}
