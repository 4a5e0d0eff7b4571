package decimal

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError describes a decimal literal that does not match the numeric
// grammar. Literal holds the rejected input and Reason the first problem
// the scanner found.
type ParseError struct {
	Literal string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %s", e.Literal, e.Reason)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// parse fills d's form, sign and coefficient from the literal s and returns
// the exponent, which the caller range-checks before storing. The grammar:
//
//	sign     ::= "+" | "-"
//	digits   ::= digit [digit]...
//	numeric  ::= digits ["." [digits]] | "." digits
//	exponent ::= ("e" | "E") [sign] digits
//	value    ::= [sign] (numeric [exponent] | "Infinity" | "Inf" |
//	             "NaN" [digits] | "sNaN" [digits])
//
// The special forms match case insensitively; nothing else does, and no
// whitespace or separator characters are accepted anywhere. Exponents
// beyond int64 are pinned just outside the systemic range.
func (d *Decimal) parse(s string) (int64, error) {
	orig := s
	if s == "" {
		return 0, &ParseError{Literal: orig, Reason: "empty string"}
	}
	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, &ParseError{Literal: orig, Reason: "no digits"}
	}
	if c := s[0]; !isDigit(c) && c != '.' {
		return 0, d.parseSpecial(orig, s, neg)
	}

	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := s[:i]
	var fracDigits string
	if i < len(s) && s[i] == '.' {
		i++
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		fracDigits = s[start:i]
	}
	if intDigits == "" && fracDigits == "" {
		return 0, &ParseError{Literal: orig, Reason: "no digits"}
	}

	var exp int64
	if i < len(s) {
		if s[i] != 'e' && s[i] != 'E' {
			return 0, &ParseError{Literal: orig, Reason: fmt.Sprintf("invalid character %q", s[i])}
		}
		expStr := s[i+1:]
		j := 0
		if j < len(expStr) && (expStr[j] == '+' || expStr[j] == '-') {
			j++
		}
		start := j
		for j < len(expStr) && isDigit(expStr[j]) {
			j++
		}
		if j == start || j != len(expStr) {
			return 0, &ParseError{Literal: orig, Reason: "malformed exponent"}
		}
		v, err := strconv.ParseInt(expStr, 10, 64)
		if err != nil {
			// Out of int64; the sign alone decides the failure mode.
			v = 10 * MaxExponent
			if expStr[0] == '-' {
				v = -v
			}
		}
		if v > 10*MaxExponent {
			v = 10 * MaxExponent
		} else if v < -10*MaxExponent {
			v = -10 * MaxExponent
		}
		exp = v
	}
	exp -= int64(len(fracDigits))

	if _, ok := d.Coeff.SetString(intDigits+fracDigits, 10); !ok {
		return 0, &ParseError{Literal: orig, Reason: "invalid coefficient"}
	}
	d.Form = Finite
	d.Negative = neg
	return exp, nil
}

// parseSpecial handles the Infinity and NaN spellings. A NaN may carry a
// diagnostic payload of decimal digits.
func (d *Decimal) parseSpecial(orig, s string, neg bool) error {
	if strings.EqualFold(s, "inf") || strings.EqualFold(s, "infinity") {
		d.SetInf(neg)
		return nil
	}
	form := NaN
	var payload string
	switch {
	case len(s) >= 4 && strings.EqualFold(s[:4], "snan"):
		form = NaNSignaling
		payload = s[4:]
	case len(s) >= 3 && strings.EqualFold(s[:3], "nan"):
		payload = s[3:]
	default:
		return &ParseError{Literal: orig, Reason: "unknown special form"}
	}
	for i := 0; i < len(payload); i++ {
		if !isDigit(payload[i]) {
			return &ParseError{Literal: orig, Reason: "invalid NaN payload"}
		}
	}
	d.Form = form
	d.Negative = neg
	d.Exponent = 0
	if payload == "" {
		d.Coeff.SetInt64(0)
	} else {
		d.Coeff.SetString(payload, 10)
	}
	return nil
}

// SetString sets d to the exact value of the literal s, preserving its
// representation: coefficient and exponent are stored as written, so
// "1E+1", "10" and "10.0" all parse to distinct (if equal) values. No
// rounding takes place; only the systemic exponent range is enforced.
//
// The error is a *ParseError for a malformed literal and an
// *ArithmeticError when the exponent cannot be represented.
func (d *Decimal) SetString(s string) (*Decimal, error) {
	exp, err := d.parse(s)
	if err != nil {
		return nil, err
	}
	if d.Form != Finite {
		return d, nil
	}
	adj := exp
	if d.Coeff.Sign() != 0 {
		adj += NumDigits(&d.Coeff) - 1
	}
	var res Condition
	switch {
	case exp > MaxExponent || adj > MaxExponent:
		res = SystemOverflow | Overflow
	case exp < MinExponent || adj < MinExponent:
		res = SystemUnderflow | Underflow
	}
	if res != 0 {
		_, err := res.GoError(DefaultTraps)
		return nil, err
	}
	d.Exponent = int32(exp)
	return d, nil
}

// NewFromString returns a new Decimal with the exact value of s. It is
// shorthand for new(Decimal).SetString(s).
func NewFromString(s string) (*Decimal, error) {
	return new(Decimal).SetString(s)
}

// NewFromString parses s and rounds the result to the context, raising the
// usual conditions: Inexact and Rounded for dropped digits, the range
// conditions for out of range values, InvalidOperation for a signaling
// NaN. Syntax errors are reported as *ParseError with no flags raised.
func (c *Context) NewFromString(s string) (*Decimal, Condition, error) {
	d := new(Decimal)
	exp, err := d.parse(s)
	if err != nil {
		return nil, 0, err
	}
	if d.Form != Finite {
		res, err := c.Round(d, d)
		return d, res, err
	}
	res := d.setExponent(c, 0, exp)
	res |= c.round(d, d)
	res, err = c.goError(res)
	return d, res, err
}

// stringSpecial formats the non-finite forms and reports whether it
// applied. NaN payloads print after the form name, as they parse.
func (d *Decimal) stringSpecial() (string, bool) {
	if d == nil {
		return "<nil>", true
	}
	var s string
	switch d.Form {
	case Finite:
		return "", false
	case Infinite:
		s = "Infinity"
	case NaNSignaling:
		s = "sNaN"
	default:
		s = "NaN"
	}
	if d.Form != Infinite && d.Coeff.Sign() != 0 {
		s += d.Coeff.String()
	}
	if d.Negative {
		s = "-" + s
	}
	return s, true
}

// positional lays digits out around a decimal point so that the value is
// digits × 10^exp, padding with zeros as needed.
func positional(digits string, exp int64) string {
	switch {
	case exp >= 0:
		return digits + strings.Repeat("0", int(exp))
	default:
		if p := int64(len(digits)) + exp; p > 0 {
			return digits[:p] + "." + digits[p:]
		} else {
			return "0." + strings.Repeat("0", int(-p)) + digits
		}
	}
}

func (d *Decimal) signPrefix() string {
	if d.Negative {
		return "-"
	}
	return ""
}

// ToSci returns d as a scientific string: the exponent is folded into a
// decimal point when Exponent <= 0 and the adjusted exponent is at least
// -6, and written as E±d otherwise. The conversion is exact and
// round-trips through SetString, sign of zero and trailing zeros included.
func (d *Decimal) ToSci() string {
	return d.sci('E')
}

func (d *Decimal) sci(e byte) string {
	if s, ok := d.stringSpecial(); ok {
		return s
	}
	digits := d.Coeff.String()
	adj := int64(d.Exponent) + int64(len(digits)) - 1
	if d.Exponent <= 0 && adj >= -6 {
		return d.signPrefix() + positional(digits, int64(d.Exponent))
	}
	mant := digits[:1]
	if len(digits) > 1 {
		mant += "." + digits[1:]
	}
	return fmt.Sprintf("%s%s%c%+d", d.signPrefix(), mant, e, adj)
}

// ToStandard returns d in plain positional notation, with no exponent
// marker regardless of magnitude: "1E+1" prints as "10". Large exponents
// produce correspondingly long strings. Conversion back does not in
// general recover the representation, only the value.
func (d *Decimal) ToStandard() string {
	if s, ok := d.stringSpecial(); ok {
		return s
	}
	return d.signPrefix() + positional(d.Coeff.String(), int64(d.Exponent))
}

// String renders d in scientific notation. It implements fmt.Stringer, so
// a Decimal prints reasonably under %s and %v.
func (d *Decimal) String() string {
	return d.ToSci()
}

// Text converts d under a format verb:
//
//	'e'	scientific notation, lowercase marker, always an exponent
//	'E'	like 'e' with an uppercase marker
//	'f'	plain positional notation, never an exponent
//	'g'	ToSci with a lowercase marker
//	'G'	ToSci
func (d *Decimal) Text(format byte) string {
	switch format {
	case 'e', 'E':
		if s, ok := d.stringSpecial(); ok {
			return s
		}
		digits := d.Coeff.String()
		adj := int64(d.Exponent) + int64(len(digits)) - 1
		mant := digits[:1]
		if len(digits) > 1 {
			mant += "." + digits[1:]
		}
		return fmt.Sprintf("%s%s%c%+d", d.signPrefix(), mant, format, adj)
	case 'f':
		return d.ToStandard()
	case 'g':
		return d.sci('e')
	case 'G':
		return d.ToSci()
	}
	return fmt.Sprintf("%%!%c(*decimal.Decimal=%s)", format, d.ToSci())
}

// Format implements fmt.Formatter. The verbs 'e', 'E', 'f', 'g' and 'G'
// select the corresponding Text format; 'v' and 's' print like String.
// A width pads with spaces, on the right with the '-' flag. Other flags
// and precision are not supported.
func (d *Decimal) Format(s fmt.State, verb rune) {
	var out string
	switch verb {
	case 'e', 'E', 'f', 'g', 'G':
		out = d.Text(byte(verb))
	case 's', 'v':
		out = d.ToSci()
	default:
		fmt.Fprintf(s, "%%!%c(*decimal.Decimal=%s)", verb, d.ToSci())
		return
	}
	if w, ok := s.Width(); ok && len(out) < w {
		pad := strings.Repeat(" ", w-len(out))
		if s.Flag('-') {
			out += pad
		} else {
			out = pad + out
		}
	}
	s.Write([]byte(out))
}
