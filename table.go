package decimal

import (
	"math"
	"math/big"
)

// Converting a binary bit length to a decimal digit count uses the fact that
// a number of r bits (no leading zeros) spans at most two possible decimal
// digit counts, k and k+1. digitsTable maps r to k together with the border
// value 10^k that separates the two counts.
const digitsTableSize = 128

var digitsTable [digitsTableSize + 1]struct {
	digits int64
	border big.Int
}

const digitsPerBit = math.Ln10 / math.Ln2

func init() {
	v := big.NewInt(1)
	e := new(big.Int)
	for i := 1; i <= digitsTableSize; i++ {
		if i > 1 {
			v.Lsh(v, 1)
		}
		t := &digitsTable[i]
		t.digits = int64(len(v.String()))
		t.border.Exp(bigTen, e.SetInt64(t.digits), nil)
	}
}

// NumDigits returns the number of decimal digits of d's coefficient.
func (d *Decimal) NumDigits() int64 {
	return NumDigits(&d.Coeff)
}

// NumDigits returns the number of decimal digits of b. A zero value has one
// digit.
func NumDigits(b *big.Int) int64 {
	bl := b.BitLen()
	if bl == 0 {
		return 1
	}
	if bl <= digitsTableSize {
		t := &digitsTable[bl]
		ab := new(big.Int).Abs(b)
		if ab.Cmp(&t.border) < 0 {
			return t.digits
		}
		return t.digits + 1
	}
	n := int64(float64(bl) / digitsPerBit)
	ab := new(big.Int).Abs(b)
	if ab.Cmp(tableExp10(n, nil)) >= 0 {
		n++
	}
	return n
}

// Powers of ten up to 10^pow10TableSize are precomputed; upscaling and
// rounding request them constantly.
const pow10TableSize = 64

var pow10Table [pow10TableSize + 1]big.Int

func init() {
	e := new(big.Int)
	for i := int64(0); i <= pow10TableSize; i++ {
		pow10Table[i].Exp(bigTen, e.SetInt64(i), nil)
	}
}

// tableExp10 returns 10^x for x >= 0, from the table when possible. If f is
// non-nil it is set to x. The returned value is shared and must not be
// mutated.
func tableExp10(x int64, f *big.Int) *big.Int {
	if f != nil {
		f.SetInt64(x)
	}
	if x <= pow10TableSize {
		return &pow10Table[x]
	}
	return new(big.Int).Exp(bigTen, big.NewInt(x), nil)
}
