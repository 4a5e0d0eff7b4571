// Copyright 2025 Spyros Dellas. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Decimals.

package decimal

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const decimalGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The representation is
// encoded exactly: form, sign, exponent and coefficient, so the decoded
// value is indistinguishable from the original.
func (d *Decimal) GobEncode() ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	sz := 2 // version + form|neg
	var coeff []byte
	if d.Form != Infinite {
		// Exponent and coefficient; infinities carry neither.
		coeff = d.Coeff.Bytes()
		sz += 4 + len(coeff)
	}
	buf := make([]byte, sz)

	buf[0] = decimalGobVersion
	b := byte(d.Form) << 1
	if d.Negative {
		b |= 1
	}
	buf[1] = b

	if d.Form != Infinite {
		binary.BigEndian.PutUint32(buf[2:], uint32(d.Exponent))
		copy(buf[6:], coeff)
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (d *Decimal) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*d = Decimal{}
		return nil
	}
	if buf[0] != decimalGobVersion {
		return errors.Errorf("Decimal.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 2 {
		return errors.New("Decimal.GobDecode: buffer too small")
	}
	form := Form(buf[1] >> 1)
	if form < Finite || form > NaN {
		return errors.Errorf("Decimal.GobDecode: invalid form %d", form)
	}
	d.Form = form
	d.Negative = buf[1]&1 != 0
	if form == Infinite {
		d.Exponent = 0
		d.Coeff.SetInt64(0)
		return nil
	}
	if len(buf) < 6 {
		return errors.New("Decimal.GobDecode: buffer too small")
	}
	d.Exponent = int32(binary.BigEndian.Uint32(buf[2:]))
	d.Coeff.SetBytes(buf[6:])
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface, rendering d
// as its scientific string. encoding/json picks this up, so a Decimal
// field marshals as a JSON string with no precision loss.
func (d *Decimal) MarshalText() ([]byte, error) {
	if d == nil {
		return []byte("<nil>"), nil
	}
	return []byte(d.ToSci()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The
// value is set exactly, with no rounding, as by SetString.
func (d *Decimal) UnmarshalText(text []byte) error {
	if _, err := d.SetString(string(text)); err != nil {
		return errors.Wrapf(err, "cannot unmarshal %q into a *decimal.Decimal", text)
	}
	return nil
}
