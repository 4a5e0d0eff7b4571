// Copyright 2025 Spyros Dellas. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// sameRepr reports representation equality, not just value equality, so a
// round-trip through an encoding must preserve exponent, sign and payload.
var sameRepr = cmp.Comparer(func(x, y Decimal) bool {
	return x.CmpTotal(&y) == 0
})

var marshTests = []string{
	"0",
	"-0",
	"0.00",
	"1E+1",
	"10",
	"-123.456",
	"1.00",
	"123456789123456789123456789.123456789",
	"9E-100000",
	"NaN",
	"-NaN",
	"sNaN42",
	"NaN10",
	"Infinity",
	"-Infinity",
}

func TestDecimal_GobRoundTrip(t *testing.T) {
	for _, s := range marshTests {
		in := mustParse(t, s)
		buf, err := in.GobEncode()
		if err != nil {
			t.Fatalf("%s: GobEncode: %v", s, err)
		}
		var out Decimal
		if err := out.GobDecode(buf); err != nil {
			t.Fatalf("%s: GobDecode: %v", s, err)
		}
		if diff := cmp.Diff(*in, out, sameRepr); diff != "" {
			t.Errorf("%s: decoded representation differs (-want +got):\n%s", s, diff)
		}
	}
}

func TestDecimal_GobStream(t *testing.T) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	for _, s := range marshTests {
		require.NoError(t, enc.Encode(mustParse(t, s)))
	}
	dec := gob.NewDecoder(&buf)
	for _, s := range marshTests {
		var d Decimal
		require.NoError(t, dec.Decode(&d))
		if diff := cmp.Diff(*mustParse(t, s), d, sameRepr); diff != "" {
			t.Errorf("%s: decoded representation differs (-want +got):\n%s", s, diff)
		}
	}
}

func TestDecimal_GobDecodeErrors(t *testing.T) {
	var d Decimal

	// An empty buffer is the encoding of a zero value.
	require.NoError(t, d.GobDecode(nil))
	require.Equal(t, "0", d.String())

	require.Error(t, d.GobDecode([]byte{99, 0}))         // unknown version
	require.Error(t, d.GobDecode([]byte{1, 9 << 1}))     // form out of range
	require.Error(t, d.GobDecode([]byte{1, 0, 0, 0, 0})) // truncated exponent
}

func TestDecimal_GobEncodeNil(t *testing.T) {
	var d *Decimal
	buf, err := d.GobEncode()
	require.NoError(t, err)
	require.Nil(t, buf)
}

func TestDecimal_JSON(t *testing.T) {
	type order struct {
		ID    int      `json:"id"`
		Price *Decimal `json:"price"`
	}

	in := order{ID: 7, Price: mustParse(t, "123.45")}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"id": 7, "price": "123.45"}`, string(b))

	var out order
	require.NoError(t, json.Unmarshal(b, &out))
	require.Zero(t, in.Price.CmpTotal(out.Price))

	// The representation survives: an exponent form stays an exponent form.
	in.Price = mustParse(t, "1E+1")
	b, err = json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"id": 7, "price": "1E+1"}`, string(b))
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, "1E+1", out.Price.String())
}

func TestDecimal_MarshalText(t *testing.T) {
	b, err := mustParse(t, "-12.340").MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-12.340", string(b))

	var nilDec *Decimal
	b, err = nilDec.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "<nil>", string(b))
}

func TestDecimal_UnmarshalTextError(t *testing.T) {
	var d Decimal
	err := d.UnmarshalText([]byte("xyz"))
	require.EqualError(t, err,
		`cannot unmarshal "xyz" into a *decimal.Decimal: parsing "xyz": unknown special form`)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "xyz", pe.Literal)
}
