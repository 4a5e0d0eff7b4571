// Copyright 2025 Spyros Dellas. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestDecimal_ConcurrentReads hammers shared, never-written operands from
// many goroutines. Every goroutine works into its own destinations with its
// own Context, which is the documented way to share Decimals.
func TestDecimal_ConcurrentReads(t *testing.T) {
	x := mustParse(t, "123.456789")
	two := New(2, 0)

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			c := BaseContext.WithPrecision(25)
			ed := MakeErrDecimal(c)
			acc := new(Decimal).Set(two)
			for j := 0; j < 100; j++ {
				// Multiplying and dividing by the same exact operand comes
				// back to 2 exactly, every iteration.
				ed.Mul(acc, acc, x)
				ed.Quo(acc, acc, x)
			}
			if err := ed.Err(); err != nil {
				return err
			}
			if got := acc.String(); got != "2" {
				return errors.Errorf("got %s, want 2", got)
			}
			if got := x.String(); got != "123.456789" {
				return errors.Errorf("shared operand changed to %s", got)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestDecimal_ConcurrentParse(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		i := i
		g.Go(func() error {
			for j := 0; j < 200; j++ {
				s := fmt.Sprintf("%d.%03dE%+d", i, j, j-100)
				d, err := NewFromString(s)
				if err != nil {
					return err
				}
				back, err := NewFromString(d.String())
				if err != nil {
					return err
				}
				if back.CmpTotal(d) != 0 {
					return errors.Errorf("%s: reparse gives %s", s, back)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
