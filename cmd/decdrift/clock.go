// Copyright 2025 Spyros Dellas. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SpyrosDellas/decimal"
)

var (
	clockHours    int64
	clockVelocity int64
)

var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "accumulate the fixed point error of a 0.1 s system clock",
	Long: `A 24-bit fixed point register cannot hold one tenth exactly: the
stored value falls short by about 95 nanoseconds. Counting time in such
ticks at 10 Hz, the shortfall compounds into a clock a third of a second
slow after a hundred hours of uptime, the failure mode of the Dhahran
Patriot battery in 1991. Every quantity below is computed exactly in
decimal arithmetic.`,
	RunE: runClock,
}

func init() {
	clockCmd.Flags().Int64Var(&clockHours, "hours", 100, "uptime to simulate")
	clockCmd.Flags().Int64Var(&clockVelocity, "velocity", 1676, "closing speed in m/s")
	root.AddCommand(clockCmd)
}

func runClock(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ed := decimal.MakeErrDecimal(newContext())

	// One tenth scaled by 2^23 and truncated, the way a 24-bit fixed point
	// register holds it.
	scale := decimal.New(1<<23, 0)
	tenth := decimal.New(1, -1)
	stored := new(decimal.Decimal)
	ed.Mul(stored, tenth, scale)
	ed.Floor(stored, stored)
	ed.Quo(stored, stored, scale)

	tickErr := new(decimal.Decimal)
	ed.Sub(tickErr, tenth, stored)

	ticks := decimal.New(clockHours*36000, 0)
	drift := new(decimal.Decimal)
	ed.Mul(drift, tickErr, ticks)
	ed.Reduce(drift, drift)

	dist := new(decimal.Decimal)
	ed.Mul(dist, drift, decimal.New(clockVelocity, 0))
	ed.Reduce(dist, dist)

	if err := ed.Err(); err != nil {
		return err
	}
	slog.Debug("drift accumulated", "hours", clockHours, "ticks", ticks.String(),
		"flags", ed.Flags.String())

	fmt.Fprintf(out, "stored value of 0.1:  %s\n", stored.ToStandard())
	fmt.Fprintf(out, "error per tick:       %s s\n", tickErr)
	fmt.Fprintf(out, "ticks in %d hours:    %s\n", clockHours, ticks)
	fmt.Fprintf(out, "clock drift:          %s s\n", drift.ToStandard())
	fmt.Fprintf(out, "distance traveled:    %s m at %d m/s\n", dist.ToStandard(), clockVelocity)
	return nil
}
