// Copyright 2025 Spyros Dellas. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Decdrift runs small numeric demonstrations twice, once in float64 and once
// in arbitrary precision decimal, and shows where the two arithmetics drift
// apart.
package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/SpyrosDellas/decimal"
)

// roundingFlag selects a rounding mode by name on the command line.
type roundingFlag struct {
	mode decimal.RoundingMode
}

var _ pflag.Value = (*roundingFlag)(nil)

func (f *roundingFlag) String() string { return f.mode.String() }

func (f *roundingFlag) Set(s string) error {
	m, err := decimal.ParseRoundingMode(s)
	if err != nil {
		return err
	}
	f.mode = m
	return nil
}

func (f *roundingFlag) Type() string { return "mode" }

var (
	precision uint32
	rounding  roundingFlag
	logLevel  string
)

var root = &cobra.Command{
	Use:   "decdrift",
	Short: "contrast binary floating point with decimal arithmetic",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return err
		}
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level: level,
		})))
		return nil
	},
	SilenceUsage: true,
}

func init() {
	pf := root.PersistentFlags()
	pf.Uint32Var(&precision, "precision", 28, "significant digits carried by decimal operations")
	pf.Var(&rounding, "rounding", "rounding mode (half-even, half-up, half-down, up, down, ceiling, floor, 05up)")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// newContext builds the decimal context selected by the global flags.
func newContext() *decimal.Context {
	return decimal.BaseContext.WithPrecision(precision).WithRounding(rounding.mode)
}

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
