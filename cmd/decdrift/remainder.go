package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/SpyrosDellas/decimal"
)

var remainderCmd = &cobra.Command{
	Use:   "remainder",
	Short: "take 1.00 rem 0.10 in both arithmetics",
	Long: `One is an exact whole multiple of one tenth, so the decimal remainder
is exactly zero. math.Mod divides the binary approximations of the same
values and leaves nearly a full tenth behind.`,
	RunE: runRemainder,
}

func init() { root.AddCommand(remainderCmd) }

func runRemainder(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "float64  math.Mod(1, 0.1) = %.17g\n", math.Mod(1, 0.1))

	rem := new(decimal.Decimal)
	if _, err := newContext().Rem(rem, decimal.New(100, -2), decimal.New(10, -2)); err != nil {
		return err
	}
	fmt.Fprintf(out, "decimal  1.00 rem 0.10    = %s\n", rem)
	return nil
}
