package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SpyrosDellas/decimal"
)

var equalityCmd = &cobra.Command{
	Use:   "equality",
	Short: "add 0.1 and 0.2, compare against 0.3",
	Long: `In float64 the literals 0.1, 0.2 and 0.3 stand for nearby binary
fractions, and the sum of the first two is not the third. The same
calculation in decimal is exact.`,
	RunE: runEquality,
}

func init() { root.AddCommand(equalityCmd) }

func runEquality(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	b := 0.1 + 0.2
	fmt.Fprintf(out, "float64  0.1 + 0.2 = %.17g  (== 0.3: %t)\n", b, b == 0.3)

	ed := decimal.MakeErrDecimal(newContext())
	sum := new(decimal.Decimal)
	ed.Add(sum, decimal.New(1, -1), decimal.New(2, -1))
	if err := ed.Err(); err != nil {
		return err
	}
	fmt.Fprintf(out, "decimal  0.1 + 0.2 = %-19s  (== 0.3: %t)\n",
		sum, sum.Cmp(decimal.New(3, -1)) == 0)
	return nil
}
