package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/SpyrosDellas/decimal"
)

var ladderSteps int

var ladderCmd = &cobra.Command{
	Use:   "ladder",
	Short: "divide 9 by 10 repeatedly in both arithmetics",
	Long: `Each division by ten is exact in decimal: only the exponent moves,
switching to scientific notation past the millionths. The float64 column
picks up binary representation error from the second step on.`,
	RunE: runLadder,
}

func init() {
	ladderCmd.Flags().IntVar(&ladderSteps, "steps", 10, "number of divisions")
	root.AddCommand(ladderCmd)
}

func runLadder(cmd *cobra.Command, args []string) error {
	ctx := newContext()
	ten := decimal.New(10, 0)
	dec := decimal.New(9, 0)
	bin := 9.0

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"step", "decimal", "float64"})
	for i := 1; i <= ladderSteps; i++ {
		if _, err := ctx.Quo(dec, dec, ten); err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
		bin /= 10
		table.Append([]string{
			strconv.Itoa(i),
			dec.String(),
			strconv.FormatFloat(bin, 'g', -1, 64),
		})
	}
	table.Render()
	return nil
}
