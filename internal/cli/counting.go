package cli

import (
	"github.com/spf13/cobra"

	"github.com/MassimoLauria/cnfgen/pkg/formula"
)

// newCountingCmd creates the counting command.
func newCountingCmd() *cobra.Command {
	var (
		opts   formulaOpts
		domain int
		part   int
	)

	cmd := &cobra.Command{
		Use:   "counting",
		Short: "Generate a counting principle formula",
		Long:  "Generate the formula claiming that a domain of --domain elements can be partitioned into classes of --part elements each.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formula.CountingPrinciple(domain, part)
			if err != nil {
				return err
			}
			return emitFormula(cmd.Context(), f, &opts)
		},
	}

	cmd.Flags().IntVarP(&domain, "domain", "M", 0, "domain size")
	cmd.Flags().IntVarP(&part, "part", "p", 0, "class size")
	addFormulaFlags(cmd, &opts)

	return cmd
}
