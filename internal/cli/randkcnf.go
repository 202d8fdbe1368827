package cli

import (
	"github.com/spf13/cobra"

	"github.com/MassimoLauria/cnfgen/pkg/formula"
)

// newRandKCNFCmd creates the randkcnf command. The --seed flag of the
// shared flag set makes the sample reproducible.
func newRandKCNFCmd() *cobra.Command {
	var (
		opts    formulaOpts
		width   int
		vars    int
		clauses int
	)

	cmd := &cobra.Command{
		Use:   "randkcnf",
		Short: "Sample a random k-CNF formula",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formula.RandomKCNF(width, vars, clauses, opts.rng())
			if err != nil {
				return err
			}
			return emitFormula(cmd.Context(), f, &opts)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "k", 3, "clause width")
	cmd.Flags().IntVarP(&vars, "vars", "n", 0, "number of variables")
	cmd.Flags().IntVarP(&clauses, "clauses", "m", 0, "number of clauses")
	addFormulaFlags(cmd, &opts)

	return cmd
}
