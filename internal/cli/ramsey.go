package cli

import (
	"github.com/spf13/cobra"

	"github.com/MassimoLauria/cnfgen/pkg/formula"
)

// newRamseyCmd creates the ramsey command.
func newRamseyCmd() *cobra.Command {
	var (
		opts formulaOpts
		s    int
		k    int
		n    int
	)

	cmd := &cobra.Command{
		Use:   "ramsey",
		Short: "Generate a formula claiming the Ramsey number r(s,k) > n",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formula.RamseyNumber(s, k, n)
			if err != nil {
				return err
			}
			return emitFormula(cmd.Context(), f, &opts)
		},
	}

	cmd.Flags().IntVarP(&s, "independent-set", "s", 0, "forbidden independent set size")
	cmd.Flags().IntVarP(&k, "clique", "k", 0, "forbidden clique size")
	cmd.Flags().IntVarP(&n, "vertices", "n", 0, "number of vertices")
	addFormulaFlags(cmd, &opts)

	return cmd
}
