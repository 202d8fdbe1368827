package cli

import (
	"github.com/spf13/cobra"

	"github.com/MassimoLauria/cnfgen/pkg/formula"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
	"github.com/MassimoLauria/cnfgen/pkg/graphio"
)

// newSubsetCardCmd creates the subsetcard command.
func newSubsetCardCmd() *cobra.Command {
	var (
		opts       formulaOpts
		in         graphInput
		equalities bool
	)

	cmd := &cobra.Command{
		Use:   "subsetcard",
		Short: "Generate a subset cardinality formula over a bipartite graph",
		Long:  "Generate the formula demanding at least half true edges around every left vertex and at most half around every right vertex, or exact counts with --equalities.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := in.read(graphio.KindBipartite)
			if err != nil {
				return err
			}
			f, err := formula.SubsetCardinalityFormula(g.(*graph.Bipartite), equalities)
			if err != nil {
				return err
			}
			return emitFormula(cmd.Context(), f, &opts)
		},
	}

	cmd.Flags().BoolVar(&equalities, "equalities", false, "use exact counts instead of inequalities")
	addGraphFlags(cmd, &in)
	addFormulaFlags(cmd, &opts)

	return cmd
}
