package cli

import (
	"github.com/spf13/cobra"

	"github.com/MassimoLauria/cnfgen/pkg/formula"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
	"github.com/MassimoLauria/cnfgen/pkg/graphio"
)

// newTseitinCmd creates the tseitin command. The charge vector is
// given as repeated or comma-separated --charge flags; it defaults to
// a single odd charge on the first vertex.
func newTseitinCmd() *cobra.Command {
	var (
		opts    formulaOpts
		in      graphInput
		charges []bool
	)

	cmd := &cobra.Command{
		Use:   "tseitin",
		Short: "Generate a Tseitin parity formula over a graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := in.read(graphio.KindSimple)
			if err != nil {
				return err
			}
			f, err := formula.TseitinFormula(g.(*graph.Simple), charges)
			if err != nil {
				return err
			}
			return emitFormula(cmd.Context(), f, &opts)
		},
	}

	cmd.Flags().BoolSliceVar(&charges, "charge", nil, "per-vertex charge (repeatable; default odd charge on vertex 1)")
	addGraphFlags(cmd, &in)
	addFormulaFlags(cmd, &opts)

	return cmd
}
