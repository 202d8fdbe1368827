package cli

import (
	"github.com/spf13/cobra"

	"github.com/MassimoLauria/cnfgen/pkg/formula"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
	"github.com/MassimoLauria/cnfgen/pkg/graphio"
)

// newColoringCmd creates the coloring command.
func newColoringCmd() *cobra.Command {
	var (
		opts   formulaOpts
		in     graphInput
		colors int
	)

	cmd := &cobra.Command{
		Use:   "coloring",
		Short: "Generate a graph colorability formula",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := in.read(graphio.KindSimple)
			if err != nil {
				return err
			}
			f, err := formula.GraphColoring(g.(*graph.Simple), colors)
			if err != nil {
				return err
			}
			return emitFormula(cmd.Context(), f, &opts)
		},
	}

	cmd.Flags().IntVarP(&colors, "colors", "c", 3, "number of colors")
	addGraphFlags(cmd, &in)
	addFormulaFlags(cmd, &opts)

	return cmd
}
