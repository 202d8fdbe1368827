package cli

import (
	"github.com/spf13/cobra"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/formula"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
	"github.com/MassimoLauria/cnfgen/pkg/graphio"
)

// newOrderingCmd creates the ordering command. With --input the
// principle is restricted to a graph, otherwise --size selects the
// complete variant.
func newOrderingCmd() *cobra.Command {
	var (
		opts  formulaOpts
		in    graphInput
		size  int
		fopts formula.OrderingOptions
	)

	cmd := &cobra.Command{
		Use:   "ordering",
		Short: "Generate an ordering principle formula",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildOrdering(&in, size, fopts)
			if err != nil {
				return err
			}
			return emitFormula(cmd.Context(), f, &opts)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 0, "number of domain elements")
	cmd.Flags().BoolVar(&fopts.Total, "total", false, "add totality axioms")
	cmd.Flags().BoolVar(&fopts.Plant, "plant", false, "allow the last element to be minimal")
	addGraphFlags(cmd, &in)
	addFormulaFlags(cmd, &opts)

	return cmd
}

func buildOrdering(in *graphInput, size int, fopts formula.OrderingOptions) (*cnf.Formula, error) {
	if in.path != "" {
		g, err := in.read(graphio.KindSimple)
		if err != nil {
			return nil, err
		}
		return formula.GraphOrderingPrinciple(g.(*graph.Simple), fopts)
	}
	return formula.OrderingPrinciple(size, fopts)
}
