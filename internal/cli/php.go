package cli

import (
	"github.com/spf13/cobra"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/formula"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
	"github.com/MassimoLauria/cnfgen/pkg/graphio"
)

// newPHPCmd creates the php command for pigeonhole principle formulas.
// With --input the principle is restricted to a bipartite graph,
// otherwise --pigeons and --holes select the complete variant.
func newPHPCmd() *cobra.Command {
	var (
		opts    formulaOpts
		in      graphInput
		pigeons int
		holes   int
		fopts   formula.PHPOptions
	)

	cmd := &cobra.Command{
		Use:   "php",
		Short: "Generate a pigeonhole principle formula",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildPHP(&in, pigeons, holes, fopts)
			if err != nil {
				return err
			}
			return emitFormula(cmd.Context(), f, &opts)
		},
	}

	cmd.Flags().IntVarP(&pigeons, "pigeons", "p", 0, "number of pigeons")
	cmd.Flags().IntVarP(&holes, "holes", "H", 0, "number of holes")
	cmd.Flags().BoolVar(&fopts.Functional, "functional", false, "at most one hole per pigeon")
	cmd.Flags().BoolVar(&fopts.Onto, "onto", false, "every hole must host a pigeon")
	addGraphFlags(cmd, &in)
	addFormulaFlags(cmd, &opts)

	return cmd
}

func buildPHP(in *graphInput, pigeons, holes int, fopts formula.PHPOptions) (*cnf.Formula, error) {
	if in.path != "" {
		g, err := in.read(graphio.KindBipartite)
		if err != nil {
			return nil, err
		}
		return formula.GraphPigeonholePrinciple(g.(*graph.Bipartite), fopts)
	}
	return formula.PigeonholePrinciple(pigeons, holes, fopts)
}
