package cli

import (
	"github.com/spf13/cobra"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
	"github.com/MassimoLauria/cnfgen/pkg/formula"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
	"github.com/MassimoLauria/cnfgen/pkg/graphio"
)

// newPebblingCmd creates the pebbling command. The DAG comes either
// from --input or from one of the built-in shapes (--pyramid, --tree,
// --path).
func newPebblingCmd() *cobra.Command {
	var (
		opts    formulaOpts
		in      graphInput
		pyramid int
		tree    int
		path    int
	)

	cmd := &cobra.Command{
		Use:   "pebbling",
		Short: "Generate a pebbling formula over a DAG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := pebblingDAG(&in, pyramid, tree, path)
			if err != nil {
				return err
			}
			f, err := formula.PebblingFormula(d)
			if err != nil {
				return err
			}
			return emitFormula(cmd.Context(), f, &opts)
		},
	}

	cmd.Flags().IntVar(&pyramid, "pyramid", 0, "use a pyramid DAG of the given height")
	cmd.Flags().IntVar(&tree, "tree", 0, "use a complete binary tree of the given height")
	cmd.Flags().IntVar(&path, "path", 0, "use a directed path of the given length")
	addGraphFlags(cmd, &in)
	addFormulaFlags(cmd, &opts)

	return cmd
}

func pebblingDAG(in *graphInput, pyramid, tree, path int) (*graph.Directed, error) {
	switch {
	case in.path != "":
		g, err := in.read(graphio.KindDAG)
		if err != nil {
			return nil, err
		}
		return g.(*graph.Directed), nil
	case pyramid > 0:
		return graph.Pyramid(pyramid)
	case tree > 0:
		return graph.CompleteBinaryTree(tree)
	case path > 0:
		return graph.Path(path)
	}
	return nil, errors.New(errors.ErrCodeInvalidParameter,
		"need --input or one of --pyramid, --tree, --path")
}
