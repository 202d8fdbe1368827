package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
	"github.com/MassimoLauria/cnfgen/pkg/graphio"
)

// newGraphCmd groups the graph file utilities: format conversion and
// graphviz rendering.
func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Read, convert and render graph files",
	}
	cmd.AddCommand(newGraphConvertCmd())
	cmd.AddCommand(newGraphRenderCmd())
	return cmd
}

// newGraphConvertCmd creates the graph convert command: read a graph
// in one format, write it in another. The graph kind must be given
// explicitly since not every format can represent every kind.
func newGraphConvertCmd() *cobra.Command {
	var (
		in        graphInput
		kindTag   string
		output    string
		outFormat string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a graph file between formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := graphio.ParseKind(kindTag)
			if err != nil {
				return err
			}
			g, err := in.read(kind)
			if err != nil {
				return err
			}
			if output == "" {
				return errors.New(errors.ErrCodeInvalidParameter, "missing --output file")
			}
			format := graphio.FormatUnknown
			if outFormat != "" {
				if format, err = graphio.ParseFormat(outFormat); err != nil {
					return err
				}
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debug("converting graph", "kind", kind, "edges", g.NumEdges())
			return graphio.WriteFile(output, g, format)
		},
	}

	cmd.Flags().StringVarP(&kindTag, "kind", "k", "simple", "graph kind: simple, bipartite, digraph, dag")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output graph file")
	cmd.Flags().StringVar(&outFormat, "output-format", "", "output format (default: from file extension)")
	addGraphFlags(cmd, &in)

	return cmd
}

// newGraphRenderCmd creates the graph render command, drawing a graph
// file as SVG or PNG through graphviz.
func newGraphRenderCmd() *cobra.Command {
	var (
		in      graphInput
		kindTag string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a graph file as SVG or PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := graphio.ParseKind(kindTag)
			if err != nil {
				return err
			}
			g, err := in.read(kind)
			if err != nil {
				return err
			}

			if output == "" {
				return errors.New(errors.ErrCodeInvalidParameter, "missing --output file")
			}
			var data []byte
			switch strings.ToLower(filepath.Ext(output)) {
			case ".svg":
				data, err = graphio.RenderSVG(cmd.Context(), g)
			case ".png":
				data, err = graphio.RenderPNG(cmd.Context(), g)
			default:
				return errors.New(errors.ErrCodeUnsupportedFormat,
					"cannot infer image format from %q, use a .svg or .png extension", output)
			}
			if err != nil {
				return err
			}
			return os.WriteFile(output, data, 0o644)
		},
	}

	cmd.Flags().StringVarP(&kindTag, "kind", "k", "simple", "graph kind: simple, bipartite, digraph, dag")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image file (.svg or .png)")
	addGraphFlags(cmd, &in)

	return cmd
}
