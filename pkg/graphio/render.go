package graphio

import (
	"bytes"
	"context"

	"github.com/goccy/go-graphviz"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

// RenderSVG draws the graph with Graphviz and returns the SVG bytes.
// The graph is serialized to DOT first, so only graphs representable
// in DOT can be rendered (that is all of them, see the codec table).
func RenderSVG(ctx context.Context, g Graph) ([]byte, error) {
	return render(ctx, g, graphviz.SVG)
}

// RenderPNG draws the graph with Graphviz and returns the PNG bytes.
func RenderPNG(ctx context.Context, g Graph) ([]byte, error) {
	return render(ctx, g, graphviz.PNG)
}

func render(ctx context.Context, g Graph, format graphviz.Format) ([]byte, error) {
	var dot bytes.Buffer
	if err := Write(&dot, g, FormatDOT); err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes(dot.Bytes())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse generated dot")
	}
	defer parsed.Close()

	var out bytes.Buffer
	if err := gv.Render(ctx, parsed, format, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render graph")
	}
	return out.Bytes(), nil
}
