package formula

import (
	"fmt"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/errors"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
)

// GraphColoring builds the formula claiming that g has a proper
// coloring with the given number of colors. Variable x_{v,c} ("vertex
// v gets color c") has id (v-1)*colors+c. Each vertex gets its
// completeness clause followed by its one-color-per-vertex pairs, then
// the per-edge conflict clauses follow in edge order.
func GraphColoring(g *graph.Simple, colors int) (*cnf.Formula, error) {
	if err := errors.ValidateNonNegative("colors", colors); err != nil {
		return nil, err
	}

	n := g.Order()
	f := cnf.New()
	f.AddComment(fmt.Sprintf("Graph %d-colorability formula on a graph with %d vertices and %d edges",
		colors, n, g.NumEdges()))

	id := func(v, c int) int { return (v-1)*colors + c }
	for v := 1; v <= n; v++ {
		for c := 1; c <= colors; c++ {
			f.NewVariable(fmt.Sprintf("x_{%d,%d}", v, c))
		}
	}

	colorPairs := cnf.Combinations(colors, 2)
	for v := 1; v <= n; v++ {
		clause := make([]int, colors)
		for c := 1; c <= colors; c++ {
			clause[c-1] = id(v, c)
		}
		if err := f.AddClause(clause...); err != nil {
			return nil, err
		}
		for _, cp := range colorPairs {
			if err := f.AddClause(-id(v, cp[0]), -id(v, cp[1])); err != nil {
				return nil, err
			}
		}
	}

	for _, e := range g.Edges() {
		for c := 1; c <= colors; c++ {
			if err := f.AddClause(-id(e.U, c), -id(e.V, c)); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
