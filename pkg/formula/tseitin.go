package formula

import (
	"fmt"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
)

// TseitinFormula builds the Tseitin formula of g: one variable per
// edge, and for each vertex a parity constraint over its incident
// edges. charges gives the demanded parity per vertex in vertex order;
// when nil, vertex 1 gets odd charge and every other vertex even. A
// shorter slice is padded with even charges and extra entries are
// ignored.
//
// The formula is satisfiable exactly when every connected component
// has an even total charge.
func TseitinFormula(g *graph.Simple, charges []bool) (*cnf.Formula, error) {
	n := g.Order()

	padded := make([]bool, n)
	if charges == nil {
		if n > 0 {
			padded[0] = true // odd charge on the first vertex
		}
	} else {
		copy(padded, charges)
	}

	f := cnf.New()
	f.AddComment(fmt.Sprintf("Tseitin formula on a graph with %d vertices and %d edges",
		n, g.NumEdges()))

	id := make(map[graph.Edge]int, g.NumEdges())
	for _, e := range g.Edges() {
		id[e] = f.NewVariable(fmt.Sprintf("E_{%d,%d}", e.U, e.V))
	}

	for v := 1; v <= n; v++ {
		var lits []int
		for _, u := range g.Neighbors(v) {
			e := graph.Edge{U: min(u, v), V: max(u, v)}
			lits = append(lits, id[e])
		}
		for _, clause := range cnf.ParityClauses(lits, padded[v-1]) {
			if err := f.AddClause(clause...); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
