package formula

import (
	"fmt"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
)

// SubsetCardinalityFormula builds the subset cardinality formula of a
// bipartite graph: one variable per edge, where every left vertex wants
// at least half of its incident edges true and every right vertex wants
// at most half of them true. With equalities the constraints become
// exact counts instead (ceiling of half on the left, floor on the
// right), which makes the formula unsatisfiable on odd-degree designs.
//
// Variables appear in the graph's edge enumeration order. Clauses come
// grouped per left vertex in order, then per right vertex. Isolated
// vertices contribute no clauses.
func SubsetCardinalityFormula(b *graph.Bipartite, equalities bool) (*cnf.Formula, error) {
	left, right := b.Order()

	f := cnf.New()
	f.AddComment(fmt.Sprintf("Subset cardinality formula on a bipartite graph with %d left and %d right vertices",
		left, right))

	id := make(map[graph.Edge]int, b.NumEdges())
	for _, e := range b.Edges() {
		id[e] = f.NewVariable(fmt.Sprintf("x_{%d,%d}", e.U, e.V))
	}

	for u := 1; u <= left; u++ {
		var lits []int
		for _, v := range b.RightNeighbors(u) {
			lits = append(lits, id[graph.Edge{U: u, V: v}])
		}
		threshold := (len(lits) + 1) / 2
		clauses := cnf.AtLeastClauses(lits, threshold)
		if equalities {
			clauses = cnf.ExactlyClauses(lits, threshold)
		}
		if err := f.AddClauses(clauses); err != nil {
			return nil, err
		}
	}

	for v := 1; v <= right; v++ {
		var lits []int
		for _, u := range b.LeftNeighbors(v) {
			lits = append(lits, id[graph.Edge{U: u, V: v}])
		}
		threshold := len(lits) / 2
		clauses := cnf.AtMostClauses(lits, threshold)
		if equalities {
			clauses = cnf.ExactlyClauses(lits, threshold)
		}
		if err := f.AddClauses(clauses); err != nil {
			return nil, err
		}
	}

	return f, nil
}
