package formula

import (
	"fmt"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/errors"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
)

// PebblingFormula builds the pebbling formula of a DAG: sources are
// pebbled, a vertex whose predecessors are all pebbled is pebbled, and
// sinks are not pebbled. The formula is unsatisfiable on any DAG with
// at least one sink.
//
// The vertex numbering must be topological, one variable per vertex.
func PebblingFormula(d *graph.Directed) (*cnf.Formula, error) {
	if e, bad := d.DAGViolation(); bad {
		return nil, errors.New(errors.ErrCodeInvalidGraph,
			"pebbling formula needs a topologically numbered dag, edge (%d,%d) violates the numbering", e.U, e.V)
	}

	n := d.Order()
	f := cnf.New()
	f.AddComment(fmt.Sprintf("Pebbling formula on a dag with %d vertices", n))

	for v := 1; v <= n; v++ {
		f.NewVariable(fmt.Sprintf("v_{%d}", v))
	}

	for v := 1; v <= n; v++ {
		clause := make([]int, 0, d.InDegree(v)+1)
		for _, p := range d.Predecessors(v) {
			clause = append(clause, -p)
		}
		clause = append(clause, v)
		if err := f.AddClause(clause...); err != nil {
			return nil, err
		}

		if d.OutDegree(v) == 0 {
			if err := f.AddClause(-v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
