// Package sat checks the satisfiability of CNF formulas with an
// in-process solver. It exists so that generators and tests can verify
// the satisfiability claims of formula families without shelling out
// to an external solver.
package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

// gini solver outcomes
const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Solve decides the satisfiability of f. For a satisfiable formula,
// model[i] holds the value assigned to variable i+1; for an
// unsatisfiable one the model is nil.
func Solve(f *cnf.Formula) (sat bool, model []bool, err error) {
	g := gini.New()
	for _, clause := range f.Clauses() {
		for _, lit := range clause {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(z.LitNull)
	}

	switch outcome := g.Solve(); outcome {
	case satisfiable:
		model = make([]bool, f.NumVariables())
		for i := 1; i <= f.NumVariables(); i++ {
			model[i-1] = g.Value(z.Dimacs2Lit(i))
		}
		return true, model, nil
	case unsatisfiable:
		return false, nil, nil
	default:
		return false, nil, errors.New(errors.ErrCodeInternal,
			"solver stopped without an answer (outcome %d)", outcome)
	}
}
