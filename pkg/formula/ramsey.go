package formula

import (
	"fmt"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

// RamseyNumber builds the formula claiming that the Ramsey number
// r(s,k) is strictly larger than n: there is a graph on n vertices
// with no independent set of size s and no clique of size k.
//
// Variable e_{u,v} is the presence of edge {u,v}, pairs numbered in
// lexicographic order. All independent-set clauses precede all clique
// clauses, each family in lexicographic order of the vertex subset.
func RamseyNumber(s, k, n int) (*cnf.Formula, error) {
	if err := errors.ValidatePositive("s", s); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive("k", k); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive("n", n); err != nil {
		return nil, err
	}

	f := cnf.New()
	f.AddComment(fmt.Sprintf("%d-vertices graph free of %d-independent sets and %d-cliques", n, s, k))

	id := func(u, v int) int { return (u-1)*n - u*(u-1)/2 + (v - u) }
	for _, p := range cnf.Combinations(n, 2) {
		f.NewVariable(fmt.Sprintf("e_{%d,%d}", p[0], p[1]))
	}

	for _, set := range cnf.Combinations(n, s) {
		pairs := cnf.CombinationsOf(set, 2)
		clause := make([]int, len(pairs))
		for i, p := range pairs {
			clause[i] = id(p[0], p[1])
		}
		if err := f.AddClause(clause...); err != nil {
			return nil, err
		}
	}

	for _, set := range cnf.Combinations(n, k) {
		pairs := cnf.CombinationsOf(set, 2)
		clause := make([]int, len(pairs))
		for i, p := range pairs {
			clause[i] = -id(p[0], p[1])
		}
		if err := f.AddClause(clause...); err != nil {
			return nil, err
		}
	}

	return f, nil
}
