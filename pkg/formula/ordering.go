package formula

import (
	"fmt"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/errors"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
)

// OrderingOptions select an ordering principle variant.
type OrderingOptions struct {
	// Total adds totality axioms: for every pair, x<y or y<x holds.
	Total bool
	// Plant exempts the last element from the non-minimality axioms,
	// which can make the formula satisfiable.
	Plant bool
}

// OrderingPrinciple builds the ordering principle formula on a domain
// of the given size: a partial order in which no element is minimal.
// The formula is unsatisfiable for any positive size unless Plant is
// set.
func OrderingPrinciple(size int, opts OrderingOptions) (*cnf.Formula, error) {
	if err := errors.ValidatePositive("size", size); err != nil {
		return nil, err
	}
	g, err := graph.Complete(size)
	if err != nil {
		return nil, err
	}

	f, err := graphOrdering(g, opts)
	if err != nil {
		return nil, err
	}
	name := "Ordering principle"
	if opts.Total {
		name = "Total ordering principle"
	}
	f.AddComment(fmt.Sprintf("%s formula on %d elements", name, size))
	return f, nil
}

// GraphOrderingPrinciple builds the ordering principle restricted to a
// graph: no element may be the minimum among its neighbors. On sparse
// graphs this gives much smaller formulas with the same flavor.
func GraphOrderingPrinciple(g *graph.Simple, opts OrderingOptions) (*cnf.Formula, error) {
	f, err := graphOrdering(g, opts)
	if err != nil {
		return nil, err
	}
	name := "Graph ordering principle"
	if opts.Total {
		name = "Total graph ordering principle"
	}
	f.AddComment(fmt.Sprintf("%s formula on a graph with %d vertices and %d edges",
		name, g.Order(), g.NumEdges()))
	return f, nil
}

// graphOrdering emits, in order: variables x_{i,j} for every ordered
// pair, non-minimality axioms per vertex, transitivity axioms,
// antisymmetry axioms, and the optional totality axioms.
func graphOrdering(g *graph.Simple, opts OrderingOptions) (*cnf.Formula, error) {
	n := g.Order()
	f := cnf.New()

	// x_{i,j} means "i precedes j"; ids follow the ordered-pair
	// enumeration (1,2) (1,3) ... (1,n) (2,1) (2,3) ...
	id := func(i, j int) int {
		v := (i-1)*(n-1) + j
		if j > i {
			v--
		}
		return v
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if j != i {
				f.NewVariable(fmt.Sprintf("x_{%d,%d}", i, j))
			}
		}
	}

	// Non-minimality: some neighbor precedes med.
	limit := n
	if opts.Plant {
		limit = n - 1
	}
	for med := 1; med <= limit; med++ {
		var clause []int
		for lo := 1; lo < med; lo++ {
			if g.HasEdge(med, lo) {
				clause = append(clause, id(lo, med))
			}
		}
		for hi := med + 1; hi <= n; hi++ {
			if g.HasEdge(med, hi) {
				clause = append(clause, id(hi, med))
			}
		}
		if err := f.AddClause(clause...); err != nil {
			return nil, err
		}
	}

	// Transitivity.
	if n >= 3 {
		if opts.Total {
			// Two axioms per unordered triple suffice under totality.
			for _, t := range cnf.Combinations(n, 3) {
				v1, v2, v3 := t[0], t[1], t[2]
				if err := f.AddClause(-id(v1, v2), -id(v2, v3), -id(v3, v1)); err != nil {
					return nil, err
				}
				if err := f.AddClause(-id(v1, v3), -id(v3, v2), -id(v2, v1)); err != nil {
					return nil, err
				}
			}
		} else {
			for v1 := 1; v1 <= n; v1++ {
				for v2 := 1; v2 <= n; v2++ {
					if v2 == v1 {
						continue
					}
					for v3 := 1; v3 <= n; v3++ {
						if v3 == v1 || v3 == v2 {
							continue
						}
						if err := f.AddClause(-id(v1, v2), -id(v2, v3), id(v1, v3)); err != nil {
							return nil, err
						}
					}
				}
			}
		}
	}

	// Antisymmetry.
	for _, p := range cnf.Combinations(n, 2) {
		if err := f.AddClause(-id(p[0], p[1]), -id(p[1], p[0])); err != nil {
			return nil, err
		}
	}

	// Totality.
	if opts.Total {
		for _, p := range cnf.Combinations(n, 2) {
			if err := f.AddClause(id(p[0], p[1]), id(p[1], p[0])); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
