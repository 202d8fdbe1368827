package formula

import (
	"fmt"
	"strings"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/errors"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
)

// PHPOptions select a pigeonhole principle variant.
type PHPOptions struct {
	// Functional adds clauses forcing each pigeon into at most one hole.
	Functional bool
	// Onto adds clauses forcing every hole to host at least one pigeon.
	Onto bool
}

func (o PHPOptions) name() string {
	switch {
	case o.Functional && o.Onto:
		return "Matching"
	case o.Functional:
		return "Functional pigeonhole principle"
	case o.Onto:
		return "Onto pigeonhole principle"
	default:
		return "Pigeonhole principle"
	}
}

// PigeonholePrinciple builds the pigeonhole principle formula claiming
// that the given number of pigeons fit into the given number of holes
// without collision. The formula is unsatisfiable exactly when there
// are more pigeons than holes.
//
// Variable p_{p,h} ("pigeon p sits in hole h") has id (p-1)*holes+h.
// Clauses appear in a fixed order: one completeness clause per pigeon,
// then the optional onto clauses per hole, then the collision clauses
// grouped by hole, then the optional functional clauses grouped by
// pigeon.
func PigeonholePrinciple(pigeons, holes int, opts PHPOptions) (*cnf.Formula, error) {
	if err := errors.ValidateNonNegative("pigeons", pigeons); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("holes", holes); err != nil {
		return nil, err
	}

	f := cnf.New()
	f.AddComment(fmt.Sprintf("%s formula for %d pigeons and %d holes",
		opts.name(), pigeons, holes))

	id := func(p, h int) int { return (p-1)*holes + h }
	for p := 1; p <= pigeons; p++ {
		for h := 1; h <= holes; h++ {
			f.NewVariable(fmt.Sprintf("p_{%d,%d}", p, h))
		}
	}

	for p := 1; p <= pigeons; p++ {
		clause := make([]int, holes)
		for h := 1; h <= holes; h++ {
			clause[h-1] = id(p, h)
		}
		if err := f.AddClause(clause...); err != nil {
			return nil, err
		}
	}

	if opts.Onto {
		for h := 1; h <= holes; h++ {
			clause := make([]int, pigeons)
			for p := 1; p <= pigeons; p++ {
				clause[p-1] = id(p, h)
			}
			if err := f.AddClause(clause...); err != nil {
				return nil, err
			}
		}
	}

	pigeonPairs := cnf.Combinations(pigeons, 2)
	for h := 1; h <= holes; h++ {
		for _, pp := range pigeonPairs {
			if err := f.AddClause(-id(pp[0], h), -id(pp[1], h)); err != nil {
				return nil, err
			}
		}
	}

	if opts.Functional {
		holePairs := cnf.Combinations(holes, 2)
		for p := 1; p <= pigeons; p++ {
			for _, hp := range holePairs {
				if err := f.AddClause(-id(p, hp[0]), -id(p, hp[1])); err != nil {
					return nil, err
				}
			}
		}
	}

	return f, nil
}

// GraphPigeonholePrinciple builds the pigeonhole principle restricted
// to a bipartite graph: pigeon u may only sit in the holes adjacent to
// it. One variable per edge, in the graph's edge enumeration order.
// A left vertex with no neighbors yields an empty clause.
//
// The formula is satisfiable exactly when the graph has a matching
// saturating the left side (plus the extra conditions the options add).
func GraphPigeonholePrinciple(b *graph.Bipartite, opts PHPOptions) (*cnf.Formula, error) {
	left, right := b.Order()

	name := opts.name()
	name = "Graph " + strings.ToLower(name[:1]) + name[1:]

	f := cnf.New()
	f.AddComment(fmt.Sprintf("%s formula on a bipartite graph with %d pigeons and %d holes",
		name, left, right))

	id := make(map[graph.Edge]int, b.NumEdges())
	for _, e := range b.Edges() {
		id[e] = f.NewVariable(fmt.Sprintf("p_{%d,%d}", e.U, e.V))
	}

	for u := 1; u <= left; u++ {
		var clause []int
		for _, v := range b.RightNeighbors(u) {
			clause = append(clause, id[graph.Edge{U: u, V: v}])
		}
		if err := f.AddClause(clause...); err != nil {
			return nil, err
		}
	}

	if opts.Onto {
		for v := 1; v <= right; v++ {
			var clause []int
			for _, u := range b.LeftNeighbors(v) {
				clause = append(clause, id[graph.Edge{U: u, V: v}])
			}
			if err := f.AddClause(clause...); err != nil {
				return nil, err
			}
		}
	}

	for v := 1; v <= right; v++ {
		for _, pp := range cnf.CombinationsOf(b.LeftNeighbors(v), 2) {
			if err := f.AddClause(-id[graph.Edge{U: pp[0], V: v}], -id[graph.Edge{U: pp[1], V: v}]); err != nil {
				return nil, err
			}
		}
	}

	if opts.Functional {
		for u := 1; u <= left; u++ {
			for _, hp := range cnf.CombinationsOf(b.RightNeighbors(u), 2) {
				if err := f.AddClause(-id[graph.Edge{U: u, V: hp[0]}], -id[graph.Edge{U: u, V: hp[1]}]); err != nil {
					return nil, err
				}
			}
		}
	}

	return f, nil
}
