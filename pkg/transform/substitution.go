package transform

import (
	"fmt"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
)

// Substitution replaces every variable of a formula with a boolean
// function over Rank fresh copies of it.
//
// Literal returns the CNF encoding of the substituted literal over the
// copies, as a list of clauses whose conjunction is equivalent to the
// function (positive polarity) or its negation (negative polarity).
// Preamble returns extra clauses emitted once per original variable,
// after all substituted clauses.
type Substitution interface {
	Rank() int
	Description() string
	Literal(vars []int, polarity bool) [][]int
	Preamble(vars []int) [][]int
}

// Apply substitutes every variable of f according to s and returns the
// resulting formula. The input is never modified.
//
// Variable i of f becomes copies {label}^0 .. {label}^(rank-1) with ids
// (i-1)*rank+1 .. i*rank. Each original clause expands into the
// cartesian product of its literals' clause lists; preamble clauses
// for every variable follow, in variable order. The output formula is
// built in lenient mode since expansion can repeat literals.
func Apply(f *cnf.Formula, s Substitution) (*cnf.Formula, error) {
	rank := s.Rank()
	out := cnf.New(cnf.WithLenientClauses())
	for _, line := range f.Header() {
		out.AddComment(line)
	}
	out.AddComment(s.Description())

	n := f.NumVariables()
	copies := func(i int) []int {
		vs := make([]int, rank)
		for j := range vs {
			vs[j] = (i-1)*rank + j + 1
		}
		return vs
	}
	for i := 1; i <= n; i++ {
		label := f.Label(i)
		for j := 0; j < rank; j++ {
			out.NewVariable(fmt.Sprintf("{%s}^%d", label, j))
		}
	}

	pos := make([][][]int, n+1)
	neg := make([][][]int, n+1)
	for i := 1; i <= n; i++ {
		pos[i] = s.Literal(copies(i), true)
		neg[i] = s.Literal(copies(i), false)
	}

	for _, clause := range f.Clauses() {
		domains := make([][][]int, len(clause))
		for i, lit := range clause {
			if lit > 0 {
				domains[i] = pos[lit]
			} else {
				domains[i] = neg[-lit]
			}
		}
		if err := addProduct(out, domains); err != nil {
			return nil, err
		}
	}

	for i := 1; i <= n; i++ {
		for _, clause := range s.Preamble(copies(i)) {
			if err := out.AddClause(clause...); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// addProduct adds one clause per element of the cartesian product of
// the domains, concatenating the chosen clauses. The last domain
// varies fastest. A clause with an empty domain contributes nothing.
func addProduct(out *cnf.Formula, domains [][][]int) error {
	for _, d := range domains {
		if len(d) == 0 {
			return nil
		}
	}

	idx := make([]int, len(domains))
	for {
		var clause []int
		for i, d := range domains {
			clause = append(clause, d[idx[i]]...)
		}
		if err := out.AddClause(clause...); err != nil {
			return err
		}

		i := len(domains) - 1
		for i >= 0 {
			idx[i]++
			if idx[i] < len(domains[i]) {
				break
			}
			idx[i] = 0
			i--
		}
		if i < 0 {
			return nil
		}
	}
}
