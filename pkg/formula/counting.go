package formula

import (
	"fmt"
	"strings"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

// CountingPrinciple builds the formula claiming that a domain of size
// m can be partitioned into classes of size p each. The formula is
// satisfiable exactly when p divides m.
//
// One variable Y_{t} per p-subset t of the domain, numbered in
// lexicographic order; for every domain element an exactly-one
// constraint over the subsets containing it, at-most pairs first.
func CountingPrinciple(m, p int) (*cnf.Formula, error) {
	if err := errors.ValidatePositive("p", p); err != nil {
		return nil, err
	}
	if m < p {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"domain size %d is smaller than the class size %d", m, p)
	}

	f := cnf.New()
	f.AddComment(fmt.Sprintf("Counting principle: %d divided in parts of size %d", m, p))

	incidence := make([][]int, m+1)
	for _, tpl := range cnf.Combinations(m, p) {
		parts := make([]string, len(tpl))
		for i, v := range tpl {
			parts[i] = fmt.Sprintf("%d", v)
		}
		id := f.NewVariable("Y_{" + strings.Join(parts, ",") + "}")
		for _, v := range tpl {
			incidence[v] = append(incidence[v], id)
		}
	}

	for el := 1; el <= m; el++ {
		for _, clause := range cnf.ExactlyClauses(incidence[el], 1) {
			if err := f.AddClause(clause...); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
