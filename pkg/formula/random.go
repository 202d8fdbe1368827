package formula

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

// RandomKCNF samples m clauses of width k over n variables, uniformly
// at random and without repetition. Variables are labeled x_1 .. x_n
// and each clause lists its literals in increasing variable order.
//
// Sampling first draws clauses independently, discarding duplicates;
// if that stalls it falls back to enumerating every possible clause
// and picking m of them. Requesting more clauses than exist is
// reported as ErrCodeInvalidParameter.
func RandomKCNF(k, n, m int, rng *rand.Rand) (*cnf.Formula, error) {
	if err := errors.ValidateNonNegative("k", k); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("n", n); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("m", m); err != nil {
		return nil, err
	}
	if k > n {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"clause width %d exceeds the number of variables %d", k, n)
	}

	f := cnf.New()
	f.AddComment(fmt.Sprintf("Random %d-CNF over %d variables and %d clauses", k, n, m))
	for i := 1; i <= n; i++ {
		f.NewVariable(fmt.Sprintf("x_%d", i))
	}

	clauses := sampleClauses(k, n, m, rng)
	if len(clauses) < m {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"fewer clauses available than the %d requested", m)
	}
	for _, c := range clauses {
		if err := f.AddClause(c...); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// sampleClauses draws clauses independently and keeps the distinct
// ones, switching to dense enumeration when 10*m draws were not
// enough. The result is shorter than m only when fewer than m distinct
// clauses exist.
func sampleClauses(k, n, m int, rng *rand.Rand) [][]int {
	seen := make(map[string]struct{}, m)
	clauses := make([][]int, 0, m)

	for t := 0; len(clauses) < m && t < 10*m; t++ {
		clause := make([]int, 0, k)
		for _, v := range sampleSortedVars(n, k, rng) {
			if rng.IntN(2) == 0 {
				v = -v
			}
			clause = append(clause, v)
		}
		key := fmt.Sprint(clause)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		clauses = append(clauses, clause)
	}

	if len(clauses) < m {
		return sampleClausesDense(k, n, m, rng)
	}
	return clauses
}

func sampleClausesDense(k, n, m int, rng *rand.Rand) [][]int {
	var all [][]int
	for _, vars := range cnf.Combinations(n, k) {
		for mask := 0; mask < 1<<k; mask++ {
			clause := make([]int, k)
			for i, v := range vars {
				if mask&(1<<i) != 0 {
					clause[i] = -v
				} else {
					clause[i] = v
				}
			}
			all = append(all, clause)
		}
	}
	if m > len(all) {
		return all
	}
	picked := make([][]int, 0, m)
	for _, i := range rng.Perm(len(all))[:m] {
		picked = append(picked, all[i])
	}
	return picked
}

// sampleSortedVars picks k distinct values from 1..n, sorted.
func sampleSortedVars(n, k int, rng *rand.Rand) []int {
	picked := make(map[int]struct{}, k)
	for len(picked) < k {
		picked[rng.IntN(n)+1] = struct{}{}
	}
	out := make([]int, 0, k)
	for v := range picked {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
