package transform

import (
	"math/rand/v2"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
)

// ShuffleOptions pick which parts of a formula Shuffle randomizes.
// The zero value shuffles nothing and yields an equivalent copy.
type ShuffleOptions struct {
	// Polarity flips the sign of every occurrence of a random set of
	// variables.
	Polarity bool
	// Variables renames the variables with a random permutation.
	Variables bool
	// Clauses reorders the clauses with a random permutation.
	Clauses bool
}

// Shuffle returns a logically equivalent copy of f with polarity
// flips, a variable renaming and a clause reordering applied in that
// order, as selected by opts. Literals keep their position inside each
// clause. The output formula is built in lenient mode so that clause
// text survives verbatim.
func Shuffle(f *cnf.Formula, rng *rand.Rand, opts ShuffleOptions) *cnf.Formula {
	n := f.NumVariables()
	m := f.NumClauses()

	out := cnf.New(cnf.WithLenientClauses())
	out.AddComment("Reshuffling of:")
	for _, line := range f.Header() {
		out.AddComment(line)
	}

	flip := make([]int, n+1)
	for i := 1; i <= n; i++ {
		flip[i] = 1
		if opts.Polarity && rng.IntN(2) == 0 {
			flip[i] = -1
		}
	}

	// rename[i] is the new id of old variable i
	rename := make([]int, n+1)
	for i := 1; i <= n; i++ {
		rename[i] = i
	}
	if opts.Variables {
		perm := rng.Perm(n)
		for i := 1; i <= n; i++ {
			rename[i] = perm[i-1] + 1
		}
	}
	labels := make([]string, n+1)
	for i := 1; i <= n; i++ {
		labels[rename[i]] = f.Label(i)
	}
	for i := 1; i <= n; i++ {
		out.NewVariable(labels[i])
	}

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	if opts.Clauses {
		order = rng.Perm(m)
	}

	clauses := make([][]int, m)
	for old, pos := range order {
		src := f.Clause(old)
		dst := make([]int, len(src))
		for i, lit := range src {
			v, sign := lit, 1
			if lit < 0 {
				v, sign = -lit, -1
			}
			dst[i] = sign * flip[v] * rename[v]
		}
		clauses[pos] = dst
	}
	for _, c := range clauses {
		// lenient formulas accept any literal list
		_ = out.AddClause(c...)
	}

	return out
}
