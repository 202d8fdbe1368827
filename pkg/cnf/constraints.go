package cnf

// ParityClauses returns the clauses forcing the literals to have the
// given parity: an odd number of true literals when charge is true, an
// even number otherwise. The encoding enumerates all falsifying sign
// patterns, so it produces 2^(k-1) clauses of width k.
//
// With no literals and charge true the result is a single empty clause,
// since an empty sum cannot be odd.
func ParityClauses(lits []int, charge bool) [][]int {
	desired := -1
	if charge {
		desired = 1
	}
	var out [][]int
	k := len(lits)
	for mask := 0; mask < 1<<k; mask++ {
		sign := 1
		for i := 0; i < k; i++ {
			if mask&(1<<i) != 0 {
				sign = -sign
			}
		}
		if sign != desired {
			continue
		}
		clause := make([]int, k)
		for i, lit := range lits {
			if mask&(1<<i) != 0 {
				clause[i] = -lit
			} else {
				clause[i] = lit
			}
		}
		out = append(out, clause)
	}
	return out
}

// AtLeastClauses returns clauses forcing at least k of the literals to
// be true: every subset of len(lits)-k+1 literals must contain a true
// one. A threshold above len(lits) yields a single empty clause and a
// threshold of zero or less yields no clauses.
func AtLeastClauses(lits []int, k int) [][]int {
	if k <= 0 {
		return nil
	}
	if k > len(lits) {
		return [][]int{{}}
	}
	return subsetClauses(lits, len(lits)-k+1, 1)
}

// AtMostClauses returns clauses forcing at most k of the literals to be
// true: every subset of k+1 literals must contain a false one.
func AtMostClauses(lits []int, k int) [][]int {
	if k >= len(lits) {
		return nil
	}
	if k < 0 {
		return [][]int{{}}
	}
	return subsetClauses(lits, k+1, -1)
}

// ExactlyClauses returns clauses forcing exactly k true literals, the
// at-most part first.
func ExactlyClauses(lits []int, k int) [][]int {
	return append(AtMostClauses(lits, k), AtLeastClauses(lits, k)...)
}

// subsetClauses emits one clause per size-w subset of lits, in
// lexicographic order, multiplying each literal by sign.
func subsetClauses(lits []int, w, sign int) [][]int {
	var out [][]int
	idx := make([]int, w)
	for i := range idx {
		idx[i] = i
	}
	for {
		clause := make([]int, w)
		for i, j := range idx {
			clause[i] = sign * lits[j]
		}
		out = append(out, clause)

		// advance to the next combination
		i := w - 1
		for i >= 0 && idx[i] == len(lits)-w+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < w; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// CombinationsOf enumerates the size-k subsets of xs in lexicographic
// order of positions. Formula constructors use it for clause and
// variable layouts that must be stable across runs.
func CombinationsOf(xs []int, k int) [][]int {
	if k < 0 || k > len(xs) {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		subset := make([]int, k)
		for i, j := range idx {
			subset[i] = xs[j]
		}
		out = append(out, subset)

		i := k - 1
		for i >= 0 && idx[i] == len(xs)-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Combinations enumerates the size-k subsets of 1..n in lexicographic
// order.
func Combinations(n, k int) [][]int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i + 1
	}
	return CombinationsOf(xs, k)
}
