package transform

import (
	"fmt"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

// OrSubstitution replaces each variable with the OR of rank copies.
func OrSubstitution(rank int) (Substitution, error) {
	if err := errors.ValidateRank(rank); err != nil {
		return nil, err
	}
	return orSub{rank}, nil
}

type orSub struct{ rank int }

func (s orSub) Rank() int { return s.rank }

func (s orSub) Description() string {
	return fmt.Sprintf("Substitution with OR of %d", s.rank)
}

func (s orSub) Literal(vars []int, polarity bool) [][]int {
	if polarity {
		clause := make([]int, len(vars))
		copy(clause, vars)
		return [][]int{clause}
	}
	out := make([][]int, len(vars))
	for i, v := range vars {
		out[i] = []int{-v}
	}
	return out
}

func (s orSub) Preamble([]int) [][]int { return nil }

// XorSubstitution replaces each variable with the XOR of rank copies.
func XorSubstitution(rank int) (Substitution, error) {
	if err := errors.ValidateRank(rank); err != nil {
		return nil, err
	}
	return xorSub{rank}, nil
}

type xorSub struct{ rank int }

func (s xorSub) Rank() int { return s.rank }

func (s xorSub) Description() string {
	return fmt.Sprintf("Substitution with XOR of %d", s.rank)
}

func (s xorSub) Literal(vars []int, polarity bool) [][]int {
	return cnf.ParityClauses(vars, polarity)
}

func (s xorSub) Preamble([]int) [][]int { return nil }

// MajoritySubstitution replaces each variable with the loose majority
// of rank copies: a positive literal becomes "at least half are true",
// a negative one "less than half are true".
func MajoritySubstitution(rank int) (Substitution, error) {
	if err := errors.ValidateRank(rank); err != nil {
		return nil, err
	}
	return majSub{rank}, nil
}

type majSub struct{ rank int }

func (s majSub) Rank() int { return s.rank }

func (s majSub) Description() string {
	return fmt.Sprintf("Substitution with majority of %d", s.rank)
}

func (s majSub) Literal(vars []int, polarity bool) [][]int {
	threshold := (s.rank + 1) / 2
	if polarity {
		return cnf.AtLeastClauses(vars, threshold)
	}
	return cnf.AtMostClauses(vars, threshold-1)
}

func (s majSub) Preamble([]int) [][]int { return nil }

// NoneSubstitution leaves the formula unchanged up to relabeling: each
// variable is replaced by a single copy of itself.
func NoneSubstitution() Substitution { return noneSub{} }

type noneSub struct{}

func (noneSub) Rank() int { return 1 }

func (noneSub) Description() string { return "No substitution" }

func (noneSub) Literal(vars []int, polarity bool) [][]int {
	if polarity {
		return [][]int{{vars[0]}}
	}
	return [][]int{{-vars[0]}}
}

func (noneSub) Preamble([]int) [][]int { return nil }
