package transform

import (
	"math/rand/v2"
	"slices"
	"sort"
	"testing"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
)

func TestShuffle_NoOptionsCopies(t *testing.T) {
	f := mustFormula(t, [][]int{{1, -2}, {2, 3}, {-1, -3}})
	rng := rand.New(rand.NewPCG(1, 1))
	out := Shuffle(f, rng, ShuffleOptions{})
	if got := out.Clauses(); !slices.EqualFunc(got, f.Clauses(), slices.Equal) {
		t.Errorf("Clauses() = %v, want %v", got, f.Clauses())
	}
	if got := out.NumVariables(); got != f.NumVariables() {
		t.Errorf("NumVariables() = %d, want %d", got, f.NumVariables())
	}
}

func TestShuffle_PreservesShape(t *testing.T) {
	f := mustFormula(t, [][]int{{1, -2}, {2, 3}, {-1, -3}, {1, 2, 3}})
	rng := rand.New(rand.NewPCG(42, 42))
	out := Shuffle(f, rng, ShuffleOptions{Polarity: true, Variables: true, Clauses: true})

	if got := out.NumVariables(); got != f.NumVariables() {
		t.Fatalf("NumVariables() = %d, want %d", got, f.NumVariables())
	}
	if got := out.NumClauses(); got != f.NumClauses() {
		t.Fatalf("NumClauses() = %d, want %d", got, f.NumClauses())
	}

	// the multiset of clause widths is invariant
	widths := func(f *cnf.Formula) []int {
		var ws []int
		for i := 0; i < f.NumClauses(); i++ {
			ws = append(ws, len(f.Clause(i)))
		}
		sort.Ints(ws)
		return ws
	}
	if got, want := widths(out), widths(f); !slices.Equal(got, want) {
		t.Errorf("clause widths = %v, want %v", got, want)
	}

	// variable labels survive the renaming
	labels := func(f *cnf.Formula) []string {
		var ls []string
		for i := 1; i <= f.NumVariables(); i++ {
			ls = append(ls, f.Label(i))
		}
		sort.Strings(ls)
		return ls
	}
	if got, want := labels(out), labels(f); !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestShuffle_Deterministic(t *testing.T) {
	f := mustFormula(t, [][]int{{1, -2}, {2, 3}, {-1, -3}})
	opts := ShuffleOptions{Polarity: true, Variables: true, Clauses: true}

	a := Shuffle(f, rand.New(rand.NewPCG(7, 7)), opts)
	b := Shuffle(f, rand.New(rand.NewPCG(7, 7)), opts)
	if a.DIMACS() != b.DIMACS() {
		t.Errorf("same seed produced different shuffles:\n%s\nvs:\n%s", a.DIMACS(), b.DIMACS())
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	f := mustFormula(t, [][]int{{1, -2}, {2, 3}})
	before := f.DIMACS()
	Shuffle(f, rand.New(rand.NewPCG(3, 3)), ShuffleOptions{Polarity: true, Variables: true, Clauses: true})
	if after := f.DIMACS(); after != before {
		t.Errorf("input changed:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}
