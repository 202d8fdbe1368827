package formula

import (
	"slices"
	"testing"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
)

func TestPebblingFormula_Path(t *testing.T) {
	g, err := graph.Path(2)
	if err != nil {
		t.Fatalf("Path(2) error = %v", err)
	}
	f, err := PebblingFormula(g)
	if err != nil {
		t.Fatalf("PebblingFormula() error = %v", err)
	}
	want := [][]int{
		{1},
		{-1, 2},
		{-2, 3},
		{-3},
	}
	if got := f.Clauses(); !slices.EqualFunc(got, want, slices.Equal) {
		t.Errorf("Clauses() = %v, want %v", got, want)
	}
}

func TestPebblingFormula_Pyramid(t *testing.T) {
	g, err := graph.Pyramid(2)
	if err != nil {
		t.Fatalf("Pyramid(2) error = %v", err)
	}
	f, err := PebblingFormula(g)
	if err != nil {
		t.Fatalf("PebblingFormula() error = %v", err)
	}
	want := [][]int{
		{1}, {2}, {3},
		{-1, -2, 4},
		{-2, -3, 5},
		{-4, -5, 6},
		{-6},
	}
	if got := f.Clauses(); !slices.EqualFunc(got, want, slices.Equal) {
		t.Errorf("Clauses() = %v, want %v", got, want)
	}
}

func TestPebblingFormula_RejectsNonDAG(t *testing.T) {
	g := graph.NewDirected(2)
	if err := g.AddEdgesFrom([]graph.Edge{{U: 1, V: 2}, {U: 2, V: 1}}); err != nil {
		t.Fatalf("building graph: %v", err)
	}
	if _, err := PebblingFormula(g); !errors.Is(err, errors.ErrCodeInvalidGraph) {
		t.Errorf("PebblingFormula(cycle) error = %v, want INVALID_GRAPH", err)
	}
}
