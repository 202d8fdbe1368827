package formula

import (
	"slices"
	"testing"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
)

func TestGraphColoring_TriangleTwoColors(t *testing.T) {
	g, err := graph.Cycle(3)
	if err != nil {
		t.Fatalf("Cycle(3) error = %v", err)
	}
	f, err := GraphColoring(g, 2)
	if err != nil {
		t.Fatalf("GraphColoring() error = %v", err)
	}
	if got := f.NumVariables(); got != 6 {
		t.Fatalf("NumVariables() = %d, want 6", got)
	}
	if got := f.Label(3); got != "x_{2,1}" {
		t.Errorf("Label(3) = %q, want %q", got, "x_{2,1}")
	}
	want := [][]int{
		{1, 2}, {-1, -2},
		{3, 4}, {-3, -4},
		{5, 6}, {-5, -6},
		{-1, -3}, {-2, -4},
		{-1, -5}, {-2, -6},
		{-3, -5}, {-4, -6},
	}
	if got := f.Clauses(); !slices.EqualFunc(got, want, slices.Equal) {
		t.Errorf("Clauses() = %v, want %v", got, want)
	}
}

func TestGraphColoring_ZeroColors(t *testing.T) {
	g := graph.NewSimple(2)
	f, err := GraphColoring(g, 0)
	if err != nil {
		t.Fatalf("GraphColoring(g, 0) error = %v", err)
	}
	// one empty completeness clause per vertex
	if got := f.NumClauses(); got != 2 {
		t.Errorf("NumClauses() = %d, want 2", got)
	}
	if _, err := GraphColoring(g, -1); !errors.Is(err, errors.ErrCodeInvalidParameter) {
		t.Errorf("GraphColoring(g, -1) error = %v, want INVALID_PARAMETER", err)
	}
}
