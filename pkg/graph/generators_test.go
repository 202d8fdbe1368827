package graph

import (
	"math/rand/v2"
	"testing"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 42))
}

func TestComplete(t *testing.T) {
	g, err := Complete(5)
	if err != nil {
		t.Fatalf("Complete(5) error = %v", err)
	}
	if got := g.NumEdges(); got != 10 {
		t.Errorf("NumEdges() = %d, want 10", got)
	}
	if !g.HasEdge(2, 5) {
		t.Error("HasEdge(2,5) = false in K_5")
	}
}

func TestCycle(t *testing.T) {
	g, err := Cycle(4)
	if err != nil {
		t.Fatalf("Cycle(4) error = %v", err)
	}
	if got := g.NumEdges(); got != 4 {
		t.Errorf("NumEdges() = %d, want 4", got)
	}
	if !g.HasEdge(4, 1) {
		t.Error("HasEdge(4,1) = false, cycle not closed")
	}
	for v := 1; v <= 4; v++ {
		if got := g.Degree(v); got != 2 {
			t.Errorf("Degree(%d) = %d, want 2", v, got)
		}
	}
	if _, err := Cycle(2); !errors.Is(err, errors.ErrCodeInvalidParameter) {
		t.Errorf("Cycle(2) error = %v, want INVALID_PARAMETER", err)
	}
}

func TestRandomSimple_ProbabilityBounds(t *testing.T) {
	rng := testRNG()
	empty, err := RandomSimple(10, 0, rng)
	if err != nil {
		t.Fatalf("RandomSimple(10, 0) error = %v", err)
	}
	if got := empty.NumEdges(); got != 0 {
		t.Errorf("NumEdges() = %d at p=0, want 0", got)
	}
	full, err := RandomSimple(10, 1, rng)
	if err != nil {
		t.Fatalf("RandomSimple(10, 1) error = %v", err)
	}
	if got := full.NumEdges(); got != 45 {
		t.Errorf("NumEdges() = %d at p=1, want 45", got)
	}
	if _, err := RandomSimple(10, 1.5, rng); !errors.Is(err, errors.ErrCodeInvalidParameter) {
		t.Errorf("RandomSimple(10, 1.5) error = %v, want INVALID_PARAMETER", err)
	}
}

func TestCompleteBipartite(t *testing.T) {
	g, err := CompleteBipartite(3, 4)
	if err != nil {
		t.Fatalf("CompleteBipartite(3,4) error = %v", err)
	}
	if got := g.NumEdges(); got != 12 {
		t.Errorf("NumEdges() = %d, want 12", got)
	}
}

func TestRandomBipartiteLeftRegular(t *testing.T) {
	g, err := RandomBipartiteLeftRegular(6, 4, 3, testRNG())
	if err != nil {
		t.Fatalf("RandomBipartiteLeftRegular() error = %v", err)
	}
	for l := 1; l <= 6; l++ {
		ns := g.RightNeighbors(l)
		if len(ns) != 3 {
			t.Errorf("LeftDegree(%d) = %d, want 3", l, len(ns))
		}
		for i := 1; i < len(ns); i++ {
			if ns[i-1] >= ns[i] {
				t.Errorf("RightNeighbors(%d) = %v, want strictly ascending", l, ns)
				break
			}
		}
	}
	if _, err := RandomBipartiteLeftRegular(2, 3, 4, testRNG()); !errors.Is(err, errors.ErrCodeInvalidParameter) {
		t.Errorf("degree > right order: error = %v, want INVALID_PARAMETER", err)
	}
}

func TestRandomBipartiteEdges(t *testing.T) {
	g, err := RandomBipartiteEdges(4, 5, 9, testRNG())
	if err != nil {
		t.Fatalf("RandomBipartiteEdges() error = %v", err)
	}
	if got := g.NumEdges(); got != 9 {
		t.Errorf("NumEdges() = %d, want 9", got)
	}
	if _, err := RandomBipartiteEdges(2, 2, 5, testRNG()); !errors.Is(err, errors.ErrCodeInvalidParameter) {
		t.Errorf("too many edges: error = %v, want INVALID_PARAMETER", err)
	}
}

func TestPyramid(t *testing.T) {
	g, err := Pyramid(2)
	if err != nil {
		t.Fatalf("Pyramid(2) error = %v", err)
	}
	if got := g.Order(); got != 6 {
		t.Errorf("Order() = %d, want 6", got)
	}
	want := []Edge{{1, 4}, {2, 4}, {2, 5}, {3, 5}, {4, 6}, {5, 6}}
	got := g.Edges()
	if len(got) != len(want) {
		t.Fatalf("Edges() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Edges() = %v, want %v", got, want)
		}
	}
	if !g.IsDAG() {
		t.Error("IsDAG() = false for pyramid, want true")
	}
}

func TestCompleteBinaryTree(t *testing.T) {
	g, err := CompleteBinaryTree(2)
	if err != nil {
		t.Fatalf("CompleteBinaryTree(2) error = %v", err)
	}
	if got := g.Order(); got != 7 {
		t.Errorf("Order() = %d, want 7", got)
	}
	if !g.IsDAG() {
		t.Error("IsDAG() = false for complete binary tree, want true")
	}
	// The root is the last vertex and has the two subtree roots below it.
	if got := g.InDegree(7); got != 2 {
		t.Errorf("InDegree(root) = %d, want 2", got)
	}
	if got := g.OutDegree(7); got != 0 {
		t.Errorf("OutDegree(root) = %d, want 0", got)
	}
	// Leaves come first and have no predecessors.
	for v := 1; v <= 4; v++ {
		if got := g.InDegree(v); got != 0 {
			t.Errorf("InDegree(%d) = %d, want 0 for a leaf", v, got)
		}
	}
}

func TestPath(t *testing.T) {
	g, err := Path(3)
	if err != nil {
		t.Fatalf("Path(3) error = %v", err)
	}
	if got := g.Order(); got != 4 {
		t.Errorf("Order() = %d, want 4", got)
	}
	if got := g.NumEdges(); got != 3 {
		t.Errorf("NumEdges() = %d, want 3", got)
	}
	if !g.IsDAG() {
		t.Error("IsDAG() = false for path, want true")
	}
}
