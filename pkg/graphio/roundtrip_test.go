package graphio

import (
	"slices"
	"strings"
	"testing"

	"github.com/MassimoLauria/cnfgen/pkg/graph"
)

// Round trips check structural equivalence (same edge set), not
// byte-identical text.

func TestRoundTrip_Simple(t *testing.T) {
	g := graph.NewSimple(5)
	mustAdd(t, g.AddEdgesFrom([]graph.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 4}}))
	// vertex 5 stays isolated

	for _, format := range []Format{FormatGML, FormatDOT, FormatKTHList, FormatDIMACS} {
		t.Run(format.String(), func(t *testing.T) {
			var sb strings.Builder
			if err := Write(&sb, g, format); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			back, err := ReadSimple(strings.NewReader(sb.String()), format)
			if err != nil {
				t.Fatalf("ReadSimple() error = %v\ninput:\n%s", err, sb.String())
			}
			if back.Order() != g.Order() {
				t.Errorf("Order() = %d, want %d", back.Order(), g.Order())
			}
			if !slices.Equal(back.Edges(), g.Edges()) {
				t.Errorf("Edges() = %v, want %v", back.Edges(), g.Edges())
			}
		})
	}
}

func TestRoundTrip_Directed(t *testing.T) {
	g := graph.NewDirected(4)
	mustAdd(t, g.AddEdgesFrom([]graph.Edge{{U: 2, V: 1}, {U: 1, V: 3}, {U: 4, V: 3}}))

	for _, format := range []Format{FormatGML, FormatDOT, FormatKTHList, FormatDIMACS} {
		t.Run(format.String(), func(t *testing.T) {
			var sb strings.Builder
			if err := Write(&sb, g, format); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			back, err := ReadDirected(strings.NewReader(sb.String()), format)
			if err != nil {
				t.Fatalf("ReadDirected() error = %v\ninput:\n%s", err, sb.String())
			}
			if back.Order() != g.Order() {
				t.Errorf("Order() = %d, want %d", back.Order(), g.Order())
			}
			if !slices.Equal(back.Edges(), g.Edges()) {
				t.Errorf("Edges() = %v, want %v", back.Edges(), g.Edges())
			}
		})
	}
}

func TestRoundTrip_DAG(t *testing.T) {
	g, err := graph.Pyramid(2)
	if err != nil {
		t.Fatalf("Pyramid(2) error = %v", err)
	}

	for _, format := range []Format{FormatGML, FormatDOT, FormatKTHList} {
		t.Run(format.String(), func(t *testing.T) {
			var sb strings.Builder
			if err := Write(&sb, g, format); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			back, err := ReadDAG(strings.NewReader(sb.String()), format)
			if err != nil {
				t.Fatalf("ReadDAG() error = %v\ninput:\n%s", err, sb.String())
			}
			if !slices.Equal(back.Edges(), g.Edges()) {
				t.Errorf("Edges() = %v, want %v", back.Edges(), g.Edges())
			}
		})
	}
}

func TestRoundTrip_Bipartite(t *testing.T) {
	g := graph.NewBipartite(3, 2)
	mustAdd(t, g.AddEdgesFrom([]graph.Edge{{U: 1, V: 2}, {U: 2, V: 1}, {U: 3, V: 2}}))

	for _, format := range []Format{FormatGML, FormatDOT, FormatKTHList, FormatMatrix} {
		t.Run(format.String(), func(t *testing.T) {
			var sb strings.Builder
			if err := Write(&sb, g, format); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			back, err := ReadBipartite(strings.NewReader(sb.String()), format)
			if err != nil {
				t.Fatalf("ReadBipartite() error = %v\ninput:\n%s", err, sb.String())
			}
			l, r := back.Order()
			if wl, wr := g.Order(); l != wl || r != wr {
				t.Errorf("Order() = (%d,%d), want (%d,%d)", l, r, wl, wr)
			}
			for _, e := range g.Edges() {
				if !back.HasEdge(e.U, e.V) {
					t.Errorf("edge (%d,%d) lost in %s round trip", e.U, e.V, format)
				}
			}
			if back.NumEdges() != g.NumEdges() {
				t.Errorf("NumEdges() = %d, want %d", back.NumEdges(), g.NumEdges())
			}
		})
	}
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("building graph: %v", err)
	}
}
