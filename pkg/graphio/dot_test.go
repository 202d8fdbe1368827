package graphio

import (
	"strings"
	"testing"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

func TestReadDOTSimple(t *testing.T) {
	in := "graph G {\n  1 -- 2;\n  2 -- 3;\n}\n"
	g, err := ReadSimple(strings.NewReader(in), FormatDOT)
	if err != nil {
		t.Fatalf("ReadSimple() error = %v", err)
	}
	if got := g.Order(); got != 3 {
		t.Errorf("Order() = %d, want 3", got)
	}
	if !g.HasEdge(1, 2) || !g.HasEdge(2, 3) {
		t.Errorf("edges = %v", g.Edges())
	}
}

func TestReadDOT_EdgeChainAndQuotedNames(t *testing.T) {
	in := "graph {\n  \"1\" -- \"2\" -- \"3\";\n}\n"
	g, err := ReadSimple(strings.NewReader(in), FormatDOT)
	if err != nil {
		t.Fatalf("ReadSimple() error = %v", err)
	}
	if got := g.NumEdges(); got != 2 {
		t.Errorf("NumEdges() = %d, want 2", got)
	}
}

func TestReadDOT_CommentsAndDefaults(t *testing.T) {
	in := `digraph G {
  // defaults are ignored
  node [shape=box];
  /* block
     comment */
  1 -> 2;
}
`
	g, err := ReadDirected(strings.NewReader(in), FormatDOT)
	if err != nil {
		t.Fatalf("ReadDirected() error = %v", err)
	}
	if !g.HasEdge(1, 2) {
		t.Errorf("edges = %v, want 1->2", g.Edges())
	}
}

func TestReadDOT_KindMismatch(t *testing.T) {
	if _, err := ReadSimple(strings.NewReader("digraph { 1 -> 2; }"), FormatDOT); !errors.Is(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("ReadSimple(digraph) error = %v, want TYPE_MISMATCH", err)
	}
	if _, err := ReadDirected(strings.NewReader("graph { 1 -- 2; }"), FormatDOT); !errors.Is(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("ReadDirected(graph) error = %v, want TYPE_MISMATCH", err)
	}
}

func TestReadDOT_WrongEdgeOperator(t *testing.T) {
	if _, err := ReadSimple(strings.NewReader("graph { 1 -> 2; }"), FormatDOT); !errors.Is(err, errors.ErrCodeParse) {
		t.Errorf("-> inside graph: error = %v, want PARSE_ERROR", err)
	}
}

func TestReadDOTBipartite(t *testing.T) {
	in := `graph G {
  1 [bipartite=0];
  2 [bipartite=0];
  3 [bipartite=1];
  1 -- 3;
  3 -- 2;
}
`
	g, err := ReadBipartite(strings.NewReader(in), FormatDOT)
	if err != nil {
		t.Fatalf("ReadBipartite() error = %v", err)
	}
	if l, r := g.Order(); l != 2 || r != 1 {
		t.Fatalf("Order() = (%d,%d), want (2,1)", l, r)
	}
	if !g.HasEdge(1, 1) || !g.HasEdge(2, 1) {
		t.Errorf("edges = %v", g.Edges())
	}
}

func TestReadDOTBipartite_MissingAttribute(t *testing.T) {
	in := "graph { 1 [bipartite=0]; 1 -- 2; }"
	if _, err := ReadBipartite(strings.NewReader(in), FormatDOT); !errors.Is(err, errors.ErrCodeParse) {
		t.Errorf("ReadBipartite() error = %v, want PARSE_ERROR for missing attribute", err)
	}
}

func TestReadDOT_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"not a graph", "strict tree { }"},
		{"missing brace", "graph G \n 1 -- 2;"},
		{"unterminated body", "graph { 1 -- 2;"},
		{"non-integer node", "graph { a -- b; }"},
		{"unterminated comment", "graph { /* 1 -- 2; }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadSimple(strings.NewReader(tt.in), FormatDOT); !errors.Is(err, errors.ErrCodeParse) {
				t.Errorf("ReadSimple() error = %v, want PARSE_ERROR", err)
			}
		})
	}
}

func TestWriteDOTBipartite_Output(t *testing.T) {
	g, err := ReadBipartite(strings.NewReader("1 2\n1 0\n"), FormatMatrix)
	if err != nil {
		t.Fatalf("ReadBipartite(matrix) error = %v", err)
	}
	var sb strings.Builder
	if err := Write(&sb, g, FormatDOT); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := "graph G {\n  1 [bipartite=0];\n  2 [bipartite=1];\n  3 [bipartite=1];\n  1 -- 2;\n}\n"
	if got := sb.String(); got != want {
		t.Errorf("dot output = %q, want %q", got, want)
	}
}
