package graphio

import (
	"strings"
	"testing"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
)

func TestReadMatrix(t *testing.T) {
	in := "2 3\n1 0 1\n0 1 0\n"
	g, err := ReadBipartite(strings.NewReader(in), FormatMatrix)
	if err != nil {
		t.Fatalf("ReadBipartite() error = %v", err)
	}
	if l, r := g.Order(); l != 2 || r != 3 {
		t.Fatalf("Order() = (%d,%d), want (2,3)", l, r)
	}
	want := []graph.Edge{{U: 1, V: 1}, {U: 1, V: 3}, {U: 2, V: 2}}
	got := g.Edges()
	if len(got) != len(want) {
		t.Fatalf("Edges() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Edges() = %v, want %v", got, want)
		}
	}
}

func TestMatrix_RoundTripIdentical(t *testing.T) {
	in := "2 3\n1 0 1\n0 1 0\n"
	g, err := ReadBipartite(strings.NewReader(in), FormatMatrix)
	if err != nil {
		t.Fatalf("ReadBipartite() error = %v", err)
	}
	var sb strings.Builder
	if err := Write(&sb, g, FormatMatrix); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := sb.String(); got != in {
		t.Errorf("round trip = %q, want %q", got, in)
	}
}

func TestReadMatrix_CommentsAndLineBreaks(t *testing.T) {
	in := "# a comment\n2 2\n1 1 0\n# another\n1\n"
	g, err := ReadBipartite(strings.NewReader(in), FormatMatrix)
	if err != nil {
		t.Fatalf("ReadBipartite() error = %v", err)
	}
	if got := g.NumEdges(); got != 3 {
		t.Errorf("NumEdges() = %d, want 3", got)
	}
}

func TestReadMatrix_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"missing entries", "2 2\n1 0 1\n"},
		{"extra entries", "2 2\n1 0 1 0 1\n"},
		{"bad entry", "1 1\n2\n"},
		{"bad dimensions", "two 2\n0 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadBipartite(strings.NewReader(tt.in), FormatMatrix); !errors.Is(err, errors.ErrCodeParse) {
				t.Errorf("ReadBipartite() error = %v, want PARSE_ERROR", err)
			}
		})
	}
}
