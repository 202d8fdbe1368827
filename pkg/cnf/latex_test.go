package cnf

import (
	"strings"
	"testing"
)

func TestLaTeX_Clauses(t *testing.T) {
	f := New()
	f.NewVariable("x_1")
	f.NewVariable("x_2")
	f.NewVariable("x_3")
	if err := f.AddClauses([][]int{{-1, 2, -3}, {-2, -3}}); err != nil {
		t.Fatalf("AddClauses() error = %v", err)
	}
	want := "\\ensuremath{%\n" +
		"      \\left( \\overline{x_1} \\lor {x_2} \\lor \\overline{x_3} \\right)\n" +
		"\\land \\left( \\overline{x_2} \\lor \\overline{x_3} \\right) }\n"
	if got := f.LaTeX(); got != want {
		t.Errorf("LaTeX() = %q, want %q", got, want)
	}
}

func TestLaTeX_EmptyFormulaIsTop(t *testing.T) {
	f := New()
	want := "\\ensuremath{%\n   \\top }\n"
	if got := f.LaTeX(); got != want {
		t.Errorf("LaTeX() = %q, want %q", got, want)
	}
}

func TestLaTeX_EmptyClauseIsSquare(t *testing.T) {
	f := New()
	if err := f.AddClause(); err != nil {
		t.Fatalf("AddClause() error = %v", err)
	}
	if got := f.LaTeX(); !strings.Contains(got, "\\square") {
		t.Errorf("LaTeX() = %q, want it to contain \\square", got)
	}
}

func TestLaTeX_HeaderComments(t *testing.T) {
	f := New()
	f.AddComment("Tseitin formula")
	if got := f.LaTeX(); !strings.HasPrefix(got, "% Tseitin formula\n") {
		t.Errorf("LaTeX() = %q, want %% comment prefix", got)
	}
}

func TestLaTeX_UnlabeledVariables(t *testing.T) {
	f := New()
	if err := f.AddClause(1, -2); err != nil {
		t.Fatalf("AddClause() error = %v", err)
	}
	got := f.LaTeX()
	if !strings.Contains(got, "{x1}") || !strings.Contains(got, "\\overline{x2}") {
		t.Errorf("LaTeX() = %q, want generated x1/x2 names", got)
	}
}
