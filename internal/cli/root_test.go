package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MassimoLauria/cnfgen/pkg/formula"
	"github.com/MassimoLauria/cnfgen/pkg/graphio"
)

const triangleKTH = "3\n1 : 2 3 0\n2 : 3 0\n"

func TestPHPCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "php.cnf")

	cmd := newPHPCmd()
	cmd.SetArgs([]string{"-p", "3", "-H", "2", "-o", out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("php command failed: %v", err)
	}

	want, err := formula.PigeonholePrinciple(3, 2, formula.PHPOptions{})
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want.DIMACS() {
		t.Errorf("php output = %q, want %q", got, want.DIMACS())
	}
}

func TestPHPCommand_TransformAndCheck(t *testing.T) {
	out := filepath.Join(t.TempDir(), "php.cnf")

	cmd := newPHPCmd()
	cmd.SetArgs([]string{"-p", "2", "-H", "2", "-T", "xor", "--rank", "2", "--check", "-o", out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("php command failed: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	text := string(got)
	if !strings.Contains(text, "c Substitution with XOR of 2") {
		t.Errorf("output misses the substitution header:\n%s", text)
	}
	if !strings.Contains(text, "c satisfiable: yes") {
		t.Errorf("output misses the satisfiability comment:\n%s", text)
	}
}

func TestTseitinCommand_BadGraphFormat(t *testing.T) {
	cmd := newTseitinCmd()
	cmd.SetArgs([]string{"-i", "g.xyz", "--graph-format", "xyz"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown graph format")
	}
}

func TestGraphConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "triangle.kthlist")
	out := filepath.Join(dir, "triangle.gml")
	if err := os.WriteFile(in, []byte(triangleKTH), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newGraphCmd()
	cmd.SetArgs([]string{"convert", "-i", in, "-o", out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("graph convert failed: %v", err)
	}

	g, err := graphio.ReadFile(out, graphio.KindSimple, graphio.FormatGML)
	if err != nil {
		t.Fatalf("reading converted graph: %v", err)
	}
	if g.NumEdges() != 3 {
		t.Errorf("converted graph has %d edges, want 3", g.NumEdges())
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "php.cnf")
	manifest := filepath.Join(dir, "run.toml")
	text := "[[job]]\nfamily = \"php\"\npigeons = 3\nholes = 2\noutput = " +
		"\"" + out + "\"\n"
	if err := os.WriteFile(manifest, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newBatchCmd()
	cmd.SetArgs([]string{manifest})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("batch command failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("batch did not write the output file: %v", err)
	}
}
