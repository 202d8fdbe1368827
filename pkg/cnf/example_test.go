package cnf_test

import (
	"fmt"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
)

func ExampleFormula_DIMACS() {
	f := cnf.New()
	f.NewVariable("a")
	f.NewVariable("b")
	f.NewVariable("c")

	_ = f.AddClause(1, 2, -3)
	_ = f.AddClause(-2, 3)

	fmt.Print(f.DIMACS())
	// Output:
	// p cnf 3 2
	// 1 2 -3 0
	// -2 3 0
}

func ExampleFormula_LaTeX() {
	f := cnf.New()
	f.NewVariable("a")
	f.NewVariable("b")

	_ = f.AddClause(1, -2)

	fmt.Printf("%q\n", f.LaTeX())
	// Output:
	// "\\ensuremath{%\n      \\left( {a} \\lor \\overline{b} \\right) }\n"
}
