// Package pkg provides the core libraries for cnfgen, a generator of
// CNF benchmark formulas.
//
// # Overview
//
// The pkg directory is organized around the life of a formula:
//
//  1. [graph] - Graph structures and generators (simple, bipartite, directed)
//  2. [graphio] - Graph file formats (GML, DOT, kthlist, DIMACS edge, matrix)
//  3. [cnf] - The CNF formula model and its DIMACS/LaTeX serialization
//  4. [formula] - Formula families built on graphs and counting arguments
//  5. [transform] - Variable substitutions and formula shuffling
//  6. [sat] - Satisfiability checking through the gini solver
//  7. [batch] - TOML manifests describing formula generation runs
//
// # Architecture
//
// The typical data flow through cnfgen:
//
//	Graph file or built-in generator
//	         ↓
//	    [graph] package (graph structure)
//	         ↓
//	    [formula] package (encode the combinatorial principle)
//	         ↓
//	    [transform] package (substitute, shuffle)
//	         ↓
//	    DIMACS or LaTeX output, optionally checked with [sat]
//
// # Quick Start
//
// Generate a pigeonhole principle formula and print it:
//
//	f, err := formula.PigeonholePrinciple(5, 4, formula.PHPOptions{})
//	if err != nil {
//	    return err
//	}
//	fmt.Print(f.DIMACS())
//
// Build a Tseitin formula over a graph read from a file:
//
//	g, err := graphio.ReadFile("graph.gml", graphio.KindSimple, graphio.FormatUnknown)
//	if err != nil {
//	    return err
//	}
//	f, err := formula.TseitinFormula(g.(*graph.Simple), nil)
//
// Supporting packages [errors] and [buildinfo] carry the error codes
// shared across the module and the build-time version information.
//
// [graph]: https://pkg.go.dev/github.com/MassimoLauria/cnfgen/pkg/graph
// [graphio]: https://pkg.go.dev/github.com/MassimoLauria/cnfgen/pkg/graphio
// [cnf]: https://pkg.go.dev/github.com/MassimoLauria/cnfgen/pkg/cnf
// [formula]: https://pkg.go.dev/github.com/MassimoLauria/cnfgen/pkg/formula
// [transform]: https://pkg.go.dev/github.com/MassimoLauria/cnfgen/pkg/transform
// [sat]: https://pkg.go.dev/github.com/MassimoLauria/cnfgen/pkg/sat
// [batch]: https://pkg.go.dev/github.com/MassimoLauria/cnfgen/pkg/batch
// [errors]: https://pkg.go.dev/github.com/MassimoLauria/cnfgen/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/MassimoLauria/cnfgen/pkg/buildinfo
package pkg
