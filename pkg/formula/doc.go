// Package formula builds benchmark CNF formulas from combinatorial
// principles and input graphs.
//
// Every constructor validates its parameters, registers labeled
// variables in a documented order and returns a fresh *cnf.Formula.
// Variable numbering and clause order are deterministic, so the DIMACS
// serialization of a formula is stable across runs. Constructors that
// sample (RandomKCNF) take an explicit *rand.Rand instead.
package formula
