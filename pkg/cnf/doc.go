// Package cnf implements propositional formulas in conjunctive normal form.
//
// A [Formula] is an append-only container: variables and clauses can be
// added but never removed, and insertion order is significant. The DIMACS
// and LaTeX serializers preserve that order verbatim, which is the
// compatibility contract with downstream SAT solvers.
//
// Variables are dense 1-based integer ids, optionally carrying a text
// label assigned at creation. Literals are signed non-zero integers: v
// for the variable, -v for its negation.
//
// # Validation modes
//
// By default AddClause rejects clauses containing a repeated literal or
// a variable with both polarities (tautology guard), and silently
// registers any variable id the clause mentions for the first time.
// Both behaviors are configurable at construction time:
//
//	f := cnf.New(cnf.WithLenientClauses())    // allow duplicates/tautologies
//	f := cnf.New(cnf.WithClosedVocabulary())  // unknown ids become errors
//
// A failed AddClause leaves the formula exactly as it was before the call.
package cnf
