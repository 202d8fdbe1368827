// Package transform rewrites CNF formulas while preserving their
// hardness character: variable substitutions that replace each
// variable with a small boolean function over fresh copies, and
// shuffles that permute variables, clauses and literal polarities.
//
// Transformations never mutate their input formula.
package transform
