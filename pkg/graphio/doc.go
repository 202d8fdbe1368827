// Package graphio reads and writes the graph types of pkg/graph in the
// interchange formats used by SAT benchmark tooling.
//
// Five formats are supported: GML, DOT, KTH adjacency lists, DIMACS
// edge format and bipartite adjacency matrices. Not every format can
// carry every graph kind; the supported combinations are
//
//	format    simple  bipartite  digraph  dag
//	gml       yes     yes        yes      yes
//	dot       yes     yes        yes      yes
//	kthlist   yes     yes        yes      yes
//	dimacs    yes     no         yes      no
//	matrix    no      yes        no       no
//
// Reading a DAG additionally requires the vertex numbering to be
// topological (every edge goes from a lower to a higher vertex).
//
// Callers pick a graph [Kind] and either an explicit [Format] or a file
// extension to detect it from. Readers are pure functions from bytes to
// a freshly built graph; a failed read returns no partial graph.
// Writers are the structural inverses of the readers, although the
// output text is not guaranteed to be byte-identical to the input.
package graphio
