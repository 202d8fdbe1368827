// Package graph provides the graph types consumed by formula constructors.
//
// Four variants are supported:
//
//   - [Simple]: undirected graphs with vertices 1..n
//   - [Bipartite]: two independent vertex ranges with edges across the split
//   - [Directed]: ordered edges, no acyclicity requirement
//   - DAG: a [Directed] graph whose numbering is a topological order,
//     checked by [Directed.IsDAG]
//
// All vertices are dense 1-based integers. Edge storage is owned by the
// graph; accessors return copies. None of the types are safe for
// concurrent mutation.
//
// The package also ships deterministic and randomized generators for the
// standard benchmark graphs (pyramids, trees, complete and random
// bipartite graphs).
package graph
