package graph

import (
	"slices"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

// Directed is a directed graph over vertices 1..n. Adding an edge twice
// is a no-op.
//
// A Directed graph counts as a DAG only when its vertex numbering is a
// topological order, i.e. every edge (u, v) satisfies u < v. Use IsDAG
// to check; the graph is never reordered automatically.
//
// The zero value is not usable. Use NewDirected.
type Directed struct {
	n    int
	succ map[int]map[int]struct{}
	pred map[int]map[int]struct{}
	m    int
}

// NewDirected creates a directed graph with vertices 1..n and no edges.
func NewDirected(n int) *Directed {
	return &Directed{
		n:    n,
		succ: make(map[int]map[int]struct{}),
		pred: make(map[int]map[int]struct{}),
	}
}

// Order returns the number of vertices.
func (g *Directed) Order() int { return g.n }

// NumEdges returns the number of distinct edges.
func (g *Directed) NumEdges() int { return g.m }

// AddEdge adds the edge (u, v). Both endpoints must be in range
// 1..Order(). Re-adding an existing edge is a no-op.
func (g *Directed) AddEdge(u, v int) error {
	if u < 1 || u > g.n {
		return errors.New(errors.ErrCodeInvalidGraph, "vertex %d out of range 1..%d", u, g.n)
	}
	if v < 1 || v > g.n {
		return errors.New(errors.ErrCodeInvalidGraph, "vertex %d out of range 1..%d", v, g.n)
	}
	if g.HasEdge(u, v) {
		return nil
	}
	if g.succ[u] == nil {
		g.succ[u] = make(map[int]struct{})
	}
	if g.pred[v] == nil {
		g.pred[v] = make(map[int]struct{})
	}
	g.succ[u][v] = struct{}{}
	g.pred[v][u] = struct{}{}
	g.m++
	return nil
}

// AddEdgesFrom adds every edge in the sequence, stopping at the first
// failure.
func (g *Directed) AddEdgesFrom(edges []Edge) error {
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return err
		}
	}
	return nil
}

// HasEdge reports whether the edge (u, v) is present.
func (g *Directed) HasEdge(u, v int) bool {
	_, ok := g.succ[u][v]
	return ok
}

// Successors returns the out-neighbors of v in ascending order.
func (g *Directed) Successors(v int) []int { return sortedKeys(g.succ[v]) }

// Predecessors returns the in-neighbors of v in ascending order.
func (g *Directed) Predecessors(v int) []int { return sortedKeys(g.pred[v]) }

// OutDegree returns the number of out-neighbors of v.
func (g *Directed) OutDegree(v int) int { return len(g.succ[v]) }

// InDegree returns the number of in-neighbors of v.
func (g *Directed) InDegree(v int) int { return len(g.pred[v]) }

// Edges returns all edges in ascending lexicographic order. The order is
// stable across calls.
func (g *Directed) Edges() []Edge {
	edges := make([]Edge, 0, g.m)
	for u := 1; u <= g.n; u++ {
		for v := range g.succ[u] {
			edges = append(edges, Edge{u, v})
		}
	}
	slices.SortFunc(edges, compareEdges)
	return edges
}

// IsDAG reports whether every edge (u, v) satisfies u < v, i.e. whether
// the vertex numbering is a topological order. A directed graph can be
// acyclic yet fail this check when its numbering is not topological.
// IsDAG is a pure query and never modifies the graph.
func (g *Directed) IsDAG() bool {
	_, ok := g.DAGViolation()
	return !ok
}

// DAGViolation returns the smallest edge (u, v) with u >= v, if any.
// It is used to report which edge breaks the topological numbering.
func (g *Directed) DAGViolation() (Edge, bool) {
	for _, e := range g.Edges() {
		if e.U >= e.V {
			return e, true
		}
	}
	return Edge{}, false
}

func sortedKeys(set map[int]struct{}) []int {
	ks := make([]int, 0, len(set))
	for k := range set {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}
