package graph

import (
	"slices"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

// Bipartite is a graph with two independent vertex ranges, a left range
// 1..L and a right range 1..R. Every edge connects a left vertex to a
// right vertex; the two ranges use separate numberings, so (2, 2) means
// "left vertex 2, right vertex 2".
//
// Edge enumeration walks left vertices in ascending order and, for each,
// its right neighbors in insertion order.
//
// The zero value is not usable. Use NewBipartite.
type Bipartite struct {
	left, right int
	adj         map[int][]int
	seen        map[Edge]struct{}
}

// NewBipartite creates a bipartite graph with left vertices 1..left and
// right vertices 1..right, and no edges.
func NewBipartite(left, right int) *Bipartite {
	return &Bipartite{
		left:  left,
		right: right,
		adj:   make(map[int][]int),
		seen:  make(map[Edge]struct{}),
	}
}

// LeftOrder returns the number of left vertices.
func (g *Bipartite) LeftOrder() int { return g.left }

// RightOrder returns the number of right vertices.
func (g *Bipartite) RightOrder() int { return g.right }

// Order returns the left and right vertex counts.
func (g *Bipartite) Order() (left, right int) { return g.left, g.right }

// NumEdges returns the number of distinct edges.
func (g *Bipartite) NumEdges() int { return len(g.seen) }

// AddEdge adds the edge (l, r) with l a left vertex and r a right
// vertex. Out-of-range endpoints are rejected. Re-adding an existing
// edge is a no-op.
func (g *Bipartite) AddEdge(l, r int) error {
	if l < 1 || l > g.left {
		return errors.New(errors.ErrCodeInvalidGraph, "left vertex %d out of range 1..%d", l, g.left)
	}
	if r < 1 || r > g.right {
		return errors.New(errors.ErrCodeInvalidGraph, "right vertex %d out of range 1..%d", r, g.right)
	}
	e := Edge{l, r}
	if _, ok := g.seen[e]; ok {
		return nil
	}
	g.seen[e] = struct{}{}
	g.adj[l] = append(g.adj[l], r)
	return nil
}

// AddEdgesFrom adds every edge in the sequence, stopping at the first
// failure.
func (g *Bipartite) AddEdgesFrom(edges []Edge) error {
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return err
		}
	}
	return nil
}

// HasEdge reports whether the edge (l, r) is present.
func (g *Bipartite) HasEdge(l, r int) bool {
	_, ok := g.seen[Edge{l, r}]
	return ok
}

// RightNeighbors returns the right neighbors of left vertex l in
// insertion order.
func (g *Bipartite) RightNeighbors(l int) []int {
	return slices.Clone(g.adj[l])
}

// LeftNeighbors returns the left neighbors of right vertex r in
// ascending order.
func (g *Bipartite) LeftNeighbors(r int) []int {
	var ls []int
	for l := 1; l <= g.left; l++ {
		if g.HasEdge(l, r) {
			ls = append(ls, l)
		}
	}
	return ls
}

// LeftDegree returns the number of right neighbors of left vertex l.
func (g *Bipartite) LeftDegree(l int) int { return len(g.adj[l]) }

// Edges returns all edges, grouped by left vertex in ascending order and
// within each group in insertion order. The order is stable across
// calls.
func (g *Bipartite) Edges() []Edge {
	edges := make([]Edge, 0, len(g.seen))
	for l := 1; l <= g.left; l++ {
		for _, r := range g.adj[l] {
			edges = append(edges, Edge{l, r})
		}
	}
	return edges
}
