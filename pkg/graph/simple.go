package graph

import (
	"slices"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

// Edge is a pair of vertex indices. For undirected graphs the pair is
// normalized so that U <= V; for directed graphs U is the tail and V the
// head.
type Edge struct {
	U, V int
}

// Simple is an undirected graph over vertices 1..n. Adding an edge twice
// is a no-op. Self-loops are representable; callers that need strict
// simple graphs must reject them.
//
// The zero value is not usable. Use NewSimple.
type Simple struct {
	n   int
	adj map[int]map[int]struct{}
	m   int
}

// NewSimple creates an undirected graph with vertices 1..n and no edges.
func NewSimple(n int) *Simple {
	return &Simple{n: n, adj: make(map[int]map[int]struct{})}
}

// Order returns the number of vertices.
func (g *Simple) Order() int { return g.n }

// NumEdges returns the number of distinct edges.
func (g *Simple) NumEdges() int { return g.m }

// AddEdge adds the undirected edge {u, v}. Both endpoints must be in
// range 1..Order(). Re-adding an existing edge is a no-op.
func (g *Simple) AddEdge(u, v int) error {
	if u < 1 || u > g.n {
		return errors.New(errors.ErrCodeInvalidGraph, "vertex %d out of range 1..%d", u, g.n)
	}
	if v < 1 || v > g.n {
		return errors.New(errors.ErrCodeInvalidGraph, "vertex %d out of range 1..%d", v, g.n)
	}
	if g.HasEdge(u, v) {
		return nil
	}
	g.link(u, v)
	g.link(v, u)
	g.m++
	return nil
}

// AddEdgesFrom adds every edge in the sequence, stopping at the first
// failure.
func (g *Simple) AddEdgesFrom(edges []Edge) error {
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return err
		}
	}
	return nil
}

// HasEdge reports whether the edge {u, v} is present. Endpoint order is
// irrelevant.
func (g *Simple) HasEdge(u, v int) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Neighbors returns the neighbors of v in ascending order.
func (g *Simple) Neighbors(v int) []int {
	ns := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		ns = append(ns, u)
	}
	slices.Sort(ns)
	return ns
}

// Edges returns all edges as normalized pairs (U <= V) in ascending
// lexicographic order. The order is stable across calls.
func (g *Simple) Edges() []Edge {
	edges := make([]Edge, 0, g.m)
	for u := 1; u <= g.n; u++ {
		for v := range g.adj[u] {
			if v >= u {
				edges = append(edges, Edge{u, v})
			}
		}
	}
	slices.SortFunc(edges, compareEdges)
	return edges
}

// Degree returns the number of neighbors of v. A self-loop counts once.
func (g *Simple) Degree(v int) int { return len(g.adj[v]) }

func (g *Simple) link(u, v int) {
	if g.adj[u] == nil {
		g.adj[u] = make(map[int]struct{})
	}
	g.adj[u][v] = struct{}{}
}

func compareEdges(a, b Edge) int {
	if a.U != b.U {
		return a.U - b.U
	}
	return a.V - b.V
}
