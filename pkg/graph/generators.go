package graph

import (
	"math/rand/v2"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

// Complete returns the complete graph K_n.
func Complete(n int) (*Simple, error) {
	if err := errors.ValidateNonNegative("order", n); err != nil {
		return nil, err
	}
	g := NewSimple(n)
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			_ = g.AddEdge(u, v)
		}
	}
	return g, nil
}

// Cycle returns the cycle graph C_n. The order must be at least 3.
func Cycle(n int) (*Simple, error) {
	if n < 3 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "cycle needs at least 3 vertices, got %d", n)
	}
	g := NewSimple(n)
	for v := 1; v < n; v++ {
		_ = g.AddEdge(v, v+1)
	}
	_ = g.AddEdge(n, 1)
	return g, nil
}

// RandomSimple returns a G(n, p) random graph: each of the n*(n-1)/2
// possible edges is included independently with probability p.
func RandomSimple(n int, p float64, rng *rand.Rand) (*Simple, error) {
	if err := errors.ValidateNonNegative("order", n); err != nil {
		return nil, err
	}
	if err := errors.ValidateProbability("edge probability", p); err != nil {
		return nil, err
	}
	g := NewSimple(n)
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			if rng.Float64() < p {
				_ = g.AddEdge(u, v)
			}
		}
	}
	return g, nil
}

// CompleteBipartite returns the complete bipartite graph K_{l,r}.
func CompleteBipartite(l, r int) (*Bipartite, error) {
	if err := errors.ValidateNonNegative("left order", l); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("right order", r); err != nil {
		return nil, err
	}
	g := NewBipartite(l, r)
	for u := 1; u <= l; u++ {
		for v := 1; v <= r; v++ {
			_ = g.AddEdge(u, v)
		}
	}
	return g, nil
}

// RandomBipartite returns a random bipartite graph where each of the l*r
// possible edges is included independently with probability p.
func RandomBipartite(l, r int, p float64, rng *rand.Rand) (*Bipartite, error) {
	if err := errors.ValidateNonNegative("left order", l); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("right order", r); err != nil {
		return nil, err
	}
	if err := errors.ValidateProbability("edge probability", p); err != nil {
		return nil, err
	}
	g := NewBipartite(l, r)
	for u := 1; u <= l; u++ {
		for v := 1; v <= r; v++ {
			if rng.Float64() < p {
				_ = g.AddEdge(u, v)
			}
		}
	}
	return g, nil
}

// RandomBipartiteLeftRegular returns a random bipartite graph where each
// left vertex gets exactly d distinct right neighbors, listed in
// ascending order. The degree d must not exceed the right order.
func RandomBipartiteLeftRegular(l, r, d int, rng *rand.Rand) (*Bipartite, error) {
	if err := errors.ValidateNonNegative("left order", l); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("right order", r); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("left degree", d); err != nil {
		return nil, err
	}
	if d > r {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"left degree %d exceeds right order %d", d, r)
	}
	g := NewBipartite(l, r)
	for u := 1; u <= l; u++ {
		for _, v := range sampleSorted(r, d, rng) {
			_ = g.AddEdge(u, v)
		}
	}
	return g, nil
}

// RandomBipartiteEdges returns a random bipartite graph with exactly m
// distinct edges sampled uniformly from the l*r possible ones.
func RandomBipartiteEdges(l, r, m int, rng *rand.Rand) (*Bipartite, error) {
	if err := errors.ValidateNonNegative("left order", l); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("right order", r); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("edge count", m); err != nil {
		return nil, err
	}
	if m > l*r {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"edge count %d exceeds the %d possible edges", m, l*r)
	}
	g := NewBipartite(l, r)
	for _, k := range sampleSorted(l*r, m, rng) {
		_ = g.AddEdge((k-1)/r+1, (k-1)%r+1)
	}
	return g, nil
}

// Pyramid returns the pyramid DAG of the given height. Layer 0 holds the
// height+1 sources; each vertex in layer k+1 has the two vertices below
// it as predecessors. Vertices are numbered layer by layer from the
// bottom, so the numbering is topological.
func Pyramid(height int) (*Directed, error) {
	if err := errors.ValidateNonNegative("height", height); err != nil {
		return nil, err
	}
	n := (height + 1) * (height + 2) / 2
	g := NewDirected(n)
	base := 0
	for layer := 0; layer < height; layer++ {
		width := height + 1 - layer
		for i := 1; i < width; i++ {
			_ = g.AddEdge(base+i, base+width+i)
			_ = g.AddEdge(base+i+1, base+width+i)
		}
		base += width
	}
	return g, nil
}

// CompleteBinaryTree returns the complete binary tree DAG of the given
// height, with edges oriented from leaves to root. Vertices are numbered
// leaves first and root last, so the numbering is topological.
func CompleteBinaryTree(height int) (*Directed, error) {
	if err := errors.ValidateNonNegative("height", height); err != nil {
		return nil, err
	}
	n := 1<<(height+1) - 1
	g := NewDirected(n)
	for i := 0; i < n/2; i++ {
		_ = g.AddEdge(n-2*i-1, n-i)
		_ = g.AddEdge(n-2*i-2, n-i)
	}
	return g, nil
}

// Path returns the path DAG with the given number of edges, i.e.
// length+1 vertices chained as 1 -> 2 -> ... -> length+1.
func Path(length int) (*Directed, error) {
	if err := errors.ValidateNonNegative("length", length); err != nil {
		return nil, err
	}
	g := NewDirected(length + 1)
	for v := 1; v <= length; v++ {
		_ = g.AddEdge(v, v+1)
	}
	return g, nil
}

// sampleSorted draws k distinct values from 1..n and returns them in
// ascending order.
func sampleSorted(n, k int, rng *rand.Rand) []int {
	picked := make(map[int]struct{}, k)
	for len(picked) < k {
		picked[rng.IntN(n)+1] = struct{}{}
	}
	return sortedKeys(picked)
}
