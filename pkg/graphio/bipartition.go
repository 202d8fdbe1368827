package graphio

import (
	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

type side uint8

const (
	uncolored side = iota
	sideLeft
	sideRight
)

func (s side) opposite() side {
	switch s {
	case sideLeft:
		return sideRight
	case sideRight:
		return sideLeft
	}
	return uncolored
}

// inferBipartition two-colors the vertices 1..n from adjacency lines in
// file order. For each line it first tries to put the subject on the
// left and its neighbors on the right; if that clashes with colors
// already committed it tries the opposite assignment, and if both clash
// it fails with a BIPARTITION_CONFLICT error naming the line.
//
// The procedure is greedy and never backtracks: an early tie-break can
// lock in colors that a later line cannot satisfy, so it may reject a
// graph that is in fact bipartite. This is a documented limitation of
// the format, kept for compatibility.
//
// Vertices that never occur on any line default to the right side.
func inferBipartition(n int, lines []adjacencyLine) ([]side, error) {
	colors := make([]side, n+1)
	for _, l := range lines {
		if !tryColor(colors, l, sideLeft) && !tryColor(colors, l, sideRight) {
			return nil, errors.New(errors.ErrCodeBipartitionConflict,
				"line %d: adjacency of vertex %d fits neither side of the bipartition",
				l.line, l.subject)
		}
	}
	for v := 1; v <= n; v++ {
		if colors[v] == uncolored {
			colors[v] = sideRight
		}
	}
	return colors, nil
}

// tryColor attempts to put the subject of l on the given side and its
// neighbors on the opposite one. It commits the assignment and returns
// true unless some vertex is already colored the other way, in which
// case colors is left unchanged.
func tryColor(colors []side, l adjacencyLine, subject side) bool {
	if colors[l.subject] == subject.opposite() {
		return false
	}
	for _, v := range l.neighbors {
		if colors[v] == subject {
			return false
		}
	}
	colors[l.subject] = subject
	for _, v := range l.neighbors {
		colors[v] = subject.opposite()
	}
	return true
}
