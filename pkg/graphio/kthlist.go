package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
)

// adjacencyLine is one parsed "i : j1 j2 ... jk 0" line of a KTH
// adjacency-list file, with its 1-based position for error messages.
type adjacencyLine struct {
	line      int
	subject   int
	neighbors []int
}

// parseKTH reads the generic structure of a KTH adjacency-list file:
// optional "c" comment lines, one vertex count line, then adjacency
// lines in file order. All vertex indices are checked against the
// declared count.
func parseKTH(r io.Reader) (n int, lines []adjacencyLine, err error) {
	n = -1
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		text := sc.Text()
		if strings.HasPrefix(text, "c") {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if !strings.Contains(text, ":") {
			if n >= 0 {
				return 0, nil, errors.New(errors.ErrCodeParse,
					"line %d: second vertex count line", lineno)
			}
			n, err = strconv.Atoi(strings.TrimSpace(text))
			if err != nil || n < 0 {
				return 0, nil, errors.New(errors.ErrCodeParse,
					"line %d: non-negative vertex count expected", lineno)
			}
			continue
		}
		if n < 0 {
			return 0, nil, errors.New(errors.ErrCodeParse,
				"line %d: adjacency line before the vertex count", lineno)
		}
		subjectStr, rest, _ := strings.Cut(text, ":")
		subject, err := strconv.Atoi(strings.TrimSpace(subjectStr))
		if err != nil {
			return 0, nil, errors.New(errors.ErrCodeParse,
				"line %d: non-integer vertex id", lineno)
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 || fields[len(fields)-1] != "0" {
			return 0, nil, errors.New(errors.ErrCodeParse,
				"line %d: adjacency list must end with 0", lineno)
		}
		neighbors := make([]int, 0, len(fields)-1)
		for _, f := range fields[:len(fields)-1] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return 0, nil, errors.New(errors.ErrCodeParse,
					"line %d: non-integer vertex id %q", lineno, f)
			}
			neighbors = append(neighbors, v)
		}
		if subject < 1 || subject > n {
			return 0, nil, errors.New(errors.ErrCodeParse,
				"line %d: vertex %d out of range 1..%d", lineno, subject, n)
		}
		for _, v := range neighbors {
			if v < 1 || v > n {
				return 0, nil, errors.New(errors.ErrCodeParse,
					"line %d: vertex %d out of range 1..%d", lineno, v, n)
			}
		}
		lines = append(lines, adjacencyLine{line: lineno, subject: subject, neighbors: neighbors})
	}
	if err := sc.Err(); err != nil {
		return 0, nil, errors.Wrap(errors.ErrCodeParse, err, "reading adjacency list")
	}
	if n < 0 {
		return 0, nil, errors.New(errors.ErrCodeParse, "missing vertex count line")
	}
	return n, lines, nil
}

// readKTHSimple reads an undirected graph. An edge {u, v} is accepted
// when it is listed on u's line, on v's line, or both; the strict
// format requires both, this reader is deliberately more permissive.
func readKTHSimple(r io.Reader) (*graph.Simple, error) {
	n, lines, err := parseKTH(r)
	if err != nil {
		return nil, err
	}
	g := graph.NewSimple(n)
	for _, l := range lines {
		for _, v := range l.neighbors {
			if err := g.AddEdge(l.subject, v); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// readKTHDirected reads a directed graph. Each line lists the
// out-neighbors of its subject vertex.
func readKTHDirected(r io.Reader) (*graph.Directed, error) {
	n, lines, err := parseKTH(r)
	if err != nil {
		return nil, err
	}
	g := graph.NewDirected(n)
	for _, l := range lines {
		for _, v := range l.neighbors {
			if err := g.AddEdge(l.subject, v); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// readKTHBipartite reads a bipartite graph from a KTH file with no
// explicit side information, using the greedy two-coloring of
// inferBipartition. Left and right vertices keep their relative file
// order after renumbering.
func readKTHBipartite(r io.Reader) (*graph.Bipartite, error) {
	n, lines, err := parseKTH(r)
	if err != nil {
		return nil, err
	}
	colors, err := inferBipartition(n, lines)
	if err != nil {
		return nil, err
	}
	leftIndex := make(map[int]int)
	rightIndex := make(map[int]int)
	for v := 1; v <= n; v++ {
		switch colors[v] {
		case sideLeft:
			leftIndex[v] = len(leftIndex) + 1
		case sideRight:
			rightIndex[v] = len(rightIndex) + 1
		}
	}
	g := graph.NewBipartite(len(leftIndex), len(rightIndex))
	for _, l := range lines {
		for _, v := range l.neighbors {
			var err error
			if colors[l.subject] == sideLeft {
				err = g.AddEdge(leftIndex[l.subject], rightIndex[v])
			} else {
				err = g.AddEdge(leftIndex[v], rightIndex[l.subject])
			}
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeParse, err, "line %d", l.line)
			}
		}
	}
	return g, nil
}

func writeKTHSimple(w io.Writer, g *graph.Simple) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", g.Order())
	for v := 1; v <= g.Order(); v++ {
		writeAdjacencyLine(bw, v, g.Neighbors(v))
	}
	return bw.Flush()
}

func writeKTHDirected(w io.Writer, g *graph.Directed) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", g.Order())
	for v := 1; v <= g.Order(); v++ {
		writeAdjacencyLine(bw, v, g.Successors(v))
	}
	return bw.Flush()
}

// writeKTHBipartite lists only the left vertices, in order. Right
// vertices are numbered after the left range, so right vertex r appears
// as L+r.
func writeKTHBipartite(w io.Writer, g *graph.Bipartite) error {
	bw := bufio.NewWriter(w)
	left, right := g.Order()
	fmt.Fprintf(bw, "%d\n", left+right)
	for l := 1; l <= left; l++ {
		ns := g.RightNeighbors(l)
		for i := range ns {
			ns[i] += left
		}
		writeAdjacencyLine(bw, l, ns)
	}
	return bw.Flush()
}

func writeAdjacencyLine(w io.Writer, subject int, neighbors []int) {
	fmt.Fprintf(w, "%d :", subject)
	for _, v := range neighbors {
		fmt.Fprintf(w, " %d", v)
	}
	fmt.Fprint(w, " 0\n")
}
