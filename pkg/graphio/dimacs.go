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

// parseDIMACSEdges reads the DIMACS graph format: "c" comments, a
// single "p edge <n> <m>" line, then m lines "e <u> <v>". The edge
// count must match the problem line exactly.
func parseDIMACSEdges(r io.Reader) (n int, edges []graph.Edge, err error) {
	n = -1
	m := -1
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		text := sc.Text()
		if strings.HasPrefix(text, "c") || strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Fields(text)
		switch fields[0] {
		case "p":
			if n >= 0 {
				return 0, nil, errors.New(errors.ErrCodeParse,
					"line %d: second problem line", lineno)
			}
			if len(fields) != 4 || fields[1] != "edge" {
				return 0, nil, errors.New(errors.ErrCodeParse,
					"line %d: expected \"p edge <n> <m>\"", lineno)
			}
			var err1, err2 error
			n, err1 = strconv.Atoi(fields[2])
			m, err2 = strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || n < 0 || m < 0 {
				return 0, nil, errors.New(errors.ErrCodeParse,
					"line %d: malformed problem line", lineno)
			}
		case "e":
			if n < 0 {
				return 0, nil, errors.New(errors.ErrCodeParse,
					"line %d: edge before the problem line", lineno)
			}
			if len(fields) != 3 {
				return 0, nil, errors.New(errors.ErrCodeParse,
					"line %d: expected \"e <u> <v>\"", lineno)
			}
			u, err1 := strconv.Atoi(fields[1])
			v, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return 0, nil, errors.New(errors.ErrCodeParse,
					"line %d: non-integer vertex id", lineno)
			}
			if u < 1 || u > n || v < 1 || v > n {
				return 0, nil, errors.New(errors.ErrCodeParse,
					"line %d: vertex out of range 1..%d", lineno, n)
			}
			edges = append(edges, graph.Edge{U: u, V: v})
		default:
			return 0, nil, errors.New(errors.ErrCodeParse,
				"line %d: unexpected directive %q", lineno, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return 0, nil, errors.Wrap(errors.ErrCodeParse, err, "reading dimacs graph")
	}
	if n < 0 {
		return 0, nil, errors.New(errors.ErrCodeParse, "missing problem line")
	}
	if len(edges) != m {
		return 0, nil, errors.New(errors.ErrCodeParse,
			"%d edges declared, %d found", m, len(edges))
	}
	return n, edges, nil
}

func readDIMACSSimple(r io.Reader) (*graph.Simple, error) {
	n, edges, err := parseDIMACSEdges(r)
	if err != nil {
		return nil, err
	}
	g := graph.NewSimple(n)
	if err := g.AddEdgesFrom(edges); err != nil {
		return nil, err
	}
	return g, nil
}

func readDIMACSDirected(r io.Reader) (*graph.Directed, error) {
	n, edges, err := parseDIMACSEdges(r)
	if err != nil {
		return nil, err
	}
	g := graph.NewDirected(n)
	if err := g.AddEdgesFrom(edges); err != nil {
		return nil, err
	}
	return g, nil
}

func writeDIMACSSimple(w io.Writer, g *graph.Simple) error {
	return writeDIMACSEdges(w, g.Order(), g.Edges())
}

func writeDIMACSDirected(w io.Writer, g *graph.Directed) error {
	return writeDIMACSEdges(w, g.Order(), g.Edges())
}

func writeDIMACSEdges(w io.Writer, n int, edges []graph.Edge) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p edge %d %d\n", n, len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "e %d %d\n", e.U, e.V)
	}
	return bw.Flush()
}
