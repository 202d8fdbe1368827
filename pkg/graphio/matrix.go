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

// readMatrix reads a bipartite graph as a 0/1 adjacency matrix: two
// integers r and c, then exactly r*c zero/one tokens in row-major
// order. Tokens may be spread over any number of lines and lines
// starting with "#" are comments.
func readMatrix(r io.Reader) (*graph.Bipartite, error) {
	tokens, err := matrixTokens(r)
	if err != nil {
		return nil, err
	}
	if len(tokens) < 2 {
		return nil, errors.New(errors.ErrCodeParse, "missing matrix dimensions")
	}
	rows, err1 := strconv.Atoi(tokens[0])
	cols, err2 := strconv.Atoi(tokens[1])
	if err1 != nil || err2 != nil || rows < 0 || cols < 0 {
		return nil, errors.New(errors.ErrCodeParse,
			"malformed matrix dimensions %q %q", tokens[0], tokens[1])
	}
	entries := tokens[2:]
	if len(entries) < rows*cols {
		return nil, errors.New(errors.ErrCodeParse,
			"unexpected end of matrix, %d entries expected, got %d", rows*cols, len(entries))
	}
	if len(entries) > rows*cols {
		return nil, errors.New(errors.ErrCodeParse,
			"more than %dx%d matrix entries", rows, cols)
	}
	g := graph.NewBipartite(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			switch entries[i*cols+j] {
			case "1":
				if err := g.AddEdge(i+1, j+1); err != nil {
					return nil, err
				}
			case "0":
			default:
				return nil, errors.New(errors.ErrCodeParse,
					"matrix entry (%d,%d) is %q, only 0 or 1 allowed", i+1, j+1, entries[i*cols+j])
			}
		}
	}
	return g, nil
}

func matrixTokens(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		tokens = append(tokens, fields...)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "reading matrix")
	}
	return tokens, nil
}

// writeMatrix emits the adjacency matrix, one left vertex per row.
func writeMatrix(w io.Writer, g *graph.Bipartite) error {
	bw := bufio.NewWriter(w)
	left, right := g.Order()
	fmt.Fprintf(bw, "%d %d\n", left, right)
	for l := 1; l <= left; l++ {
		for r := 1; r <= right; r++ {
			if r > 1 {
				bw.WriteByte(' ')
			}
			if g.HasEdge(l, r) {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
