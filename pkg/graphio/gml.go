package graphio

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
)

// The GML support covers the restricted subset produced by writeGML:
// a top-level "graph" list with an optional "directed" flag, "node"
// lists carrying "id" (and "bipartite" for bipartite graphs) and
// "edge" lists carrying "source" and "target". GML is an ASCII format;
// any non-ASCII byte is rejected.

type gmlKV struct {
	key   string
	value any // int, string or []gmlKV
	line  int
}

type gmlToken struct {
	text string
	line int
}

func tokenizeGML(r io.Reader) ([]gmlToken, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "reading gml")
	}
	var tokens []gmlToken
	line := 1
	i := 0
	for i < len(data) {
		c := data[i]
		if c > 127 {
			return nil, errors.New(errors.ErrCodeParse,
				"line %d: non-ASCII byte 0x%02x, gml is an ASCII format", line, c)
		}
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '#':
			for i < len(data) && data[i] != '\n' {
				i++
			}
		case c == '[' || c == ']':
			tokens = append(tokens, gmlToken{text: string(c), line: line})
			i++
		case c == '"':
			start := i + 1
			j := start
			for j < len(data) && data[j] != '"' {
				if data[j] > 127 {
					return nil, errors.New(errors.ErrCodeParse,
						"line %d: non-ASCII byte 0x%02x, gml is an ASCII format", line, data[j])
				}
				if data[j] == '\n' {
					return nil, errors.New(errors.ErrCodeParse,
						"line %d: unterminated string", line)
				}
				j++
			}
			if j == len(data) {
				return nil, errors.New(errors.ErrCodeParse,
					"line %d: unterminated string", line)
			}
			tokens = append(tokens, gmlToken{text: `"` + string(data[start:j]), line: line})
			i = j + 1
		default:
			j := i
			for j < len(data) && !strings.ContainsRune(" \t\r\n[]\"#", rune(data[j])) {
				j++
			}
			tokens = append(tokens, gmlToken{text: string(data[i:j]), line: line})
			i = j
		}
	}
	return tokens, nil
}

// parseGMLList parses key-value pairs until a closing bracket or, at
// top level, the end of input.
func parseGMLList(tokens []gmlToken, pos int, top bool) ([]gmlKV, int, error) {
	var kvs []gmlKV
	for pos < len(tokens) {
		t := tokens[pos]
		if t.text == "]" {
			if top {
				return nil, 0, errors.New(errors.ErrCodeParse, "line %d: unexpected ]", t.line)
			}
			return kvs, pos + 1, nil
		}
		if t.text == "[" || strings.HasPrefix(t.text, `"`) {
			return nil, 0, errors.New(errors.ErrCodeParse, "line %d: key expected", t.line)
		}
		key := t.text
		pos++
		if pos >= len(tokens) {
			return nil, 0, errors.New(errors.ErrCodeParse, "line %d: value expected after %q", t.line, key)
		}
		v := tokens[pos]
		switch {
		case v.text == "[":
			sub, next, err := parseGMLList(tokens, pos+1, false)
			if err != nil {
				return nil, 0, err
			}
			kvs = append(kvs, gmlKV{key: key, value: sub, line: t.line})
			pos = next
		case strings.HasPrefix(v.text, `"`):
			kvs = append(kvs, gmlKV{key: key, value: v.text[1:], line: t.line})
			pos++
		default:
			n, err := strconv.Atoi(v.text)
			if err != nil {
				return nil, 0, errors.New(errors.ErrCodeParse,
					"line %d: integer or string expected for key %q", v.line, key)
			}
			kvs = append(kvs, gmlKV{key: key, value: n, line: t.line})
			pos++
		}
	}
	if !top {
		return nil, 0, errors.New(errors.ErrCodeParse, "unexpected end of input, ] expected")
	}
	return kvs, pos, nil
}

// gmlGraph is the uninterpreted content of a parsed GML file.
type gmlGraph struct {
	directed bool
	nodes    []gmlKV // "node" lists
	edges    []gmlKV // "edge" lists
}

func parseGML(r io.Reader) (*gmlGraph, error) {
	tokens, err := tokenizeGML(r)
	if err != nil {
		return nil, err
	}
	kvs, _, err := parseGMLList(tokens, 0, true)
	if err != nil {
		return nil, err
	}
	var body []gmlKV
	found := false
	for _, kv := range kvs {
		if kv.key != "graph" {
			continue
		}
		list, ok := kv.value.([]gmlKV)
		if !ok {
			return nil, errors.New(errors.ErrCodeParse, "line %d: graph must be a list", kv.line)
		}
		body = list
		found = true
		break
	}
	if !found {
		return nil, errors.New(errors.ErrCodeParse, "no graph element found")
	}
	g := &gmlGraph{}
	for _, kv := range body {
		switch kv.key {
		case "directed":
			flag, ok := kv.value.(int)
			if !ok {
				return nil, errors.New(errors.ErrCodeParse, "line %d: directed must be 0 or 1", kv.line)
			}
			g.directed = flag != 0
		case "node":
			if _, ok := kv.value.([]gmlKV); !ok {
				return nil, errors.New(errors.ErrCodeParse, "line %d: node must be a list", kv.line)
			}
			g.nodes = append(g.nodes, kv)
		case "edge":
			if _, ok := kv.value.([]gmlKV); !ok {
				return nil, errors.New(errors.ErrCodeParse, "line %d: edge must be a list", kv.line)
			}
			g.edges = append(g.edges, kv)
		}
	}
	return g, nil
}

func gmlIntAttr(list []gmlKV, key string) (int, bool) {
	for _, kv := range list {
		if kv.key == key {
			if n, ok := kv.value.(int); ok {
				return n, true
			}
		}
	}
	return 0, false
}

// gmlNodeIDs extracts and validates the node ids, returning them in
// ascending order together with a map from id to 1-based rank.
func (g *gmlGraph) nodeIDs() ([]int, map[int]int, error) {
	ids := make([]int, 0, len(g.nodes))
	for _, n := range g.nodes {
		id, ok := gmlIntAttr(n.value.([]gmlKV), "id")
		if !ok {
			return nil, nil, errors.New(errors.ErrCodeParse, "line %d: node without integer id", n.line)
		}
		if slices.Contains(ids, id) {
			return nil, nil, errors.New(errors.ErrCodeParse, "line %d: duplicate node id %d", n.line, id)
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	index := make(map[int]int, len(ids))
	for rank, id := range ids {
		index[id] = rank + 1
	}
	return ids, index, nil
}

func (g *gmlGraph) edgeEndpoints(index map[int]int) ([]graph.Edge, error) {
	edges := make([]graph.Edge, 0, len(g.edges))
	for _, e := range g.edges {
		list := e.value.([]gmlKV)
		src, okS := gmlIntAttr(list, "source")
		dst, okT := gmlIntAttr(list, "target")
		if !okS || !okT {
			return nil, errors.New(errors.ErrCodeParse, "line %d: edge without source and target", e.line)
		}
		u, okU := index[src]
		v, okV := index[dst]
		if !okU || !okV {
			return nil, errors.New(errors.ErrCodeParse,
				"line %d: edge references unknown node", e.line)
		}
		edges = append(edges, graph.Edge{U: u, V: v})
	}
	return edges, nil
}

func readGMLSimple(r io.Reader) (*graph.Simple, error) {
	parsed, err := parseGML(r)
	if err != nil {
		return nil, err
	}
	if parsed.directed {
		return nil, errors.New(errors.ErrCodeTypeMismatch,
			"file holds a directed graph, undirected requested")
	}
	_, index, err := parsed.nodeIDs()
	if err != nil {
		return nil, err
	}
	edges, err := parsed.edgeEndpoints(index)
	if err != nil {
		return nil, err
	}
	g := graph.NewSimple(len(index))
	if err := g.AddEdgesFrom(edges); err != nil {
		return nil, err
	}
	return g, nil
}

func readGMLDirected(r io.Reader) (*graph.Directed, error) {
	parsed, err := parseGML(r)
	if err != nil {
		return nil, err
	}
	if !parsed.directed {
		return nil, errors.New(errors.ErrCodeTypeMismatch,
			"file holds an undirected graph, directed requested")
	}
	_, index, err := parsed.nodeIDs()
	if err != nil {
		return nil, err
	}
	edges, err := parsed.edgeEndpoints(index)
	if err != nil {
		return nil, err
	}
	g := graph.NewDirected(len(index))
	if err := g.AddEdgesFrom(edges); err != nil {
		return nil, err
	}
	return g, nil
}

// readGMLBipartite requires every node to carry a 0/1 "bipartite"
// attribute; 0 marks the left side. Each side is renumbered by
// ascending node id.
func readGMLBipartite(r io.Reader) (*graph.Bipartite, error) {
	parsed, err := parseGML(r)
	if err != nil {
		return nil, err
	}
	if parsed.directed {
		return nil, errors.New(errors.ErrCodeTypeMismatch,
			"file holds a directed graph, bipartite requested")
	}
	sides := make(map[int]int)
	var ids []int
	for _, n := range parsed.nodes {
		list := n.value.([]gmlKV)
		id, ok := gmlIntAttr(list, "id")
		if !ok {
			return nil, errors.New(errors.ErrCodeParse, "line %d: node without integer id", n.line)
		}
		if _, dup := sides[id]; dup {
			return nil, errors.New(errors.ErrCodeParse, "line %d: duplicate node id %d", n.line, id)
		}
		side, ok := gmlIntAttr(list, "bipartite")
		if !ok || (side != 0 && side != 1) {
			return nil, errors.New(errors.ErrCodeParse,
				"line %d: node %d misses the 0/1 bipartite attribute", n.line, id)
		}
		sides[id] = side
		ids = append(ids, id)
	}
	slices.Sort(ids)
	leftIndex := make(map[int]int)
	rightIndex := make(map[int]int)
	for _, id := range ids {
		if sides[id] == 0 {
			leftIndex[id] = len(leftIndex) + 1
		} else {
			rightIndex[id] = len(rightIndex) + 1
		}
	}
	g := graph.NewBipartite(len(leftIndex), len(rightIndex))
	for _, e := range parsed.edges {
		list := e.value.([]gmlKV)
		src, okS := gmlIntAttr(list, "source")
		dst, okT := gmlIntAttr(list, "target")
		if !okS || !okT {
			return nil, errors.New(errors.ErrCodeParse, "line %d: edge without source and target", e.line)
		}
		if _, ok := sides[src]; !ok {
			return nil, errors.New(errors.ErrCodeParse, "line %d: edge references unknown node %d", e.line, src)
		}
		if _, ok := sides[dst]; !ok {
			return nil, errors.New(errors.ErrCodeParse, "line %d: edge references unknown node %d", e.line, dst)
		}
		if sides[src] == sides[dst] {
			return nil, errors.New(errors.ErrCodeParse,
				"line %d: edge %d-%d joins vertices on the same side", e.line, src, dst)
		}
		l, r := src, dst
		if sides[src] == 1 {
			l, r = dst, src
		}
		if err := g.AddEdge(leftIndex[l], rightIndex[r]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func writeGMLSimple(w io.Writer, g *graph.Simple) error {
	return writeGML(w, false, g.Order(), nil, g.Edges())
}

func writeGMLDirected(w io.Writer, g *graph.Directed) error {
	return writeGML(w, true, g.Order(), nil, g.Edges())
}

func writeGMLBipartite(w io.Writer, g *graph.Bipartite) error {
	left, right := g.Order()
	sides := make([]int, left+right)
	for i := left; i < left+right; i++ {
		sides[i] = 1
	}
	edges := g.Edges()
	shifted := make([]graph.Edge, len(edges))
	for i, e := range edges {
		shifted[i] = graph.Edge{U: e.U, V: left + e.V}
	}
	return writeGML(w, false, left+right, sides, shifted)
}

// writeGML emits the restricted subset understood by the readers.
// Vertices are written as ids 1..n; sides, when non-nil, carries the
// bipartite attribute per vertex.
func writeGML(w io.Writer, directed bool, n int, sides []int, edges []graph.Edge) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("graph [\n")
	if directed {
		bw.WriteString("  directed 1\n")
	}
	for v := 1; v <= n; v++ {
		bw.WriteString("  node [\n")
		fmt.Fprintf(bw, "    id %d\n", v)
		fmt.Fprintf(bw, "    label \"%d\"\n", v)
		if sides != nil {
			fmt.Fprintf(bw, "    bipartite %d\n", sides[v-1])
		}
		bw.WriteString("  ]\n")
	}
	for _, e := range edges {
		bw.WriteString("  edge [\n")
		fmt.Fprintf(bw, "    source %d\n", e.U)
		fmt.Fprintf(bw, "    target %d\n", e.V)
		bw.WriteString("  ]\n")
	}
	bw.WriteString("]\n")
	return bw.Flush()
}
