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

// The DOT support covers the restricted subset produced by writeDOT:
// a single (di)graph block whose node names are positive integers,
// with optional node statements carrying a "bipartite" attribute and
// edge statements "u -- v" / "u -> v". Edge chains "u -- v -- w" are
// accepted. Other attributes and defaults statements are ignored.

type dotToken struct {
	text string
	line int
}

func tokenizeDOT(r io.Reader) ([]dotToken, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "reading dot")
	}
	var tokens []dotToken
	line := 1
	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '/' && i+1 < len(data) && data[i+1] == '/':
			for i < len(data) && data[i] != '\n' {
				i++
			}
		case c == '#':
			for i < len(data) && data[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			i += 2
			for i+1 < len(data) && !(data[i] == '*' && data[i+1] == '/') {
				if data[i] == '\n' {
					line++
				}
				i++
			}
			if i+1 >= len(data) {
				return nil, errors.New(errors.ErrCodeParse, "line %d: unterminated comment", line)
			}
			i += 2
		case c == '-' && i+1 < len(data) && (data[i+1] == '-' || data[i+1] == '>'):
			tokens = append(tokens, dotToken{text: string(data[i : i+2]), line: line})
			i += 2
		case strings.ContainsRune("{}[];=,", rune(c)):
			tokens = append(tokens, dotToken{text: string(c), line: line})
			i++
		case c == '"':
			j := i + 1
			for j < len(data) && data[j] != '"' {
				if data[j] == '\n' {
					line++
				}
				j++
			}
			if j == len(data) {
				return nil, errors.New(errors.ErrCodeParse, "line %d: unterminated string", line)
			}
			tokens = append(tokens, dotToken{text: string(data[i+1 : j]), line: line})
			i = j + 1
		default:
			j := i
			for j < len(data) && !strings.ContainsRune(" \t\r\n{}[];=,\"", rune(data[j])) &&
				!(data[j] == '-' && j+1 < len(data) && (data[j+1] == '-' || data[j+1] == '>')) {
				j++
			}
			if j == i {
				return nil, errors.New(errors.ErrCodeParse, "line %d: unexpected byte %q", line, data[i])
			}
			tokens = append(tokens, dotToken{text: string(data[i:j]), line: line})
			i = j
		}
	}
	return tokens, nil
}

// dotGraph is the uninterpreted content of a parsed DOT file.
type dotGraph struct {
	directed bool
	// attrs maps a declared node to its bipartite attribute value, or
	// -1 when the attribute is absent.
	attrs map[int]int
	edges []graph.Edge // endpoints are raw node names
	names []int        // every node name seen, in first-occurrence order
}

type dotParser struct {
	tokens []dotToken
	pos    int
	g      *dotGraph
}

func (p *dotParser) peek() (dotToken, bool) {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos], true
	}
	return dotToken{}, false
}

func (p *dotParser) next() (dotToken, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func (p *dotParser) expect(text string) error {
	t, ok := p.next()
	if !ok {
		return errors.New(errors.ErrCodeParse, "unexpected end of input, %q expected", text)
	}
	if t.text != text {
		return errors.New(errors.ErrCodeParse, "line %d: %q expected, got %q", t.line, text, t.text)
	}
	return nil
}

func parseDOT(r io.Reader) (*dotGraph, error) {
	tokens, err := tokenizeDOT(r)
	if err != nil {
		return nil, err
	}
	p := &dotParser{tokens: tokens, g: &dotGraph{attrs: make(map[int]int)}}

	t, ok := p.next()
	if ok && t.text == "strict" {
		t, ok = p.next()
	}
	if !ok {
		return nil, errors.New(errors.ErrCodeParse, "empty input")
	}
	switch t.text {
	case "graph":
	case "digraph":
		p.g.directed = true
	default:
		return nil, errors.New(errors.ErrCodeParse,
			"line %d: graph or digraph expected, got %q", t.line, t.text)
	}
	if t, ok := p.peek(); ok && t.text != "{" {
		p.pos++ // graph name
	}
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok {
			return nil, errors.New(errors.ErrCodeParse, "unexpected end of input, } expected")
		}
		if t.text == "}" {
			p.pos++
			break
		}
		if t.text == ";" {
			p.pos++
			continue
		}
		if err := p.statement(); err != nil {
			return nil, err
		}
	}
	return p.g, nil
}

func (p *dotParser) statement() error {
	t, _ := p.next()
	switch t.text {
	case "node", "edge", "graph":
		// defaults statement, attributes are irrelevant here
		_, err := p.attrList()
		return err
	}
	u, err := dotNodeName(t)
	if err != nil {
		return err
	}
	p.declare(u)
	chain := false
	for {
		op, ok := p.peek()
		if !ok || (op.text != "--" && op.text != "->") {
			break
		}
		if op.text == "--" && p.g.directed || op.text == "->" && !p.g.directed {
			return errors.New(errors.ErrCodeParse,
				"line %d: edge operator %q does not match the graph kind", op.line, op.text)
		}
		p.pos++
		vt, ok := p.next()
		if !ok {
			return errors.New(errors.ErrCodeParse, "line %d: node expected after %q", op.line, op.text)
		}
		v, err := dotNodeName(vt)
		if err != nil {
			return err
		}
		p.declare(v)
		p.g.edges = append(p.g.edges, graph.Edge{U: u, V: v})
		u = v
		chain = true
	}
	attrs, err := p.attrList()
	if err != nil {
		return err
	}
	if !chain {
		if b, ok := attrs["bipartite"]; ok {
			p.g.attrs[u] = b
		}
	}
	return nil
}

// attrList parses an optional bracketed attribute list and returns the
// integer-valued attributes.
func (p *dotParser) attrList() (map[string]int, error) {
	t, ok := p.peek()
	if !ok || t.text != "[" {
		return nil, nil
	}
	p.pos++
	attrs := make(map[string]int)
	for {
		t, ok := p.next()
		if !ok {
			return nil, errors.New(errors.ErrCodeParse, "unexpected end of input, ] expected")
		}
		if t.text == "]" {
			return attrs, nil
		}
		if t.text == "," || t.text == ";" {
			continue
		}
		key := t.text
		if err := p.expect("="); err != nil {
			return nil, err
		}
		v, ok := p.next()
		if !ok {
			return nil, errors.New(errors.ErrCodeParse, "unexpected end of input, attribute value expected")
		}
		if n, err := strconv.Atoi(v.text); err == nil {
			attrs[key] = n
		}
	}
}

func dotNodeName(t dotToken) (int, error) {
	n, err := strconv.Atoi(t.text)
	if err != nil || n < 1 {
		return 0, errors.New(errors.ErrCodeParse,
			"line %d: node name %q is not a positive integer", t.line, t.text)
	}
	return n, nil
}

func (p *dotParser) declare(name int) {
	if !slices.Contains(p.g.names, name) {
		p.g.names = append(p.g.names, name)
	}
	if _, ok := p.g.attrs[name]; !ok {
		p.g.attrs[name] = -1
	}
}

// nodeIndex renumbers the node names in ascending order.
func (g *dotGraph) nodeIndex() map[int]int {
	names := slices.Clone(g.names)
	slices.Sort(names)
	index := make(map[int]int, len(names))
	for rank, name := range names {
		index[name] = rank + 1
	}
	return index
}

func readDOTSimple(r io.Reader) (*graph.Simple, error) {
	parsed, err := parseDOT(r)
	if err != nil {
		return nil, err
	}
	if parsed.directed {
		return nil, errors.New(errors.ErrCodeTypeMismatch,
			"file holds a directed graph, undirected requested")
	}
	index := parsed.nodeIndex()
	g := graph.NewSimple(len(index))
	for _, e := range parsed.edges {
		if err := g.AddEdge(index[e.U], index[e.V]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func readDOTDirected(r io.Reader) (*graph.Directed, error) {
	parsed, err := parseDOT(r)
	if err != nil {
		return nil, err
	}
	if !parsed.directed {
		return nil, errors.New(errors.ErrCodeTypeMismatch,
			"file holds an undirected graph, directed requested")
	}
	index := parsed.nodeIndex()
	g := graph.NewDirected(len(index))
	for _, e := range parsed.edges {
		if err := g.AddEdge(index[e.U], index[e.V]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// readDOTBipartite requires every node to carry a 0/1 bipartite
// attribute; 0 marks the left side.
func readDOTBipartite(r io.Reader) (*graph.Bipartite, error) {
	parsed, err := parseDOT(r)
	if err != nil {
		return nil, err
	}
	if parsed.directed {
		return nil, errors.New(errors.ErrCodeTypeMismatch,
			"file holds a directed graph, bipartite requested")
	}
	names := slices.Clone(parsed.names)
	slices.Sort(names)
	leftIndex := make(map[int]int)
	rightIndex := make(map[int]int)
	for _, name := range names {
		switch parsed.attrs[name] {
		case 0:
			leftIndex[name] = len(leftIndex) + 1
		case 1:
			rightIndex[name] = len(rightIndex) + 1
		default:
			return nil, errors.New(errors.ErrCodeParse,
				"node %d misses the 0/1 bipartite attribute", name)
		}
	}
	g := graph.NewBipartite(len(leftIndex), len(rightIndex))
	for _, e := range parsed.edges {
		l, r := e.U, e.V
		if parsed.attrs[l] == 1 {
			l, r = r, l
		}
		if parsed.attrs[l] != 0 || parsed.attrs[r] != 1 {
			return nil, errors.New(errors.ErrCodeParse,
				"edge %d-%d joins vertices on the same side", e.U, e.V)
		}
		if err := g.AddEdge(leftIndex[l], rightIndex[r]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func writeDOTSimple(w io.Writer, g *graph.Simple) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("graph G {\n")
	for v := 1; v <= g.Order(); v++ {
		fmt.Fprintf(bw, "  %d;\n", v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "  %d -- %d;\n", e.U, e.V)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func writeDOTDirected(w io.Writer, g *graph.Directed) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("digraph G {\n")
	for v := 1; v <= g.Order(); v++ {
		fmt.Fprintf(bw, "  %d;\n", v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "  %d -> %d;\n", e.U, e.V)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// writeDOTBipartite numbers right vertices after the left range, like
// the KTH bipartite writer.
func writeDOTBipartite(w io.Writer, g *graph.Bipartite) error {
	bw := bufio.NewWriter(w)
	left, right := g.Order()
	bw.WriteString("graph G {\n")
	for v := 1; v <= left; v++ {
		fmt.Fprintf(bw, "  %d [bipartite=0];\n", v)
	}
	for v := 1; v <= right; v++ {
		fmt.Fprintf(bw, "  %d [bipartite=1];\n", left+v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "  %d -- %d;\n", e.U, left+e.V)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}
