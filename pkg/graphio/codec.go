package graphio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
)

// Kind identifies which graph variant a file should be read as.
type Kind int

const (
	KindSimple Kind = iota
	KindBipartite
	KindDigraph
	KindDAG
)

var kindNames = map[Kind]string{
	KindSimple:    "simple",
	KindBipartite: "bipartite",
	KindDigraph:   "digraph",
	KindDAG:       "dag",
}

func (k Kind) String() string { return kindNames[k] }

// ParseKind maps a type tag to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidParameter, "unknown graph type %q", s)
}

// Format identifies a graph file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatGML
	FormatDOT
	FormatKTHList
	FormatDIMACS
	FormatMatrix
)

var formatNames = map[Format]string{
	FormatGML:     "gml",
	FormatDOT:     "dot",
	FormatKTHList: "kthlist",
	FormatDIMACS:  "dimacs",
	FormatMatrix:  "matrix",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat maps a format tag to a Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return FormatUnknown, errors.New(errors.ErrCodeUnsupportedFormat, "unknown graph format %q", s)
}

// DetectFormat infers the format from the file extension of path.
// It returns FormatUnknown when the extension is not recognized.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gml":
		return FormatGML
	case ".dot":
		return FormatDOT
	case ".kthlist", ".kth":
		return FormatKTHList
	case ".dimacs":
		return FormatDIMACS
	case ".matrix":
		return FormatMatrix
	}
	return FormatUnknown
}

// Supports reports whether the (kind, format) combination is in the
// codec table.
func Supports(kind Kind, format Format) bool {
	switch format {
	case FormatGML, FormatDOT, FormatKTHList:
		return true
	case FormatDIMACS:
		return kind == KindSimple || kind == KindDigraph
	case FormatMatrix:
		return kind == KindBipartite
	}
	return false
}

// Graph is the union of the graph variants handled by this package:
// *graph.Simple, *graph.Bipartite or *graph.Directed.
type Graph interface {
	NumEdges() int
}

// Read parses r as a graph of the given kind and format.
func Read(r io.Reader, kind Kind, format Format) (Graph, error) {
	if !Supports(kind, format) {
		return nil, errors.New(errors.ErrCodeUnsupportedFormat,
			"format %s cannot represent a %s graph", format, kind)
	}
	switch kind {
	case KindSimple:
		return readSimple(r, format)
	case KindBipartite:
		return readBipartite(r, format)
	case KindDigraph:
		return readDirected(r, format)
	case KindDAG:
		g, err := readDirected(r, format)
		if err != nil {
			return nil, err
		}
		if e, bad := g.DAGViolation(); bad {
			return nil, errors.New(errors.ErrCodeTypeMismatch,
				"edge (%d,%d) violates the topological numbering required for a dag", e.U, e.V)
		}
		return g, nil
	}
	return nil, errors.New(errors.ErrCodeInternal, "unhandled graph type %s", kind)
}

// ReadSimple parses r as an undirected graph.
func ReadSimple(r io.Reader, format Format) (*graph.Simple, error) {
	g, err := Read(r, KindSimple, format)
	if err != nil {
		return nil, err
	}
	return g.(*graph.Simple), nil
}

// ReadBipartite parses r as a bipartite graph.
func ReadBipartite(r io.Reader, format Format) (*graph.Bipartite, error) {
	g, err := Read(r, KindBipartite, format)
	if err != nil {
		return nil, err
	}
	return g.(*graph.Bipartite), nil
}

// ReadDirected parses r as a directed graph.
func ReadDirected(r io.Reader, format Format) (*graph.Directed, error) {
	g, err := Read(r, KindDigraph, format)
	if err != nil {
		return nil, err
	}
	return g.(*graph.Directed), nil
}

// ReadDAG parses r as a directed graph and checks that the numbering is
// topological.
func ReadDAG(r io.Reader, format Format) (*graph.Directed, error) {
	g, err := Read(r, KindDAG, format)
	if err != nil {
		return nil, err
	}
	return g.(*graph.Directed), nil
}

// Write serializes g to w in the given format. The graph kind is taken
// from the dynamic type of g; a combination outside the codec table is
// rejected.
func Write(w io.Writer, g Graph, format Format) error {
	switch t := g.(type) {
	case *graph.Simple:
		if !Supports(KindSimple, format) {
			return errors.New(errors.ErrCodeUnsupportedFormat,
				"format %s cannot represent a simple graph", format)
		}
		return writeSimple(w, t, format)
	case *graph.Bipartite:
		if !Supports(KindBipartite, format) {
			return errors.New(errors.ErrCodeUnsupportedFormat,
				"format %s cannot represent a bipartite graph", format)
		}
		return writeBipartite(w, t, format)
	case *graph.Directed:
		if !Supports(KindDigraph, format) {
			return errors.New(errors.ErrCodeUnsupportedFormat,
				"format %s cannot represent a directed graph", format)
		}
		return writeDirected(w, t, format)
	}
	return errors.New(errors.ErrCodeInternal, "unsupported graph value %T", g)
}

// ResolveFormat combines an explicit format tag with a file extension
// hint. An explicit tag must agree with a recognized extension; a
// mismatch is an error. With no explicit tag the extension decides.
func ResolveFormat(path string, explicit Format) (Format, error) {
	detected := DetectFormat(path)
	if explicit == FormatUnknown {
		if detected == FormatUnknown {
			return FormatUnknown, errors.New(errors.ErrCodeUnsupportedFormat,
				"cannot infer graph format from %q, specify one explicitly", path)
		}
		return detected, nil
	}
	if detected != FormatUnknown && detected != explicit {
		return FormatUnknown, errors.New(errors.ErrCodeTypeMismatch,
			"declared format %s conflicts with file extension of %q", explicit, path)
	}
	return explicit, nil
}

// ReadFile reads the graph stored at path. The format is resolved from
// the explicit tag and the file extension via ResolveFormat.
func ReadFile(path string, kind Kind, format Format) (Graph, error) {
	format, err := ResolveFormat(path, format)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, kind, format)
}

// WriteFile writes g to path, resolving the format like ReadFile.
func WriteFile(path string, g Graph, format Format) error {
	format, err := ResolveFormat(path, format)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return Write(f, g, format)
}

func readSimple(r io.Reader, format Format) (*graph.Simple, error) {
	switch format {
	case FormatGML:
		return readGMLSimple(r)
	case FormatDOT:
		return readDOTSimple(r)
	case FormatKTHList:
		return readKTHSimple(r)
	case FormatDIMACS:
		return readDIMACSSimple(r)
	}
	return nil, errors.New(errors.ErrCodeInternal, "unhandled format %s", format)
}

func readBipartite(r io.Reader, format Format) (*graph.Bipartite, error) {
	switch format {
	case FormatGML:
		return readGMLBipartite(r)
	case FormatDOT:
		return readDOTBipartite(r)
	case FormatKTHList:
		return readKTHBipartite(r)
	case FormatMatrix:
		return readMatrix(r)
	}
	return nil, errors.New(errors.ErrCodeInternal, "unhandled format %s", format)
}

func readDirected(r io.Reader, format Format) (*graph.Directed, error) {
	switch format {
	case FormatGML:
		return readGMLDirected(r)
	case FormatDOT:
		return readDOTDirected(r)
	case FormatKTHList:
		return readKTHDirected(r)
	case FormatDIMACS:
		return readDIMACSDirected(r)
	}
	return nil, errors.New(errors.ErrCodeInternal, "unhandled format %s", format)
}

func writeSimple(w io.Writer, g *graph.Simple, format Format) error {
	switch format {
	case FormatGML:
		return writeGMLSimple(w, g)
	case FormatDOT:
		return writeDOTSimple(w, g)
	case FormatKTHList:
		return writeKTHSimple(w, g)
	case FormatDIMACS:
		return writeDIMACSSimple(w, g)
	}
	return errors.New(errors.ErrCodeInternal, "unhandled format %s", format)
}

func writeBipartite(w io.Writer, g *graph.Bipartite, format Format) error {
	switch format {
	case FormatGML:
		return writeGMLBipartite(w, g)
	case FormatDOT:
		return writeDOTBipartite(w, g)
	case FormatKTHList:
		return writeKTHBipartite(w, g)
	case FormatMatrix:
		return writeMatrix(w, g)
	}
	return errors.New(errors.ErrCodeInternal, "unhandled format %s", format)
}

func writeDirected(w io.Writer, g *graph.Directed, format Format) error {
	switch format {
	case FormatGML:
		return writeGMLDirected(w, g)
	case FormatDOT:
		return writeDOTDirected(w, g)
	case FormatKTHList:
		return writeKTHDirected(w, g)
	case FormatDIMACS:
		return writeDIMACSDirected(w, g)
	}
	return errors.New(errors.ErrCodeInternal, "unhandled format %s", format)
}
