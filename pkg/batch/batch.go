// Package batch generates many formulas from a single TOML manifest.
//
// A manifest lists jobs, each naming a formula family, its parameters
// and an output file:
//
//	[[job]]
//	name    = "php-5-4"
//	family  = "php"
//	pigeons = 5
//	holes   = 4
//	output  = "php54.cnf"
//
//	[[job]]
//	family = "tseitin"
//	graph  = "grid.gml"
//	output = "tseitin-grid.cnf"
//	format = "latex"
//
// Run executes the jobs sequentially, stamping every log line of the
// run with a fresh correlation id.
package batch

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

// Job describes one formula to generate. Family selects the
// constructor; the parameter fields that apply depend on it.
type Job struct {
	Name   string `toml:"name"`
	Family string `toml:"family"`
	Output string `toml:"output"`
	Format string `toml:"format"` // "dimacs" (default) or "latex"

	// pigeonhole principle
	Pigeons    int  `toml:"pigeons"`
	Holes      int  `toml:"holes"`
	Functional bool `toml:"functional"`
	Onto       bool `toml:"onto"`

	// ordering principle
	Size  int  `toml:"size"`
	Total bool `toml:"total"`
	Plant bool `toml:"plant"`

	// coloring
	Colors int `toml:"colors"`

	// ramsey
	S int `toml:"s"`
	K int `toml:"k"`
	N int `toml:"n"`

	// random k-CNF
	Width   int    `toml:"width"`
	Vars    int    `toml:"vars"`
	Clauses int    `toml:"clauses"`
	Seed    uint64 `toml:"seed"`

	// counting principle
	Domain int `toml:"domain"`
	Part   int `toml:"part"`

	// subset cardinality
	Equalities bool `toml:"equalities"`

	// graph input, for the graph-based families
	Graph       string `toml:"graph"`
	GraphFormat string `toml:"graph_format"`

	// post-processing
	Transform string `toml:"transform"` // "or", "xor" or "maj"
	Rank      int    `toml:"rank"`
	Shuffle   bool   `toml:"shuffle"`
	Check     bool   `toml:"check"` // verify satisfiability before writing
}

// Manifest is a parsed batch manifest.
type Manifest struct {
	Jobs []Job `toml:"job"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates manifest text.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decoding manifest")
	}
	if len(m.Jobs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "manifest declares no jobs")
	}
	for i := range m.Jobs {
		if err := m.Jobs[i].validate(); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "job %d (%s)", i+1, m.Jobs[i].label(i))
		}
	}
	return &m, nil
}

// label names a job in logs and errors, falling back to its position.
func (j *Job) label(i int) string {
	if j.Name != "" {
		return j.Name
	}
	return fmt.Sprintf("#%d", i+1)
}

func (j *Job) validate() error {
	if _, ok := builders[j.Family]; !ok {
		return errors.New(errors.ErrCodeInvalidParameter, "unknown family %q", j.Family)
	}
	if j.Output == "" {
		return errors.New(errors.ErrCodeInvalidParameter, "missing output path")
	}
	switch j.Format {
	case "", "dimacs", "latex":
	default:
		return errors.New(errors.ErrCodeUnsupportedFormat, "unknown output format %q", j.Format)
	}
	switch j.Transform {
	case "", "none", "or", "xor", "maj":
	default:
		return errors.New(errors.ErrCodeInvalidParameter, "unknown transform %q", j.Transform)
	}
	if j.Transform != "" && j.Transform != "none" && j.Rank < 1 {
		return errors.New(errors.ErrCodeInvalidParameter, "transform %q needs rank >= 1", j.Transform)
	}
	return nil
}
