package cnf

import (
	"fmt"
	"slices"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

// Option configures a Formula at construction time.
type Option func(*Formula)

// WithLenientClauses disables the per-clause validation performed by
// AddClause: repeated literals and opposite-polarity pairs are accepted
// as-is. Serialization still emits the clause verbatim.
func WithLenientClauses() Option {
	return func(f *Formula) { f.lenient = true }
}

// WithClosedVocabulary makes AddClause reject literals that reference a
// variable id not previously created with NewVariable, instead of
// silently registering it.
func WithClosedVocabulary() Option {
	return func(f *Formula) { f.closed = true }
}

// Formula is a propositional formula in conjunctive normal form.
//
// The zero value is not usable - use New or FromClauses. Formula is not
// safe for concurrent use without external synchronization; concurrent
// generators must each own an independent instance.
type Formula struct {
	labels  []string // index 0 unused; empty string means "no label"
	clauses [][]int
	header  []string // comment lines emitted before the DIMACS/LaTeX body

	lenient bool // skip duplicate/tautology checks
	closed  bool // reject literals naming unregistered variables
}

// New creates an empty formula.
func New(opts ...Option) *Formula {
	f := &Formula{labels: make([]string, 1)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FromClauses creates a formula initialized with the given clauses,
// applying the same validation as AddClause. Variables are registered
// in order of first appearance.
func FromClauses(clauses [][]int, opts ...Option) (*Formula, error) {
	f := New(opts...)
	if err := f.AddClauses(clauses); err != nil {
		return nil, err
	}
	return f, nil
}

// NewVariable appends a variable and returns its 1-based id.
// The label may be empty; it cannot be changed afterwards.
func (f *Formula) NewVariable(label string) int {
	f.labels = append(f.labels, label)
	return len(f.labels) - 1
}

// NumVariables returns the number of variables, which equals the
// largest variable id referenced by any clause or created explicitly.
func (f *Formula) NumVariables() int { return len(f.labels) - 1 }

// NumClauses returns the number of clauses.
func (f *Formula) NumClauses() int { return len(f.clauses) }

// Label returns the label of variable id, or a generated "x<id>" name
// when the variable was created without one.
func (f *Formula) Label(id int) string {
	if id < 1 || id > f.NumVariables() {
		return ""
	}
	if f.labels[id] == "" {
		return fmt.Sprintf("x%d", id)
	}
	return f.labels[id]
}

// Clauses returns a copy of all clauses in insertion order.
// Modifications to the returned slices do not affect the formula.
func (f *Formula) Clauses() [][]int {
	out := make([][]int, len(f.clauses))
	for i, c := range f.clauses {
		out[i] = slices.Clone(c)
	}
	return out
}

// Clause returns a copy of the i-th clause (0-based insertion order).
func (f *Formula) Clause(i int) []int { return slices.Clone(f.clauses[i]) }

// Header returns the comment lines emitted at the top of serialized output.
func (f *Formula) Header() []string { return slices.Clone(f.header) }

// AddComment appends a line to the header. Newlines in line split it
// into multiple header lines.
func (f *Formula) AddComment(line string) {
	f.header = append(f.header, splitLines(line)...)
}

// AddClause appends a clause given as signed non-zero literals.
//
// Unless the formula was built with WithLenientClauses, the clause must
// not contain a repeated literal nor a variable with both polarities;
// violations are reported as ErrCodeInvalidClause. Literals referencing
// an unseen variable id register it (and every id below it) unless the
// formula was built with WithClosedVocabulary, in which case they are
// reported as ErrCodeUnknownVariable.
//
// On error the formula is left unchanged.
func (f *Formula) AddClause(lits ...int) error {
	for _, l := range lits {
		if l == 0 {
			return errors.New(errors.ErrCodeInvalidClause, "literal 0 is not allowed")
		}
	}
	if !f.lenient {
		seen := make(map[int]struct{}, len(lits))
		for _, l := range lits {
			if _, dup := seen[l]; dup {
				return errors.New(errors.ErrCodeInvalidClause, "literal %d repeated in clause", l)
			}
			if _, opp := seen[-l]; opp {
				return errors.New(errors.ErrCodeInvalidClause,
					"clause contains both %d and %d", -l, l)
			}
			seen[l] = struct{}{}
		}
	}
	maxID := 0
	for _, l := range lits {
		v := abs(l)
		if v > maxID {
			maxID = v
		}
	}
	if maxID > f.NumVariables() {
		if f.closed {
			return errors.New(errors.ErrCodeUnknownVariable,
				"clause references variable %d but only %d are declared", maxID, f.NumVariables())
		}
		for f.NumVariables() < maxID {
			f.NewVariable("")
		}
	}
	f.clauses = append(f.clauses, slices.Clone(lits))
	return nil
}

// AddClauses appends every clause in the sequence, stopping at the first
// invalid one. Clauses appended before the failure remain in the formula.
func (f *Formula) AddClauses(clauses [][]int) error {
	for i, c := range clauses {
		if err := f.AddClause(c...); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "clause %d", i)
		}
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
