package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

// WriteDIMACS writes the formula in DIMACS CNF format.
//
// The output is byte-for-byte stable: header comment lines in order,
// one "p cnf <n> <m>" line, then one line per clause in insertion
// order, each a space-separated list of literals terminated by "0".
// A trailing newline is always emitted.
func (f *Formula) WriteDIMACS(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range f.header {
		if line == "" {
			if _, err := bw.WriteString("c\n"); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(bw, "c %s\n", line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.NumVariables(), f.NumClauses()); err != nil {
		return err
	}
	for _, c := range f.clauses {
		for _, l := range c {
			if _, err := bw.WriteString(strconv.Itoa(l)); err != nil {
				return err
			}
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DIMACS returns the DIMACS CNF serialization as a string.
// Serialization is a pure read: calling it twice without mutating the
// formula yields identical text.
func (f *Formula) DIMACS() string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = f.WriteDIMACS(&sb)
	return sb.String()
}

// ParseDIMACS reads a formula in DIMACS CNF format.
//
// Comment lines ("c ...") before the problem line are collected into the
// formula header. The problem line must be "p cnf <n> <m>"; exactly m
// clauses must follow, each terminated by a standalone 0, with every
// literal in [-n,n]. Errors carry the offending line number.
//
// The returned formula is built in lenient mode, so clause text that a
// strict builder would reject (repeated literals, tautologies) round-trips
// unchanged.
func ParseDIMACS(r io.Reader) (*Formula, error) {
	f := New(WithLenientClauses())

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		nvar, nclauses = -1, -1
		current        []int
		lineno         int
	)

	for sc.Scan() {
		lineno++
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "c") {
			if nvar < 0 {
				f.AddComment(strings.TrimPrefix(strings.TrimPrefix(trimmed, "c"), " "))
			}
			continue
		}
		if strings.HasPrefix(trimmed, "p") {
			if nvar >= 0 {
				return nil, errors.New(errors.ErrCodeParse, "line %d: duplicate problem line", lineno)
			}
			fields := strings.Fields(trimmed)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, errors.New(errors.ErrCodeParse, "line %d: expected \"p cnf <n> <m>\"", lineno)
			}
			var err1, err2 error
			nvar, err1 = strconv.Atoi(fields[2])
			nclauses, err2 = strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || nvar < 0 || nclauses < 0 {
				return nil, errors.New(errors.ErrCodeParse, "line %d: malformed problem line", lineno)
			}
			continue
		}
		if nvar < 0 {
			return nil, errors.New(errors.ErrCodeParse, "line %d: clause before problem line", lineno)
		}
		for _, tok := range strings.Fields(trimmed) {
			lit, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.New(errors.ErrCodeParse, "line %d: non-integer token %q", lineno, tok)
			}
			if lit == 0 {
				if f.NumClauses() >= nclauses {
					return nil, errors.New(errors.ErrCodeParse,
						"line %d: more than %d clauses", lineno, nclauses)
				}
				if err := f.AddClause(current...); err != nil {
					return nil, errors.Wrap(errors.ErrCodeParse, err, "line %d", lineno)
				}
				current = nil
				continue
			}
			if abs(lit) > nvar {
				return nil, errors.New(errors.ErrCodeParse,
					"line %d: literal %d out of range [1,%d]", lineno, lit, nvar)
			}
			current = append(current, lit)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "reading DIMACS input")
	}
	if nvar < 0 {
		return nil, errors.New(errors.ErrCodeParse, "missing problem line")
	}
	if len(current) > 0 {
		return nil, errors.New(errors.ErrCodeParse, "unterminated clause at end of input")
	}
	if f.NumClauses() != nclauses {
		return nil, errors.New(errors.ErrCodeParse,
			"expected %d clauses, found %d", nclauses, f.NumClauses())
	}
	// the problem line may declare variables no clause mentions
	for f.NumVariables() < nvar {
		f.NewVariable("")
	}
	return f, nil
}
