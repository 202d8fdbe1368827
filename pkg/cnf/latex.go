package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteLaTeX writes the formula as a LaTeX math expression.
//
// Each clause is rendered as a parenthesized disjunction, clauses are
// joined by \land, and negated literals use \overline on the variable
// name. The empty clause renders as \square and the empty formula as
// \top. Header lines are emitted as "%" comments.
func (f *Formula) WriteLaTeX(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range f.header {
		if line == "" {
			if _, err := bw.WriteString("%\n"); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(bw, "%% %s\n", line); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\\ensuremath{%"); err != nil {
		return err
	}
	if len(f.clauses) == 0 {
		if _, err := bw.WriteString("\n   \\top }\n"); err != nil {
			return err
		}
		return bw.Flush()
	}
	for i, c := range f.clauses {
		sep := "\n      "
		if i > 0 {
			sep = "\n\\land "
		}
		if _, err := bw.WriteString(sep + f.latexClause(c)); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString(" }\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// LaTeX returns the LaTeX serialization as a string.
func (f *Formula) LaTeX() string {
	var sb strings.Builder
	_ = f.WriteLaTeX(&sb)
	return sb.String()
}

func (f *Formula) latexClause(c []int) string {
	if len(c) == 0 {
		return "\\square"
	}
	parts := make([]string, len(c))
	for i, l := range c {
		if l > 0 {
			parts[i] = "{" + f.Label(l) + "}"
		} else {
			parts[i] = "\\overline{" + f.Label(-l) + "}"
		}
	}
	return "\\left( " + strings.Join(parts, " \\lor ") + " \\right)"
}
