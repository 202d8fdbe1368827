package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/errors"
	"github.com/MassimoLauria/cnfgen/pkg/graphio"
	"github.com/MassimoLauria/cnfgen/pkg/sat"
	"github.com/MassimoLauria/cnfgen/pkg/transform"
)

// formulaOpts holds the flags shared by every formula family command:
// where to write, in which syntax, and the optional post-processing.
type formulaOpts struct {
	output    string // output file; empty means stdout
	latex     bool   // emit LaTeX instead of DIMACS
	check     bool   // decide satisfiability before writing
	transform string // substitution: "", "none", "or", "xor", "maj"
	rank      int    // substitution rank
	shuffle   bool   // reshuffle variables, clauses and polarities
	seed      uint64 // seed for shuffling and random families
}

// addFormulaFlags registers the shared output and transformation flags.
func addFormulaFlags(cmd *cobra.Command, opts *formulaOpts) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.latex, "latex", false, "write LaTeX instead of DIMACS")
	cmd.Flags().BoolVar(&opts.check, "check", false, "decide satisfiability and report it")
	cmd.Flags().StringVarP(&opts.transform, "transform", "T", "", "variable substitution: or, xor, maj")
	cmd.Flags().IntVar(&opts.rank, "rank", 0, "substitution rank (copies per variable)")
	cmd.Flags().BoolVar(&opts.shuffle, "shuffle", false, "reshuffle variables, clauses and polarities")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for shuffling and random sampling")
}

// rng builds the command's random generator from the seed flag.
func (o *formulaOpts) rng() *rand.Rand {
	return rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15))
}

// emitFormula applies the requested post-processing to f and writes it
// to the output flag destination.
func emitFormula(ctx context.Context, f *cnf.Formula, opts *formulaOpts) error {
	logger := loggerFromContext(ctx)

	var err error
	if f, err = applySubstitution(f, opts); err != nil {
		return err
	}
	if opts.shuffle {
		f = transform.Shuffle(f, opts.rng(), transform.ShuffleOptions{
			Polarity:  true,
			Variables: true,
			Clauses:   true,
		})
	}
	if opts.check {
		prog := newProgress(logger)
		satisfiable, _, err := sat.Solve(f)
		if err != nil {
			return err
		}
		if satisfiable {
			prog.done("Formula is satisfiable")
			f.AddComment("satisfiable: yes")
		} else {
			prog.done("Formula is unsatisfiable")
			f.AddComment("satisfiable: no")
		}
	}

	logger.Debug("serializing formula",
		"variables", f.NumVariables(), "clauses", f.NumClauses())

	text := f.DIMACS()
	if opts.latex {
		text = f.LaTeX()
	}
	if opts.output == "" {
		_, err := fmt.Print(text)
		return err
	}
	return os.WriteFile(opts.output, []byte(text), 0o644)
}

func applySubstitution(f *cnf.Formula, opts *formulaOpts) (*cnf.Formula, error) {
	var (
		s   transform.Substitution
		err error
	)
	switch opts.transform {
	case "", "none":
		return f, nil
	case "or":
		s, err = transform.OrSubstitution(opts.rank)
	case "xor":
		s, err = transform.XorSubstitution(opts.rank)
	case "maj":
		s, err = transform.MajoritySubstitution(opts.rank)
	default:
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"unknown transform %q", opts.transform)
	}
	if err != nil {
		return nil, err
	}
	return transform.Apply(f, s)
}

// graphInput holds the flags naming an input graph file.
type graphInput struct {
	path   string
	format string
}

func addGraphFlags(cmd *cobra.Command, in *graphInput) {
	cmd.Flags().StringVarP(&in.path, "input", "i", "", "input graph file")
	cmd.Flags().StringVar(&in.format, "graph-format", "", "graph file format: gml, dot, kthlist, dimacs, matrix")
}

// read loads the input graph as the given kind, resolving the format
// from the flag and the file extension.
func (in *graphInput) read(kind graphio.Kind) (graphio.Graph, error) {
	if in.path == "" {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "missing --input graph file")
	}
	format := graphio.FormatUnknown
	if in.format != "" {
		var err error
		if format, err = graphio.ParseFormat(in.format); err != nil {
			return nil, err
		}
	}
	return graphio.ReadFile(in.path, kind, format)
}
