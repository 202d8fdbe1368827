package batch

import (
	"context"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/MassimoLauria/cnfgen/pkg/cnf"
	"github.com/MassimoLauria/cnfgen/pkg/errors"
	"github.com/MassimoLauria/cnfgen/pkg/formula"
	"github.com/MassimoLauria/cnfgen/pkg/graph"
	"github.com/MassimoLauria/cnfgen/pkg/graphio"
	"github.com/MassimoLauria/cnfgen/pkg/sat"
	"github.com/MassimoLauria/cnfgen/pkg/transform"
)

// builder constructs a job's base formula before any transformation.
type builder func(j *Job, rng *rand.Rand) (*cnf.Formula, error)

var builders = map[string]builder{
	"php":        buildPHP,
	"tseitin":    buildTseitin,
	"ordering":   buildOrdering,
	"coloring":   buildColoring,
	"pebbling":   buildPebbling,
	"ramsey":     buildRamsey,
	"randkcnf":   buildRandomKCNF,
	"counting":   buildCounting,
	"subsetcard": buildSubsetCardinality,
}

// Run executes every job in order, stopping at the first failure. The
// logger carried by ctx gets a fresh correlation id for the whole run.
func (m *Manifest) Run(ctx context.Context) error {
	logger := log.FromContext(ctx).With("run", uuid.NewString())

	for i := range m.Jobs {
		job := &m.Jobs[i]
		logger.Info("generating formula", "job", job.label(i), "family", job.Family)
		if err := job.run(); err != nil {
			logger.Error("job failed", "job", job.label(i), "err", err)
			return errors.Wrap(errors.GetCode(err), err, "job %s", job.label(i))
		}
		logger.Info("wrote formula", "job", job.label(i), "output", job.Output)
	}
	return nil
}

func (j *Job) run() error {
	rng := rand.New(rand.NewPCG(j.Seed, j.Seed^0x9e3779b97f4a7c15))

	f, err := builders[j.Family](j, rng)
	if err != nil {
		return err
	}
	if f, err = j.applyTransform(f); err != nil {
		return err
	}
	if j.Shuffle {
		f = transform.Shuffle(f, rng, transform.ShuffleOptions{
			Polarity:  true,
			Variables: true,
			Clauses:   true,
		})
	}
	if j.Check {
		satisfiable, _, err := sat.Solve(f)
		if err != nil {
			return err
		}
		if satisfiable {
			f.AddComment("satisfiable: yes")
		} else {
			f.AddComment("satisfiable: no")
		}
	}

	text := f.DIMACS()
	if j.Format == "latex" {
		text = f.LaTeX()
	}
	return os.WriteFile(j.Output, []byte(text), 0o644)
}

func (j *Job) applyTransform(f *cnf.Formula) (*cnf.Formula, error) {
	var (
		s   transform.Substitution
		err error
	)
	switch j.Transform {
	case "", "none":
		return f, nil
	case "or":
		s, err = transform.OrSubstitution(j.Rank)
	case "xor":
		s, err = transform.XorSubstitution(j.Rank)
	case "maj":
		s, err = transform.MajoritySubstitution(j.Rank)
	}
	if err != nil {
		return nil, err
	}
	return transform.Apply(f, s)
}

func buildPHP(j *Job, _ *rand.Rand) (*cnf.Formula, error) {
	opts := formula.PHPOptions{Functional: j.Functional, Onto: j.Onto}
	if j.Graph != "" {
		b, err := readGraph[*graph.Bipartite](j, graphio.KindBipartite)
		if err != nil {
			return nil, err
		}
		return formula.GraphPigeonholePrinciple(b, opts)
	}
	return formula.PigeonholePrinciple(j.Pigeons, j.Holes, opts)
}

func buildTseitin(j *Job, _ *rand.Rand) (*cnf.Formula, error) {
	g, err := readGraph[*graph.Simple](j, graphio.KindSimple)
	if err != nil {
		return nil, err
	}
	return formula.TseitinFormula(g, nil)
}

func buildOrdering(j *Job, _ *rand.Rand) (*cnf.Formula, error) {
	opts := formula.OrderingOptions{Total: j.Total, Plant: j.Plant}
	if j.Graph != "" {
		g, err := readGraph[*graph.Simple](j, graphio.KindSimple)
		if err != nil {
			return nil, err
		}
		return formula.GraphOrderingPrinciple(g, opts)
	}
	return formula.OrderingPrinciple(j.Size, opts)
}

func buildColoring(j *Job, _ *rand.Rand) (*cnf.Formula, error) {
	g, err := readGraph[*graph.Simple](j, graphio.KindSimple)
	if err != nil {
		return nil, err
	}
	return formula.GraphColoring(g, j.Colors)
}

func buildPebbling(j *Job, _ *rand.Rand) (*cnf.Formula, error) {
	d, err := readGraph[*graph.Directed](j, graphio.KindDAG)
	if err != nil {
		return nil, err
	}
	return formula.PebblingFormula(d)
}

func buildRamsey(j *Job, _ *rand.Rand) (*cnf.Formula, error) {
	return formula.RamseyNumber(j.S, j.K, j.N)
}

func buildRandomKCNF(j *Job, rng *rand.Rand) (*cnf.Formula, error) {
	return formula.RandomKCNF(j.Width, j.Vars, j.Clauses, rng)
}

func buildCounting(j *Job, _ *rand.Rand) (*cnf.Formula, error) {
	return formula.CountingPrinciple(j.Domain, j.Part)
}

func buildSubsetCardinality(j *Job, _ *rand.Rand) (*cnf.Formula, error) {
	b, err := readGraph[*graph.Bipartite](j, graphio.KindBipartite)
	if err != nil {
		return nil, err
	}
	return formula.SubsetCardinalityFormula(b, j.Equalities)
}

// readGraph loads the job's input graph with the expected kind.
func readGraph[G graphio.Graph](j *Job, kind graphio.Kind) (G, error) {
	var zero G
	if j.Graph == "" {
		return zero, errors.New(errors.ErrCodeInvalidParameter,
			"family %q needs an input graph", j.Family)
	}
	format := graphio.FormatUnknown
	if j.GraphFormat != "" {
		var err error
		if format, err = graphio.ParseFormat(j.GraphFormat); err != nil {
			return zero, err
		}
	}
	g, err := graphio.ReadFile(j.Graph, kind, format)
	if err != nil {
		return zero, err
	}
	typed, ok := g.(G)
	if !ok {
		return zero, errors.New(errors.ErrCodeInternal,
			"reader returned %T for kind %s", g, kind)
	}
	return typed, nil
}
