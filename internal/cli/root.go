package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/MassimoLauria/cnfgen/pkg/buildinfo"
)

// Execute runs the cnfgen CLI and returns an error if any command
// fails.
//
// The root command wires up one subcommand per formula family plus the
// graph and batch utilities, and configures logging based on the
// --verbose flag before any command runs. The logger is attached to
// the context and accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "cnfgen",
		Short:        "cnfgen generates CNF benchmark formulas",
		Long:         `cnfgen builds CNF formulas from combinatorial principles (pigeonhole, Tseitin, ordering, coloring, pebbling, Ramsey, counting, subset cardinality, random k-CNF), optionally transformed by variable substitutions and shuffles, and writes them as DIMACS or LaTeX.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPHPCmd())
	root.AddCommand(newTseitinCmd())
	root.AddCommand(newOrderingCmd())
	root.AddCommand(newColoringCmd())
	root.AddCommand(newPebblingCmd())
	root.AddCommand(newRamseyCmd())
	root.AddCommand(newRandKCNFCmd())
	root.AddCommand(newCountingCmd())
	root.AddCommand(newSubsetCardCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newBatchCmd())

	return root.ExecuteContext(ctx)
}
