package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/MassimoLauria/cnfgen/pkg/batch"
)

// newBatchCmd creates the batch command, running every job of a TOML
// manifest in order.
func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <manifest.toml>",
		Short: "Generate formulas from a TOML manifest",
		Long: "Parse a TOML manifest describing a list of formula generation jobs " +
			"and run them in order, stopping at the first failure.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := batch.Load(args[0])
			if err != nil {
				return err
			}
			ctx := log.WithContext(cmd.Context(), loggerFromContext(cmd.Context()))
			return m.Run(ctx)
		},
	}
}
