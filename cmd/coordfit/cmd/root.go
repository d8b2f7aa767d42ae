package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/coordfit/pkg/log"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd builds the coordfit command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "coordfit",
		Short: "coordfit - coordinate-wise hill-climbing linear fitting",
		Long: `coordfit fits weights w so that X·w approximates y by perturbing one
coordinate at a time and keeping only strict improvements in RMSE.

Commands:
  tune     - Tune weights on the built-in sample store
  version  - Print the version

Example:
  coordfit tune
  coordfit tune --iterations 5000 --seed 7 --plot convergence.png
  COORDFIT_LOG_LEVEL=debug coordfit tune`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newTuneCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the CLI. A failure is logged once to stderr with its error
// code and returned.
func Execute(ctx context.Context) error {
	return execute(ctx, NewRootCmd())
}

func execute(ctx context.Context, root *cobra.Command) error {
	if err := root.ExecuteContext(ctx); err != nil {
		log.NewConsoleLogger(root.ErrOrStderr(), log.LevelError).Error("Command failed", err)
		return err
	}
	return nil
}
