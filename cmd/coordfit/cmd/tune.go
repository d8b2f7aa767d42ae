package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/coordfit/dataset"
	"github.com/YuminosukeSato/coordfit/internal/config"
	"github.com/YuminosukeSato/coordfit/internal/report"
	"github.com/YuminosukeSato/coordfit/pkg/errors"
	"github.com/YuminosukeSato/coordfit/pkg/log"
	"github.com/YuminosukeSato/coordfit/tuning"
)

func newTuneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tune",
		Short: "Tune weights on the built-in sample store",
		Long: `Tune starts from zero weights on a fixed 4x3 sample store, prints the
store, then the final RMSE and weights. Flags may also be given as
COORDFIT_<FLAG> environment variables, e.g. COORDFIT_ITERATIONS=5000.`,
		Args: cobra.NoArgs,
		RunE: runTune,
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func runTune(cmd *cobra.Command, args []string) error {
	return errors.SafeExecute("coordfit tune", func() error {
		return tune(cmd, args)
	})
}

func tune(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)
	logger.InstallWarnHook()

	store, err := sampleStore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.DumpStore(out, store); err != nil {
		return err
	}

	tuner := tuning.New(
		tuning.WithRadius(cfg.Radius),
		tuning.WithStep(cfg.Step),
		tuning.WithLogger(logger),
		tuning.WithHistory(cfg.Plot != ""),
		tuning.WithProgressEvery(progressInterval(cfg.Iterations)),
	)
	res, err := tuner.TuneContext(cmd.Context(), store, make([]float64, store.Dim()), cfg.Iterations, tuning.NewSource(cfg.Seed))
	if err != nil && res == nil {
		return err
	}

	fmt.Fprintf(out, "RMSE: %.4f\n", res.RMSE)
	fmt.Fprintf(out, "WEIGHTS: %s\n", report.FormatWeights(res.Weights))
	if err != nil {
		// canceled: the partial result is still worth printing
		return err
	}

	sum, err := report.Summarize(store, res.Weights)
	if err != nil {
		return err
	}
	logger.Info("Fit quality",
		log.OperationKey, log.OperationEvaluate,
		log.RandomSeedKey, cfg.Seed,
		log.SSEKey, sum.SSE,
		log.MSEKey, sum.MSE,
		log.RMSEKey, sum.RMSE,
		log.MAEKey, sum.MAE,
		log.R2ScoreKey, sum.R2,
	)

	if cfg.Plot != "" && len(res.History) > 0 {
		if err := report.SaveConvergencePlot(res.History, cfg.Plot); err != nil {
			return err
		}
		logger.Info("Plot written", "path", cfg.Plot)
	}
	return nil
}

func newLogger(w io.Writer, cfg *config.Config) *log.ZerologLogger {
	if cfg.LogFormat == "json" {
		return log.NewZerologLogger(w, cfg.LogLevel)
	}
	return log.NewConsoleLogger(w, cfg.LogLevel)
}

// progressInterval reports roughly ten progress lines per run at debug level.
func progressInterval(iterations int) int {
	if iterations < 10 {
		return 1
	}
	return iterations / 10
}

// sampleStore returns the fixed reference observations.
func sampleStore() (*dataset.Store, error) {
	s := dataset.New()
	err := s.AppendRows(
		dataset.Row{Features: []float64{6, -4, 5}, Target: 4.0},
		dataset.Row{Features: []float64{1, 4, 6}, Target: 3.0},
		dataset.Row{Features: []float64{2, 8, 7}, Target: 6.0},
		dataset.Row{Features: []float64{1, 3, 8}, Target: 2.5},
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}
