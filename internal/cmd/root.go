package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kmorrow/bayescm/internal/ui"
)

var (
	// Global flags
	verbose bool
	format  string
)

// RootCmd is the base command for bayescm
var RootCmd = &cobra.Command{
	Use:   "bayescm",
	Short: "Credible intervals for confusion-matrix metrics",
	Long: `bayescm quantifies the uncertainty in classification metrics derived
from a single confusion matrix.

The observed matrix is treated as one realization of an unknown
cell-probability distribution. A Dirichlet-multinomial conjugate model
resamples plausible confusion matrices, recomputes accuracy, micro and
macro F1, MCC, and per-class precision/recall/F1 on each, and reports
posterior means with equal-tailed credible intervals alongside the
observed point values.`,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "auto", "Output format (auto, table, json)")
}

// GetUI returns a UI configured from the global format flag, with the
// output backend auto-detected from the terminal when format is "auto".
func GetUI() *ui.UI {
	return ui.New(os.Stdout, os.Stderr, format)
}

// GetLogger returns a sugared logger: a development logger to stderr when
// --verbose is set, a no-op logger otherwise.
func GetLogger() *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return log.Sugar()
}
