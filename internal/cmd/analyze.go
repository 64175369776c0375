package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/kmorrow/bayescm/internal/analysis"
	"github.com/kmorrow/bayescm/internal/loader"
	"github.com/kmorrow/bayescm/internal/matrix"
	"github.com/kmorrow/bayescm/internal/prior"
	"github.com/kmorrow/bayescm/internal/reporter"
	"github.com/kmorrow/bayescm/internal/ui"
)

var (
	labelsPath string
	classes    int
	priorArg   string
	confidence float64
	samples    int
	seed       uint64
	saveDir    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [preds-file]",
	Short: "Estimate posterior credible intervals for classification metrics",
	Long: `Analyze a predictions file against a labels file, or a file that
already encodes a confusion matrix as a JSON 2D array of counts.

Predictions and labels are sequences of integer class indices in JSON,
CSV (first column) or whitespace-separated plain text. The literal
argument "example" runs the built-in 2-class demo matrix [[6,2],[1,3]].

Examples:
  bayescm analyze preds.json --labels labels.json --classes 3
  bayescm analyze matrix.json --prior jeffreys --samples 20000
  bayescm analyze example --confidence 0.9 --format json`,
	Args:         cobra.ExactArgs(1),
	RunE:         runAnalyze,
	SilenceUsage: true,
}

func init() {
	analyzeCmd.Flags().StringVar(&labelsPath, "labels", "", "Labels file; without it the input must encode a matrix")
	analyzeCmd.Flags().IntVar(&classes, "classes", 0, "Number of classes (0 means inferred from the data)")
	analyzeCmd.Flags().StringVar(&priorArg, "prior", "flat", "Dirichlet prior: a pseudocount or a preset name")
	analyzeCmd.Flags().Float64Var(&confidence, "confidence", 0.95, "Credible-interval confidence level in (0, 1)")
	analyzeCmd.Flags().IntVar(&samples, "samples", 10000, "Number of posterior samples to draw")
	analyzeCmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 means time-seeded)")
	analyzeCmd.Flags().StringVar(&saveDir, "save", "", "Directory to persist the analysis artifact to")
	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	u := GetUI()
	log := GetLogger()

	progress := u.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	// Stage 1: Build the observed matrix
	if progress != nil {
		progress.SetStage(ui.StageLoadInput)
	}

	m, err := observedMatrix(args[0])
	if err != nil {
		return err
	}
	log.Debugw("observed matrix built", "classes", m.Classes(), "total", m.Total())

	// Stage 2: Construct the analysis (observed-data point metrics)
	if progress != nil {
		progress.SetStage(ui.StageTally)
	}

	a, err := analysis.New(m, prior.Parse(priorArg), confidence, log)
	if err != nil {
		return err
	}

	// Stage 3: Posterior sampling
	if progress != nil {
		progress.SetStage(ui.StageSample)
		progress.SetOperation(fmt.Sprintf("%d samples", samples))
	}

	var src rand.Source
	if seed != 0 {
		src = rand.NewSource(seed)
	}
	if err := a.EstimatePosterior(samples, src); err != nil {
		return err
	}

	if progress != nil {
		progress.SetStage(ui.StageSummarize)
	}

	if saveDir != "" {
		if err := a.Save(saveDir); err != nil {
			return err
		}
	}

	// Stop progress before reporting
	if progress != nil {
		progress.Done(nil)
		progress = nil // Prevent double-done in defer
	}

	return report(u, a.Summary)
}

// observedMatrix builds the observed confusion matrix from the CLI input:
// the demo matrix, a tallied prediction/label pair, or a file that
// encodes the matrix directly.
func observedMatrix(arg string) (matrix.ConfusionMatrix, error) {
	if arg == "example" {
		return matrix.New([][]int{{6, 2}, {1, 3}})
	}

	if labelsPath == "" {
		return loader.LoadMatrix(arg)
	}

	preds, err := loader.Load(arg)
	if err != nil {
		return matrix.ConfusionMatrix{}, fmt.Errorf("loading predictions: %w", err)
	}
	labels, err := loader.Load(labelsPath)
	if err != nil {
		return matrix.ConfusionMatrix{}, fmt.Errorf("loading labels: %w", err)
	}

	k := classes
	if k == 0 {
		// Infer K from the data when not given explicitly.
		for _, v := range preds {
			if v+1 > k {
				k = v + 1
			}
		}
		for _, v := range labels {
			if v+1 > k {
				k = v + 1
			}
		}
	}
	return matrix.Tally(preds, labels, k)
}

// report renders a summary with the backend the UI mode selects.
func report(u *ui.UI, s *analysis.Summary) error {
	if u.IsJSON() {
		return reporter.NewJSONReporter(os.Stdout).Report(s)
	}
	return reporter.NewTableReporter(os.Stdout, u.Styles).Report(s)
}
