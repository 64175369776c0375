package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kmorrow/bayescm/internal/analysis"
)

var showCmd = &cobra.Command{
	Use:   "show [dir]",
	Short: "Render a previously saved analysis",
	Long: `Load the analysis artifact saved by "analyze --save" and render its
summary again, without resampling.

Examples:
  bayescm show ./results
  bayescm show --format json ./results`,
	Args:         cobra.ExactArgs(1),
	RunE:         runShow,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := analysis.Load(args[0], GetLogger())
	if err != nil {
		return err
	}
	return report(GetUI(), a.Summary)
}
