package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmorrow/bayescm/internal/prior"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the named Dirichlet prior presets",
	Run: func(cmd *cobra.Command, args []string) {
		u := GetUI()
		fmt.Fprintln(u.Writer, u.Styles.Header.Render("Prior presets"))
		for _, name := range prior.Presets() {
			p, _ := prior.Lookup(name)
			fmt.Fprintf(u.Writer, "  %-10s %4g  %s\n",
				name, p.Pseudocount, u.Styles.Subheader.Render(p.Description))
		}
	},
}

func init() {
	RootCmd.AddCommand(presetsCmd)
}
