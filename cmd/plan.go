package cmd

import (
	"github.com/itsmostafa/bindery/internal/merge"
	"github.com/spf13/cobra"
)

var (
	planInput   string
	planPrefix  string
	planPattern string
	planOrder   string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview the merge order without writing anything",
	Long: `Resolve and print the merge order for a directory exactly as the merge
command would, then stop. No output document is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd, planInput, planPrefix, planPattern, planOrder, false)
		if err != nil {
			return err
		}
		opts.DryRun = true
		opts.Output = cmd.OutOrStdout()
		return merge.Run(opts)
	},
}

func init() {
	planCmd.Flags().StringVarP(&planInput, "input", "i", "", "Directory containing the PDF files to merge")
	planCmd.Flags().StringVarP(&planPrefix, "prefix", "p", "", "Filename prefix stripped before the pattern is applied")
	planCmd.Flags().StringVarP(&planPattern, "pattern", "r", `(\d+)`, "Regular expression whose first capture group is the merge index")
	planCmd.Flags().StringVar(&planOrder, "order", "", "Comma separated merge positions, overriding filename parsing")
	planCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(planCmd)
}
