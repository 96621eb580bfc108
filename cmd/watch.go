package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/itsmostafa/bindery/internal/merge"
	"github.com/itsmostafa/bindery/internal/scan"
	"github.com/spf13/cobra"
)

var (
	watchInput    string
	watchOutput   string
	watchPrefix   string
	watchPattern  string
	watchTitles   string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-merge automatically whenever the input directory changes",
	Long: `Watch a directory and re-run the merge after each quiet period that
follows a burst of changes to its PDF files. Ordering always comes from
filename indexes here; an explicit order would go stale as files come and
go. The output document never triggers a re-merge, and watch mode never
prompts. Press Ctrl-C to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd, watchInput, watchPrefix, watchPattern, "", false)
		if err != nil {
			return err
		}
		opts.OutputFile = watchOutput
		opts.Titles = splitTitles(watchTitles)
		opts.Force = true
		out := cmd.OutOrStdout()
		opts.Output = out

		merge.FormatWatchHeader(out, watchInput, watchOutput, watchDebounce)

		// A failed merge keeps the watch alive; the next change gets a
		// fresh attempt.
		remerge := func() {
			if err := merge.Run(opts); err != nil {
				merge.FormatWatchError(out, err)
			}
		}
		remerge()

		w, err := scan.NewWatcher(watchInput, watchDebounce, watchOutput)
		if err != nil {
			return err
		}
		defer w.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return w.Run(ctx, remerge)
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchInput, "input", "i", "", "Directory containing the PDF files to merge")
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Path of the merged output document")
	watchCmd.Flags().StringVarP(&watchPrefix, "prefix", "p", "", "Filename prefix stripped before the pattern is applied")
	watchCmd.Flags().StringVarP(&watchPattern, "pattern", "r", `(\d+)`, "Regular expression whose first capture group is the merge index")
	watchCmd.Flags().StringVar(&watchTitles, "titles", "", "Comma separated bookmark titles, one per merge position")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet period after the last change before re-merging")
	watchCmd.MarkFlagRequired("input")
	watchCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(watchCmd)
}
