package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/itsmostafa/bindery/internal/config"
	"github.com/itsmostafa/bindery/internal/logger"
	"github.com/itsmostafa/bindery/internal/merge"
	"github.com/itsmostafa/bindery/internal/plan"
	"github.com/spf13/cobra"
)

var (
	mergeInput   string
	mergeOutput  string
	mergePrefix  string
	mergePattern string
	mergeTitles  string
	mergeOrder   string
	mergeForce   bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge the PDF files in a directory into one document",
	Long: `Merge the PDF files in a directory into a single bookmarked output
document. Files are ordered by the number the pattern captures from each
filename, or by --order, which assigns positions to the directory listing
directly and skips filename parsing entirely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd, mergeInput, mergePrefix, mergePattern, mergeOrder, mergeForce)
		if err != nil {
			return err
		}
		opts.OutputFile = mergeOutput
		opts.Titles = splitTitles(mergeTitles)
		opts.Output = cmd.OutOrStdout()
		opts.Stdin = cmd.InOrStdin()
		return merge.Run(opts)
	},
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeInput, "input", "i", "", "Directory containing the PDF files to merge")
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Path of the merged output document")
	mergeCmd.Flags().StringVarP(&mergePrefix, "prefix", "p", "", "Filename prefix stripped before the pattern is applied")
	mergeCmd.Flags().StringVarP(&mergePattern, "pattern", "r", `(\d+)`, "Regular expression whose first capture group is the merge index")
	mergeCmd.Flags().StringVar(&mergeTitles, "titles", "", "Comma separated bookmark titles, one per merge position")
	mergeCmd.Flags().StringVar(&mergeOrder, "order", "", "Comma separated merge positions, overriding filename parsing")
	mergeCmd.Flags().BoolVarP(&mergeForce, "force", "f", false, "Skip the confirmation prompt")
	mergeCmd.MarkFlagRequired("input")
	mergeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(mergeCmd)
}

// resolveOptions builds pipeline options from command line values,
// filling prefix, pattern, and force from the stored defaults when
// their flags were not set.
func resolveOptions(cmd *cobra.Command, input, prefix, pattern, order string, force bool) (merge.Options, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Warnf("ignoring config file: %v", err)
	}
	if !cmd.Flags().Changed("prefix") {
		prefix = cfg.Prefix
	}
	if !cmd.Flags().Changed("pattern") {
		pattern = cfg.Pattern
	}
	if !cmd.Flags().Changed("force") {
		force = cfg.Force
	}

	re, err := compilePattern(pattern)
	if err != nil {
		return merge.Options{}, err
	}
	var positions []int
	if order != "" {
		positions, err = plan.ParseOrder(order)
		if err != nil {
			return merge.Options{}, err
		}
	}

	return merge.Options{
		InputDir: input,
		Prefix:   prefix,
		Pattern:  re,
		Order:    positions,
		Force:    force,
	}, nil
}

// compilePattern compiles an index pattern, rejecting expressions
// without the capture group the extractor reads.
func compilePattern(s string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(s)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", s, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("pattern %q must contain a capture group", s)
	}
	return re, nil
}

// splitTitles splits a comma separated title list, keeping empty slots
// so later titles stay positional.
func splitTitles(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
