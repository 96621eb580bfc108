package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/bindery/internal/logger"
	"github.com/itsmostafa/bindery/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "bindery",
	Short: "Merge ordered PDF files into a single bookmarked document",
	Long: `Bindery merges the PDF files in a directory into one output document,
ordered by an index parsed from each filename or by an explicit order you
supply, with one bookmark per source file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("bindery %s\n", version.String()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
