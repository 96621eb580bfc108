// Package merge orchestrates the PDF merge pipeline: list the input
// directory, build the ordering plan, optionally confirm it with the
// user, and assemble the bookmarked output document.
package merge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/itsmostafa/bindery/internal/logger"
	"github.com/itsmostafa/bindery/internal/pdf"
	"github.com/itsmostafa/bindery/internal/plan"
	"github.com/itsmostafa/bindery/internal/scan"
)

// Options configures one pipeline run.
type Options struct {
	InputDir   string
	OutputFile string
	Prefix     string
	Pattern    *regexp.Regexp // nil falls back to plan.DefaultPattern
	Titles     []string
	Order      []int // non-nil selects the explicit strategy
	Force      bool
	DryRun     bool      // print the plan and stop before merging
	Output     io.Writer // defaults to os.Stdout
	Stdin      io.Reader // defaults to os.Stdin
	Backend    Backend   // defaults to a pdfcpu-backed document
}

// Run executes the pipeline. The non-fatal outcomes (no input files,
// no indexable files, declined confirmation) print a message and
// return nil; order count mismatches and append or write failures
// return an error.
func Run(opts Options) error {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Backend == nil {
		opts.Backend = pdf.NewDocument()
	}

	files, err := scan.ListPDFs(opts.InputDir)
	if err != nil {
		return err
	}
	files = dropOutput(files, opts.InputDir, opts.OutputFile)
	if len(files) == 0 {
		FormatMessage(opts.Output, fmt.Sprintf("No PDF files found in %s.", opts.InputDir))
		return nil
	}
	logger.Debugf("found %d PDF files in %s", len(files), opts.InputDir)

	var p *plan.Plan
	if opts.Order != nil {
		// Explicit order always wins over prefix/pattern settings.
		p, err = plan.ByExplicitOrder(files, opts.Order)
		if err != nil {
			return err
		}
	} else {
		p, err = plan.ByIndex(files, opts.Prefix, opts.Pattern)
		FormatSkipped(opts.Output, p.Skipped)
		if errors.Is(err, plan.ErrNoValidEntries) {
			FormatMessage(opts.Output, fmt.Sprintf("No files in %s carry a usable index; nothing to merge.", opts.InputDir))
			return nil
		}
		if err != nil {
			return err
		}
	}

	if opts.DryRun || !opts.Force {
		FormatPlan(opts.Output, p)
	}
	if opts.DryRun {
		FormatMessage(opts.Output, fmt.Sprintf("Planned %d of %d files; nothing written.", len(p.Entries), len(files)))
		return nil
	}
	if !opts.Force {
		if !confirm(opts.Output, opts.Stdin) {
			FormatMessage(opts.Output, "Merge cancelled.")
			return nil
		}
	}

	asm := NewAssembler(opts.Backend, opts.Titles, opts.Output)
	res, err := asm.Assemble(opts.InputDir, p.Entries, opts.OutputFile)
	if err != nil {
		return err
	}
	FormatSummary(opts.Output, res)
	return nil
}

// dropOutput removes an earlier merge result from the input listing
// when the output path points inside the input directory, so repeated
// runs never fold the document into itself.
func dropOutput(files []string, dir, output string) []string {
	if output == "" {
		return files
	}
	target, err := filepath.Abs(output)
	if err != nil {
		return files
	}
	kept := files[:0]
	for _, f := range files {
		abs, err := filepath.Abs(filepath.Join(dir, f))
		if err != nil || abs != target {
			kept = append(kept, f)
		}
	}
	return kept
}
