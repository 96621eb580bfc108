package merge

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/bindery/internal/plan"
)

var (
	// titleStyle for bold blue headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for skip warnings
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// errorStyle for failure indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for the completion summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)

	// headerBoxStyle for the watch banner
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// FormatPlan renders the resolved merge order as a numbered table.
func FormatPlan(w io.Writer, p *plan.Plan) {
	fmt.Fprintln(w, titleStyle.Render("Merge order"))
	for i, e := range p.Entries {
		key := dimStyle.Render(fmt.Sprintf("(key %d)", e.Key))
		fmt.Fprintf(w, "  %2d. %s %s\n", i+1, e.File, key)
	}
}

// FormatSkipped renders one warning line per file excluded from the
// plan.
func FormatSkipped(w io.Writer, skipped []string) {
	for _, f := range skipped {
		fmt.Fprintf(w, "%s no index found in %s, skipping\n", warnStyle.Render("warning:"), f)
	}
}

// FormatAppend renders one progress line for an appended file.
func FormatAppend(w io.Writer, file, title string, pageIndex, pages int) {
	detail := dimStyle.Render(fmt.Sprintf("(%d pages at page %d)", pages, pageIndex+1))
	fmt.Fprintf(w, "%s %s -> %q %s\n", successStyle.Render("✓"), file, title, detail)
}

// FormatSummary renders the completion summary box.
func FormatSummary(w io.Writer, res *Result) {
	line1 := fmt.Sprintf("%s %s", dimStyle.Render("Output:"), res.OutputFile)
	line2 := fmt.Sprintf("%s %d  %s %d",
		dimStyle.Render("Files:"), res.Files,
		dimStyle.Render("Pages:"), res.TotalPages,
	)
	content := titleStyle.Render("Merge complete") + "\n" + line1 + "\n" + line2
	fmt.Fprintln(w, boxStyle.Render(content))
}

// FormatMessage renders a plain informational message.
func FormatMessage(w io.Writer, msg string) {
	fmt.Fprintln(w, dimStyle.Render(msg))
}

// FormatWatchHeader renders the watch mode banner.
func FormatWatchHeader(w io.Writer, dir, output string, debounce time.Duration) {
	content := fmt.Sprintf("%s %s\n%s %s\n%s %s",
		dimStyle.Render("Watching:"), titleStyle.Render(dir),
		dimStyle.Render("Output:"), output,
		dimStyle.Render("Debounce:"), debounce.String(),
	)
	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatWatchError renders a timestamped failure line for one re-merge
// attempt in watch mode.
func FormatWatchError(w io.Writer, err error) {
	stamp := dimStyle.Render(time.Now().Format("15:04:05"))
	fmt.Fprintf(w, "%s %s %v\n", stamp, errorStyle.Render("merge failed:"), err)
}
