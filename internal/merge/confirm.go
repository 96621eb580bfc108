package merge

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// confirm shows the proceed prompt and reads one line from r. Only
// "y" or "yes" (case-insensitive) proceeds. A read failure counts as
// a decline; when r is a non-terminal file the decline carries a hint
// that --force skips the prompt.
func confirm(w io.Writer, r io.Reader) bool {
	fmt.Fprint(w, "Proceed with merge? [y/N]: ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		if f, ok := r.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
			fmt.Fprintln(w)
			FormatMessage(w, "stdin is not a terminal; use --force to skip confirmation")
		}
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
