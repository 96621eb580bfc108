package plan

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultPattern matches the first run of decimal digits in a filename.
var DefaultPattern = regexp.MustCompile(`(\d+)`)

// ExtractIndex derives the ordering key for a filename. The prefix is
// removed only when it is a true leading substring; the remainder is
// searched for the first match of pattern and the first capture group
// is parsed as a base-10 integer. A nil pattern falls back to
// DefaultPattern. The second result is false when the pattern does not
// match anywhere in the name or the captured text does not fit in an
// int.
func ExtractIndex(name, prefix string, pattern *regexp.Regexp) (int, bool) {
	if pattern == nil {
		pattern = DefaultPattern
	}
	trimmed := strings.TrimPrefix(name, prefix)
	m := pattern.FindStringSubmatch(trimmed)
	if len(m) < 2 {
		return 0, false
	}
	key, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return key, true
}
