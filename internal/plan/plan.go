// Package plan builds the ordered merge plan for a set of PDF files,
// either from numeric indices embedded in the filenames or from an
// explicit caller-supplied order list.
package plan

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ErrNoValidEntries reports that no input file yielded an ordering key.
var ErrNoValidEntries = errors.New("no files with a usable index")

// ErrOrderCountMismatch reports an explicit order list whose length
// differs from the number of input files.
var ErrOrderCountMismatch = errors.New("order values do not match file count")

// Entry pairs one input file with its ordering key.
type Entry struct {
	File string
	Key  int
}

// Plan is the definitive merge order. Skipped lists files excluded by
// the index strategy because no key could be extracted; it is always
// empty for explicit-order plans.
type Plan struct {
	Entries []Entry
	Skipped []string
}

// ByIndex plans the merge by extracting a numeric key from each
// filename (see ExtractIndex). Files without a key are excluded and
// recorded in Plan.Skipped. Entries sort ascending by key; ties keep
// their listing order. The returned Plan is non-nil even when the
// error is ErrNoValidEntries, so callers can still report skips.
func ByIndex(files []string, prefix string, pattern *regexp.Regexp) (*Plan, error) {
	p := &Plan{}
	for _, f := range files {
		key, ok := ExtractIndex(f, prefix, pattern)
		if !ok {
			p.Skipped = append(p.Skipped, f)
			continue
		}
		p.Entries = append(p.Entries, Entry{File: f, Key: key})
	}
	sortEntries(p.Entries)
	if len(p.Entries) == 0 {
		return p, ErrNoValidEntries
	}
	return p, nil
}

// ByExplicitOrder plans the merge from caller-supplied order values,
// one per input file in listing position. Filenames are never parsed.
// Entries sort ascending by value; ties keep their listing order.
func ByExplicitOrder(files []string, order []int) (*Plan, error) {
	if len(order) != len(files) {
		return nil, fmt.Errorf("%w: %d values for %d files", ErrOrderCountMismatch, len(order), len(files))
	}
	p := &Plan{Entries: make([]Entry, 0, len(files))}
	for i, f := range files {
		p.Entries = append(p.Entries, Entry{File: f, Key: order[i]})
	}
	sortEntries(p.Entries)
	return p, nil
}

// ParseOrder parses a comma-separated list of integer order values.
// Values may carry surrounding whitespace.
func ParseOrder(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	order := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid order value %q", strings.TrimSpace(part))
		}
		order = append(order, v)
	}
	return order, nil
}

func sortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Key, b.Key)
	})
}
