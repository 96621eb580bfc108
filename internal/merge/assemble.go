package merge

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/itsmostafa/bindery/internal/logger"
	"github.com/itsmostafa/bindery/internal/plan"
)

// Backend is the document-building surface the assembler drives. Page
// counts follow a two-step protocol: a file's count becomes available
// from LastPageCount only after its Append returns.
type Backend interface {
	Append(path string) error
	LastPageCount() int
	AddBookmark(title string, pageIndex int)
	WriteFile(dest string) error
}

// Bookmark records one outline entry as written: the title and the
// 0-based page index where its file begins in the output document.
type Bookmark struct {
	Title string
	Page  int
}

// Result describes a completed merge.
type Result struct {
	JobID      string
	OutputFile string
	Files      int
	TotalPages int
	Bookmarks  []Bookmark
}

// Assembler appends planned files to a backend document in order,
// placing one flat bookmark at the first page contributed by each
// file.
type Assembler struct {
	backend Backend
	titles  []string
	out     io.Writer
}

// NewAssembler creates an Assembler. titles labels plan entries by
// position; entries beyond its length or with an empty slot fall back
// to the filename with the extension stripped.
func NewAssembler(backend Backend, titles []string, out io.Writer) *Assembler {
	if out == nil {
		out = io.Discard
	}
	return &Assembler{backend: backend, titles: titles, out: out}
}

// Assemble runs the merge for entries, reading inputs from dir and
// writing the finished document to dest. Any append failure aborts the
// whole merge before anything is written under dest.
func (a *Assembler) Assemble(dir string, entries []plan.Entry, dest string) (*Result, error) {
	res := &Result{
		JobID:      uuid.New().String(),
		OutputFile: dest,
		Files:      len(entries),
	}
	logger.Debugf("assembling %d files into %s (job %s)", len(entries), dest, res.JobID)

	page := 0
	for i, e := range entries {
		if err := a.backend.Append(filepath.Join(dir, e.File)); err != nil {
			return nil, fmt.Errorf("failed to append %s: %w", e.File, err)
		}
		title := a.title(i, e.File)
		a.backend.AddBookmark(title, page)
		count := a.backend.LastPageCount()
		FormatAppend(a.out, e.File, title, page, count)
		res.Bookmarks = append(res.Bookmarks, Bookmark{Title: title, Page: page})
		page += count
	}
	res.TotalPages = page

	if err := a.backend.WriteFile(dest); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return res, nil
}

func (a *Assembler) title(i int, file string) string {
	if i < len(a.titles) && a.titles[i] != "" {
		return a.titles[i]
	}
	return strings.TrimSuffix(file, filepath.Ext(file))
}
