// Package pdf implements the document-building backend of the merge
// pipeline on top of the pdfcpu toolkit. Appends are staged: each
// Append validates the file and records its page count, and WriteFile
// performs the actual merge, applies the recorded outline, and
// atomically installs the result.
package pdf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/itsmostafa/bindery/internal/logger"
)

// Document accumulates source files and outline entries for one merge.
type Document struct {
	conf      *model.Configuration
	files     []string
	lastCount int
	total     int
	bookmarks []pdfcpu.Bookmark
}

// NewDocument returns an empty document configured with relaxed
// validation.
func NewDocument() *Document {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Document{conf: conf}
}

// Append stages one source file. The file is read and validated here,
// so a corrupt or unreadable PDF fails at append time, and its page
// count becomes available to LastPageCount.
func (d *Document) Append(path string) error {
	count, err := api.PageCountFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	d.files = append(d.files, path)
	d.lastCount = count
	d.total += count
	return nil
}

// LastPageCount reports the page count of the most recently appended
// file. It is only meaningful after a successful Append.
func (d *Document) LastPageCount() int {
	return d.lastCount
}

// PageCount reports the total pages staged so far.
func (d *Document) PageCount() int {
	return d.total
}

// AddBookmark records a flat outline entry whose target is the 0-based
// page index in the merged document.
func (d *Document) AddBookmark(title string, pageIndex int) {
	d.bookmarks = append(d.bookmarks, pdfcpu.Bookmark{
		Title:    title,
		PageFrom: pageIndex + 1,
	})
}

// WriteFile merges the staged files, applies the recorded outline, and
// renames the finished document over dest. On failure nothing is left
// under dest and the temp file is removed.
func (d *Document) WriteFile(dest string) error {
	if len(d.files) == 0 {
		return errors.New("no documents appended")
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".bindery-*.pdf.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp output: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if len(d.files) == 1 {
		// A single input merges to a straight copy.
		if err := copyFile(d.files[0], tmpPath); err != nil {
			return err
		}
	} else if err := api.MergeCreateFile(d.files, tmpPath, false, d.conf); err != nil {
		return fmt.Errorf("failed to merge: %w", err)
	}

	if len(d.bookmarks) > 0 {
		if err := api.AddBookmarksFile(tmpPath, tmpPath, d.bookmarks, true, d.conf); err != nil {
			return fmt.Errorf("failed to add bookmarks: %w", err)
		}
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	logger.Debugf("wrote %s (%d pages from %d files)", dest, d.total, len(d.files))
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filepath.Base(src), err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", filepath.Base(src), err)
	}
	return out.Close()
}
