// Package scan provides the filesystem-facing pieces of the merge
// pipeline: PDF directory listing and change watching.
package scan

import (
	"fmt"
	"os"
	"strings"
)

// ListPDFs returns the names of regular files in dir ending in ".pdf"
// (case-sensitive exact suffix). The result keeps the directory
// enumeration order; callers rely on it only as a stable-sort
// tie-break.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".pdf") {
			files = append(files, e.Name())
		}
	}
	return files, nil
}
