package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestListPDFs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"doc_1.pdf", "doc_2.pdf", "notes.txt", "REPORT.PDF"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	// A directory whose name ends in .pdf must not be listed.
	if err := os.Mkdir(filepath.Join(dir, "archive.pdf"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := ListPDFs(dir)
	if err != nil {
		t.Fatalf("ListPDFs() error = %v", err)
	}

	want := []string{"doc_1.pdf", "doc_2.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListPDFs() = %v, want %v", got, want)
	}
}

func TestListPDFsEmptyDir(t *testing.T) {
	got, err := ListPDFs(t.TempDir())
	if err != nil {
		t.Fatalf("ListPDFs() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ListPDFs() = %v, want empty", got)
	}
}

func TestListPDFsMissingDir(t *testing.T) {
	_, err := ListPDFs(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Error("ListPDFs() error = nil, want error for missing directory")
	}
}
