package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestDebugfGatedByVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetVerbose(false)
	Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Debugf() wrote %q with verbose off, want no output", buf.String())
	}

	SetVerbose(true)
	defer SetVerbose(false)
	Debugf("shown %d", 2)
	if got := buf.String(); !strings.Contains(got, "[debug] shown 2") {
		t.Errorf("Debugf() = %q, want it to contain %q", got, "[debug] shown 2")
	}
}

func TestWarnfAlwaysEmits(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetVerbose(false)
	Warnf("no index found in %s", "notes.pdf")
	if got := buf.String(); !strings.Contains(got, "warning: no index found in notes.pdf") {
		t.Errorf("Warnf() = %q, want it to contain the warning line", got)
	}
}

func TestVerboseReportsState(t *testing.T) {
	SetVerbose(true)
	if !Verbose() {
		t.Error("Verbose() = false after SetVerbose(true)")
	}
	SetVerbose(false)
	if Verbose() {
		t.Error("Verbose() = true after SetVerbose(false)")
	}
}
