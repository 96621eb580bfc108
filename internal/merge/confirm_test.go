package merge

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "plain y",
			input: "y\n",
			want:  true,
		},
		{
			name:  "yes",
			input: "yes\n",
			want:  true,
		},
		{
			name:  "uppercase",
			input: "YES\n",
			want:  true,
		},
		{
			name:  "surrounding whitespace",
			input: "  y  \n",
			want:  true,
		},
		{
			name:  "y without trailing newline",
			input: "y",
			want:  true,
		},
		{
			name:  "n declines",
			input: "n\n",
			want:  false,
		},
		{
			name:  "no declines",
			input: "no\n",
			want:  false,
		},
		{
			name:  "empty line declines",
			input: "\n",
			want:  false,
		},
		{
			name:  "immediate EOF declines",
			input: "",
			want:  false,
		},
		{
			name:  "unrelated text declines",
			input: "sure\n",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			got := confirm(&buf, strings.NewReader(tt.input))
			if got != tt.want {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(buf.String(), "Proceed with merge?") {
				t.Errorf("confirm() prompt = %q, want the proceed question", buf.String())
			}
		})
	}
}
