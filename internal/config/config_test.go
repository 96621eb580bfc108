package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Pattern != `(\d+)` {
		t.Errorf("Default() pattern = %q, want %q", cfg.Pattern, `(\d+)`)
	}
	if cfg.Prefix != "" {
		t.Errorf("Default() prefix = %q, want empty", cfg.Prefix)
	}
	if cfg.Force {
		t.Error("Default() force = true, want false")
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v, want nil for missing file", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("LoadFile() = %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	want := Config{Prefix: "doc_", Pattern: `e(\d+)`, Force: true}

	if err := want.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("SaveFile() mode = %v, want 0600", info.Mode().Perm())
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadFile() = %+v, want %+v", got, want)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("prefix = \"doc_\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Prefix != "doc_" {
		t.Errorf("LoadFile() prefix = %q, want doc_", cfg.Prefix)
	}
	if cfg.Pattern != `(\d+)` {
		t.Errorf("LoadFile() pattern = %q, want the built-in default", cfg.Pattern)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err == nil {
		t.Fatal("LoadFile() error = nil, want parse error")
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("LoadFile() = %+v, want defaults on parse error", cfg)
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(Config) bool
	}{
		{
			name:  "prefix",
			key:   "prefix",
			value: "doc_",
			check: func(c Config) bool { return c.Prefix == "doc_" },
		},
		{
			name:  "pattern with capture group",
			key:   "pattern",
			value: `part(\d+)`,
			check: func(c Config) bool { return c.Pattern == `part(\d+)` },
		},
		{
			name:    "pattern that does not compile",
			key:     "pattern",
			value:   `([`,
			wantErr: true,
		},
		{
			name:    "pattern without capture group",
			key:     "pattern",
			value:   `\d+`,
			wantErr: true,
		},
		{
			name:  "force true",
			key:   "force",
			value: "true",
			check: func(c Config) bool { return c.Force },
		},
		{
			name:    "force not a bool",
			key:     "force",
			value:   "maybe",
			wantErr: true,
		},
		{
			name:    "unknown key",
			key:     "colors",
			value:   "on",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := cfg.Set(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q, %q) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && !tt.check(cfg) {
				t.Errorf("Set(%q, %q) left config %+v", tt.key, tt.value, cfg)
			}
		})
	}
}
