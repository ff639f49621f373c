package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Harvest.NamePrefix != "Linkra" {
		t.Fatalf("prefix mismatch: %q", cfg.Harvest.NamePrefix)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[harvest]
name_prefix = "Webarchiv"

[history]
enabled = false

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if resolved != path {
		t.Fatalf("resolved path mismatch: %q", resolved)
	}
	if cfg.Harvest.NamePrefix != "Webarchiv" {
		t.Fatalf("prefix mismatch: %q", cfg.Harvest.NamePrefix)
	}
	if cfg.History.Enabled {
		t.Fatal("expected history disabled")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging mismatch: %+v", cfg.Logging)
	}
	if !filepath.IsAbs(cfg.Paths.LogDir) {
		t.Fatalf("expected absolute log dir, got %q", cfg.Paths.LogDir)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("expected missing file")
	}
	if cfg.Harvest.NamePrefix != "Linkra" {
		t.Fatalf("prefix mismatch: %q", cfg.Harvest.NamePrefix)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		wantSub  string
	}{
		{
			name:     "prefix with separator",
			contents: "[harvest]\nname_prefix = \"bad/prefix\"\n",
			wantSub:  "path separators",
		},
		{
			name:     "prefix with space",
			contents: "[harvest]\nname_prefix = \"bad prefix\"\n",
			wantSub:  "whitespace",
		},
		{
			name:     "bad log format",
			contents: "[logging]\nformat = \"xml\"\n",
			wantSub:  "logging.format",
		},
		{
			name:     "bad log level",
			contents: "[logging]\nlevel = \"loud\"\n",
			wantSub:  "logging.level",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.contents), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "config.toml")

	written, err := WriteSample(path)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(written)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "name_prefix") {
		t.Fatal("sample config missing harvest section")
	}

	// Sample config must itself load cleanly.
	if _, _, _, err := Load(written); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}

	if _, err := WriteSample(path); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}
}
