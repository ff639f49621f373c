package harvest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildLayout(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Linkra-2024-03-crawl")

	if err := BuildLayout(root); err != nil {
		t.Fatal(err)
	}

	for _, dir := range []string{
		root,
		filepath.Join(root, "logs"),
		filepath.Join(root, "logs", "cdx"),
		filepath.Join(root, "logs", "crawl"),
	} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("missing directory %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("%s is not a directory", dir)
		}
	}

	// logs/cdx is reserved for the legacy index format and stays empty.
	entries, err := os.ReadDir(filepath.Join(root, "logs", "cdx"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty cdx directory, got %d entries", len(entries))
	}
}

func TestBuildLayoutExistingDestination(t *testing.T) {
	root := filepath.Join(t.TempDir(), "harvest")
	if err := os.Mkdir(root, 0o755); err != nil {
		t.Fatal(err)
	}

	err := BuildLayout(root)
	if !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}
}

func TestBuildLayoutMissingParent(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing", "harvest")

	if err := BuildLayout(root); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}
