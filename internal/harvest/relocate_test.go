package harvest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dragounv/open-wacz/internal/testsupport"
	"github.com/dragounv/open-wacz/internal/wacz"
)

func openFixture(t *testing.T, opts ...testsupport.WACZOption) *wacz.Container {
	t.Helper()
	path := testsupport.WriteWACZ(t, filepath.Join(t.TempDir(), "fixture.wacz"), opts...)
	container, err := wacz.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { container.Close() })
	return container
}

func TestRelocateFlattensEntries(t *testing.T) {
	container := openFixture(t,
		testsupport.WithEntry("archive/", ""),
		testsupport.WithEntry("archive/data.warc.gz", "primary capture"),
		testsupport.WithEntry("archive/extra/rescued.warc.gz", "nested capture"),
	)
	dir := t.TempDir()

	count, err := Relocate(container, wacz.ArchiveDir, dir)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("expected 2 relocated files, got %d", count)
	}

	// Flattened files carry only their final path component.
	for name, want := range map[string]string{
		"data.warc.gz":    "primary capture",
		"rescued.warc.gz": "nested capture",
	} {
		got, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(got) != want {
			t.Fatalf("%s content mismatch: got %q, want %q", name, got, want)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "archive")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("internal archive directory leaked to disk: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "extra")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("internal nested directory leaked to disk: %v", err)
	}
}

func TestRelocateNoMatchingEntries(t *testing.T) {
	container := openFixture(t,
		testsupport.WithEntry("indexes/index.cdx", "cdx bytes"),
	)
	dir := t.TempDir()

	count, err := Relocate(container, wacz.ArchiveDir, dir)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("expected 0 relocated files, got %d", count)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty directory, got %d entries", len(entries))
	}
}

func TestRelocateCollision(t *testing.T) {
	container := openFixture(t,
		testsupport.WithEntry("archive/data.warc.gz", "capture"),
	)
	dir := t.TempDir()

	blocked := filepath.Join(dir, "data.warc.gz")
	if err := os.WriteFile(blocked, []byte("pre-existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Relocate(container, wacz.ArchiveDir, dir)
	if !errors.Is(err, ErrOutputCollision) {
		t.Fatalf("expected ErrOutputCollision, got %v", err)
	}

	got, err := os.ReadFile(blocked)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "pre-existing" {
		t.Fatalf("pre-existing file modified: %q", got)
	}
}
