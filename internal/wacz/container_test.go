package wacz_test

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/dragounv/open-wacz/internal/testsupport"
	"github.com/dragounv/open-wacz/internal/wacz"
)

func TestContainerMetadata(t *testing.T) {
	path := testsupport.WriteWACZ(t, filepath.Join(t.TempDir(), "crawl-001.wacz"),
		testsupport.WithManifest(`{"created": "2024-03-15T10:00:00Z", "title": "Example Site"}`),
	)

	container, err := wacz.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer container.Close()

	if container.BaseName() != "crawl-001.wacz" {
		t.Fatalf("base name mismatch: %q", container.BaseName())
	}

	meta, err := container.Metadata()
	if err != nil {
		t.Fatal(err)
	}
	if meta.Created != "2024-03-15T10:00:00Z" {
		t.Fatalf("created mismatch: %q", meta.Created)
	}
	if meta.Title != "Example Site" {
		t.Fatalf("title mismatch: %q", meta.Title)
	}
}

func TestContainerMetadataMissingManifest(t *testing.T) {
	path := testsupport.WriteWACZ(t, filepath.Join(t.TempDir(), "bare.wacz"),
		testsupport.WithoutManifest(),
		testsupport.WithEntry("archive/data.warc.gz", "warc bytes"),
	)

	container, err := wacz.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer container.Close()

	_, err = container.Metadata()
	if !errors.Is(err, wacz.ErrMissingManifest) {
		t.Fatalf("expected ErrMissingManifest, got %v", err)
	}
}

func TestContainerEntriesUnder(t *testing.T) {
	path := testsupport.WriteWACZ(t, filepath.Join(t.TempDir(), "crawl.wacz"),
		testsupport.WithEntry("archive/", ""),
		testsupport.WithEntry("archive/data.warc.gz", "warc bytes"),
		testsupport.WithEntry("archive/extra/other.warc.gz", "more bytes"),
		testsupport.WithEntry("indexes/index.cdx", "cdx bytes"),
	)

	container, err := wacz.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer container.Close()

	entries := container.EntriesUnder(wacz.ArchiveDir)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries under archive/, got %d", len(entries))
	}

	var files int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files++

		rc, err := entry.Open()
		if err != nil {
			t.Fatalf("open %s: %v", entry.Name(), err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", entry.Name(), err)
		}
		if len(data) == 0 {
			t.Fatalf("empty entry %s", entry.Name())
		}
	}
	if files != 2 {
		t.Fatalf("expected 2 file entries, got %d", files)
	}

	if got := container.EntriesUnder("nothing/"); len(got) != 0 {
		t.Fatalf("expected no entries under nothing/, got %d", len(got))
	}
}

func TestEntryBaseName(t *testing.T) {
	path := testsupport.WriteWACZ(t, filepath.Join(t.TempDir(), "crawl.wacz"),
		testsupport.WithEntry("archive/nested/deep/file.warc.gz", "bytes"),
	)

	container, err := wacz.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer container.Close()

	entries := container.EntriesUnder(wacz.ArchiveDir)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].BaseName() != "file.warc.gz" {
		t.Fatalf("base name mismatch: %q", entries[0].BaseName())
	}
}
