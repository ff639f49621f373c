package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteReaderExclusive(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.txt")

	if err := WriteReaderExclusive(dst, strings.NewReader("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello world" {
		t.Fatalf("content mismatch: got %q", got)
	}
}

func TestWriteReaderExclusiveRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(dst, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := WriteReaderExclusive(dst, strings.NewReader("clobber"), 0o644)
	if err == nil {
		t.Fatal("expected error for existing destination")
	}
	if !os.IsExist(err) {
		t.Fatalf("expected exist error, got %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "original" {
		t.Fatalf("existing file modified: got %q", got)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present")
	if err := os.WriteFile(present, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ok, err := Exists(present)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected present file to exist")
	}

	ok, err = Exists(filepath.Join(dir, "absent"))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected absent file to not exist")
	}
}
