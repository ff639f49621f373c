package testsupport

import (
	"archive/zip"
	"os"
	"testing"
)

// DefaultManifest is a minimal valid datapackage.json for tests.
const DefaultManifest = `{"created": "2024-03-15T10:00:00Z"}`

// WACZOption customizes a generated WACZ fixture.
type WACZOption func(*waczBuilder)

type waczBuilder struct {
	manifest   string
	omit       bool
	entryNames []string
	entryData  map[string]string
}

// WithManifest replaces the default datapackage.json contents.
func WithManifest(contents string) WACZOption {
	return func(b *waczBuilder) {
		b.manifest = contents
	}
}

// WithoutManifest omits datapackage.json from the container.
func WithoutManifest() WACZOption {
	return func(b *waczBuilder) {
		b.omit = true
	}
}

// WithEntry adds an entry under the given internal path. A name ending in
// "/" produces a directory marker.
func WithEntry(name, contents string) WACZOption {
	return func(b *waczBuilder) {
		if _, ok := b.entryData[name]; !ok {
			b.entryNames = append(b.entryNames, name)
		}
		b.entryData[name] = contents
	}
}

// WriteWACZ writes a WACZ container to path and returns path.
func WriteWACZ(t testing.TB, path string, opts ...WACZOption) string {
	t.Helper()

	builder := &waczBuilder{
		manifest:  DefaultManifest,
		entryData: map[string]string{},
	}
	for _, opt := range opts {
		opt(builder)
	}

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create wacz fixture: %v", err)
	}
	defer file.Close()

	zw := zip.NewWriter(file)
	if !builder.omit {
		writeZipEntry(t, zw, "datapackage.json", builder.manifest)
	}
	for _, name := range builder.entryNames {
		writeZipEntry(t, zw, name, builder.entryData[name])
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("close wacz fixture: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("close wacz fixture file: %v", err)
	}
	return path
}

func writeZipEntry(t testing.TB, zw *zip.Writer, name, contents string) {
	t.Helper()

	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("create wacz entry %s: %v", name, err)
	}
	if contents != "" {
		if _, err := w.Write([]byte(contents)); err != nil {
			t.Fatalf("write wacz entry %s: %v", name, err)
		}
	}
}
