package wacz

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
)

// ArchiveDir is the container namespace holding capture files.
const ArchiveDir = "archive/"

// DataFileName is the conventional capture file name emitted by capture
// tools such as browsertrix.
const DataFileName = "data.warc.gz"

// Container is an open, read-only WACZ archive.
type Container struct {
	path   string
	reader *zip.ReadCloser
}

// Open opens the WACZ container at path. The caller owns the returned
// Container and must Close it.
func Open(pathValue string) (*Container, error) {
	reader, err := zip.OpenReader(pathValue)
	if err != nil {
		return nil, fmt.Errorf("open wacz %s: %w", pathValue, err)
	}
	return &Container{path: pathValue, reader: reader}, nil
}

// Close releases the underlying zip reader.
func (c *Container) Close() error {
	return c.reader.Close()
}

// Path returns the filesystem path the container was opened from.
func (c *Container) Path() string {
	return c.path
}

// BaseName returns the final path component of the container's path,
// extension included.
func (c *Container) BaseName() string {
	return filepath.Base(c.path)
}

// Metadata reads and validates the datapackage.json manifest.
func (c *Container) Metadata() (Metadata, error) {
	entry, ok := c.find(ManifestName)
	if !ok {
		return Metadata{}, ErrMissingManifest
	}

	rc, err := entry.Open()
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %s: %v", ErrCorruptEntry, ManifestName, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %s: %v", ErrCorruptEntry, ManifestName, err)
	}

	return ParseMetadata(data)
}

// EntriesUnder returns the entries whose internal path starts with prefix,
// directory markers included.
func (c *Container) EntriesUnder(prefix string) []Entry {
	var entries []Entry
	for _, file := range c.reader.File {
		if strings.HasPrefix(file.Name, prefix) {
			entries = append(entries, Entry{file: file})
		}
	}
	return entries
}

func (c *Container) find(name string) (Entry, bool) {
	for _, file := range c.reader.File {
		if file.Name == name {
			return Entry{file: file}, true
		}
	}
	return Entry{}, false
}

// Entry is a single member of the container, identified by its internal path.
type Entry struct {
	file *zip.File
}

// Name returns the entry's full internal path.
func (e Entry) Name() string {
	return e.file.Name
}

// BaseName returns the final component of the entry's internal path.
func (e Entry) BaseName() string {
	return path.Base(e.file.Name)
}

// IsDir reports whether the entry is an internal directory marker.
func (e Entry) IsDir() bool {
	return strings.HasSuffix(e.file.Name, "/")
}

// UncompressedSize returns the entry's stored size in bytes.
func (e Entry) UncompressedSize() uint64 {
	return e.file.UncompressedSize64
}

// Open returns a reader over the entry's uncompressed bytes.
func (e Entry) Open() (io.ReadCloser, error) {
	return e.file.Open()
}
