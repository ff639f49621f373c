package harvest

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/dragounv/open-wacz/internal/fileutil"
	"github.com/dragounv/open-wacz/internal/wacz"
)

// Relocate streams every container entry under prefix into dir, keeping only
// the final path component of each internal path so nested zip directories
// never appear on disk. Directory markers are skipped. Zero matching entries
// is a successful no-op. Returns the number of files written.
func Relocate(container *wacz.Container, prefix, dir string) (int, error) {
	written := 0
	for _, entry := range container.EntriesUnder(prefix) {
		if entry.IsDir() {
			continue
		}

		dst := filepath.Join(dir, entry.BaseName())
		if err := relocateEntry(entry, dst); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func relocateEntry(entry wacz.Entry, dst string) error {
	rc, err := entry.Open()
	if err != nil {
		return Wrap(wacz.ErrCorruptEntry, "relocate", entry.Name(), err)
	}
	defer rc.Close()

	if err := fileutil.WriteReaderExclusive(dst, rc, 0o644); err != nil {
		switch {
		case errors.Is(err, fs.ErrExist):
			return Wrap(ErrOutputCollision, "relocate", dst, err)
		case errors.Is(err, fs.ErrPermission):
			return Wrap(ErrPermission, "relocate", dst, err)
		default:
			// Copy failures mid-entry mean the compressed stream could
			// not be read back; the partial file has been removed.
			return Wrap(wacz.ErrCorruptEntry, "relocate", entry.Name(), err)
		}
	}
	return nil
}
