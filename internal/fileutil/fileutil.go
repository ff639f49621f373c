package fileutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// WriteReaderExclusive streams r into a freshly created file at dst. The
// create is exclusive: a pre-existing file at dst fails with fs.ErrExist
// and is left untouched. A failed write removes the partial file.
func WriteReaderExclusive(dst string, r io.Reader, mode os.FileMode) error {
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}

// Exists reports whether path refers to an existing filesystem entry.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
