package harvest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	logsDirName  = "logs"
	cdxDirName   = "cdx"
	crawlDirName = "crawl"
)

// BuildLayout creates the harvest directory skeleton rooted at root:
// root itself, logs/, logs/cdx/ (reserved for the legacy index format,
// always left empty), and logs/crawl/ for the provenance record. Each mkdir
// is a single level; the creation order guarantees parents exist first.
// Directories created before a failure are left in place.
func BuildLayout(root string) error {
	logsPath := filepath.Join(root, logsDirName)
	dirs := []string{
		root,
		logsPath,
		filepath.Join(logsPath, cdxDirName),
		filepath.Join(logsPath, crawlDirName),
	}

	for _, dir := range dirs {
		if err := os.Mkdir(dir, 0o755); err != nil {
			switch {
			case errors.Is(err, fs.ErrExist):
				return Wrap(ErrDestinationExists, "build layout", dir, err)
			case errors.Is(err, fs.ErrPermission):
				return Wrap(ErrPermission, "build layout", dir, err)
			default:
				return fmt.Errorf("build layout: %s: %w", dir, err)
			}
		}
	}
	return nil
}

// CrawlLogPath returns the logs/crawl directory under a harvest root.
func CrawlLogPath(root string) string {
	return filepath.Join(root, logsDirName, crawlDirName)
}
