package harvest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dragounv/open-wacz/internal/fileutil"
	"github.com/dragounv/open-wacz/internal/wacz"
)

// captureExtension is the suffix of the renamed capture file.
const captureExtension = ".warc.gz"

// RenameCapture renames the conventional data.warc.gz in dir to
// <harvestName>.warc.gz so harvests placed side by side never collide.
// Returns the renamed path, or "" when no conventional capture file exists;
// archives with differently named capture files are left untouched.
func RenameCapture(dir, harvestName string) (string, error) {
	src := filepath.Join(dir, wacz.DataFileName)
	ok, err := fileutil.Exists(src)
	if err != nil {
		return "", fmt.Errorf("rename capture: %w", err)
	}
	if !ok {
		return "", nil
	}

	dst := filepath.Join(dir, harvestName+captureExtension)
	if ok, err := fileutil.Exists(dst); err != nil {
		return "", fmt.Errorf("rename capture: %w", err)
	} else if ok {
		return "", Wrap(ErrOutputCollision, "rename capture", dst, nil)
	}

	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("rename capture: %w", err)
	}
	return dst, nil
}
