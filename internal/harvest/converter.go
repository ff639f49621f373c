package harvest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/dragounv/open-wacz/internal/config"
	"github.com/dragounv/open-wacz/internal/history"
	"github.com/dragounv/open-wacz/internal/logging"
	"github.com/dragounv/open-wacz/internal/version"
	"github.com/dragounv/open-wacz/internal/wacz"
)

// lockFileName guards against two conversions running at once on one host.
const lockFileName = "convert.lock"

// Result summarizes one completed conversion.
type Result struct {
	HarvestName string
	HarvestPath string
	// CaptureFile is the renamed capture file path, empty when the archive
	// carried no conventional data.warc.gz.
	CaptureFile string
	// Relocated counts the files flattened out of the archive namespace.
	Relocated int
}

// Converter runs the WACZ to harvest directory pipeline.
type Converter struct {
	cfg     *config.Config
	logger  *slog.Logger
	ledger  *history.Store
	toolTag string
	now     func() time.Time
}

// NewConverter constructs a converter. The ledger may be nil, in which case
// completed conversions are not recorded.
func NewConverter(cfg *config.Config, logger *slog.Logger, ledger *history.Store) *Converter {
	return &Converter{
		cfg:     cfg,
		logger:  logging.NewComponentLogger(logger, "converter"),
		ledger:  ledger,
		toolTag: version.UserVisible(),
		now:     time.Now,
	}
}

// Convert transforms the WACZ at archivePath into a harvest directory under
// targetDir. All metadata validation and name derivation happen before the
// first filesystem mutation; failures after the skeleton exists leave a
// partial tree behind.
func (c *Converter) Convert(ctx context.Context, archivePath, targetDir string) (*Result, error) {
	logger := c.logger.With(
		logging.String(logging.FieldRunID, uuid.NewString()),
		logging.String(logging.FieldArchive, archivePath),
	)

	unlock, err := c.acquireLock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	container, err := wacz.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer container.Close()

	meta, err := container.Metadata()
	if err != nil {
		return nil, err
	}

	name := CollectionName(c.cfg.Harvest.NamePrefix, meta.Period, container.BaseName())
	harvestPath := filepath.Join(targetDir, name)
	logger = logger.With(logging.String(logging.FieldHarvest, name))
	logger.Info("starting conversion", logging.String("destination", harvestPath))

	if err := BuildLayout(harvestPath); err != nil {
		return nil, err
	}

	relocated, err := Relocate(container, wacz.ArchiveDir, harvestPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("capture files relocated", logging.Int("count", relocated))

	captureFile, err := RenameCapture(harvestPath, name)
	if err != nil {
		return nil, err
	}

	if err := WriteInfo(harvestPath, meta, container.BaseName(), name, c.toolTag, c.now()); err != nil {
		return nil, err
	}

	result := &Result{
		HarvestName: name,
		HarvestPath: harvestPath,
		CaptureFile: captureFile,
		Relocated:   relocated,
	}
	c.record(ctx, logger, result, meta, archivePath)

	logger.Info("conversion complete",
		logging.Int("relocated", relocated),
		logging.String("destination", harvestPath),
	)
	return result, nil
}

func (c *Converter) acquireLock() (func(), error) {
	if err := os.MkdirAll(c.cfg.Paths.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}
	lockPath := filepath.Join(c.cfg.Paths.LogDir, lockFileName)
	lock := flock.New(lockPath)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire conversion lock: %w", err)
	}
	if !ok {
		return nil, Wrap(ErrLocked, "acquire lock", lockPath, nil)
	}
	return func() { _ = lock.Unlock() }, nil
}

// record writes the ledger entry. The harvest already exists on disk at this
// point, so ledger failures are logged and swallowed.
func (c *Converter) record(ctx context.Context, logger *slog.Logger, result *Result, meta wacz.Metadata, archivePath string) {
	if c.ledger == nil {
		return
	}
	_, err := c.ledger.Add(ctx, history.Record{
		HarvestName:   result.HarvestName,
		SourceArchive: archivePath,
		HarvestPath:   result.HarvestPath,
		WACZCreated:   meta.Created,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("failed to record conversion in history ledger", logging.Error(err))
	}
}
