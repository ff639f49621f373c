package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/dragounv/open-wacz/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.History.Enabled = true
	cfg.History.Path = filepath.Join(base, "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithPrefix overrides the harvest name prefix on the test config.
func WithPrefix(prefix string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Harvest.NamePrefix = prefix
	}
}

// WithoutHistory disables the conversion history ledger on the test config.
func WithoutHistory() ConfigOption {
	return func(cfg *config.Config) {
		cfg.History.Enabled = false
	}
}
