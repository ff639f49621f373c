package config

import (
	"errors"
	"fmt"
	"strings"
)

var validLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate checks configuration invariants after normalization.
func (c *Config) Validate() error {
	if err := validatePrefix(c.Harvest.NamePrefix); err != nil {
		return err
	}
	if _, ok := validLogFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if _, ok := validLogLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	if c.History.Enabled && strings.TrimSpace(c.History.Path) == "" {
		return errors.New("history.path must be set when history is enabled")
	}
	return nil
}

// validatePrefix rejects prefixes that would corrupt harvest directory names.
func validatePrefix(prefix string) error {
	if prefix == "" {
		return errors.New("harvest.name_prefix must not be empty")
	}
	if strings.ContainsAny(prefix, "/\\") {
		return fmt.Errorf("harvest.name_prefix must not contain path separators, got %q", prefix)
	}
	for _, r := range prefix {
		if r <= ' ' {
			return fmt.Errorf("harvest.name_prefix must not contain whitespace, got %q", prefix)
		}
	}
	return nil
}
