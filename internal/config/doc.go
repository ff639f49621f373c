// Package config loads, normalizes, and validates open-wacz configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from an explicit --config path, a
// project-local open-wacz.toml, or ~/.config/open-wacz/config.toml. Always
// obtain settings through this package so downstream code receives sanitized
// paths and clear validation errors.
package config
