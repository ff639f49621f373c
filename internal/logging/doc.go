// Package logging builds the slog loggers used across open-wacz.
//
// It offers a console handler for interactive runs and a JSON handler for
// machine-readable logs, plus small helpers for attribute construction and
// component-scoped loggers. Construct loggers through NewFromConfig so log
// level, format, and file destinations follow the loaded configuration.
package logging
