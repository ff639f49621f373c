// Package history persists a ledger of completed conversions in SQLite.
//
// The ledger is advisory: the converter records each successful harvest and
// the history command lists them, but a ledger failure never fails a
// conversion that already produced its output tree.
package history
