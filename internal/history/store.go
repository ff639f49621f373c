package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dragounv/open-wacz/internal/config"
)

// Record is one completed conversion.
type Record struct {
	ID            int64
	HarvestName   string
	SourceArchive string
	HarvestPath   string
	WACZCreated   string
	ConvertedAt   string
}

// Store manages ledger persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS conversions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    harvest_name TEXT NOT NULL,
    source_archive TEXT NOT NULL,
    harvest_path TEXT NOT NULL,
    wacz_created TEXT NOT NULL,
    converted_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_conversions_converted_at
    ON conversions (converted_at);
`

// Open initializes or connects to the ledger database. Returns (nil, nil)
// when the ledger is disabled in configuration.
func Open(cfg *config.Config) (*Store, error) {
	if cfg == nil || !cfg.History.Enabled {
		return nil, nil
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: cfg.History.Path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the ledger database location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Add inserts a completed conversion and returns its ledger ID.
func (s *Store) Add(ctx context.Context, rec Record) (int64, error) {
	if rec.ConvertedAt == "" {
		rec.ConvertedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO conversions (
            harvest_name, source_archive, harvest_path, wacz_created, converted_at
        ) VALUES (?, ?, ?, ?, ?)`,
		rec.HarvestName,
		rec.SourceArchive,
		rec.HarvestPath,
		rec.WACZCreated,
		rec.ConvertedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert conversion: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// List returns ledger records, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, harvest_name, source_archive, harvest_path, wacz_created, converted_at
         FROM conversions ORDER BY converted_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID,
			&rec.HarvestName,
			&rec.SourceArchive,
			&rec.HarvestPath,
			&rec.WACZCreated,
			&rec.ConvertedAt,
		); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return records, nil
}
