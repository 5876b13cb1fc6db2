package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/numcast/numeric"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema (conversions table + seq/status indexes)
const currentSchemaVersion = 1

// Record statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// SourceText is the source-kind marker for records produced by parsing a
// text token rather than converting an already-typed value.
const SourceText = "text"

// Record is one audit entry for a conversion attempt.
type Record struct {
	// ID uniquely identifies the record. Assigned on append when empty.
	ID string

	// Seq is the logical clock position, assigned on append. All reads
	// order by (Seq, ID).
	Seq int64

	// Input is the original input text or value rendering.
	Input string

	// SourceKind is the source kind name, or SourceText for parsed input.
	SourceKind string

	// TargetKind is the attempted target kind name.
	TargetKind string

	// Status is StatusOK or StatusError.
	Status string

	// Cause is the conversion error cause code; empty on success.
	Cause string

	// Result is the rendered converted value; empty on failure.
	Result string
}

// NewRecord builds the audit record for one conversion attempt.
func NewRecord(input, sourceKind string, target numeric.Kind, result any, convErr error) Record {
	rec := Record{
		Input:      input,
		SourceKind: sourceKind,
		TargetKind: target.String(),
	}
	if convErr != nil {
		rec.Status = StatusError
		var ce *numeric.ConversionError
		if errors.As(convErr, &ce) {
			rec.Cause = string(ce.Cause)
		}
		return rec
	}
	rec.Status = StatusOK
	rec.Result = numeric.Format(result)
	return rec
}

// Store provides durable storage for the conversion audit log.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and migrations automatically; safe to call
// against an existing log.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY errors on contended appends.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

func applySchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, currentSchemaVersion)
	}
	if version == currentSchemaVersion {
		return nil
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	return nil
}
