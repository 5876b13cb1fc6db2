package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Append inserts an audit record and returns it with its assigned ID and
// seq. When the record has no ID, a fresh one is generated; when a record
// with the same ID already exists, the existing row wins and is returned
// unchanged (ON CONFLICT DO NOTHING idempotency).
func (s *Store) Append(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	// Transaction makes seq assignment and insert atomic: the single
	// connection serializes writers, and the unique seq index would
	// reject a lost update in any case.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Record{}, fmt.Errorf("append record: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM conversions`,
	).Scan(&rec.Seq); err != nil {
		return Record{}, fmt.Errorf("append record: next seq: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO conversions
		(id, seq, input, source_kind, target_kind, status, cause, result)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.Seq,
		rec.Input,
		rec.SourceKind,
		rec.TargetKind,
		rec.Status,
		rec.Cause,
		rec.Result,
	)
	if err != nil {
		return Record{}, fmt.Errorf("append record: insert: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return Record{}, fmt.Errorf("append record: rows affected: %w", err)
	}
	if rows == 0 {
		// Duplicate ID: fetch the row that won.
		existing, err := s.getTx(ctx, tx, rec.ID)
		if err != nil {
			return Record{}, err
		}
		if err := tx.Commit(); err != nil {
			return Record{}, fmt.Errorf("append record: commit: %w", err)
		}
		return existing, nil
	}

	if err := tx.Commit(); err != nil {
		return Record{}, fmt.Errorf("append record: commit: %w", err)
	}
	return rec, nil
}
