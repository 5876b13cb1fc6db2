package store

import (
	"context"
	"database/sql"
	"fmt"
)

// List returns all audit records in deterministic order:
// ORDER BY seq ASC, id ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) when the log is empty.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, input, source_kind, target_kind, status, cause, result
		FROM conversions
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Count returns the total number of records and how many of them failed.
func (s *Store) Count(ctx context.Context) (total, failed int64, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(status = 'error'), 0) FROM conversions
	`).Scan(&total, &failed)
	if err != nil {
		return 0, 0, fmt.Errorf("count records: %w", err)
	}
	return total, failed, nil
}

// getTx fetches a single record by ID inside an open transaction.
func (s *Store) getTx(ctx context.Context, tx *sql.Tx, id string) (Record, error) {
	row := tx.QueryRowContext(ctx, `
		SELECT id, seq, input, source_kind, target_kind, status, cause, result
		FROM conversions
		WHERE id = ?
	`, id)
	rec, err := scanRecord(row)
	if err != nil {
		return Record{}, fmt.Errorf("get record %s: %w", id, err)
	}
	return rec, nil
}

// scanner abstracts sql.Row and sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (Record, error) {
	var rec Record
	if err := s.Scan(
		&rec.ID,
		&rec.Seq,
		&rec.Input,
		&rec.SourceKind,
		&rec.TargetKind,
		&rec.Status,
		&rec.Cause,
		&rec.Result,
	); err != nil {
		return Record{}, fmt.Errorf("scan record: %w", err)
	}
	return rec, nil
}
