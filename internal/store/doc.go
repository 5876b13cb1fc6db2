// Package store provides SQLite-backed durable storage for the conversion
// audit log.
//
// The store implements an append-only log of conversion attempts made
// through the CLI: input, source and target kind, outcome status, failure
// cause and rendered result. The engine itself never touches the store;
// it stays pure and stateless, and logging is strictly a CLI concern.
//
// Ordering uses a logical seq counter, never wall-clock timestamps, so
// reads are deterministic: ORDER BY seq ASC, id ASC COLLATE BINARY.
// Appends are idempotent on record ID (ON CONFLICT DO NOTHING).
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
