// Package store provides SQLite-backed durable key/value storage.
//
// The layout is document-per-collection: a handful of well-known
// keys, each holding one JSON document for a
// whole collection (organization profile, inventory, invoices, action
// log). Every write serializes the full document and upserts it inside
// an implicit transaction, so a reader never observes a partial write.
//
// Reads are tolerant by construction: a missing key or an unparsable
// payload yields the caller's default value, never an error. Write
// failures (disk full, locked database) are surfaced to the caller.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
//
// Schema migrations use PRAGMA user_version; v1 strips the legacy
// "invoiceflow_" key prefix carried over from pre-1.0 exports.
package store
