// Package actionlog maintains the bounded, append-only audit trail of
// domain events. Entries are prepended (head = most recent) and the log
// is truncated to the most recent MaxEntries on every write; eviction
// is silent. Entries are never edited; the whole log can only be
// cleared by resetting its storage key directly.
package actionlog

import (
	"context"
	"time"

	"github.com/invoiceflow/invoiceflow/internal/domain"
	"github.com/invoiceflow/invoiceflow/internal/identity"
	"github.com/invoiceflow/invoiceflow/internal/store"
)

// MaxEntries is the retention cap. Once the log is full the oldest
// entry is dropped for each new one.
const MaxEntries = 100

// bootstrapAction is logged exactly once, on the first-ever load.
const bootstrapAction = "Application Initialized / Loaded"

// Logger appends entries to the stored action log.
//
// No read-modify-write isolation is provided across concurrent
// processes sharing one database; the log's backing key is treated as
// owned by the current process, matching the single-writer model of
// the rest of the core.
type Logger struct {
	store *store.Store
	ids   identity.Source

	// Now is the timestamp source; overridden in tests.
	Now func() time.Time
}

// New creates a Logger over the given store.
func New(st *store.Store, ids identity.Source) *Logger {
	return &Logger{store: st, ids: ids, Now: time.Now}
}

// Log appends an entry with a fresh ID and the current timestamp,
// truncates to MaxEntries, and writes the result. A failed write is
// returned to the caller; the stored log is unchanged in that case.
func (l *Logger) Log(ctx context.Context, action string, details map[string]any) error {
	entry := domain.ActionLogEntry{
		ID:        l.ids.NewID(),
		Timestamp: l.Now().UTC(),
		Action:    action,
		Details:   details,
	}

	entries := l.Entries(ctx)
	entries = append([]domain.ActionLogEntry{entry}, entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	return store.Write(ctx, l.store, store.KeyActionLog, entries)
}

// Entries returns the current log, most recent first. A missing or
// corrupt stored log reads as empty.
func (l *Logger) Entries(ctx context.Context) []domain.ActionLogEntry {
	return store.Read(ctx, l.store, store.KeyActionLog, []domain.ActionLogEntry{})
}

// Bootstrap logs the one-time initialization event if and only if the
// stored log is empty. Subsequent loads find a non-empty log and do
// nothing, so the event appears exactly once in the log's lifetime.
func (l *Logger) Bootstrap(ctx context.Context) error {
	if len(l.Entries(ctx)) > 0 {
		return nil
	}
	return l.Log(ctx, bootstrapAction, nil)
}
