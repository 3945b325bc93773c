package repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/invoiceflow/invoiceflow/internal/actionlog"
	"github.com/invoiceflow/invoiceflow/internal/store"
	"github.com/invoiceflow/invoiceflow/internal/testutil"
)

type testRepos struct {
	store     *store.Store
	log       *actionlog.Logger
	orgs      *Organizations
	inventory *Inventory
	invoices  *Invoices
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ids := testutil.NewSequenceIDs()
	log := actionlog.New(st, testutil.NewSequenceIDs())
	log.Now = testutil.NewTickingClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), time.Second).Now

	orgs := NewOrganizations(st, log)
	return &testRepos{
		store:     st,
		log:       log,
		orgs:      orgs,
		inventory: NewInventory(st, log, ids),
		invoices:  NewInvoices(st, log, ids, orgs),
	}
}

// lastAction returns the most recent log entry's action, or "" when the
// log is empty.
func (r *testRepos) lastAction(t *testing.T) string {
	t.Helper()
	entries := r.log.Entries(context.Background())
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Action
}
