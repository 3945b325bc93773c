package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceflow/invoiceflow/internal/domain"
	"github.com/invoiceflow/invoiceflow/internal/store"
)

func TestOrganizations_Get_DefaultsOnFirstRun(t *testing.T) {
	r := newTestRepos(t)

	got := r.orgs.Get(context.Background())

	assert.Equal(t, domain.DefaultHeaderColor, got.InvoiceHeaderColor)
	assert.Equal(t, domain.DefaultAccentColor, got.ThemeAccentColor)
	assert.Empty(t, got.CompanyName)
}

func TestOrganizations_SetThenGet(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	details := domain.OrganizationDetails{
		CompanyName:        "Acme Traders",
		GSTNumber:          "29ABCDE1234F1Z5",
		Address:            "12 Market Road",
		ContactDetails:     "acme@example.com",
		InvoiceHeaderColor: "#112233",
		ThemeAccentColor:   "#445566",
	}
	require.NoError(t, r.orgs.Set(ctx, details))

	assert.Equal(t, details, r.orgs.Get(ctx))
	assert.Equal(t, "Updated Organization Settings", r.lastAction(t))

	entries := r.log.Entries(ctx)
	require.NotEmpty(t, entries)
	assert.Equal(t, "Acme Traders", entries[0].Details["companyName"])
}

func TestOrganizations_Get_BackfillsClearedColors(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, r.orgs.Set(ctx, domain.OrganizationDetails{CompanyName: "Acme"}))

	got := r.orgs.Get(ctx)
	assert.Equal(t, "Acme", got.CompanyName)
	assert.Equal(t, domain.DefaultHeaderColor, got.InvoiceHeaderColor)
	assert.Equal(t, domain.DefaultAccentColor, got.ThemeAccentColor)
}

func TestOrganizations_Get_HealsOlderStoredRecord(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	// A record written before the color fields existed.
	raw := []byte(`{"companyName":"Legacy Co","address":"1 Old St","contactDetails":"x"}`)
	require.NoError(t, r.store.Put(ctx, store.KeyOrganization, raw))

	got := r.orgs.Get(ctx)
	assert.Equal(t, "Legacy Co", got.CompanyName)
	assert.Equal(t, domain.DefaultHeaderColor, got.InvoiceHeaderColor)
	assert.Equal(t, domain.DefaultAccentColor, got.ThemeAccentColor)
}

func TestOrganizations_Set_RejectsBadColor(t *testing.T) {
	r := newTestRepos(t)

	err := r.orgs.Set(context.Background(), domain.OrganizationDetails{InvoiceHeaderColor: "blue"})

	require.Error(t, err)
	var re *Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ErrCodeInvalidEntity, re.Code)
	assert.Equal(t, "", r.lastAction(t), "failed Set must not log")
}

func TestOrganizations_Get_DefaultsOnCorruptRecord(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, r.store.Put(ctx, store.KeyOrganization, []byte(`{bad json`)))

	got := r.orgs.Get(ctx)
	assert.Equal(t, domain.DefaultHeaderColor, got.InvoiceHeaderColor)
}
