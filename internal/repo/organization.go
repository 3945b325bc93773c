package repo

import (
	"context"

	"github.com/invoiceflow/invoiceflow/internal/actionlog"
	"github.com/invoiceflow/invoiceflow/internal/domain"
	"github.com/invoiceflow/invoiceflow/internal/store"
)

// Organizations is the single-record repository for the company
// profile. The profile is created with defaults on first run, replaced
// wholesale by Set, and never deleted.
type Organizations struct {
	store *store.Store
	log   *actionlog.Logger
}

// NewOrganizations creates the organization repository.
func NewOrganizations(st *store.Store, log *actionlog.Logger) *Organizations {
	return &Organizations{store: st, log: log}
}

// Get returns the current profile with every optional field that has a
// default backfilled, so callers never observe an empty color. A
// missing or corrupt stored profile reads as the defaults.
func (r *Organizations) Get(ctx context.Context) domain.OrganizationDetails {
	stored := store.Read(ctx, r.store, store.KeyOrganization, domain.DefaultOrganization())
	return stored.Normalized()
}

// Set validates and persists the profile, layering the supplied fields
// over the stored ones over the hard-coded defaults, and logs the
// change with the new field values as detail payload.
//
// Under a static struct every supplied field is present, so the
// layering is observable only through the optional fields: an empty
// color in details keeps reading as the default via Get.
func (r *Organizations) Set(ctx context.Context, details domain.OrganizationDetails) error {
	if err := details.Validate(); err != nil {
		return invalidEntityError("organization", err.Error())
	}

	if err := store.Write(ctx, r.store, store.KeyOrganization, details); err != nil {
		return err
	}

	return r.log.Log(ctx, "Updated Organization Settings", map[string]any{
		"companyName":        details.CompanyName,
		"gstNumber":          details.GSTNumber,
		"address":            details.Address,
		"contactDetails":     details.ContactDetails,
		"invoiceHeaderColor": details.InvoiceHeaderColor,
		"themeAccentColor":   details.ThemeAccentColor,
	})
}
