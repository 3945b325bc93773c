package repo

import (
	"context"

	"github.com/invoiceflow/invoiceflow/internal/actionlog"
	"github.com/invoiceflow/invoiceflow/internal/billing"
	"github.com/invoiceflow/invoiceflow/internal/domain"
	"github.com/invoiceflow/invoiceflow/internal/identity"
	"github.com/invoiceflow/invoiceflow/internal/store"
)

// Invoices is the repository for generated invoices. It owns the
// invoice-numbering sequence and snapshots the organization profile
// into each invoice at creation time.
type Invoices struct {
	store *store.Store
	log   *actionlog.Logger
	ids   identity.Source
	orgs  *Organizations

	// Numbers is the invoice-number sequence; defaults to the
	// scan-based source. See NumberSource for the concurrency caveat.
	Numbers NumberSource

	// Policy controls Update/Delete of unknown IDs; defaults to
	// IgnoreMissing.
	Policy MissingIDPolicy
}

// NewInvoices creates the invoice repository.
func NewInvoices(st *store.Store, log *actionlog.Logger, ids identity.Source, orgs *Organizations) *Invoices {
	return &Invoices{store: st, log: log, ids: ids, orgs: orgs, Numbers: ScanNumberSource{}}
}

// InvoiceInput is the caller-supplied portion of a new invoice. ID,
// invoice number, and (usually) the organization snapshot are assigned
// by the repository.
//
// Totals, when non-nil, carries totals the caller already computed for
// its live preview; the repository persists them as-is. When nil the
// repository computes them from LineItems and DiscountAmount. The nil
// pointer makes "omitted" explicit instead of sniffing zero values.
//
// Organization, when non-nil, overrides the snapshot of the current
// profile that would otherwise be taken.
type InvoiceInput struct {
	Date            string
	CustomerName    string
	CustomerAddress string
	LineItems       []domain.LineItem
	DiscountAmount  float64
	Totals          *billing.Totals
	Organization    *domain.OrganizationDetails
	Notes           string
	Status          domain.InvoiceStatus
}

// List returns all invoices unfiltered, in storage order. Sorting and
// filtering belong to the presentation layer.
func (r *Invoices) List(ctx context.Context) []domain.Invoice {
	return store.Read(ctx, r.store, store.KeyInvoices, []domain.Invoice{})
}

// NextInvoiceNumber returns the number the next Add would assign,
// recomputed from the current invoice set on every call.
func (r *Invoices) NextInvoiceNumber(ctx context.Context) string {
	return r.Numbers.Next(ctx, r.List(ctx))
}

// Add creates an invoice: fresh ID, next sequence number, a structural
// snapshot of the current organization profile (unless overridden),
// and totals computed from the line items (unless supplied). The new
// invoice is persisted, logged, and returned.
func (r *Invoices) Add(ctx context.Context, input InvoiceInput) (domain.Invoice, error) {
	if err := validateInput(input); err != nil {
		return domain.Invoice{}, err
	}

	status := input.Status
	if status == "" {
		status = domain.StatusDraft
	}

	totals := billing.ComputeTotals(input.LineItems, input.DiscountAmount)
	if input.Totals != nil {
		totals = *input.Totals
	}

	// Copy by value: later profile edits must not change how this
	// invoice renders.
	org := r.orgs.Get(ctx)
	if input.Organization != nil {
		org = *input.Organization
	}

	invoices := r.List(ctx)
	inv := domain.Invoice{
		ID:                  r.ids.NewID(),
		InvoiceNumber:       r.Numbers.Next(ctx, invoices),
		Date:                input.Date,
		CustomerName:        input.CustomerName,
		CustomerAddress:     input.CustomerAddress,
		LineItems:           input.LineItems,
		SubTotal:            totals.SubTotal,
		TotalTax:            totals.TotalTax,
		DiscountAmount:      input.DiscountAmount,
		GrandTotal:          totals.GrandTotal,
		OrganizationDetails: org,
		Notes:               input.Notes,
		Status:              status,
	}

	if err := store.Write(ctx, r.store, store.KeyInvoices, append(invoices, inv)); err != nil {
		return domain.Invoice{}, err
	}
	if err := r.log.Log(ctx, "Created Invoice", actionlog.InvoiceDetails(inv.InvoiceNumber, inv.ID)); err != nil {
		return domain.Invoice{}, err
	}
	return inv, nil
}

// Update replaces the invoice matching inv.ID wholesale, preserving
// the stored invoice number and organization snapshot when the
// incoming ones are empty (callers editing an invoice normally carry
// both through unchanged). An unknown ID follows the Policy.
func (r *Invoices) Update(ctx context.Context, inv domain.Invoice) error {
	if inv.Status != "" && !domain.ValidStatus(inv.Status) {
		return invalidEntityError("invoice", "unknown status "+string(inv.Status))
	}

	invoices := r.List(ctx)
	found := false
	for i := range invoices {
		if invoices[i].ID != inv.ID {
			continue
		}
		if inv.InvoiceNumber == "" {
			inv.InvoiceNumber = invoices[i].InvoiceNumber
		}
		if inv.OrganizationDetails == (domain.OrganizationDetails{}) {
			inv.OrganizationDetails = invoices[i].OrganizationDetails
		}
		invoices[i] = inv
		found = true
	}
	if !found && r.Policy == FailMissing {
		return notFoundError("invoice", inv.ID)
	}

	if err := store.Write(ctx, r.store, store.KeyInvoices, invoices); err != nil {
		return err
	}
	return r.log.Log(ctx, "Updated Invoice", actionlog.InvoiceDetails(inv.InvoiceNumber, inv.ID))
}

// Delete removes the invoice with the given ID. The deletion is logged
// with the deleted invoice's number, and only if a matching record
// existed.
func (r *Invoices) Delete(ctx context.Context, id string) error {
	invoices := r.List(ctx)

	var deleted *domain.Invoice
	kept := invoices[:0]
	for _, inv := range invoices {
		if inv.ID == id {
			deleted = &inv
			continue
		}
		kept = append(kept, inv)
	}

	if deleted == nil {
		if r.Policy == FailMissing {
			return notFoundError("invoice", id)
		}
		return nil
	}

	if err := store.Write(ctx, r.store, store.KeyInvoices, kept); err != nil {
		return err
	}
	return r.log.Log(ctx, "Deleted Invoice", actionlog.InvoiceDetails(deleted.InvoiceNumber, id))
}

// GetByID is a pure lookup with no side effects and no log entry.
func (r *Invoices) GetByID(ctx context.Context, id string) (domain.Invoice, bool) {
	for _, inv := range r.List(ctx) {
		if inv.ID == id {
			return inv, true
		}
	}
	return domain.Invoice{}, false
}

func validateInput(input InvoiceInput) error {
	if len(input.LineItems) == 0 {
		return invalidEntityError("invoice", "at least one line item is required")
	}
	if input.DiscountAmount < 0 {
		return invalidEntityError("invoice", "discount must not be negative")
	}
	if input.Status != "" && !domain.ValidStatus(input.Status) {
		return invalidEntityError("invoice", "unknown status "+string(input.Status))
	}
	for _, it := range input.LineItems {
		if it.Quantity < 1 {
			return invalidEntityError("invoice", "line item quantity must be at least 1")
		}
		if it.Price < 0 {
			return invalidEntityError("invoice", "line item price must not be negative")
		}
	}
	return nil
}
