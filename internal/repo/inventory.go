package repo

import (
	"context"

	"github.com/invoiceflow/invoiceflow/internal/actionlog"
	"github.com/invoiceflow/invoiceflow/internal/domain"
	"github.com/invoiceflow/invoiceflow/internal/identity"
	"github.com/invoiceflow/invoiceflow/internal/store"
)

// Inventory is the repository for product/service records.
type Inventory struct {
	store *store.Store
	log   *actionlog.Logger
	ids   identity.Source

	// Policy controls Update/Delete of unknown IDs. Defaults to
	// IgnoreMissing (the source's silent no-op).
	Policy MissingIDPolicy
}

// NewInventory creates the inventory repository.
func NewInventory(st *store.Store, log *actionlog.Logger, ids identity.Source) *Inventory {
	return &Inventory{store: st, log: log, ids: ids}
}

// List returns all items in storage order. Quantity is healed on every
// read, not only at write time, so records persisted before the
// quantity field existed never surface without one.
func (r *Inventory) List(ctx context.Context) []domain.InventoryItem {
	items := store.Read(ctx, r.store, store.KeyInventory, []domain.InventoryItem{})
	for i := range items {
		items[i] = healQuantity(items[i])
	}
	return items
}

// Add assigns a fresh ID, validates and heals the item, persists it,
// logs the addition, and returns the stored item.
func (r *Inventory) Add(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	if err := validateItem(item); err != nil {
		return domain.InventoryItem{}, err
	}

	item.ID = r.ids.NewID()
	item = healQuantity(item)

	items := append(r.List(ctx), item)
	if err := store.Write(ctx, r.store, store.KeyInventory, items); err != nil {
		return domain.InventoryItem{}, err
	}

	if err := r.log.Log(ctx, "Added Inventory Item", actionlog.ItemDetails(item.Name, item.ID)); err != nil {
		return domain.InventoryItem{}, err
	}
	return item, nil
}

// Update replaces the record matching item.ID. An unknown ID follows
// the repository's Policy: silently reported as success by default,
// NOT_FOUND under FailMissing. Under IgnoreMissing the update is
// logged either way.
func (r *Inventory) Update(ctx context.Context, item domain.InventoryItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	item = healQuantity(item)

	items := r.List(ctx)
	found := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			found = true
		}
	}
	if !found && r.Policy == FailMissing {
		return notFoundError("inventory item", item.ID)
	}

	if err := store.Write(ctx, r.store, store.KeyInventory, items); err != nil {
		return err
	}
	return r.log.Log(ctx, "Updated Inventory Item", actionlog.ItemDetails(item.Name, item.ID))
}

// Delete removes the record with the given ID. When no such record
// exists the collection is left unchanged and no log entry is emitted;
// the call still succeeds unless the policy is FailMissing.
func (r *Inventory) Delete(ctx context.Context, id string) error {
	items := r.List(ctx)

	var deleted *domain.InventoryItem
	kept := items[:0]
	for _, it := range items {
		if it.ID == id {
			deleted = &it
			continue
		}
		kept = append(kept, it)
	}

	if deleted == nil {
		if r.Policy == FailMissing {
			return notFoundError("inventory item", id)
		}
		return nil
	}

	if err := store.Write(ctx, r.store, store.KeyInventory, kept); err != nil {
		return err
	}
	return r.log.Log(ctx, "Deleted Inventory Item", actionlog.ItemDetails(deleted.Name, id))
}

// GetByID is a pure lookup with no side effects and no log entry.
func (r *Inventory) GetByID(ctx context.Context, id string) (domain.InventoryItem, bool) {
	for _, it := range r.List(ctx) {
		if it.ID == id {
			return it, true
		}
	}
	return domain.InventoryItem{}, false
}

// healQuantity normalizes quantity so no caller ever sees an absent or
// negative value. JSON decoding already maps an absent field to zero;
// the clamp covers hand-edited or imported records.
func healQuantity(item domain.InventoryItem) domain.InventoryItem {
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	return item
}

func validateItem(item domain.InventoryItem) error {
	if item.Name == "" {
		return invalidEntityError("inventory item", "name must not be empty")
	}
	if item.Price < 0 {
		return invalidEntityError("inventory item", "price must not be negative")
	}
	if item.CGSTRate < 0 || item.CGSTRate > 100 {
		return invalidEntityError("inventory item", "cgstRate must be between 0 and 100")
	}
	if item.SGSTRate < 0 || item.SGSTRate > 100 {
		return invalidEntityError("inventory item", "sgstRate must be between 0 and 100")
	}
	return nil
}
