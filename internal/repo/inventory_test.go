package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceflow/invoiceflow/internal/domain"
	"github.com/invoiceflow/invoiceflow/internal/store"
)

func TestInventory_Add_AssignsIDAndLogs(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	item, err := r.inventory.Add(ctx, domain.InventoryItem{
		Name: "Widget", Price: 100, Quantity: 5, CGSTRate: 9, SGSTRate: 9,
	})
	require.NoError(t, err)

	assert.Equal(t, "id-0001", item.ID)
	assert.Equal(t, "Added Inventory Item", r.lastAction(t))

	items := r.inventory.List(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, item, items[0])
}

func TestInventory_Add_Validation(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	tests := []struct {
		name string
		item domain.InventoryItem
	}{
		{"empty name", domain.InventoryItem{Price: 1}},
		{"negative price", domain.InventoryItem{Name: "x", Price: -1}},
		{"cgst above 100", domain.InventoryItem{Name: "x", CGSTRate: 101}},
		{"negative sgst", domain.InventoryItem{Name: "x", SGSTRate: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.inventory.Add(ctx, tt.item)
			var re *Error
			require.ErrorAs(t, err, &re)
			assert.Equal(t, ErrCodeInvalidEntity, re.Code)
		})
	}
	assert.Empty(t, r.inventory.List(ctx))
}

func TestInventory_UpdateThenGetByID_RoundTrip(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	item, err := r.inventory.Add(ctx, domain.InventoryItem{Name: "Widget", Price: 100})
	require.NoError(t, err)

	item.Name = "Widget Mk II"
	item.Price = 120.5
	item.Quantity = 3
	item.Description = "improved"
	require.NoError(t, r.inventory.Update(ctx, item))

	got, ok := r.inventory.GetByID(ctx, item.ID)
	require.True(t, ok)
	assert.Equal(t, item, got)
	assert.Equal(t, "Updated Inventory Item", r.lastAction(t))
}

func TestInventory_Update_UnknownID_SilentByDefault(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	err := r.inventory.Update(ctx, domain.InventoryItem{ID: "ghost", Name: "x"})
	assert.NoError(t, err)
	assert.Empty(t, r.inventory.List(ctx))
}

func TestInventory_Update_UnknownID_FailMissing(t *testing.T) {
	r := newTestRepos(t)
	r.inventory.Policy = FailMissing

	err := r.inventory.Update(context.Background(), domain.InventoryItem{ID: "ghost", Name: "x"})
	assert.True(t, IsNotFound(err), "want NOT_FOUND, got %v", err)
}

func TestInventory_Delete(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	item, err := r.inventory.Add(ctx, domain.InventoryItem{Name: "Widget", Price: 1})
	require.NoError(t, err)

	require.NoError(t, r.inventory.Delete(ctx, item.ID))
	assert.Empty(t, r.inventory.List(ctx))
	assert.Equal(t, "Deleted Inventory Item", r.lastAction(t))

	_, ok := r.inventory.GetByID(ctx, item.ID)
	assert.False(t, ok)
}

func TestInventory_Delete_UnknownID_NoLogNoChange(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	item, err := r.inventory.Add(ctx, domain.InventoryItem{Name: "Widget", Price: 1})
	require.NoError(t, err)
	before := r.log.Entries(ctx)

	require.NoError(t, r.inventory.Delete(ctx, "ghost"))

	items := r.inventory.List(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, item, items[0])
	assert.Len(t, r.log.Entries(ctx), len(before), "no log entry for deleting a missing id")
}

func TestInventory_Delete_UnknownID_FailMissing(t *testing.T) {
	r := newTestRepos(t)
	r.inventory.Policy = FailMissing

	err := r.inventory.Delete(context.Background(), "ghost")
	assert.True(t, IsNotFound(err))
}

func TestInventory_List_HealsMissingQuantity(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	// Inject stored records that predate the quantity field, plus one
	// with a nonsense negative value.
	raw := []byte(`[
		{"id":"a","name":"Old Widget","price":10},
		{"id":"b","name":"Older Gadget","price":20,"quantity":-4}
	]`)
	require.NoError(t, r.store.Put(ctx, store.KeyInventory, raw))

	items := r.inventory.List(ctx)
	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].Quantity)
	assert.Equal(t, 0, items[1].Quantity)

	got, ok := r.inventory.GetByID(ctx, "b")
	require.True(t, ok)
	assert.Equal(t, 0, got.Quantity, "healing applies to lookups too")
}

func TestInventory_GetByID_NoSideEffects(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	before := r.log.Entries(ctx)
	_, ok := r.inventory.GetByID(ctx, "nope")
	assert.False(t, ok)
	assert.Len(t, r.log.Entries(ctx), len(before))
}
