package service_test

import (
	"testing"

	"stockroom/internal/model"
	"stockroom/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateQuantityRecordsStockIn(t *testing.T) {
	e := newTestEnv(t)
	product := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)
	item := e.seedInventory(t, product, 15)
	user := e.seedUser(t, "clerk@inventory.com", model.RoleUser)

	updated, err := e.inventorySvc.UpdateQuantity(item.ID, 25, "Restock delivery", user.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, updated.Quantity)

	entries, err := e.transactions.FindByInventoryID(item.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.TxIn, entries[0].Type)
	assert.Equal(t, 10, entries[0].Quantity)
	assert.Equal(t, "Restock delivery", entries[0].Reason)
	assert.Equal(t, user.ID, entries[0].UserID)
}

func TestUpdateQuantityRecordsStockOut(t *testing.T) {
	e := newTestEnv(t)
	product := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)
	item := e.seedInventory(t, product, 15)
	user := e.seedUser(t, "clerk@inventory.com", model.RoleUser)

	updated, err := e.inventorySvc.UpdateQuantity(item.ID, 9, "Order shipment", user.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Quantity)

	entries, err := e.transactions.FindByInventoryID(item.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.TxOut, entries[0].Type)
	assert.Equal(t, 6, entries[0].Quantity)
}

func TestUpdateQuantityZeroDeltaWritesNoEntry(t *testing.T) {
	e := newTestEnv(t)
	product := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)
	item := e.seedInventory(t, product, 15)
	user := e.seedUser(t, "clerk@inventory.com", model.RoleUser)

	updated, err := e.inventorySvc.UpdateQuantity(item.ID, 15, "Cycle count", user.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Quantity)

	entries, err := e.transactions.FindByInventoryID(item.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpdateQuantityUnknownItem(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.inventorySvc.UpdateQuantity(uuid.New(), 5, "whatever", uuid.New())
	assert.ErrorIs(t, err, service.ErrInventoryNotFound)
}

func TestCreateInventoryRejectsSecondItemPerProduct(t *testing.T) {
	e := newTestEnv(t)
	product := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)
	e.seedInventory(t, product, 15)

	_, err := e.inventorySvc.Create(&service.CreateInventoryRequest{
		ProductID: product.ID,
		Quantity:  5,
		Location:  "Warehouse B",
	})
	assert.ErrorIs(t, err, service.ErrInventoryExists)
}

func TestCreateInventoryUnknownProduct(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.inventorySvc.Create(&service.CreateInventoryRequest{
		ProductID: uuid.New(),
		Quantity:  5,
		Location:  "Warehouse B",
	})
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestInventoryValue(t *testing.T) {
	e := newTestEnv(t)
	laptop := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)
	mouse := e.seedProduct(t, "Mouse", "MOU001", 12.5, 20, 200)
	e.seedInventory(t, laptop, 10)
	e.seedInventory(t, mouse, 100)

	total, err := e.inventorySvc.InventoryValue()
	require.NoError(t, err)
	assert.InDelta(t, 10*650+100*12.5, total, 0.001)
}

func TestInventoryValueSkipsMissingProduct(t *testing.T) {
	e := newTestEnv(t)
	laptop := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)
	mouse := e.seedProduct(t, "Mouse", "MOU001", 12.5, 20, 200)
	e.seedInventory(t, laptop, 10)
	e.seedInventory(t, mouse, 100)

	// An orphaned item counts as worthless instead of failing the sum.
	require.NoError(t, e.products.Delete(laptop.ID))

	total, err := e.inventorySvc.InventoryValue()
	require.NoError(t, err)
	assert.InDelta(t, 100*12.5, total, 0.001)
}

func TestLowStockItems(t *testing.T) {
	e := newTestEnv(t)
	laptop := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)
	mouse := e.seedProduct(t, "Mouse", "MOU001", 12.5, 20, 200)
	e.seedInventory(t, laptop, 10) // at threshold, counts as low
	e.seedInventory(t, mouse, 150)

	low, err := e.inventorySvc.LowStockItems()
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, laptop.ID, low[0].ProductID)
}

func TestInventoryListEnrichesProduct(t *testing.T) {
	e := newTestEnv(t)
	laptop := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)
	e.seedInventory(t, laptop, 30)

	items, err := e.inventorySvc.List(false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "LAP001", items[0].Product.SKU)
	assert.Equal(t, 10, items[0].Product.MinStock)
}

func TestTransactionsForUnknownInventory(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.inventorySvc.Transactions(uuid.New())
	assert.ErrorIs(t, err, service.ErrInventoryNotFound)
}
