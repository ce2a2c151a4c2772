package service_test

import (
	"testing"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	e := newTestEnv(t)
	laptop := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)
	mouse := e.seedProduct(t, "Mouse", "MOU001", 12.5, 20, 200)
	e.seedInventory(t, laptop, 5) // below min stock
	e.seedInventory(t, mouse, 100)

	report, err := e.reportSvc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.TotalProducts)
	assert.Equal(t, 2, report.Summary.TotalInventoryItems)
	assert.Equal(t, 1, report.Summary.LowStockCount)
	assert.InDelta(t, 5*650+100*12.5, report.Summary.TotalValue, 0.001)
	assert.Len(t, report.CategoryDistribution, 2)
	assert.Len(t, report.SupplierDistribution, 2)
}

func TestDashboardCategoryValue(t *testing.T) {
	e := newTestEnv(t)
	laptop := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)
	e.seedInventory(t, laptop, 4)

	report, err := e.reportSvc.Dashboard()
	require.NoError(t, err)

	require.Len(t, report.CategoryDistribution, 1)
	dist := report.CategoryDistribution[0]
	assert.Equal(t, laptop.CategoryID, dist.ID)
	assert.Equal(t, 1, dist.ProductCount)
	assert.InDelta(t, 4*650, dist.InventoryValue, 0.001)
}

func TestInventorySummaryStockStatus(t *testing.T) {
	e := newTestEnv(t)
	low := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)
	normal := e.seedProduct(t, "Mouse", "MOU001", 12.5, 20, 200)
	high := e.seedProduct(t, "Chair", "CHR001", 95, 10, 60)
	e.seedInventory(t, low, 10)     // at threshold
	e.seedInventory(t, normal, 100) // between min and max
	e.seedInventory(t, high, 60)    // at max

	report, err := e.reportSvc.InventorySummary()
	require.NoError(t, err)

	assert.Equal(t, 3, report.Summary.TotalItems)
	assert.Equal(t, 1, report.Summary.LowStockCount)
	assert.Equal(t, 1, report.Summary.NormalStockCount)
	assert.Equal(t, 1, report.Summary.HighStockCount)
}

func TestLowStockReportUrgency(t *testing.T) {
	e := newTestEnv(t)
	urgent := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)
	medium := e.seedProduct(t, "Mouse", "MOU001", 12.5, 20, 200)
	mild := e.seedProduct(t, "Chair", "CHR001", 95, 10, 60)
	e.seedInventory(t, urgent, 2)  // deficit 8 -> high
	e.seedInventory(t, medium, 16) // deficit 4 -> medium
	e.seedInventory(t, mild, 9)    // deficit 1 -> low

	report, err := e.reportSvc.LowStock()
	require.NoError(t, err)

	assert.Equal(t, 3, report.Summary.TotalLowStockItems)
	assert.Equal(t, 1, report.Summary.HighUrgency)
	assert.Equal(t, 1, report.Summary.MediumUrgency)
	assert.Equal(t, 1, report.Summary.LowUrgency)

	for _, item := range report.Items {
		if item.SKU == "LAP001" {
			assert.Equal(t, 8, item.StockDeficit)
			// reorder targets max stock when that exceeds the deficit
			assert.Equal(t, 48, item.ReorderAmount)
			assert.Equal(t, "high", item.Urgency)
		}
	}
}

func TestTransactionsReportTotals(t *testing.T) {
	e := newTestEnv(t)
	product := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)
	item := e.seedInventory(t, product, 10)
	user := e.seedUser(t, "clerk@inventory.com", model.RoleUser)

	_, err := e.inventorySvc.UpdateQuantity(item.ID, 30, "Restock", user.ID)
	require.NoError(t, err)
	_, err = e.inventorySvc.UpdateQuantity(item.ID, 18, "Shipment", user.ID)
	require.NoError(t, err)

	report, err := e.reportSvc.Transactions(repository.TransactionFilter{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.TotalTransactions)
	assert.Equal(t, 20, report.Summary.TotalIn)
	assert.Equal(t, 12, report.Summary.TotalOut)
	assert.Equal(t, 8, report.Summary.NetChange)
}

func TestTransactionsReportTypeFilter(t *testing.T) {
	e := newTestEnv(t)
	product := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)
	item := e.seedInventory(t, product, 10)
	user := e.seedUser(t, "clerk@inventory.com", model.RoleUser)

	_, err := e.inventorySvc.UpdateQuantity(item.ID, 30, "Restock", user.ID)
	require.NoError(t, err)
	_, err = e.inventorySvc.UpdateQuantity(item.ID, 18, "Shipment", user.ID)
	require.NoError(t, err)

	report, err := e.reportSvc.Transactions(repository.TransactionFilter{Type: model.TxOut})
	require.NoError(t, err)

	require.Len(t, report.Transactions, 1)
	assert.Equal(t, model.TxOut, report.Transactions[0].Type)
	assert.Equal(t, 0, report.Summary.TotalIn)
	assert.Equal(t, 12, report.Summary.TotalOut)
}
