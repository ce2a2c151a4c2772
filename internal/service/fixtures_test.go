package service_test

import (
	"testing"
	"time"

	"stockroom/internal/model"
	"stockroom/internal/repository"
	"stockroom/internal/repository/memory"
	"stockroom/internal/service"

	"github.com/stretchr/testify/require"
)

// testEnv wires every service onto a fresh in-memory store.
type testEnv struct {
	products     repository.ProductRepository
	categories   repository.CategoryRepository
	suppliers    repository.SupplierRepository
	inventory    repository.InventoryRepository
	transactions repository.TransactionRepository
	users        repository.UserRepository

	authSvc      service.AuthService
	productSvc   service.ProductService
	categorySvc  service.CategoryService
	supplierSvc  service.SupplierService
	inventorySvc service.InventoryService
	reportSvc    service.ReportService
	userSvc      service.UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()

	e := &testEnv{
		products:     memory.NewProductRepo(store),
		categories:   memory.NewCategoryRepo(store),
		suppliers:    memory.NewSupplierRepo(store),
		inventory:    memory.NewInventoryRepo(store),
		transactions: memory.NewTransactionRepo(store),
		users:        memory.NewUserRepo(store),
	}
	e.authSvc = service.NewAuthService(e.users)
	e.productSvc = service.NewProductService(e.products, e.categories, e.suppliers)
	e.categorySvc = service.NewCategoryService(e.categories, e.products)
	e.supplierSvc = service.NewSupplierService(e.suppliers, e.products)
	e.inventorySvc = service.NewInventoryService(e.inventory, e.transactions, e.products, nil)
	e.reportSvc = service.NewReportService(e.products, e.categories, e.suppliers, e.inventory, e.transactions)
	e.userSvc = service.NewUserService(e.users)
	return e
}

func (e *testEnv) seedCategory(t *testing.T, name string) *model.Category {
	t.Helper()
	c := &model.Category{Name: name, Color: "#3B82F6", Status: model.StatusActive}
	require.NoError(t, e.categories.Create(c))
	return c
}

func (e *testEnv) seedSupplier(t *testing.T, name string) *model.Supplier {
	t.Helper()
	s := &model.Supplier{Name: name, Status: model.StatusActive}
	require.NoError(t, e.suppliers.Create(s))
	return s
}

func (e *testEnv) seedProduct(t *testing.T, name, sku string, cost float64, minStock, maxStock int) *model.Product {
	t.Helper()
	category := e.seedCategory(t, name+" category")
	supplier := e.seedSupplier(t, name+" supplier")
	p := &model.Product{
		Name:       name,
		SKU:        sku,
		Price:      cost * 2,
		Cost:       cost,
		CategoryID: category.ID,
		SupplierID: supplier.ID,
		MinStock:   minStock,
		MaxStock:   maxStock,
		Unit:       "pcs",
		Status:     model.StatusActive,
	}
	require.NoError(t, e.products.Create(p))
	return p
}

func (e *testEnv) seedInventory(t *testing.T, p *model.Product, quantity int) *model.InventoryItem {
	t.Helper()
	item := &model.InventoryItem{
		ProductID:   p.ID,
		Quantity:    quantity,
		Location:    "Warehouse A - Shelf 1",
		LastUpdated: time.Now(),
	}
	require.NoError(t, e.inventory.Create(item))
	return item
}

func (e *testEnv) seedUser(t *testing.T, email, role string) *model.User {
	t.Helper()
	u := &model.User{FirstName: "Test", LastName: "User", Email: email, Role: role}
	require.NoError(t, u.SetPassword("Password123"))
	require.NoError(t, e.users.Create(u))
	return u
}
