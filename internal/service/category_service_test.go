package service_test

import (
	"testing"

	"stockroom/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCategoryWithProducts(t *testing.T) {
	e := newTestEnv(t)
	product := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)

	err := e.categorySvc.Delete(product.CategoryID)
	assert.ErrorIs(t, err, service.ErrCategoryInUse)

	// Once the product is gone the category can be removed.
	require.NoError(t, e.productSvc.Delete(product.ID))
	require.NoError(t, e.categorySvc.Delete(product.CategoryID))

	_, err = e.categorySvc.Get(product.CategoryID)
	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
}

func TestCreateCategoryRejectsBadColor(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.categorySvc.Create(&service.CreateCategoryRequest{
		Name:  "Electronics",
		Color: "blue",
	})
	var verr *service.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateCategoryPartial(t *testing.T) {
	e := newTestEnv(t)
	category := e.seedCategory(t, "Electronics")

	color := "#FF0000"
	updated, err := e.categorySvc.Update(category.ID, &service.UpdateCategoryRequest{Color: &color})
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", updated.Color)
	assert.Equal(t, "Electronics", updated.Name)
}

func TestDeleteSupplierWithProducts(t *testing.T) {
	e := newTestEnv(t)
	product := e.seedProduct(t, "Laptop", "LAP001", 650, 10, 50)

	err := e.supplierSvc.Delete(product.SupplierID)
	assert.ErrorIs(t, err, service.ErrSupplierInUse)

	require.NoError(t, e.productSvc.Delete(product.ID))
	require.NoError(t, e.supplierSvc.Delete(product.SupplierID))
}

func TestSupplierNotFound(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.supplierSvc.Get(uuid.New())
	assert.ErrorIs(t, err, service.ErrSupplierNotFound)
}
