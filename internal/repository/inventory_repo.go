package repository

import (
	"stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(item *model.InventoryItem) error
	FindAll() ([]model.InventoryItem, error)
	FindByID(id uuid.UUID) (*model.InventoryItem, error)
	FindByProductID(productID uuid.UUID) (*model.InventoryItem, error)
	Update(item *model.InventoryItem) error
	Delete(id uuid.UUID) error
	// SetQuantity persists a quantity change together with its ledger entry.
	// The entry may be nil (zero-delta update); when present, both writes
	// succeed or fail as one unit.
	SetQuantity(item *model.InventoryItem, entry *model.StockTransaction) error
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) Create(item *model.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *inventoryRepo) FindAll() ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) FindByID(id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) FindByProductID(productID uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := r.db.First(&item, "product_id = ?", productID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) Update(item *model.InventoryItem) error {
	return r.db.Save(item).Error
}

func (r *inventoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.InventoryItem{}, "id = ?", id).Error
}

func (r *inventoryRepo) SetQuantity(item *model.InventoryItem, entry *model.StockTransaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Lock the row so concurrent stock updates serialize.
		var current model.InventoryItem
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&current, "id = ?", item.ID).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.InventoryItem{}).
			Where("id = ?", item.ID).
			Updates(map[string]interface{}{
				"quantity":     item.Quantity,
				"last_updated": item.LastUpdated,
			}).Error; err != nil {
			return err
		}

		if entry != nil {
			return tx.Create(entry).Error
		}
		return nil
	})
}
