package memory

import (
	"time"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type inventoryRepo struct {
	s *Store
}

func NewInventoryRepo(s *Store) repository.InventoryRepository {
	return &inventoryRepo{s}
}

func (r *inventoryRepo) Create(item *model.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stamp(&item.BaseModel)
	if item.LastUpdated.IsZero() {
		item.LastUpdated = item.CreatedAt
	}
	r.s.inventory = append(r.s.inventory, *item)
	return nil
}

func (r *inventoryRepo) FindAll() ([]model.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.InventoryItem, len(r.s.inventory))
	copy(out, r.s.inventory)
	return out, nil
}

func (r *inventoryRepo) FindByID(id uuid.UUID) (*model.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, item := range r.s.inventory {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *inventoryRepo) FindByProductID(productID uuid.UUID) (*model.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, item := range r.s.inventory {
		if item.ProductID == productID {
			found := item
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *inventoryRepo) Update(item *model.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.inventory {
		if existing.ID == item.ID {
			item.UpdatedAt = time.Now()
			r.s.inventory[i] = *item
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *inventoryRepo) Delete(id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, item := range r.s.inventory {
		if item.ID == id {
			r.s.inventory = append(r.s.inventory[:i], r.s.inventory[i+1:]...)
			return nil
		}
	}
	return nil
}

// SetQuantity performs the paired write under the store's single write lock,
// so the quantity change and ledger append are atomic on this backend.
func (r *inventoryRepo) SetQuantity(item *model.InventoryItem, entry *model.StockTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.inventory {
		if existing.ID == item.ID {
			item.UpdatedAt = time.Now()
			r.s.inventory[i] = *item
			if entry != nil {
				if entry.ID == uuid.Nil {
					entry.ID = uuid.New()
				}
				entry.CreatedAt = time.Now()
				r.s.transactions = append(r.s.transactions, *entry)
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
