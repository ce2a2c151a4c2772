// Package memory provides in-memory implementations of the repository
// interfaces. It backs tests and the STORAGE_DRIVER=memory deployment;
// semantics match the GORM implementations (including returning
// gorm.ErrRecordNotFound so callers need not care which backend is live).
package memory

import (
	"sync"
	"time"

	"stockroom/internal/model"

	"github.com/google/uuid"
)

// Store holds all entities behind a single mutex. A write lock serializes
// every mutation, which is what makes the paired stock-update + ledger-append
// atomic on this backend.
type Store struct {
	mu           sync.RWMutex
	products     []model.Product
	categories   []model.Category
	suppliers    []model.Supplier
	inventory    []model.InventoryItem
	transactions []model.StockTransaction
	users        []model.User
}

func NewStore() *Store {
	return &Store{}
}

func stamp(base *model.BaseModel) {
	now := time.Now()
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	base.CreatedAt = now
	base.UpdatedAt = now
}
