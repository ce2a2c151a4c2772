package memory

import (
	"sort"
	"time"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/google/uuid"
)

type transactionRepo struct {
	s *Store
}

func NewTransactionRepo(s *Store) repository.TransactionRepository {
	return &transactionRepo{s}
}

func (r *transactionRepo) Create(entry *model.StockTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.s.transactions = append(r.s.transactions, *entry)
	return nil
}

func (r *transactionRepo) FindAll(filter repository.TransactionFilter) ([]model.StockTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []model.StockTransaction
	for _, t := range r.s.transactions {
		if !filter.StartDate.IsZero() && t.CreatedAt.Before(filter.StartDate) {
			continue
		}
		if !filter.EndDate.IsZero() && t.CreatedAt.After(filter.EndDate) {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *transactionRepo) FindByInventoryID(inventoryID uuid.UUID) ([]model.StockTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []model.StockTransaction
	for _, t := range r.s.transactions {
		if t.InventoryID == inventoryID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
