package repository

import (
	"time"

	"stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionFilter narrows the ledger query. Zero values mean "any".
type TransactionFilter struct {
	StartDate time.Time
	EndDate   time.Time
	Type      model.TransactionType
}

// TransactionRepository reads the stock movement ledger. Entries are only
// ever written through InventoryRepository.SetQuantity (or directly at seed
// time); there is no update or delete.
type TransactionRepository interface {
	Create(entry *model.StockTransaction) error
	FindAll(filter TransactionFilter) ([]model.StockTransaction, error)
	FindByInventoryID(inventoryID uuid.UUID) ([]model.StockTransaction, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(entry *model.StockTransaction) error {
	return r.db.Create(entry).Error
}

func (r *transactionRepo) FindAll(filter TransactionFilter) ([]model.StockTransaction, error) {
	q := r.db.Model(&model.StockTransaction{})
	if !filter.StartDate.IsZero() {
		q = q.Where("created_at >= ?", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		q = q.Where("created_at <= ?", filter.EndDate)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	var entries []model.StockTransaction
	err := q.Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *transactionRepo) FindByInventoryID(inventoryID uuid.UUID) ([]model.StockTransaction, error) {
	var entries []model.StockTransaction
	err := r.db.Where("inventory_id = ?", inventoryID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}
