package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem tracks stock on hand for a product. At most one live item
// exists per product; min/max thresholds live on the product itself.
type InventoryItem struct {
	BaseModel
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"`
	Quantity    int       `gorm:"not null;default:0" json:"quantity"`
	Location    string    `gorm:"type:varchar(255)" json:"location"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// InventoryDetail is an inventory item enriched with its product summary.
type InventoryDetail struct {
	InventoryItem
	Product *ProductRef `json:"product"`
}

type TransactionType string

const (
	TxIn  TransactionType = "in"
	TxOut TransactionType = "out"
)

// StockTransaction is one entry in the append-only stock movement ledger.
// Entries are never updated or deleted; Quantity is the absolute delta.
type StockTransaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;" json:"id"`
	InventoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"inventoryId"`
	Type        TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Reason      string          `gorm:"type:text;not null" json:"reason"`
	UserID      uuid.UUID       `gorm:"type:uuid" json:"userId"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (t *StockTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
