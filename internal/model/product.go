package model

import "github.com/google/uuid"

type Product struct {
	BaseModel
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	SKU         string    `gorm:"type:varchar(50);index;not null" json:"sku"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	Cost        float64   `gorm:"not null;default:0" json:"cost"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index" json:"categoryId"`
	SupplierID  uuid.UUID `gorm:"type:uuid;not null;index" json:"supplierId"`
	MinStock    int       `gorm:"default:0" json:"minStock"`
	MaxStock    int       `gorm:"default:0" json:"maxStock"`
	Unit        string    `gorm:"type:varchar(20)" json:"unit"`
	Status      string    `gorm:"type:varchar(20);default:'active'" json:"status"`
}

// CategoryRef is the category summary embedded in product responses.
type CategoryRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

// SupplierRef is the supplier summary embedded in product responses.
type SupplierRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProductDetail is a product enriched with its category and supplier summaries.
type ProductDetail struct {
	Product
	Category *CategoryRef `json:"category"`
	Supplier *SupplierRef `json:"supplier"`
}

// ProductRef is the product summary embedded in inventory responses.
type ProductRef struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	SKU      string    `json:"sku"`
	Price    float64   `json:"price"`
	Cost     float64   `json:"cost"`
	MinStock int       `json:"minStock"`
	MaxStock int       `json:"maxStock"`
}

func (p *Product) ToRef() *ProductRef {
	return &ProductRef{
		ID:       p.ID,
		Name:     p.Name,
		SKU:      p.SKU,
		Price:    p.Price,
		Cost:     p.Cost,
		MinStock: p.MinStock,
		MaxStock: p.MaxStock,
	}
}
