package model

type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Color       string `gorm:"type:varchar(7)" json:"color"` // Hex, e.g. "#3B82F6"
	Status      string `gorm:"type:varchar(20);default:'active'" json:"status"`
}

func (c *Category) ToRef() *CategoryRef {
	return &CategoryRef{ID: c.ID, Name: c.Name, Color: c.Color}
}
