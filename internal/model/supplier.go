package model

type Supplier struct {
	BaseModel
	Name          string `gorm:"type:varchar(255);not null" json:"name"`
	ContactPerson string `gorm:"type:varchar(255)" json:"contactPerson"`
	Email         string `gorm:"type:varchar(255)" json:"email"`
	Phone         string `gorm:"type:varchar(30)" json:"phone"`
	Address       string `gorm:"type:text" json:"address"`
	Status        string `gorm:"type:varchar(20);default:'active'" json:"status"`
}

func (s *Supplier) ToRef() *SupplierRef {
	return &SupplierRef{ID: s.ID, Name: s.Name}
}
