package memory

import (
	"strings"
	"time"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type supplierRepo struct {
	s *Store
}

func NewSupplierRepo(s *Store) repository.SupplierRepository {
	return &supplierRepo{s}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stamp(&supplier.BaseModel)
	r.s.suppliers = append(r.s.suppliers, *supplier)
	return nil
}

func (r *supplierRepo) FindAll(search string) ([]model.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	search = strings.ToLower(search)
	var out []model.Supplier
	for _, s := range r.s.suppliers {
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Name), search) &&
			!strings.Contains(strings.ToLower(s.ContactPerson), search) &&
			!strings.Contains(strings.ToLower(s.Email), search) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *supplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, s := range r.s.suppliers {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, s := range r.s.suppliers {
		if s.ID == supplier.ID {
			supplier.UpdatedAt = time.Now()
			r.s.suppliers[i] = *supplier
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *supplierRepo) Delete(id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, s := range r.s.suppliers {
		if s.ID == id {
			r.s.suppliers = append(r.s.suppliers[:i], r.s.suppliers[i+1:]...)
			return nil
		}
	}
	return nil
}
