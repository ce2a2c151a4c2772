package memory

import (
	"strings"
	"time"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepo struct {
	s *Store
}

func NewProductRepo(s *Store) repository.ProductRepository {
	return &productRepo{s}
}

func (r *productRepo) Create(product *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stamp(&product.BaseModel)
	r.s.products = append(r.s.products, *product)
	return nil
}

func (r *productRepo) FindAll(filter repository.ProductFilter) ([]model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []model.Product
	search := strings.ToLower(filter.Search)
	for _, p := range r.s.products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if filter.CategoryID != uuid.Nil && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.SupplierID != uuid.Nil && p.SupplierID != filter.SupplierID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.products {
		if p.SKU == sku {
			found := p
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *productRepo) Update(product *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, p := range r.s.products {
		if p.ID == product.ID {
			product.UpdatedAt = time.Now()
			r.s.products[i] = *product
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *productRepo) Delete(id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, p := range r.s.products {
		if p.ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *productRepo) CountByCategory(categoryID uuid.UUID) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *productRepo) CountBySupplier(supplierID uuid.UUID) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, p := range r.s.products {
		if p.SupplierID == supplierID {
			count++
		}
	}
	return count, nil
}
