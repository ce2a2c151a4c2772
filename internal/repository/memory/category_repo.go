package memory

import (
	"time"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type categoryRepo struct {
	s *Store
}

func NewCategoryRepo(s *Store) repository.CategoryRepository {
	return &categoryRepo{s}
}

func (r *categoryRepo) Create(category *model.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stamp(&category.BaseModel)
	r.s.categories = append(r.s.categories, *category)
	return nil
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Category, len(r.s.categories))
	copy(out, r.s.categories)
	return out, nil
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *categoryRepo) Update(category *model.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, c := range r.s.categories {
		if c.ID == category.ID {
			category.UpdatedAt = time.Now()
			r.s.categories[i] = *category
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *categoryRepo) Delete(id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, c := range r.s.categories {
		if c.ID == id {
			r.s.categories = append(r.s.categories[:i], r.s.categories[i+1:]...)
			return nil
		}
	}
	return nil
}
