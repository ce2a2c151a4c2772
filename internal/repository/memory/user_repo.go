package memory

import (
	"strings"
	"time"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepo struct {
	s *Store
}

func NewUserRepo(s *Store) repository.UserRepository {
	return &userRepo{s}
}

func (r *userRepo) Create(user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stamp(&user.BaseModel)
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r *userRepo) FindAll() ([]model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.User, len(r.s.users))
	copy(out, r.s.users)
	return out, nil
}

func (r *userRepo) FindByID(id uuid.UUID) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *userRepo) Update(user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, u := range r.s.users {
		if u.ID == user.ID {
			user.UpdatedAt = time.Now()
			r.s.users[i] = *user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *userRepo) Delete(id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, u := range r.s.users {
		if u.ID == id {
			r.s.users = append(r.s.users[:i], r.s.users[i+1:]...)
			return nil
		}
	}
	return nil
}
