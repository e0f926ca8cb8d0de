package memory

import (
	"context"

	"github.com/jhoicas/ecommerce-catalog/internal/domain"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	s *Store
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	defer r.s.lock(false)()
	for _, u := range r.s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.seq.user++
	user.ID = r.s.seq.user
	r.s.users[user.ID] = clonePtr(user)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	defer r.s.lock(false)()
	return clonePtr(r.s.users[id]), nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	defer r.s.lock(false)()
	for _, u := range r.s.users {
		if u.Username == username {
			return clonePtr(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	defer r.s.lock(false)()
	if _, ok := r.s.users[user.ID]; ok {
		r.s.users[user.ID] = clonePtr(user)
	}
	return nil
}
