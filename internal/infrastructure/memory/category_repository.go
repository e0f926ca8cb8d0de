package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/ecommerce-catalog/internal/domain"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo categorías en memoria.
type CategoryRepo struct {
	s *Store
}

func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	defer r.s.lock(false)()
	if r.slugTaken(category.Slug, 0) {
		return domain.ErrDuplicate
	}
	r.s.seq.category++
	category.ID = r.s.seq.category
	r.s.categories[category.ID] = clonePtr(category)
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	defer r.s.lock(false)()
	return clonePtr(r.s.categories[id]), nil
}

func (r *CategoryRepo) GetBySlug(_ context.Context, slug string) (*entity.Category, error) {
	defer r.s.lock(false)()
	for _, c := range r.s.categories {
		if c.Slug == slug {
			return clonePtr(c), nil
		}
	}
	return nil, nil
}

func (r *CategoryRepo) Update(_ context.Context, category *entity.Category) error {
	defer r.s.lock(false)()
	if r.slugTaken(category.Slug, category.ID) {
		return domain.ErrDuplicate
	}
	if _, ok := r.s.categories[category.ID]; ok {
		r.s.categories[category.ID] = clonePtr(category)
	}
	return nil
}

func (r *CategoryRepo) ListActive(_ context.Context) ([]*entity.Category, error) {
	defer r.s.lock(false)()
	var list []*entity.Category
	for _, c := range r.s.categories {
		if c.IsActive {
			list = append(list, clonePtr(c))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *CategoryRepo) slugTaken(slug string, exceptID int64) bool {
	for _, c := range r.s.categories {
		if c.Slug == slug && c.ID != exceptID {
			return true
		}
	}
	return false
}
