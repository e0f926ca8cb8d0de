package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/ecommerce-catalog/internal/domain"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	s    *Store
	inTx bool
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	defer r.s.lock(r.inTx)()
	if r.slugTaken(product.Slug, 0) {
		return domain.ErrDuplicate
	}
	r.s.seq.product++
	product.ID = r.s.seq.product
	r.s.products[product.ID] = clonePtr(product)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	return clonePtr(r.s.products[id]), nil
}

func (r *ProductRepo) GetBySlug(_ context.Context, slug string) (*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	for _, p := range r.s.products {
		if p.Slug == slug {
			return clonePtr(p), nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	defer r.s.lock(r.inTx)()
	if r.slugTaken(product.Slug, product.ID) {
		return domain.ErrDuplicate
	}
	// rating y supplier_id no se tocan en Update, igual que en postgres
	if stored, ok := r.s.products[product.ID]; ok {
		next := clonePtr(product)
		next.Rating = stored.Rating
		next.SupplierID = stored.SupplierID
		r.s.products[product.ID] = next
	}
	return nil
}

func (r *ProductRepo) UpdateRating(_ context.Context, productID int64, rating float64) error {
	defer r.s.lock(r.inTx)()
	if p, ok := r.s.products[productID]; ok {
		p.Rating = rating
	}
	return nil
}

func (r *ProductRepo) ListAvailable(_ context.Context) ([]*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	return r.filter(func(p *entity.Product) bool {
		c, ok := r.s.categories[p.CategoryID]
		return ok && c.IsActive
	}), nil
}

func (r *ProductRepo) ListAvailableByCategories(_ context.Context, categoryIDs []int64) ([]*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	wanted := make(map[int64]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = true
	}
	return r.filter(func(p *entity.Product) bool { return wanted[p.CategoryID] }), nil
}

func (r *ProductRepo) filter(keep func(p *entity.Product) bool) []*entity.Product {
	var list []*entity.Product
	for _, p := range r.s.products {
		if p.IsActive && p.Stock > 0 && keep(p) {
			list = append(list, clonePtr(p))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (r *ProductRepo) slugTaken(slug string, exceptID int64) bool {
	for _, p := range r.s.products {
		if p.Slug == slug && p.ID != exceptID {
			return true
		}
	}
	return false
}
