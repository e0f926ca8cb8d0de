package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo reseñas en memoria.
type ReviewRepo struct {
	s    *Store
	inTx bool
}

func (r *ReviewRepo) Create(_ context.Context, review *entity.Review) error {
	defer r.s.lock(r.inTx)()
	r.s.seq.review++
	review.ID = r.s.seq.review
	r.s.reviews[review.ID] = clonePtr(review)
	return nil
}

func (r *ReviewRepo) GetByID(_ context.Context, id int64) (*entity.Review, error) {
	defer r.s.lock(r.inTx)()
	return clonePtr(r.s.reviews[id]), nil
}

func (r *ReviewRepo) Update(_ context.Context, review *entity.Review) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.reviews[review.ID]; ok {
		r.s.reviews[review.ID] = clonePtr(review)
	}
	return nil
}

func (r *ReviewRepo) ListActive(_ context.Context) ([]*entity.Review, error) {
	defer r.s.lock(r.inTx)()
	return r.filter(func(*entity.Review) bool { return true }), nil
}

func (r *ReviewRepo) ListActiveByProduct(_ context.Context, productID int64) ([]*entity.Review, error) {
	defer r.s.lock(r.inTx)()
	return r.filter(func(rv *entity.Review) bool { return rv.ProductID == productID }), nil
}

func (r *ReviewRepo) AverageGrade(_ context.Context, productID int64) (decimal.Decimal, error) {
	defer r.s.lock(r.inTx)()
	var sum, count int64
	for _, rv := range r.s.reviews {
		if rv.IsActive && rv.ProductID == productID {
			sum += int64(rv.Grade)
			count++
		}
	}
	if count == 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(count)), nil
}

func (r *ReviewRepo) filter(keep func(rv *entity.Review) bool) []*entity.Review {
	var list []*entity.Review
	for _, rv := range r.s.reviews {
		if rv.IsActive && keep(rv) {
			list = append(list, clonePtr(rv))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
