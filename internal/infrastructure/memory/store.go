// Package memory implementa los puertos de persistencia en memoria, con las mismas reglas de
// unicidad que el esquema PostgreSQL. Se usa en tests de casos de uso y de la capa HTTP.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/ecommerce-catalog/internal/application/usecase"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
)

var _ usecase.ReviewTxRunner = (*Store)(nil)

// Store tablas en memoria protegidas por un único mutex.
type Store struct {
	mu         sync.Mutex
	users      map[int64]*entity.User
	categories map[int64]*entity.Category
	products   map[int64]*entity.Product
	reviews    map[int64]*entity.Review
	seq        struct{ user, category, product, review int64 }
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:      map[int64]*entity.User{},
		categories: map[int64]*entity.Category{},
		products:   map[int64]*entity.Product{},
		reviews:    map[int64]*entity.Review{},
	}
}

func (s *Store) Users() *UserRepo         { return &UserRepo{s: s} }
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }
func (s *Store) Products() *ProductRepo   { return &ProductRepo{s: s} }
func (s *Store) Reviews() *ReviewRepo     { return &ReviewRepo{s: s} }

// RunReview ejecuta fn con el store bloqueado; si fn falla se restauran productos y reseñas.
func (s *Store) RunReview(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := cloneMap(s.products)
	reviews := cloneMap(s.reviews)
	seq := s.seq

	if err := fn(&ProductRepo{s: s, inTx: true}, &ReviewRepo{s: s, inTx: true}); err != nil {
		s.products = products
		s.reviews = reviews
		s.seq = seq
		return err
	}
	return nil
}

// lock toma el mutex salvo que el repo ya corra dentro de RunReview.
func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func cloneMap[T any](m map[int64]*T) map[int64]*T {
	out := make(map[int64]*T, len(m))
	for k, v := range m {
		c := *v
		out[k] = &c
	}
	return out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
