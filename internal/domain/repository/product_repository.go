package repository

import (
	"context"

	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateRating(ctx context.Context, productID int64, rating float64) error
	// ListAvailable productos activos, con stock y cuya categoría está activa.
	ListAvailable(ctx context.Context) ([]*entity.Product, error)
	// ListAvailableByCategories productos activos y con stock de las categorías indicadas.
	ListAvailableByCategories(ctx context.Context, categoryIDs []int64) ([]*entity.Product, error)
}
