package repository

import (
	"context"

	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	// ListActive devuelve solo categorías con is_active = true.
	ListActive(ctx context.Context) ([]*entity.Category, error)
}
