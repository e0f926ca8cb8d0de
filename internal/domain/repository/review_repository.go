package repository

import (
	"context"

	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ReviewRepository define el puerto de persistencia para Review (DIP).
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id int64) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	ListActive(ctx context.Context) ([]*entity.Review, error)
	ListActiveByProduct(ctx context.Context, productID int64) ([]*entity.Review, error)
	// AverageGrade promedio de grade sobre las reseñas activas del producto (cero si no hay).
	AverageGrade(ctx context.Context, productID int64) (decimal.Decimal, error)
}
