package usecase

import (
	"context"

	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
)

// ReviewTxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
// El alta de reseña y el recálculo del rating del producto hacen Commit juntos o no lo hacen.
type ReviewTxRunner interface {
	RunReview(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		reviewRepo repository.ReviewRepository,
	) error) error
}
