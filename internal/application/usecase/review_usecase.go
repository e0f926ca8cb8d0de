package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/domain"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/access"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
)

// ReviewUseCase reseñas de productos y recálculo del rating.
type ReviewUseCase struct {
	txRunner    ReviewTxRunner
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(txRunner ReviewTxRunner, reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewUseCase {
	return &ReviewUseCase{
		txRunner:    txRunner,
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

// List reseñas activas. Vacío -> ErrNoReviews.
func (uc *ReviewUseCase) List(ctx context.Context) ([]dto.ReviewResponse, error) {
	list, err := uc.reviewRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNoReviews
	}
	return toReviewList(list), nil
}

// ListByProduct reseñas activas de un producto activo.
func (uc *ReviewUseCase) ListByProduct(ctx context.Context, productSlug string) ([]dto.ReviewResponse, error) {
	product, err := uc.productRepo.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrProductNotFound
	}
	list, err := uc.reviewRepo.ListActiveByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNoReviews
	}
	return toReviewList(list), nil
}

// Add inserta la reseña y, en la misma transacción, fija el rating del producto al promedio
// de grade de sus reseñas activas (incluida la nueva). Cualquier rol autenticado puede reseñar.
func (uc *ReviewUseCase) Add(ctx context.Context, p entity.Principal, productSlug string, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if in.Grade < entity.MinGrade || in.Grade > entity.MaxGrade {
		return nil, domain.ErrInvalidInput
	}
	var created *entity.Review
	err := uc.txRunner.RunReview(ctx, func(productRepo repository.ProductRepository, reviewRepo repository.ReviewRepository) error {
		product, err := productRepo.GetBySlug(ctx, productSlug)
		if err != nil {
			return err
		}
		if product == nil || !product.IsActive {
			return domain.ErrProductNotFound
		}
		review := &entity.Review{
			Comment:     in.Comment,
			Grade:       in.Grade,
			CommentDate: uc.now().UTC(),
			IsActive:    true,
			UserID:      p.UserID,
			ProductID:   product.ID,
		}
		if err := reviewRepo.Create(ctx, review); err != nil {
			return err
		}
		avg, err := reviewRepo.AverageGrade(ctx, product.ID)
		if err != nil {
			return err
		}
		if err := productRepo.UpdateRating(ctx, product.ID, avg.InexactFloat64()); err != nil {
			return err
		}
		created = review
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toReviewResponse(created)
	return &out, nil
}

// Delete baja lógica de una reseña (solo admin), idempotente. El rating del producto no se
// recalcula al borrar: queda desactualizado hasta la próxima reseña.
func (uc *ReviewUseCase) Delete(ctx context.Context, p entity.Principal, reviewID int64) (alreadyDeleted bool, err error) {
	if err := access.RequireAdmin(p); err != nil {
		return false, err
	}
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return false, err
	}
	if review == nil {
		return false, domain.ErrReviewNotFound
	}
	if !review.IsActive {
		return true, nil
	}
	review.IsActive = false
	return false, uc.reviewRepo.Update(ctx, review)
}
