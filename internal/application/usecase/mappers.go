package usecase

import (
	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
)

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		ParentID: c.ParentID,
		IsActive: c.IsActive,
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		Rating:      p.Rating,
		IsActive:    p.IsActive,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
	}
}

func toReviewResponse(r *entity.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:          r.ID,
		Comment:     r.Comment,
		Grade:       r.Grade,
		CommentDate: r.CommentDate,
		IsActive:    r.IsActive,
		UserID:      r.UserID,
		ProductID:   r.ProductID,
	}
}

func toProductList(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items
}

func toReviewList(list []*entity.Review) []dto.ReviewResponse {
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toReviewResponse(r))
	}
	return items
}
