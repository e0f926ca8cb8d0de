package dto

import "time"

// CreateReviewRequest entrada para una reseña. grade fuera de 1..5 se rechaza antes de llegar a la base.
type CreateReviewRequest struct {
	Comment *string `json:"comment"`
	Grade   int     `json:"grade" validate:"required,min=1,max=5"`
}

// ReviewResponse salida de una reseña.
type ReviewResponse struct {
	ID          int64     `json:"id"`
	Comment     *string   `json:"comment"`
	Grade       int       `json:"grade"`
	CommentDate time.Time `json:"comment_date"`
	IsActive    bool      `json:"is_active"`
	UserID      int64     `json:"user_id"`
	ProductID   int64     `json:"product_id"`
}
