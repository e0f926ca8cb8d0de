package entity

import "time"

// Límites de la calificación de una reseña.
const (
	MinGrade = 1
	MaxGrade = 5
)

// Review reseña de un usuario sobre un producto.
type Review struct {
	ID          int64
	Comment     *string
	Grade       int
	CommentDate time.Time // UTC, asignada al crear
	IsActive    bool
	UserID      int64
	ProductID   int64
}
