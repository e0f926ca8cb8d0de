package dto

// CategoryRequest entrada para crear o actualizar una categoría.
type CategoryRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	ParentID *int64 `json:"parent_id" validate:"omitempty,gt=0"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID *int64 `json:"parent_id"`
	IsActive bool   `json:"is_active"`
}
