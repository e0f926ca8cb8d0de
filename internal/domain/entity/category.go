package entity

// Category categoría de productos. ParentID nil indica raíz; el conjunto forma un bosque.
type Category struct {
	ID       int64
	Name     string
	Slug     string // único
	ParentID *int64
	IsActive bool
}
