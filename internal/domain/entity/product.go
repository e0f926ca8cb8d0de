package entity

// Product producto del catálogo. Rating es derivado: promedio de las reseñas activas,
// recalculado en cada alta de reseña.
type Product struct {
	ID          int64
	Name        string
	Slug        string // único
	Description string
	Price       int64
	ImageURL    string
	Stock       int64
	Rating      float64
	IsActive    bool
	CategoryID  int64
	SupplierID  *int64
}

// OwnedBy indica si el producto pertenece al proveedor userID.
func (p *Product) OwnedBy(userID int64) bool {
	return p.SupplierID != nil && *p.SupplierID == userID
}
