package dto

// ProductRequest entrada para crear o actualizar un producto. El slug se deriva del nombre.
type ProductRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"gte=0"`
	ImageURL    string `json:"image_url"`
	Stock       int64  `json:"stock" validate:"gte=0"`
	CategoryID  int64  `json:"category_id" validate:"required,gt=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	ImageURL    string  `json:"image_url"`
	Stock       int64   `json:"stock"`
	Rating      float64 `json:"rating"`
	IsActive    bool    `json:"is_active"`
	CategoryID  int64   `json:"category_id"`
	SupplierID  *int64  `json:"supplier_id"`
}
