package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.id, p.name, p.slug, p.description, p.price, p.image_url, p.stock,
	p.rating, p.is_active, p.category_id, p.supplier_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, slug, description, price, image_url, stock, rating,
			is_active, category_id, supplier_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Slug, product.Description, product.Price, product.ImageURL,
		product.Stock, product.Rating, product.IsActive, product.CategoryID, product.SupplierID,
	).Scan(&product.ID)
	if err != nil {
		return mapWriteError("insert product", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id))
	return noRows(p, err, "get product by id")
}

func (r *ProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.slug = $1`, slug))
	return noRows(p, err, "get product by slug")
}

// Update guarda los campos editables y el estado. El rating solo se toca con UpdateRating.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, slug = $3, description = $4, price = $5, image_url = $6,
			stock = $7, is_active = $8, category_id = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Slug, product.Description, product.Price, product.ImageURL,
		product.Stock, product.IsActive, product.CategoryID,
	)
	if err != nil {
		return mapWriteError("update product", err)
	}
	return nil
}

// UpdateRating fija el rating derivado del producto.
func (r *ProductRepo) UpdateRating(ctx context.Context, productID int64, rating float64) error {
	_, err := r.q.Exec(ctx, `UPDATE products SET rating = $2 WHERE id = $1`, productID, rating)
	if err != nil {
		return fmt.Errorf("update product rating: %w", err)
	}
	return nil
}

// ListAvailable productos activos con stock cuya categoría sigue activa.
func (r *ProductRepo) ListAvailable(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.is_active AND p.stock > 0 AND c.is_active
		ORDER BY p.id`
	return r.list(ctx, "list products", query)
}

// ListAvailableByCategories productos activos con stock en cualquiera de las categorías dadas.
func (r *ProductRepo) ListAvailableByCategories(ctx context.Context, categoryIDs []int64) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		WHERE p.is_active AND p.stock > 0 AND p.category_id = ANY($1)
		ORDER BY p.id`
	return r.list(ctx, "list products by categories", query, categoryIDs)
}

func (r *ProductRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.ImageURL, &p.Stock,
		&p.Rating, &p.IsActive, &p.CategoryID, &p.SupplierID)
	return &p, err
}
