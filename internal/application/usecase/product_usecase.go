package usecase

import (
	"context"

	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/domain"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/access"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/catalog"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
	"github.com/jhoicas/ecommerce-catalog/pkg/slug"
)

// ProductUseCase lecturas públicas y mutaciones de productos (admin o proveedor dueño).
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// List productos disponibles (activos, con stock, en categoría activa). Vacío -> ErrNoProducts.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNoProducts
	}
	return toProductList(list), nil
}

// ListByCategory productos disponibles de la categoría y de todas sus subcategorías activas.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, categorySlug string) ([]dto.ProductResponse, error) {
	ids, err := uc.CategoryTree(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListAvailableByCategories(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNoProducts
	}
	return toProductList(list), nil
}

// CategoryTree ids de la categoría raíz (por slug, activa) y de todos sus descendientes activos.
func (uc *ProductUseCase) CategoryTree(ctx context.Context, categorySlug string) ([]int64, error) {
	root, err := uc.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	if root == nil || !root.IsActive {
		return nil, domain.ErrCategoryNotFound
	}
	active, err := uc.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.IDs(catalog.Descendants(root.ID, active)), nil
}

// Detail producto activo y con stock por slug.
func (uc *ProductUseCase) Detail(ctx context.Context, productSlug string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive || product.Stock <= 0 {
		return nil, domain.ErrProductNotFound
	}
	out := toProductResponse(product)
	return &out, nil
}

// Create crea un producto con rating 0 cuyo proveedor es quien llama.
func (uc *ProductUseCase) Create(ctx context.Context, p entity.Principal, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := access.RequireAdminOrSupplier(p); err != nil {
		return nil, err
	}
	s := slug.Make(in.Name)
	if s == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	supplierID := p.UserID
	product := &entity.Product{
		Name:        in.Name,
		Slug:        s,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Stock:       in.Stock,
		Rating:      0,
		IsActive:    true,
		CategoryID:  in.CategoryID,
		SupplierID:  &supplierID,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// Update reemplaza los campos editables y recalcula el slug. Un proveedor solo edita lo suyo.
func (uc *ProductUseCase) Update(ctx context.Context, p entity.Principal, productSlug string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := access.RequireAdminOrSupplier(p); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrProductNotFound
	}
	if err := access.CheckSupplierOwnership(p, product); err != nil {
		return nil, err
	}
	s := slug.Make(in.Name)
	if s == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != product.CategoryID {
		if err := uc.checkCategory(ctx, in.CategoryID); err != nil {
			return nil, err
		}
	}
	product.Name = in.Name
	product.Slug = s
	product.Description = in.Description
	product.Price = in.Price
	product.ImageURL = in.ImageURL
	product.Stock = in.Stock
	product.CategoryID = in.CategoryID
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// Delete baja lógica, idempotente: un producto ya inactivo devuelve alreadyDeleted=true.
func (uc *ProductUseCase) Delete(ctx context.Context, p entity.Principal, productSlug string) (alreadyDeleted bool, err error) {
	if err := access.RequireAdminOrSupplier(p); err != nil {
		return false, err
	}
	product, err := uc.repo.GetBySlug(ctx, productSlug)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, domain.ErrProductNotFound
	}
	if err := access.CheckSupplierOwnership(p, product); err != nil {
		return false, err
	}
	if !product.IsActive {
		return true, nil
	}
	product.IsActive = false
	return false, uc.repo.Update(ctx, product)
}

func (uc *ProductUseCase) checkCategory(ctx context.Context, categoryID int64) error {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil || !category.IsActive {
		return domain.ErrCategoryNotFound
	}
	return nil
}
