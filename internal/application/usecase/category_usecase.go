package usecase

import (
	"context"

	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/domain"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/access"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
	"github.com/jhoicas/ecommerce-catalog/pkg/slug"
)

// CategoryUseCase casos de uso de categorías. Todas las mutaciones son solo para admin.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List categorías activas. Una lista vacía no es error.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCategoryResponse(c))
	}
	return items, nil
}

// Create crea una categoría con slug derivado del nombre.
func (uc *CategoryUseCase) Create(ctx context.Context, p entity.Principal, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := access.RequireAdmin(p); err != nil {
		return nil, err
	}
	s := slug.Make(in.Name)
	if s == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkParent(ctx, in.ParentID); err != nil {
		return nil, err
	}
	category := &entity.Category{
		Name:     in.Name,
		Slug:     s,
		ParentID: in.ParentID,
		IsActive: true,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	out := toCategoryResponse(category)
	return &out, nil
}

// Update renombra (y recalcula el slug) y cambia el padre. Categoría inactiva = no encontrada.
func (uc *CategoryUseCase) Update(ctx context.Context, p entity.Principal, categorySlug string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := access.RequireAdmin(p); err != nil {
		return nil, err
	}
	category, err := uc.repo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.IsActive {
		return nil, domain.ErrCategoryNotFound
	}
	s := slug.Make(in.Name)
	if s == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != nil && *in.ParentID == category.ID {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkParent(ctx, in.ParentID); err != nil {
		return nil, err
	}
	category.Name = in.Name
	category.Slug = s
	category.ParentID = in.ParentID
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	out := toCategoryResponse(category)
	return &out, nil
}

// Delete baja lógica. Si ya estaba inactiva devuelve alreadyDeleted=true sin error: a diferencia
// de Update, borrar dos veces no es 404.
func (uc *CategoryUseCase) Delete(ctx context.Context, p entity.Principal, categorySlug string) (alreadyDeleted bool, err error) {
	if err := access.RequireAdmin(p); err != nil {
		return false, err
	}
	category, err := uc.repo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return false, err
	}
	if category == nil {
		return false, domain.ErrCategoryNotFound
	}
	if !category.IsActive {
		return true, nil
	}
	category.IsActive = false
	return false, uc.repo.Update(ctx, category)
}

func (uc *CategoryUseCase) checkParent(ctx context.Context, parentID *int64) error {
	if parentID == nil {
		return nil
	}
	parent, err := uc.repo.GetByID(ctx, *parentID)
	if err != nil {
		return err
	}
	if parent == nil || !parent.IsActive {
		return domain.ErrCategoryNotFound
	}
	return nil
}
