package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/application/usecase"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/infrastructure/memory"
)

var (
	admin     = entity.Principal{Username: "admin", UserID: 1, Roles: entity.RoleAdmin | entity.RoleCustomer}
	supplierA = entity.Principal{Username: "supplier-a", UserID: 2, Roles: entity.RoleSupplier}
	supplierB = entity.Principal{Username: "supplier-b", UserID: 3, Roles: entity.RoleSupplier}
	customer  = entity.Principal{Username: "customer", UserID: 4, Roles: entity.RoleCustomer}
)

type fixture struct {
	store      *memory.Store
	categories *usecase.CategoryUseCase
	products   *usecase.ProductUseCase
	reviews    *usecase.ReviewUseCase
	users      *usecase.UserUseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:      store,
		categories: usecase.NewCategoryUseCase(store.Categories()),
		products:   usecase.NewProductUseCase(store.Products(), store.Categories()),
		reviews:    usecase.NewReviewUseCase(store, store.Reviews(), store.Products()),
		users:      usecase.NewUserUseCase(store.Users()),
	}
}

func (f *fixture) category(t *testing.T, name string, parentID *int64) *dto.CategoryResponse {
	t.Helper()
	c, err := f.categories.Create(context.Background(), admin, dto.CategoryRequest{Name: name, ParentID: parentID})
	require.NoError(t, err)
	return c
}

func (f *fixture) product(t *testing.T, by entity.Principal, name string, categoryID, stock int64) *dto.ProductResponse {
	t.Helper()
	p, err := f.products.Create(context.Background(), by, dto.ProductRequest{
		Name:       name,
		Price:      100,
		Stock:      stock,
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	return p
}

func ptr[T any](v T) *T { return &v }
