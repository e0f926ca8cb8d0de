package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
)

func TestProductRepo_UpdateConservaRatingYProveedor(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Products()
	supplier := int64(7)

	p := &entity.Product{Name: "Pixel", Slug: "pixel", Stock: 3, IsActive: true, CategoryID: 1, SupplierID: &supplier}
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.UpdateRating(ctx, p.ID, 4.5))

	edit := &entity.Product{ID: p.ID, Name: "Pixel 9", Slug: "pixel-9", Stock: 2, IsActive: true, CategoryID: 1}
	require.NoError(t, repo.Update(ctx, edit))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "pixel-9", got.Slug)
	assert.Equal(t, int64(2), got.Stock)
	assert.InDelta(t, 4.5, got.Rating, 1e-9, "Update no escribe rating")
	require.NotNil(t, got.SupplierID)
	assert.Equal(t, supplier, *got.SupplierID)
}
