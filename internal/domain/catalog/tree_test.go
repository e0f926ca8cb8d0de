package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
)

func cat(id int64, parent *int64, active bool) *entity.Category {
	return &entity.Category{ID: id, ParentID: parent, IsActive: active}
}

func ptr(v int64) *int64 { return &v }

func TestDescendants_CadenaMultinivel(t *testing.T) {
	// 1 ← 2 ← 3 ← 4, y 5 suelta
	cats := []*entity.Category{
		cat(4, ptr(3), true),
		cat(3, ptr(2), true),
		cat(2, ptr(1), true),
		cat(1, nil, true),
		cat(5, nil, true),
	}

	got := Descendants(1, cats)

	assert.Equal(t, map[int64]struct{}{1: {}, 2: {}, 3: {}, 4: {}}, got)
}

func TestDescendants_HojaSoloSiMisma(t *testing.T) {
	cats := []*entity.Category{cat(1, nil, true), cat(2, ptr(1), true)}
	assert.Equal(t, map[int64]struct{}{2: {}}, Descendants(2, cats))
}

func TestDescendants_InactivaCortaLaRama(t *testing.T) {
	cats := []*entity.Category{
		cat(1, nil, true),
		cat(2, ptr(1), false),
		cat(3, ptr(2), true),
		cat(4, ptr(1), true),
	}
	assert.Equal(t, map[int64]struct{}{1: {}, 4: {}}, Descendants(1, cats))
}

func TestDescendants_CicloTermina(t *testing.T) {
	// 1 → 2 → 3 → 1
	cats := []*entity.Category{
		cat(1, ptr(3), true),
		cat(2, ptr(1), true),
		cat(3, ptr(2), true),
	}
	assert.Equal(t, map[int64]struct{}{1: {}, 2: {}, 3: {}}, Descendants(2, cats))
}

func TestIDs(t *testing.T) {
	assert.ElementsMatch(t, []int64{1, 7}, IDs(map[int64]struct{}{1: {}, 7: {}}))
}
