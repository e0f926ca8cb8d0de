package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-catalog/internal/domain"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
)

func seedUser(t *testing.T, f *fixture, u entity.User) *entity.User {
	t.Helper()
	require.NoError(t, f.store.Users().Create(context.Background(), &u))
	return &u
}

func TestUser_ToggleSupplier(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	u := seedUser(t, f, entity.User{Username: "ana", Email: "ana@x.io", IsActive: true, IsCustomer: true})

	_, err := f.users.ToggleSupplier(ctx, supplierA, u.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	now, err := f.users.ToggleSupplier(ctx, admin, u.ID)
	require.NoError(t, err)
	assert.True(t, now)
	got, _ := f.store.Users().GetByID(ctx, u.ID)
	assert.True(t, got.IsSupplier)
	assert.False(t, got.IsCustomer)

	now, err = f.users.ToggleSupplier(ctx, admin, u.ID)
	require.NoError(t, err)
	assert.False(t, now)
	got, _ = f.store.Users().GetByID(ctx, u.ID)
	assert.False(t, got.IsSupplier)
	assert.True(t, got.IsCustomer)
}

func TestUser_ToggleSupplierUsuarioInactivo(t *testing.T) {
	f := newFixture()
	u := seedUser(t, f, entity.User{Username: "ana", Email: "ana@x.io"})

	_, err := f.users.ToggleSupplier(context.Background(), admin, u.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUser_DeleteAdminNuncaSeDesactiva(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	boss := seedUser(t, f, entity.User{Username: "root", Email: "root@x.io", IsActive: true, IsAdmin: true})

	_, err := f.users.Delete(ctx, admin, boss.ID)
	assert.ErrorIs(t, err, domain.ErrAdminUndeletable)

	got, _ := f.store.Users().GetByID(ctx, boss.ID)
	assert.True(t, got.IsActive)
}

func TestUser_DeleteIdempotente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	u := seedUser(t, f, entity.User{Username: "ana", Email: "ana@x.io", IsActive: true, IsCustomer: true})

	already, err := f.users.Delete(ctx, admin, u.ID)
	require.NoError(t, err)
	assert.False(t, already)

	already, err = f.users.Delete(ctx, admin, u.ID)
	require.NoError(t, err)
	assert.True(t, already)

	_, err = f.users.Delete(ctx, admin, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.users.Delete(ctx, customer, u.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "el privilegio se revisa antes de resolver el usuario")
}
