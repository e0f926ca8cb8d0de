package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/domain"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/infrastructure/memory"
	"github.com/jhoicas/ecommerce-catalog/pkg/jwt"
)

func newAuth(t *testing.T) (*AuthUseCase, *memory.Store, *jwt.Service) {
	t.Helper()
	store := memory.NewStore()
	tokens, err := jwt.NewService("test-secret-key-for-unit-tests", "HS256")
	require.NoError(t, err)
	return NewAuthUseCase(store.Users(), tokens, time.Minute).WithHashCost(bcrypt.MinCost), store, tokens
}

var ana = dto.CreateUserRequest{
	FirstName: "Ana",
	LastName:  "Gómez",
	Username:  "ana",
	Email:     "ana@example.com",
	Password:  "s3cret",
}

func TestRegisterUser_ClienteActivoConHash(t *testing.T) {
	uc, store, _ := newAuth(t)
	require.NoError(t, uc.RegisterUser(context.Background(), ana))

	u, err := store.Users().GetByUsername(context.Background(), "ana")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.True(t, u.IsActive)
	assert.True(t, u.IsCustomer)
	assert.False(t, u.IsAdmin)
	assert.False(t, u.IsSupplier)
	assert.NotEqual(t, "s3cret", u.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte("s3cret")))
}

func TestRegisterUser_Duplicado(t *testing.T) {
	uc, _, _ := newAuth(t)
	require.NoError(t, uc.RegisterUser(context.Background(), ana))

	again := ana
	again.Username = "otra"
	assert.ErrorIs(t, uc.RegisterUser(context.Background(), again), domain.ErrDuplicate, "email repetido")
}

func TestLogin_TokenConRoles(t *testing.T) {
	uc, _, tokens := newAuth(t)
	ctx := context.Background()
	require.NoError(t, uc.RegisterUser(ctx, ana))

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, TokenType, out.TokenType)

	sub, err := tokens.Decode(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ana", sub.Username)
	assert.True(t, sub.IsCustomer)
	assert.False(t, sub.IsAdmin)
}

func TestLogin_Rechazos(t *testing.T) {
	uc, store, _ := newAuth(t)
	ctx := context.Background()
	require.NoError(t, uc.RegisterUser(ctx, ana))

	_, err := uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	u, err := store.Users().GetByUsername(ctx, "ana")
	require.NoError(t, err)
	u.IsActive = false
	require.NoError(t, store.Users().Update(ctx, u))

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "usuario inactivo no puede loguear")
}

func TestCurrentUser(t *testing.T) {
	out := CurrentUser(entity.Principal{Username: "ana", UserID: 7, Roles: entity.RoleSupplier | entity.RoleCustomer})
	assert.Equal(t, dto.CurrentUser{Username: "ana", ID: 7, IsSupplier: true, IsCustomer: true}, out.User)
}
