package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ecommerce-catalog/internal/application/auth"
	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/application/usecase"
	"github.com/jhoicas/ecommerce-catalog/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/ecommerce-catalog/internal/interfaces/http"
	"github.com/jhoicas/ecommerce-catalog/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testPassword  = "s3cret-pass"
)

type server struct {
	app    *fiber.App
	store  *memory.Store
	tokens *jwt.Service
	authUC *auth.AuthUseCase
}

// newServer arma la app completa sobre el store en memoria.
func newServer(t *testing.T) *server {
	t.Helper()
	store := memory.NewStore()
	tokens, err := jwt.NewService(testJWTSecret, "HS256")
	require.NoError(t, err)
	authUC := auth.NewAuthUseCase(store.Users(), tokens, time.Minute).WithHashCost(bcrypt.MinCost)

	app := fiber.New()
	app.Use(apphttp.RequestID())
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: usecase.NewCategoryUseCase(store.Categories()),
		ProductUC:  usecase.NewProductUseCase(store.Products(), store.Categories()),
		ReviewUC:   usecase.NewReviewUseCase(store, store.Reviews(), store.Products()),
		UserUC:     usecase.NewUserUseCase(store.Users()),
		Tokens:     tokens,
	})
	return &server{app: app, store: store, tokens: tokens, authUC: authUC}
}

// user registra un usuario, le aplica los roles indicados y devuelve su id.
func (s *server) user(t *testing.T, username string, admin, supplier bool) int64 {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.authUC.RegisterUser(ctx, dto.CreateUserRequest{
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     username + "@example.com",
		Password:  testPassword,
	}))
	u, err := s.store.Users().GetByUsername(ctx, username)
	require.NoError(t, err)
	if admin || supplier {
		u.IsAdmin = admin
		u.IsSupplier = supplier
		u.IsCustomer = !supplier
		require.NoError(t, s.store.Users().Update(ctx, u))
	}
	return u.ID
}

// login pasa por POST /auth/token y devuelve el header Authorization listo para usar.
func (s *server) login(t *testing.T, username string) string {
	t.Helper()
	form := url.Values{"username": {username}, "password": {testPassword}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return "Bearer " + out.AccessToken
}

// do lanza la petición con cuerpo JSON opcional y devuelve status y cuerpo.
func (s *server) do(t *testing.T, method, path, authHeader string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}
