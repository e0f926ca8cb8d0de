package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
)

func TestRoot_Bienvenida(t *testing.T) {
	s := newServer(t)
	resp, body := s.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "My e-commerce app", decode[dto.MessageResponse](t, body).Message)
}

func TestAuth_RegistroLoginYUsuarioActual(t *testing.T) {
	s := newServer(t)

	resp, _ := s.do(t, http.MethodPost, "/auth/", "", dto.CreateUserRequest{
		FirstName: "Ana", LastName: "Gómez", Username: "ana", Email: "ana@example.com", Password: testPassword,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	token := s.login(t, "ana")
	resp, body := s.do(t, http.MethodGet, "/auth/read_current_user", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[dto.CurrentUserResponse](t, body).User
	assert.Equal(t, "ana", got.Username)
	assert.NotZero(t, got.ID)
	assert.False(t, got.IsAdmin)
	assert.False(t, got.IsSupplier)
	assert.True(t, got.IsCustomer, "un usuario recién registrado es cliente")
}

func TestAuth_RegistroDuplicadoEInvalido(t *testing.T) {
	s := newServer(t)
	s.user(t, "ana", false, false)

	resp, body := s.do(t, http.MethodPost, "/auth/", "", dto.CreateUserRequest{
		FirstName: "Ana", LastName: "Otra", Username: "ana", Email: "otra@example.com", Password: testPassword,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decode[dto.ErrorResponse](t, body).Code)

	resp, body = s.do(t, http.MethodPost, "/auth/", "", dto.CreateUserRequest{
		FirstName: "Ana", LastName: "Otra", Username: "ana2", Email: "no-es-email", Password: testPassword,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)
}

func TestAuth_LoginFallidoEs401ConWWWAuthenticate(t *testing.T) {
	s := newServer(t)
	s.user(t, "ana", false, false)

	form := url.Values{"username": {"ana"}, "password": {"incorrecta"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
}

func TestAuth_UsuarioInactivoNoPuedeLoguear(t *testing.T) {
	s := newServer(t)
	id := s.user(t, "ana", false, false)

	ctx := context.Background()
	u, err := s.store.Users().GetByID(ctx, id)
	require.NoError(t, err)
	u.IsActive = false
	require.NoError(t, s.store.Users().Update(ctx, u))

	form := url.Values{"username": {"ana"}, "password": {testPassword}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "password correcto pero cuenta inactiva")
}

func TestAuthMiddleware_ErroresDeToken(t *testing.T) {
	s := newServer(t)
	sign := func(claims gojwt.MapClaims) string {
		tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
		require.NoError(t, err)
		return "Bearer " + tok
	}
	future := time.Now().Add(time.Hour).Unix()
	past := time.Now().Add(-time.Hour).Unix()

	cases := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{"sin header", "", http.StatusUnauthorized, "MISSING_TOKEN"},
		{"sin esquema bearer", "Token abc", http.StatusUnauthorized, "MISSING_TOKEN"},
		{"malformado", "Bearer token.invalido.aqui", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"sin id", sign(gojwt.MapClaims{"sub": "ana", "exp": future}), http.StatusUnauthorized, "INVALID_TOKEN"},
		{"sin exp", sign(gojwt.MapClaims{"sub": "ana", "id": 1}), http.StatusBadRequest, "MISSING_EXPIRY"},
		{"exp texto", sign(gojwt.MapClaims{"sub": "ana", "id": 1, "exp": "mañana"}), http.StatusBadRequest, "INVALID_EXPIRY"},
		{"expirado", sign(gojwt.MapClaims{"sub": "ana", "id": 1, "exp": past}), http.StatusUnauthorized, "TOKEN_EXPIRED"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := s.do(t, http.MethodGet, "/auth/read_current_user", tc.header, nil)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, body).Code)
			if tc.status == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
			}
		})
	}
}

func TestAuthMiddleware_RolesSonFotoDelLogin(t *testing.T) {
	s := newServer(t)
	s.user(t, "admin", true, false)
	id := s.user(t, "ana", false, false)
	anaToken := s.login(t, "ana")

	resp, _ := s.do(t, http.MethodPatch, "/permission/?user_id="+itoa(id), s.login(t, "admin"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body := s.do(t, http.MethodGet, "/auth/read_current_user", anaToken, nil)
	assert.False(t, decode[dto.CurrentUserResponse](t, body).User.IsSupplier, "el token viejo no ve el cambio")

	_, body = s.do(t, http.MethodGet, "/auth/read_current_user", s.login(t, "ana"), nil)
	assert.True(t, decode[dto.CurrentUserResponse](t, body).User.IsSupplier, "el nuevo login sí")
}
