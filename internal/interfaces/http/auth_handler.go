package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-catalog/internal/application/auth"
	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/domain"
	"github.com/jhoicas/ecommerce-catalog/internal/observability/metrics"
)

// AuthHandler maneja registro, login y lectura del usuario actual.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario (cliente)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /auth/ [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if err := h.uc.RegisterUser(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransactionResponse{StatusCode: fiber.StatusCreated, Transaction: "Successful"})
}

// Token godoc
// @Summary      Iniciar sesión (OAuth2 password)
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		metrics.ObserveLogin("rejected")
		return writeError(c, domain.ErrUnauthorized)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			metrics.ObserveLogin("rejected")
		} else {
			metrics.ObserveLogin("error")
		}
		return writeError(c, err)
	}
	metrics.ObserveLogin("ok")
	return c.JSON(out)
}

// ReadCurrentUser godoc
// @Summary      Usuario del token
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200   {object}  dto.CurrentUserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/read_current_user [get]
func (h *AuthHandler) ReadCurrentUser(c *fiber.Ctx) error {
	return c.JSON(auth.CurrentUser(principal(c)))
}
