package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/pkg/jwt"
)

// LocalPrincipal clave de c.Locals donde queda la identidad del token.
const LocalPrincipal = "principal"

// TokenDecoder valida tokens de acceso. Lo implementa *jwt.Service.
type TokenDecoder interface {
	Decode(token string) (*jwt.Subject, error)
}

// AuthMiddleware valida el Bearer Token y deja la entity.Principal en c.Locals.
// Los roles salen del token tal como estaban al emitirlo: no se consultan en la base en cada
// petición, así que un cambio de permisos aplica recién en el próximo login.
func AuthMiddleware(tokens TokenDecoder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Not authenticated"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Not authenticated"})
		}
		sub, err := tokens.Decode(strings.TrimSpace(parts[1]))
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalPrincipal, entity.Principal{
			Username: sub.Username,
			UserID:   sub.UserID,
			Roles:    entity.NewRoles(sub.IsAdmin, sub.IsSupplier, sub.IsCustomer),
		})
		return c.Next()
	}
}

// GetPrincipal devuelve la identidad cargada por AuthMiddleware.
func GetPrincipal(c *fiber.Ctx) (entity.Principal, bool) {
	p, ok := c.Locals(LocalPrincipal).(entity.Principal)
	return p, ok
}

// principal igual que GetPrincipal pero para handlers montados detrás del middleware.
func principal(c *fiber.Ctx) entity.Principal {
	p, _ := GetPrincipal(c)
	return p
}
