package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/domain"
	"github.com/jhoicas/ecommerce-catalog/pkg/jwt"
)

type errorSpec struct {
	status  int
	code    string
	message string
}

// errorTable traduce errores de dominio y de token a respuesta HTTP. El primer match gana.
var errorTable = []struct {
	err  error
	spec errorSpec
}{
	{jwt.ErrTokenInvalid, errorSpec{fiber.StatusUnauthorized, "INVALID_TOKEN", "Could not validate user"}},
	{jwt.ErrTokenIdentity, errorSpec{fiber.StatusUnauthorized, "INVALID_TOKEN", "Could not validate user"}},
	{jwt.ErrTokenMissingExpiry, errorSpec{fiber.StatusBadRequest, "MISSING_EXPIRY", "No access token supplied"}},
	{jwt.ErrTokenMalformedExpiry, errorSpec{fiber.StatusBadRequest, "INVALID_EXPIRY", "Invalid token format"}},
	{jwt.ErrTokenExpired, errorSpec{fiber.StatusUnauthorized, "TOKEN_EXPIRED", "Token expired!"}},
	{domain.ErrUnauthorized, errorSpec{fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid authentication credentials"}},
	{domain.ErrAdminUndeletable, errorSpec{fiber.StatusForbidden, "ADMIN_UNDELETABLE", "You can`t delete admin user"}},
	{domain.ErrForbidden, errorSpec{fiber.StatusForbidden, "FORBIDDEN", "You are not authorized to use this method"}},
	{domain.ErrUserNotFound, errorSpec{fiber.StatusNotFound, "NOT_FOUND", "User not found"}},
	{domain.ErrCategoryNotFound, errorSpec{fiber.StatusNotFound, "NOT_FOUND", "There is no category found"}},
	{domain.ErrProductNotFound, errorSpec{fiber.StatusNotFound, "NOT_FOUND", "Product not found"}},
	{domain.ErrReviewNotFound, errorSpec{fiber.StatusNotFound, "NOT_FOUND", "There is no review found"}},
	{domain.ErrNotFound, errorSpec{fiber.StatusNotFound, "NOT_FOUND", "Not found"}},
	{domain.ErrNoProducts, errorSpec{fiber.StatusNotFound, "NO_RESULTS", "There are no products"}},
	{domain.ErrNoReviews, errorSpec{fiber.StatusNotFound, "NO_RESULTS", "There are no reviews"}},
	{domain.ErrNoResults, errorSpec{fiber.StatusNotFound, "NO_RESULTS", "There are no results"}},
	{domain.ErrInvalidInput, errorSpec{fiber.StatusBadRequest, "VALIDATION", "Invalid input"}},
	{domain.ErrDuplicate, errorSpec{fiber.StatusConflict, "DUPLICATE", "Resource already exists"}},
}

func classify(err error) (errorSpec, bool) {
	var ve *validationError
	if errors.As(err, &ve) {
		return errorSpec{fiber.StatusBadRequest, "VALIDATION", ve.Error()}, true
	}
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			return e.spec, true
		}
	}
	return errorSpec{fiber.StatusInternalServerError, "INTERNAL", "Internal server error"}, false
}

// writeError escribe el error como dto.ErrorResponse. Los 401 llevan WWW-Authenticate: Bearer;
// los errores no clasificados se loguean y salen como 500 sin detalles internos.
func writeError(c *fiber.Ctx, err error) error {
	spec, known := classify(err)
	if !known {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Interface("request_id", c.Locals("requestid")).
			Msg("error no controlado")
	}
	if spec.status == fiber.StatusUnauthorized {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	}
	return c.Status(spec.status).JSON(dto.ErrorResponse{Code: spec.code, Message: spec.message})
}
