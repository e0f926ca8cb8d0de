package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validationError cuerpo ilegible o que no cumple los tags validate del DTO.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

// parseBody decodifica el cuerpo (JSON o formulario) y valida el DTO.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return &validationError{msg: "invalid body"}
	}
	if err := validate.Struct(out); err != nil {
		return &validationError{msg: describe(err)}
	}
	return nil
}

func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// queryID lee un id entero positivo de la query string.
func queryID(c *fiber.Ctx, key string) (int64, error) {
	id := c.QueryInt(key, 0)
	if id <= 0 {
		return 0, &validationError{msg: key + " must be a positive integer"}
	}
	return int64(id), nil
}

// paramID lee un id entero positivo de la ruta.
func paramID(c *fiber.Ctx, key string) (int64, error) {
	id, err := c.ParamsInt(key)
	if err != nil || id <= 0 {
		return 0, &validationError{msg: key + " must be a positive integer"}
	}
	return int64(id), nil
}
