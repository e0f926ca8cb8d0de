package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrCategoryNotFound = errors.New("categoría no encontrada")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrReviewNotFound   = errors.New("reseña no encontrada")
	ErrNoResults        = errors.New("no hay resultados")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("credenciales inválidas")
	ErrForbidden        = errors.New("acceso denegado")
	ErrAdminUndeletable = errors.New("no se puede eliminar un usuario administrador")
)

// Listados vacíos por recurso; siguen siendo ErrNoResults para errors.Is.
var (
	ErrNoProducts = fmt.Errorf("productos: %w", ErrNoResults)
	ErrNoReviews  = fmt.Errorf("reseñas: %w", ErrNoResults)
)
