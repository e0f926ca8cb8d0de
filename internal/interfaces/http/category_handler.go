package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de categorías. Las mutaciones son solo para admin.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías activas
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /categories/ [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Nombre y padre opcional"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /categories/ [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if _, err := h.uc.Create(c.UserContext(), principal(c), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransactionResponse{StatusCode: fiber.StatusCreated, Transaction: "Successful"})
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        category_slug  path  string  true  "Slug de la categoría"
// @Param        body  body  dto.CategoryRequest  true  "Nombre y padre opcional"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /categories/{category_slug} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if _, err := h.uc.Update(c.UserContext(), principal(c), c.Params("category_slug"), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.TransactionResponse{StatusCode: fiber.StatusOK, Transaction: "Category update is successful"})
}

// Delete godoc
// @Summary      Baja lógica de categoría (idempotente)
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        category_slug  path  string  true  "Slug de la categoría"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /categories/{category_slug} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	already, err := h.uc.Delete(c.UserContext(), principal(c), c.Params("category_slug"))
	if err != nil {
		return writeError(c, err)
	}
	msg := "Category delete is successful"
	if already {
		msg = "Category has already been deleted"
	}
	return c.JSON(dto.TransactionResponse{StatusCode: fiber.StatusOK, Transaction: msg})
}
