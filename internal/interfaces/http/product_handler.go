package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP de productos. Lecturas públicas; mutaciones para
// admin o el proveedor dueño.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos disponibles
// @Tags         products
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/ [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Productos de una categoría y sus subcategorías
// @Tags         products
// @Produce      json
// @Param        category_slug  path  string  true  "Slug de la categoría"
// @Success      200  {array}   dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{category_slug} [get]
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.UserContext(), c.Params("category_slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle de producto
// @Tags         products
// @Produce      json
// @Param        product_slug  path  string  true  "Slug del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/detail/{product_slug} [get]
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.Detail(c.UserContext(), c.Params("product_slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /products/ [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if _, err := h.uc.Create(c.UserContext(), principal(c), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransactionResponse{StatusCode: fiber.StatusCreated, Transaction: "Successful"})
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_slug  path  string  true  "Slug del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /products/{product_slug} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if _, err := h.uc.Update(c.UserContext(), principal(c), c.Params("product_slug"), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.TransactionResponse{StatusCode: fiber.StatusOK, Transaction: "Product update is successful"})
}

// Delete godoc
// @Summary      Baja lógica de producto (idempotente)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        product_slug  path  string  true  "Slug del producto"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products/{product_slug} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	already, err := h.uc.Delete(c.UserContext(), principal(c), c.Params("product_slug"))
	if err != nil {
		return writeError(c, err)
	}
	msg := "Product delete is successful"
	if already {
		msg = "Product has already been deleted"
	}
	return c.JSON(dto.TransactionResponse{StatusCode: fiber.StatusOK, Transaction: msg})
}
