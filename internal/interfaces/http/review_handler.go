package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/application/usecase"
	"github.com/jhoicas/ecommerce-catalog/internal/observability/metrics"
)

// ReviewHandler maneja las peticiones HTTP de reseñas.
type ReviewHandler struct {
	uc *usecase.ReviewUseCase
}

// NewReviewHandler construye el handler.
func NewReviewHandler(uc *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// List godoc
// @Summary      Listar reseñas activas
// @Tags         reviews
// @Produce      json
// @Success      200  {array}   dto.ReviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /reviews/ [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Reseñas de un producto
// @Tags         reviews
// @Produce      json
// @Param        product_slug  path  string  true  "Slug del producto"
// @Success      200  {array}   dto.ReviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /reviews/{product_slug} [get]
func (h *ReviewHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.UserContext(), c.Params("product_slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar reseña y recalcular rating
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_slug  path  string  true  "Slug del producto"
// @Param        body  body  dto.CreateReviewRequest  true  "Comentario y grade 1..5"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /reviews/{product_slug} [post]
func (h *ReviewHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if _, err := h.uc.Add(c.UserContext(), principal(c), c.Params("product_slug"), in); err != nil {
		return writeError(c, err)
	}
	metrics.ObserveRatingRecompute()
	return c.Status(fiber.StatusCreated).JSON(dto.TransactionResponse{StatusCode: fiber.StatusCreated, Transaction: "Review added successfully"})
}

// Delete godoc
// @Summary      Baja lógica de reseña (idempotente)
// @Tags         reviews
// @Security     Bearer
// @Produce      json
// @Param        review_id  path  int  true  "ID de la reseña"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /reviews/{review_id} [delete]
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "review_id")
	if err != nil {
		return writeError(c, err)
	}
	already, err := h.uc.Delete(c.UserContext(), principal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	msg := "Review delete is successful"
	if already {
		msg = "Review has already been deleted"
	}
	return c.JSON(dto.TransactionResponse{StatusCode: fiber.StatusOK, Transaction: msg})
}
