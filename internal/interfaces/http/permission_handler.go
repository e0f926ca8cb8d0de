package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/application/usecase"
)

// PermissionHandler administración de usuarios (solo admin).
type PermissionHandler struct {
	uc *usecase.UserUseCase
}

// NewPermissionHandler construye el handler.
func NewPermissionHandler(uc *usecase.UserUseCase) *PermissionHandler {
	return &PermissionHandler{uc: uc}
}

// ToggleSupplier godoc
// @Summary      Alternar permiso de proveedor
// @Tags         permission
// @Security     Bearer
// @Produce      json
// @Param        user_id  query  int  true  "ID del usuario"
// @Success      200   {object}  dto.DetailResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /permission/ [patch]
func (h *PermissionHandler) ToggleSupplier(c *fiber.Ctx) error {
	userID, err := queryID(c, "user_id")
	if err != nil {
		return writeError(c, err)
	}
	isSupplier, err := h.uc.ToggleSupplier(c.UserContext(), principal(c), userID)
	if err != nil {
		return writeError(c, err)
	}
	detail := "User is no longer supplier"
	if isSupplier {
		detail = "User is now supplier"
	}
	return c.JSON(dto.DetailResponse{StatusCode: fiber.StatusOK, Detail: detail})
}

// Delete godoc
// @Summary      Desactivar usuario (idempotente, nunca un admin)
// @Tags         permission
// @Security     Bearer
// @Produce      json
// @Param        user_id  query  int  true  "ID del usuario"
// @Success      200   {object}  dto.DetailResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /permission/delete [delete]
func (h *PermissionHandler) Delete(c *fiber.Ctx) error {
	userID, err := queryID(c, "user_id")
	if err != nil {
		return writeError(c, err)
	}
	already, err := h.uc.Delete(c.UserContext(), principal(c), userID)
	if err != nil {
		return writeError(c, err)
	}
	detail := "User is deleted"
	if already {
		detail = "User has already been deleted"
	}
	return c.JSON(dto.DetailResponse{StatusCode: fiber.StatusOK, Detail: detail})
}
