// Package access contiene los predicados de autorización que se evalúan antes de cada mutación.
// Orden de uso: primero el privilegio (RequireAdmin / RequireAdminOrSupplier), luego la
// resolución del objetivo y por último la propiedad o la guarda; el primero que falla corta.
package access

import (
	"github.com/jhoicas/ecommerce-catalog/internal/domain"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
)

// RequireAdmin exige la bandera admin en el token.
func RequireAdmin(p entity.Principal) error {
	if !p.Roles.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// RequireAdminOrSupplier exige admin o proveedor.
func RequireAdminOrSupplier(p entity.Principal) error {
	if !p.Roles.IsAdmin() && !p.Roles.IsSupplier() {
		return domain.ErrForbidden
	}
	return nil
}

// CheckSupplierOwnership un proveedor (que no sea admin) solo puede tocar sus propios productos.
func CheckSupplierOwnership(p entity.Principal, product *entity.Product) error {
	if p.Roles.IsAdmin() {
		return nil
	}
	if p.Roles.IsSupplier() && !product.OwnedBy(p.UserID) {
		return domain.ErrForbidden
	}
	return nil
}

// GuardUserDeletion un administrador nunca se desactiva, sin importar quién lo pida.
func GuardUserDeletion(target *entity.User) error {
	if target.IsAdmin {
		return domain.ErrAdminUndeletable
	}
	return nil
}
