package usecase

import (
	"context"

	"github.com/jhoicas/ecommerce-catalog/internal/domain"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/access"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
)

// UserUseCase administración de permisos y bajas de usuarios (solo admin).
// Los cambios no tocan tokens ya emitidos: aplican en el próximo login del usuario.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// ToggleSupplier alterna la bandera de proveedor. is_customer toma el valor anterior de
// is_supplier: quien deja de ser proveedor vuelve a ser cliente y viceversa.
// Devuelve el nuevo valor de is_supplier.
func (uc *UserUseCase) ToggleSupplier(ctx context.Context, p entity.Principal, userID int64) (bool, error) {
	if err := access.RequireAdmin(p); err != nil {
		return false, err
	}
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil || !user.IsActive {
		return false, domain.ErrUserNotFound
	}
	wasSupplier := user.IsSupplier
	user.IsSupplier = !wasSupplier
	user.IsCustomer = wasSupplier
	if err := uc.repo.Update(ctx, user); err != nil {
		return false, err
	}
	return user.IsSupplier, nil
}

// Delete desactiva un usuario. Un admin nunca se desactiva; uno ya inactivo devuelve
// alreadyDeleted=true sin error.
func (uc *UserUseCase) Delete(ctx context.Context, p entity.Principal, userID int64) (alreadyDeleted bool, err error) {
	if err := access.RequireAdmin(p); err != nil {
		return false, err
	}
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, domain.ErrUserNotFound
	}
	if err := access.GuardUserDeletion(user); err != nil {
		return false, err
	}
	if !user.IsActive {
		return true, nil
	}
	user.IsActive = false
	return false, uc.repo.Update(ctx, user)
}
