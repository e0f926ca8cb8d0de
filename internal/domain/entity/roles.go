package entity

import "strings"

// Roles conjunto de banderas de rol. Las banderas son independientes: un usuario puede ser
// proveedor y cliente a la vez, por eso no se modela como un único rol.
type Roles uint8

const (
	RoleAdmin Roles = 1 << iota
	RoleSupplier
	RoleCustomer
)

// NewRoles construye el conjunto a partir de las tres banderas persistidas.
func NewRoles(isAdmin, isSupplier, isCustomer bool) Roles {
	var r Roles
	if isAdmin {
		r |= RoleAdmin
	}
	if isSupplier {
		r |= RoleSupplier
	}
	if isCustomer {
		r |= RoleCustomer
	}
	return r
}

// Has indica si todas las banderas de flag están presentes.
func (r Roles) Has(flag Roles) bool { return r&flag == flag }

func (r Roles) IsAdmin() bool    { return r.Has(RoleAdmin) }
func (r Roles) IsSupplier() bool { return r.Has(RoleSupplier) }
func (r Roles) IsCustomer() bool { return r.Has(RoleCustomer) }

func (r Roles) String() string {
	var parts []string
	if r.IsAdmin() {
		parts = append(parts, "admin")
	}
	if r.IsSupplier() {
		parts = append(parts, "supplier")
	}
	if r.IsCustomer() {
		parts = append(parts, "customer")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
