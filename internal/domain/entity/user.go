package entity

// User cuenta de usuario. Nunca se borra físicamente: la baja es IsActive=false.
type User struct {
	ID             int64
	FirstName      string
	LastName       string
	Username       string // único
	Email          string // único
	HashedPassword string // bcrypt
	IsActive       bool
	IsAdmin        bool
	IsSupplier     bool
	IsCustomer     bool
}

// Roles devuelve las banderas de rol del usuario como conjunto.
func (u *User) Roles() Roles {
	return NewRoles(u.IsAdmin, u.IsSupplier, u.IsCustomer)
}
