package entity

// Principal identidad decodificada del token de acceso: copia de los roles al momento del login.
// No se vuelve a consultar la base en cada petición, así que un cambio de roles aplica
// recién en el siguiente login.
type Principal struct {
	Username string
	UserID   int64
	Roles    Roles
}
