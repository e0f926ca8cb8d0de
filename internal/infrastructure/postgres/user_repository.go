package postgres

import (
	"context"

	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, first_name, last_name, username, email, hashed_password,
	is_active, is_admin, is_supplier, is_customer`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario y asigna el ID generado.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (first_name, last_name, username, email, hashed_password,
			is_active, is_admin, is_supplier, is_customer)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.Username, user.Email, user.HashedPassword,
		user.IsActive, user.IsAdmin, user.IsSupplier, user.IsCustomer,
	).Scan(&user.ID)
	if err != nil {
		return mapWriteError("insert user", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID (activo o no).
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	return noRows(u, err, "get user by id")
}

// GetByUsername obtiene un usuario por username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	return noRows(u, err, "get user by username")
}

// Update guarda banderas de rol y estado.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET first_name = $2, last_name = $3, email = $4,
			is_active = $5, is_admin = $6, is_supplier = $7, is_customer = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Email,
		user.IsActive, user.IsAdmin, user.IsSupplier, user.IsCustomer,
	)
	if err != nil {
		return mapWriteError("update user", err)
	}
	return nil
}

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.Email, &u.HashedPassword,
		&u.IsActive, &u.IsAdmin, &u.IsSupplier, &u.IsCustomer)
	return &u, err
}

type rowScanner interface {
	Scan(dest ...any) error
}
