package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/domain"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
	"github.com/jhoicas/ecommerce-catalog/pkg/jwt"
)

// TokenType tipo de token devuelto por el login.
const TokenType = "bearer"

// TokenIssuer firma tokens de acceso. Lo implementa *jwt.Service.
type TokenIssuer interface {
	Issue(sub jwt.Subject, ttl time.Duration) (string, error)
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	ttl      time.Duration
	hashCost int
}

// NewAuthUseCase construye el caso de uso de auth. ttl es la vigencia de cada token emitido.
func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenIssuer, ttl time.Duration) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens, ttl: ttl, hashCost: bcrypt.DefaultCost}
}

// WithHashCost cambia el costo de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithHashCost(cost int) *AuthUseCase {
	uc.hashCost = cost
	return uc
}

// RegisterUser crea un usuario activo y cliente. Username o email repetidos devuelven ErrDuplicate.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.CreateUserRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Username:       in.Username,
		Email:          in.Email,
		HashedPassword: string(hash),
		IsActive:       true,
		IsCustomer:     true,
	}
	return uc.userRepo.Create(ctx, user)
}

// Login verifica username/password y emite un token con la foto actual de los roles.
// Usuario inexistente, password incorrecto o cuenta desactivada dan el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	token, err := uc.tokens.Issue(jwt.Subject{
		Username:   user.Username,
		UserID:     user.ID,
		IsAdmin:    user.IsAdmin,
		IsSupplier: user.IsSupplier,
		IsCustomer: user.IsCustomer,
	}, uc.ttl)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: TokenType}, nil
}

// CurrentUser traduce la identidad del token a la respuesta de /auth/read_current_user.
func CurrentUser(p entity.Principal) dto.CurrentUserResponse {
	return dto.CurrentUserResponse{User: dto.CurrentUser{
		Username:   p.Username,
		ID:         p.UserID,
		IsAdmin:    p.Roles.IsAdmin(),
		IsSupplier: p.Roles.IsSupplier(),
		IsCustomer: p.Roles.IsCustomer(),
	}}
}
