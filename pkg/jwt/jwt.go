package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de validación de tokens. El orden de las verificaciones en Decode es fijo y cada
// etapa tiene su propio error: la capa HTTP traduce los de expiración ausente o mal formada
// a 400 y el resto a 401.
var (
	ErrTokenInvalid         = errors.New("jwt: no se pudo validar el token")
	ErrTokenIdentity        = errors.New("jwt: el token no identifica al usuario")
	ErrTokenMissingExpiry   = errors.New("jwt: el token no tiene expiración")
	ErrTokenMalformedExpiry = errors.New("jwt: expiración con formato inválido")
	ErrTokenExpired         = errors.New("jwt: token expirado")
)

// Claves del payload.
const (
	claimSubject    = "sub"
	claimUserID     = "id"
	claimIsAdmin    = "is_admin"
	claimIsSupplier = "is_supplier"
	claimIsCustomer = "is_customer"
	claimExpiry     = "exp"
)

// Subject identidad y copia de roles que viaja dentro del token.
type Subject struct {
	Username   string
	UserID     int64
	IsAdmin    bool
	IsSupplier bool
	IsCustomer bool
}

// Service firma y valida tokens de acceso con un secreto compartido y un algoritmo HMAC.
type Service struct {
	secret []byte
	method jwt.SigningMethod
	now    func() time.Time
}

// NewService construye el servicio. algorithm debe ser HS256, HS384 o HS512.
func NewService(secret, algorithm string) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("jwt: algoritmo %q no soportado", algorithm)
	}
	return &Service{secret: []byte(secret), method: method, now: time.Now}, nil
}

// Issue genera un token firmado con la identidad, las tres banderas de rol y exp = ahora + ttl
// (segundos enteros desde epoch).
func (s *Service) Issue(sub Subject, ttl time.Duration) (string, error) {
	return s.sign(jwt.MapClaims{
		claimSubject:    sub.Username,
		claimUserID:     sub.UserID,
		claimIsAdmin:    sub.IsAdmin,
		claimIsSupplier: sub.IsSupplier,
		claimIsCustomer: sub.IsCustomer,
		claimExpiry:     s.now().Add(ttl).Unix(),
	})
}

func (s *Service) sign(claims jwt.MapClaims) (string, error) {
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Decode valida el token y devuelve el Subject embebido. Verificaciones, en este orden:
//  1. firma válida y payload decodificable            -> ErrTokenInvalid
//  2. sub e id presentes y no nulos                   -> ErrTokenIdentity
//  3. exp presente                                    -> ErrTokenMissingExpiry
//  4. exp entero                                      -> ErrTokenMalformedExpiry
//  5. exp >= ahora                                    -> ErrTokenExpired
//
// Los claims registrados se validan aquí y no en el parser, para respetar el orden.
func (s *Service) Decode(tokenString string) (*Subject, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithJSONNumber(),
		jwt.WithoutClaimsValidation(),
	)
	claims := jwt.MapClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	username, subOK := claims[claimSubject].(string)
	userID, idOK := userIDClaim(claims[claimUserID])
	if !subOK || !idOK {
		return nil, ErrTokenIdentity
	}

	rawExp, present := claims[claimExpiry]
	if !present || rawExp == nil {
		return nil, ErrTokenMissingExpiry
	}
	exp, ok := intClaim(rawExp)
	if !ok {
		return nil, ErrTokenMalformedExpiry
	}
	if exp < s.now().Unix() {
		return nil, ErrTokenExpired
	}

	return &Subject{
		Username:   username,
		UserID:     userID,
		IsAdmin:    boolClaim(claims[claimIsAdmin]),
		IsSupplier: boolClaim(claims[claimIsSupplier]),
		IsCustomer: boolClaim(claims[claimIsCustomer]),
	}, nil
}

// intClaim acepta solo números JSON enteros (WithJSONNumber deja los números como json.Number).
func intClaim(v interface{}) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

// userIDClaim acepta el id como entero JSON o como texto con un entero ("1").
func userIDClaim(v interface{}) (int64, bool) {
	if s, ok := v.(string); ok {
		i, err := strconv.ParseInt(s, 10, 64)
		return i, err == nil
	}
	return intClaim(v)
}

func boolClaim(v interface{}) bool {
	b, _ := v.(bool)
	return b
}
