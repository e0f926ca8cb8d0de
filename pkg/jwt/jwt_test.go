package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(testSecret, "HS256")
	require.NoError(t, err)
	return svc
}

func TestNewService_Validaciones(t *testing.T) {
	_, err := NewService("", "HS256")
	assert.Error(t, err, "secret vacío debe fallar")

	_, err = NewService(testSecret, "RS256")
	assert.Error(t, err, "solo se aceptan algoritmos HMAC")

	_, err = NewService(testSecret, "none")
	assert.Error(t, err)

	svc, err := NewService(testSecret, "HS512")
	require.NoError(t, err)
	assert.Equal(t, "HS512", svc.method.Alg())
}

func TestIssueDecode_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	sub := Subject{Username: "ana", UserID: 42, IsSupplier: true, IsCustomer: true}

	tok, err := svc.Issue(sub, time.Minute)
	require.NoError(t, err)

	got, err := svc.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, sub, *got)
}

func TestDecode_Expirado(t *testing.T) {
	svc := newTestService(t)
	tok, err := svc.Issue(Subject{Username: "ana", UserID: 1}, -time.Second)
	require.NoError(t, err)

	_, err = svc.Decode(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecode_ExpiraEnElLimite(t *testing.T) {
	svc := newTestService(t)
	fixed := time.Unix(1_700_000_000, 0)
	svc.now = func() time.Time { return fixed }

	tok, err := svc.Issue(Subject{Username: "ana", UserID: 1}, 0)
	require.NoError(t, err)

	_, err = svc.Decode(tok)
	assert.NoError(t, err, "exp == ahora todavía es válido")

	svc.now = func() time.Time { return fixed.Add(time.Second) }
	_, err = svc.Decode(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecode_FirmaIncorrecta(t *testing.T) {
	other, err := NewService("otro-secret-completamente-distinto", "HS256")
	require.NoError(t, err)
	tok, err := other.Issue(Subject{Username: "ana", UserID: 1}, time.Minute)
	require.NoError(t, err)

	_, err = newTestService(t).Decode(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecode_AlgoritmoDistinto(t *testing.T) {
	other, err := NewService(testSecret, "HS384")
	require.NoError(t, err)
	tok, err := other.Issue(Subject{Username: "ana", UserID: 1}, time.Minute)
	require.NoError(t, err)

	_, err = newTestService(t).Decode(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecode_Malformado(t *testing.T) {
	_, err := newTestService(t).Decode("token.invalido.aqui")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecode_OrdenDeValidacion(t *testing.T) {
	svc := newTestService(t)
	future := time.Now().Add(time.Hour).Unix()
	past := time.Now().Add(-time.Hour).Unix()

	cases := []struct {
		name   string
		claims jwt.MapClaims
		want   error
	}{
		{"sin sub", jwt.MapClaims{"id": 1, "exp": future}, ErrTokenIdentity},
		{"sin id", jwt.MapClaims{"sub": "ana", "exp": future}, ErrTokenIdentity},
		{"sub nulo", jwt.MapClaims{"sub": nil, "id": 1, "exp": future}, ErrTokenIdentity},
		{"id nulo", jwt.MapClaims{"sub": "ana", "id": nil, "exp": future}, ErrTokenIdentity},
		{"id no numérico", jwt.MapClaims{"sub": "ana", "id": "abc", "exp": future}, ErrTokenIdentity},
		// la identidad se revisa antes que la expiración
		{"sin id y expirado", jwt.MapClaims{"sub": "ana", "exp": past}, ErrTokenIdentity},
		{"sin exp", jwt.MapClaims{"sub": "ana", "id": 1}, ErrTokenMissingExpiry},
		{"exp nulo", jwt.MapClaims{"sub": "ana", "id": 1, "exp": nil}, ErrTokenMissingExpiry},
		{"exp texto", jwt.MapClaims{"sub": "ana", "id": 1, "exp": "mañana"}, ErrTokenMalformedExpiry},
		{"exp decimal", jwt.MapClaims{"sub": "ana", "id": 1, "exp": 1.5}, ErrTokenMalformedExpiry},
		{"expirado", jwt.MapClaims{"sub": "ana", "id": 1, "exp": past}, ErrTokenExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := svc.sign(tc.claims)
			require.NoError(t, err)

			_, err = svc.Decode(tok)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_RolesAusentesSonFalse(t *testing.T) {
	svc := newTestService(t)
	tok, err := svc.sign(jwt.MapClaims{"sub": "ana", "id": 3, "exp": time.Now().Add(time.Hour).Unix()})
	require.NoError(t, err)

	got, err := svc.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, Subject{Username: "ana", UserID: 3}, *got)
}

func TestDecode_IdentidadLaxa(t *testing.T) {
	svc := newTestService(t)
	future := time.Now().Add(time.Hour).Unix()

	tok, err := svc.sign(jwt.MapClaims{"sub": "ana", "id": "12", "exp": future})
	require.NoError(t, err)
	got, err := svc.Decode(tok)
	require.NoError(t, err, "id como texto numérico es válido")
	assert.Equal(t, int64(12), got.UserID)

	tok, err = svc.sign(jwt.MapClaims{"sub": "", "id": 3, "exp": future})
	require.NoError(t, err)
	got, err = svc.Decode(tok)
	require.NoError(t, err, "sub vacío pero presente es válido")
	assert.Equal(t, "", got.Username)
	assert.Equal(t, int64(3), got.UserID)
}
