package service

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "police-system/pkg/errors"
)

const secret = "secret-de-test"

func signer(t *testing.T, claims JwtCustomClaim) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signe, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signe
}

func TestValidateTokenValide(t *testing.T) {
	svc := NewJWTService(secret)
	token := signer(t, JwtCustomClaim{
		UserID:    7,
		SessionID: "s-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "s-1", claims.SessionID)
}

func TestValidateTokenExpire(t *testing.T) {
	svc := NewJWTService(secret)
	token := signer(t, JwtCustomClaim{
		SessionID: "s-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateTokenMauvaiseSignature(t *testing.T) {
	svc := NewJWTService("autre-secret")
	token := signer(t, JwtCustomClaim{SessionID: "s-1"})

	_, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateTokenSansSession(t *testing.T) {
	svc := NewJWTService(secret)
	token := signer(t, JwtCustomClaim{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateTokenIllisible(t *testing.T) {
	svc := NewJWTService(secret)
	_, err := svc.ValidateToken("pas.un.jeton")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
