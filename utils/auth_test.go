package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT_RoundTrip(t *testing.T) {
	JwtKey = []byte("test-secret")

	tokenString, err := GenerateJWT("507f1f77bcf86cd799439011", "admin@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtKey, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.True(t, claims.IsAdmin())
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestGenerateJWT_WrongKeyRejected(t *testing.T) {
	JwtKey = []byte("test-secret")
	tokenString, err := GenerateJWT("507f1f77bcf86cd799439011", "user@example.com", "user")
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
