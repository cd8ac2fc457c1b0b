package utils

import (
	"testing"

	"github.com/Anubhavy999/engineering-resource-mgmt/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetJWTSecret(t *testing.T) {
	original := string(JwtSecret())
	defer SetJWTSecret(original)

	SetJWTSecret("rotated-secret")
	assert.Equal(t, "rotated-secret", string(JwtSecret()))

	// Tokens minted after the rotation verify against the installed secret.
	token, err := GenerateJWT(models.User{ID: 7, Role: "ENGINEER"})
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return JwtSecret(), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(7), claims["id"])
	assert.Equal(t, "ENGINEER", claims["role"])
	_, hasSuperAdmin := claims["isSuperAdmin"]
	assert.False(t, hasSuperAdmin)

	// An empty secret is a no-op, never a blank signing key.
	SetJWTSecret("")
	assert.Equal(t, "rotated-secret", string(JwtSecret()))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("pass1234")
	require.NoError(t, err)
	assert.NotEqual(t, "pass1234", hash)

	assert.True(t, CheckPassword("pass1234", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
