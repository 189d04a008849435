// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	SetJWTSecret("test-secret")
	defer SetJWTSecret("")

	userID := uuid.New()

	token, err := GenerateJWT(userID, 5)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "flipbase", claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestGenerateJWTWithoutSecret(t *testing.T) {
	SetJWTSecret("")

	_, err := GenerateJWT(uuid.New(), 5)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestValidateJWTWithoutSecret(t *testing.T) {
	SetJWTSecret("")

	_, err := ValidateJWT("whatever")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("first-secret")
	token, err := GenerateJWT(uuid.New(), 5)
	require.NoError(t, err)

	SetJWTSecret("second-secret")
	defer SetJWTSecret("")

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")
	defer SetJWTSecret("")

	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}
