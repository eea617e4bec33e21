package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(7, "+923001234567", 2, "test-secret", 30)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, "test-secret")
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "+923001234567", claims.PhoneNumber)
	assert.Equal(t, 2, claims.UserTypeID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(7, "+923001234567", 1, "test-secret", 30)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(7, "+923001234567", 1, "test-secret", -1)
	require.NoError(t, err)

	_, err = ValidateToken(token, "test-secret")
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
}
