package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	signed, err := GenerateJWT(42, "PLAYER", "squadhub", "secret", 5)
	require.NoError(t, err)

	claims, err := ValidateJWT(signed, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "PLAYER", claims.Role)
	assert.Equal(t, "squadhub", claims.Issuer)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	signed, err := GenerateJWT(42, "PLAYER", "squadhub", "secret", 5)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, "other")
	assert.EqualError(t, err, "token signature is invalid")
}

func TestValidateRejectsExpired(t *testing.T) {
	signed, err := GenerateJWT(42, "PLAYER", "squadhub", "secret", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, "secret")
	assert.EqualError(t, err, "token has expired")
}

func TestValidateRejectsEmpty(t *testing.T) {
	_, err := ValidateJWT("", "secret")
	assert.Error(t, err)
}
