package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	pair, err := GenerateTokenPair(42, "ann@example.com", true, "secret", 1, 24)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := ValidateToken(pair.AccessToken, "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ann@example.com", claims.Email)
	assert.True(t, claims.Superuser)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	pair, err := GenerateTokenPair(1, "a@b.com", false, "secret", 1, 24)
	require.NoError(t, err)

	_, err = ValidateToken(pair.AccessToken, "other-secret")
	require.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "secret")
	require.Error(t, err)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	a, err := GenerateTokenPair(1, "a@b.com", false, "secret", 1, 24)
	require.NoError(t, err)
	b, err := GenerateTokenPair(1, "a@b.com", false, "secret", 1, 24)
	require.NoError(t, err)

	assert.NotEqual(t, a.RefreshToken, b.RefreshToken)
}
