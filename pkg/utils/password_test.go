package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password1")
	require.NoError(t, err)
	assert.NotEqual(t, "password1", hash)

	assert.True(t, CheckPassword(hash, "password1"))
	assert.False(t, CheckPassword(hash, "password2"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("password1"))

	assert.Error(t, ValidatePassword("short1"))
	assert.Error(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword("onlyletters"))
}
