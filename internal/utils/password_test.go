package utils_test

import (
	"strings"
	"testing"

	"github.com/davimoreiraredraw/limify-sub000/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("senha-super-secreta")
	require.NoError(t, err)
	assert.NotEqual(t, "senha-super-secreta", hash)
	assert.True(t, utils.CheckPasswordHash("senha-super-secreta", hash))
	assert.False(t, utils.CheckPasswordHash("senha-errada", hash))
}

func TestHashPassword_OverlongRejected(t *testing.T) {
	_, err := utils.HashPassword(strings.Repeat("a", 73))
	require.Error(t, err)
}

func TestGenerateSecureRandomString_LengthAndUniqueness(t *testing.T) {
	a, err := utils.GenerateSecureRandomString(8)
	require.NoError(t, err)
	b, err := utils.GenerateSecureRandomString(8)
	require.NoError(t, err)
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)

	_, err = utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}
