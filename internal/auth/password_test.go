package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("pw", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "pw", hash)

	require.NoError(t, ComparePassword(hash, "pw"))
	require.Error(t, ComparePassword(hash, "other"))
}

func TestComparePassword_MalformedDigest(t *testing.T) {
	require.Error(t, ComparePassword("not-a-bcrypt-digest", "pw"))
}
