package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)

	token, exp, err := tm.GenerateToken("store-key-1", "1700000000000")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), exp, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "store-key-1", claims.UserID)
	assert.Equal(t, "1700000000000", claims.PublicID)
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	_, exp, err := tm.GenerateToken("u", "p")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), exp, time.Minute)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := &TokenManager{secret: []byte("test-secret"), ttl: -time.Hour}

	token, _, err := tm.GenerateToken("u", "p")
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.Error(t, err)
}

func TestTokenManager_RejectsTampered(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)

	token, _, err := tm.GenerateToken("u", "p")
	require.NoError(t, err)

	tampered := []byte(token)
	// Flip a byte in the payload segment.
	tampered[len(tampered)/2] ^= 0x01

	_, err = tm.ParseToken(string(tampered))
	require.Error(t, err)
}

func TestTokenManager_RejectsForeignKey(t *testing.T) {
	issuer := NewTokenManager("key-one", 30)
	verifier := NewTokenManager("key-two", 30)

	token, _, err := issuer.GenerateToken("u", "p")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	require.Error(t, err)
}
