package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	digest, err := HashPassword("SecurePass123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "SecurePass123", digest)

	assert.True(t, VerifyPassword("SecurePass123", digest))
	assert.False(t, VerifyPassword("wrong-password", digest))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("SecurePass123")
	require.NoError(t, err)
	second, err := HashPassword("SecurePass123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "bcrypt salts must make repeated hashes differ")
	assert.True(t, VerifyPassword("SecurePass123", first))
	assert.True(t, VerifyPassword("SecurePass123", second))
}

func TestVerifyPassword_InvalidDigest(t *testing.T) {
	assert.False(t, VerifyPassword("anything", "not-a-bcrypt-digest"))
	assert.False(t, VerifyPassword("anything", ""))
}
