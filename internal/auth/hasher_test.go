package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "s3cret-password")

	assert.True(t, hasher.Verify(hash, "s3cret-password"))
	assert.False(t, hasher.Verify(hash, "wrong-password"))
}

func TestArgon2Hasher_HashesAreSalted(t *testing.T) {
	hasher := NewArgon2Hasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify(first, "same-password"))
	assert.True(t, hasher.Verify(second, "same-password"))
}

func TestArgon2Hasher_VerifyRejectsMalformedHash(t *testing.T) {
	hasher := NewArgon2Hasher()

	assert.False(t, hasher.Verify("", "password"))
	assert.False(t, hasher.Verify("plaintext", "password"))
	assert.False(t, hasher.Verify("$argon2id$v=19$m=65536,t=3,p=4$bad", "password"))
}
