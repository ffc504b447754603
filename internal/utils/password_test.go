package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.True(t, CheckPassword("s3cret", hash))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("s3cret")
	require.NoError(t, err)
	second, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects inputs longer than 72 bytes
	_, err := HashPassword(strings.Repeat("x", 100))
	require.Error(t, err)
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("right")
	require.NoError(t, err)

	assert.False(t, CheckPassword("wrong", hash))
}

func TestCheckPassword_EmptyHash(t *testing.T) {
	// accounts created through the Google handoff store no hash at all
	assert.False(t, CheckPassword("anything", ""))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
}
