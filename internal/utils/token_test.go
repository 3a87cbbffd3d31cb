package utils

import (
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOpaqueToken(t *testing.T) {
	tok, err := GenerateOpaqueToken()
	require.NoError(t, err)
	assert.Len(t, tok, 64)

	_, err = hex.DecodeString(tok)
	assert.NoError(t, err, "token must be valid hex")

	other, err := GenerateOpaqueToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}

func TestGenerateShortCode(t *testing.T) {
	code, err := GenerateShortCode(8)
	require.NoError(t, err)
	assert.Len(t, code, 8)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(shortCodeAlphabet, r))
	}

	// Non-positive lengths fall back to the default.
	code, err = GenerateShortCode(0)
	require.NoError(t, err)
	assert.Len(t, code, 6)
}

func TestIsTokenExpired(t *testing.T) {
	expiry := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, IsTokenExpired(expiry.Add(-time.Second), expiry))
	assert.True(t, IsTokenExpired(expiry, expiry), "expiry boundary counts as expired")
	assert.True(t, IsTokenExpired(expiry.Add(time.Second), expiry))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2hunter2"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func TestHashPasswordCostFallback(t *testing.T) {
	// An out-of-range cost must not error out; it falls back to the default.
	hash, err := HashPassword("some-password", 99)
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "some-password"))
}
