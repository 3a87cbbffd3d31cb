package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	user := SessionUser{
		ID:       uuid.New(),
		Email:    "pen@example.com",
		Name:     "Pen Pusher",
		Role:     "admin",
		Verified: true,
	}

	token, tokenID, err := GenerateSessionToken("test-secret", user, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	claims, err := ParseSessionToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.Role, claims.Role)
	assert.True(t, claims.Verified)
	assert.Equal(t, tokenID, claims.ID)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateSessionToken("secret-a", SessionUser{ID: uuid.New()}, time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken("secret-b", token)
	assert.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	token, _, err := GenerateSessionToken("test-secret", SessionUser{ID: uuid.New()}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken("test-secret", token)
	assert.Error(t, err)
}
