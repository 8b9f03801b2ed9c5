package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_TokenRoundTrip(t *testing.T) {
	auth := NewAuthService("test-secret")

	// Given: a token issued for a user
	token, err := auth.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// When: parsing it back
	userID, err := auth.ParseToken(token)

	// Then: the original user id is recovered
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestAuthService_RejectsBadTokens(t *testing.T) {
	auth := NewAuthService("test-secret")

	t.Run("Garbage token", func(t *testing.T) {
		_, err := auth.ParseToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		other := NewAuthService("other-secret")
		token, err := other.GenerateToken("user-123")
		require.NoError(t, err)

		_, err = auth.ParseToken(token)
		assert.Error(t, err)
	})
}
