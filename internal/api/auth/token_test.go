package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatsomint/pawfectfind-be/internal/api/model"
)

func TestTokenManager_IssueVerify(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	user := &model.User{
		ID:    42,
		Email: "jess@example.com",
	}

	token, err := manager.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenManager_Verify_Errors(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	user := &model.User{ID: 42, Email: "jess@example.com"}

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "garbage token",
			token: func(t *testing.T) string {
				return "not.a.token"
			},
		},
		{
			name: "empty token",
			token: func(t *testing.T) string {
				return ""
			},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := NewTokenManager("another-secret", time.Hour)
				token, err := other.Issue(user)
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				expired := NewTokenManager("test-secret", -time.Minute)
				token, err := expired.Issue(user)
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "missing uid claim",
			token: func(t *testing.T) string {
				raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"email": "jess@example.com",
					"exp":   time.Now().Add(time.Hour).Unix(),
				})
				token, err := raw.SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "unexpected signing method",
			token: func(t *testing.T) string {
				raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"uid": float64(42),
					"exp": time.Now().Add(time.Hour).Unix(),
				})
				token, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := manager.Verify(tt.token(t))

			require.ErrorIs(t, err, ErrInvalidToken)
			assert.Zero(t, userID)
		})
	}
}

func TestHashPassword(t *testing.T) {
	hash := HashPassword("hunter2")

	// hex-encoded sha256 is always 64 characters
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashPassword("hunter2"))
	assert.NotEqual(t, hash, HashPassword("hunter3"))
}

func TestVerifyPassword(t *testing.T) {
	hash := HashPassword("hunter2")

	assert.True(t, VerifyPassword("hunter2", hash))
	assert.False(t, VerifyPassword("hunter3", hash))
	assert.False(t, VerifyPassword("hunter2", "not-a-hash"))
}
