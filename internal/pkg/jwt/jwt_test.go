package jwt

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "tenant-1", "role-1", "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	for claim, want := range map[string]string{
		"user_id":   "user-1",
		"tenant_id": "tenant-1",
		"role_id":   "role-1",
		"email":     "ada@example.com",
		"type":      "access",
	} {
		got, ok := token.Get(claim)
		require.True(t, ok, "missing claim %q", claim)
		assert.Equal(t, want, got)
	}
}

func TestRefreshTokenCarriesOnlyUserAndType(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	tokenType, _ := token.Get("type")
	assert.Equal(t, "refresh", tokenType)
	userID, _ := token.Get("user_id")
	assert.Equal(t, "user-1", userID)
	_, hasTenant := token.Get("tenant_id")
	assert.False(t, hasTenant)
}

func TestDecodeRejectsWrongKey(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	other := NewJWTService("another-secret-entirely", "1h", "24h")

	tokenString, _, err := svc.GenerateAccessToken("user-1", "tenant-1", "role-1", "ada@example.com")
	require.NoError(t, err)

	_, err = other.JWTAuth().Decode(tokenString)
	assert.Error(t, err)
}

func TestGenerateFailsOnBadDuration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "24h")

	_, _, err := svc.GenerateAccessToken("user-1", "tenant-1", "role-1", "ada@example.com")
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	expiresAt := time.Now().Add(24 * time.Hour).Unix()

	cookie := svc.RefreshTokenCookie("the-token", expiresAt)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "the-token", cookie.Value)
	assert.Equal(t, "/api/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, time.Unix(expiresAt, 0), cookie.Expires)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	assert.False(t, svc.IsTokenRevoked("some-token"))
	svc.RevokeToken("some-token")
	assert.True(t, svc.IsTokenRevoked("some-token"))
	assert.False(t, svc.IsTokenRevoked("other-token"))
}
