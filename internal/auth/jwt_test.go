package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-at-least-32-chars!!"

func TestIssueAndValidate(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue("u1", "Jo", "jo@example.com", false)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "Jo", claims.Name)
	assert.Equal(t, "jo@example.com", claims.Email)
	assert.False(t, claims.IsAdmin)
}

func TestValidate_ExpiredToken(t *testing.T) {
	svc := NewTokenService(testSecret, -time.Minute)

	token, err := svc.Issue("u1", "Jo", "jo@example.com", false)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidate_WrongSecret(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)
	other := NewTokenService("another-secret-key-32-characters!!!", time.Hour)

	token, err := svc.Issue("u1", "Jo", "jo@example.com", false)
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Garbage(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)
	now := time.Now()

	fresh, err := svc.Issue("u1", "Jo", "jo@example.com", false)
	require.NoError(t, err)
	assert.False(t, TokenExpired(fresh, now))

	stale := NewTokenService(testSecret, -time.Minute)
	expired, err := stale.Issue("u1", "Jo", "jo@example.com", false)
	require.NoError(t, err)
	assert.True(t, TokenExpired(expired, now))

	assert.True(t, TokenExpired("garbage", now))
}
