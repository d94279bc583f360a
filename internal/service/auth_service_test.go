package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	svc := NewAuthService()

	resp, err := svc.Login("admin", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, strings.HasPrefix(resp.AdminID, "admin_"))

	claims, err := svc.ValidateAdminToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.AdminID, claims.AdminID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService()

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserTokenRoundTrip(t *testing.T) {
	svc := NewAuthService()

	resp, err := svc.IssueUserToken("user@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.UserID)

	claims, err := svc.ValidateUserToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewAuthService()

	_, err := svc.ValidateAdminToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateUserToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	svc := NewAuthService()

	user, err := svc.IssueUserToken("user@example.com")
	require.NoError(t, err)

	// a user token carries no admin ID
	_, err = svc.ValidateAdminToken(user.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
