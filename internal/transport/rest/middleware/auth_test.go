package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pddtools/internal/service"
)

func TestRequireUser(t *testing.T) {
	authSvc := service.NewAuthService()
	mw := NewAuthMiddleware(authSvc)

	issued, err := authSvc.IssueUserToken("user@example.com")
	require.NoError(t, err)

	var gotUserID, gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		gotEmail = GetEmail(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/trainers/stats", nil)
		req.Header.Set("Authorization", "Bearer "+issued.Token)
		rec := httptest.NewRecorder()

		mw.RequireUser(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, issued.UserID, gotUserID)
		assert.Equal(t, "user@example.com", gotEmail)
	})

	t.Run("token query param", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/ws/barrier?token="+issued.Token, nil)
		rec := httptest.NewRecorder()

		mw.RequireUser(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, issued.UserID, gotUserID)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/trainers/stats", nil)
		rec := httptest.NewRecorder()

		mw.RequireUser(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/trainers/stats", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()

		mw.RequireUser(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	authSvc := service.NewAuthService()
	mw := NewAuthMiddleware(authSvc)

	login, err := authSvc.Login("admin", "password123")
	require.NoError(t, err)

	var gotAdminID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdminID = GetAdminID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/v1/admin/diary/templates", nil)
		req.Header.Set("Authorization", "Bearer "+login.Token)
		rec := httptest.NewRecorder()

		mw.RequireAdmin(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, login.AdminID, gotAdminID)
	})

	t.Run("user token rejected", func(t *testing.T) {
		user, err := authSvc.IssueUserToken("user@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest("PUT", "/v1/admin/diary/templates", nil)
		req.Header.Set("Authorization", "Bearer "+user.Token)
		rec := httptest.NewRecorder()

		mw.RequireAdmin(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("no query param fallback", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/v1/admin/diary/templates?token="+login.Token, nil)
		rec := httptest.NewRecorder()

		mw.RequireAdmin(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
		{"", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		assert.Equal(t, tt.want, extractBearerToken(req), "header %q", tt.header)
	}
}
