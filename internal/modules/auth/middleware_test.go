package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sharebite/sharebite-backend/internal/modules/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginToken(t *testing.T, svc Service) string {
	t.Helper()
	token, _, err := svc.Login(context.Background(), "amy@example.com", "hunter2")
	require.NoError(t, err)
	return token
}

func protectedEndpoint(svc Service, adminOnly bool) http.Handler {
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := PrincipalFrom(r.Context())
		w.Write([]byte(principal.Email))
	})
	if adminOnly {
		handler = AdminOnly(handler)
	}
	return Authenticated(svc)(handler)
}

func TestAuthenticatedMiddleware(t *testing.T) {
	svc, _ := seededService(t, user.RoleUser)
	endpoint := protectedEndpoint(svc, false)

	// No header.
	rec := httptest.NewRecorder()
	endpoint.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	endpoint.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token reaches the handler with the principal in context.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+loginToken(t, svc))
	endpoint.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "amy@example.com", rec.Body.String())
}

func TestAdminOnlyMiddleware(t *testing.T) {
	userSvc, _ := seededService(t, user.RoleUser)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+loginToken(t, userSvc))
	protectedEndpoint(userSvc, true).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminSvc, _ := seededService(t, user.RoleAdmin)
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+loginToken(t, adminSvc))
	protectedEndpoint(adminSvc, true).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
