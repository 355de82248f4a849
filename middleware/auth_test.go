package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clothes-share/models"
	"clothes-share/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	var hit bool
	handler := AuthMiddleware(okHandler(&hit))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, hit)
}

func TestAuthMiddlewareRejectsMalformedToken(t *testing.T) {
	var hit bool
	handler := AuthMiddleware(okHandler(&hit))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, hit)
}

func TestAuthMiddlewarePassesClaims(t *testing.T) {
	utils.JwtKey = []byte("test-secret")
	token, err := utils.GenerateJWT("u1", "a@b.com", models.RoleDonor)
	require.NoError(t, err)

	var claims *utils.Claims
	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ = ClaimsFromRequest(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, claims)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, models.RoleDonor, claims.Role)
}

func TestRequireRole(t *testing.T) {
	utils.JwtKey = []byte("test-secret")
	token, err := utils.GenerateJWT("u1", "a@b.com", models.RoleCustomer)
	require.NoError(t, err)

	var hit bool
	gated := AuthMiddleware(RequireRole(models.RoleAdmin)(okHandler(&hit)))

	req := httptest.NewRequest(http.MethodGet, "/admin/overview", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	gated.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, hit)

	adminToken, err := utils.GenerateJWT("a1", "admin@b.com", models.RoleAdmin)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/admin/overview", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	gated.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hit)
}
