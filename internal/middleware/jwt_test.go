package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func protected(t *testing.T, roles ...string) (http.Handler, *int64) {
	var seen int64
	h := JWTAuth(testSecret, zap.NewNop(), roles...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		seen = id
		w.WriteHeader(http.StatusNoContent)
	}))
	return h, &seen
}

func call(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth_ValidAdminToken(t *testing.T) {
	h, seen := protected(t, RoleAdmin)
	token, err := GenerateToken(99, RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	rec := call(h, token)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(99), *seen)
}

func TestJWTAuth_Rejections(t *testing.T) {
	h, _ := protected(t, RoleAdmin)
	userToken, _ := GenerateToken(1, "user", testSecret, time.Hour)
	expired, _ := GenerateToken(99, RoleAdmin, testSecret, -time.Minute)
	foreign, _ := GenerateToken(99, RoleAdmin, "other-secret", time.Hour)

	assert.Equal(t, http.StatusUnauthorized, call(h, "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(h, "garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, call(h, expired).Code)
	assert.Equal(t, http.StatusUnauthorized, call(h, foreign).Code)
	assert.Equal(t, http.StatusForbidden, call(h, userToken).Code)
}

func TestJWTAuth_NoRoleRequirement(t *testing.T) {
	h, seen := protected(t)
	token, _ := GenerateToken(3, "user", testSecret, time.Hour)

	rec := call(h, token)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(3), *seen)
}
