package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edusuite/school-backend-go/internal/domain/user"
	"github.com/edusuite/school-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(jwtService jwt.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService))
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func doAuthTestRequest(handler http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_AccessTokenAccepted(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "168h")
	schoolID := "school-1"
	token, _, err := jwtService.GenerateAccessToken("user-1", "admin@example.com", &schoolID, user.RoleSchoolAdmin)
	require.NoError(t, err)

	rec := doAuthTestRequest(newAuthTestRouter(jwtService), token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_MissingTokenRejected(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "168h")

	rec := doAuthTestRequest(newAuthTestRouter(jwtService), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RefreshTokenRejected(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "168h")
	token, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	// A refresh token verifies fine but must not grant API access.
	rec := doAuthTestRequest(newAuthTestRouter(jwtService), token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RevokedTokenRejected(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "168h")
	schoolID := "school-1"
	token, _, err := jwtService.GenerateAccessToken("user-1", "admin@example.com", &schoolID, user.RoleSchoolAdmin)
	require.NoError(t, err)

	handler := newAuthTestRouter(jwtService)
	rec := doAuthTestRequest(handler, token)
	require.Equal(t, http.StatusOK, rec.Code)

	jwtService.RevokeToken(token)

	rec = doAuthTestRequest(handler, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
