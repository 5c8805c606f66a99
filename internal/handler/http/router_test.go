package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edusuite/school-backend-go/internal/config"
	"github.com/edusuite/school-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(frontendURL string) http.Handler {
	cfg := &config.Config{
		App: config.AppConfig{
			Env:         "test",
			LogLevel:    "error",
			FrontendURL: frontendURL,
		},
	}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "168h")
	return NewRouter(
		cfg,
		jwtService,
		NewSalaryHandler(nil),
		NewAttendanceHandler(nil),
		NewLedgerHandler(nil),
		NewPayrollHandler(nil),
	)
}

func doPreflight(handler http.Handler, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/payrolls", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestNewRouter_CORSAllowsConfiguredFrontend(t *testing.T) {
	handler := newTestRouter("https://app.example.edu")

	rec := doPreflight(handler, "https://app.example.edu")
	assert.Equal(t, "https://app.example.edu", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = doPreflight(handler, "https://other.example.com")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouter_Heartbeat(t *testing.T) {
	handler := newTestRouter("http://localhost:3000")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
