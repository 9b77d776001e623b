package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SirJonasM/fpga-router/pkg/auth"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequireAuthPassesThroughWhenUnconfigured(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/plan", nil)
	rr := httptest.NewRecorder()
	s.requireAuth(okHandler)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireAuthAcceptsValidBearerToken(t *testing.T) {
	s := newTestServer(t)
	jwtManager, err := auth.NewJWTManager("test-secret-test-secret-test-secret", time.Hour)
	require.NoError(t, err)
	s.jwtManager = jwtManager

	token, err := jwtManager.GenerateToken("alice")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/plan", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	s.requireAuth(okHandler)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireAuthRejectsInvalidBearerToken(t *testing.T) {
	s := newTestServer(t)
	jwtManager, err := auth.NewJWTManager("test-secret-test-secret-test-secret", time.Hour)
	require.NoError(t, err)
	s.jwtManager = jwtManager

	req := httptest.NewRequest("GET", "/plan", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr := httptest.NewRecorder()
	s.requireAuth(okHandler)(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAuthAcceptsValidAPIKey(t *testing.T) {
	s := newTestServer(t)
	s.apiKeyChecker = auth.NewStaticAPIKeyChecker("hmac-secret", "router_test_correct-key")

	req := httptest.NewRequest("GET", "/plan", nil)
	req.Header.Set("X-API-Key", "router_test_correct-key")
	rr := httptest.NewRecorder()
	s.requireAuth(okHandler)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireAuthRejectsWrongAPIKey(t *testing.T) {
	s := newTestServer(t)
	s.apiKeyChecker = auth.NewStaticAPIKeyChecker("hmac-secret", "correct-key")

	req := httptest.NewRequest("GET", "/plan", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	rr := httptest.NewRecorder()
	s.requireAuth(okHandler)(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAuthRejectsMissingCredentials(t *testing.T) {
	s := newTestServer(t)
	s.apiKeyChecker = auth.NewStaticAPIKeyChecker("hmac-secret", "correct-key")

	req := httptest.NewRequest("GET", "/plan", nil)
	rr := httptest.NewRecorder()
	s.requireAuth(okHandler)(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}
