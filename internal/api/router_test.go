package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraudshield/internal/api/handlers"
	"fraudshield/internal/config"
	"fraudshield/internal/domain/services"
	"fraudshield/pkg/logger"
)

func testRouter(cfg config.Config) http.Handler {
	log := logger.NewDefault()
	analyzer := services.NewAnalyzerService(nil, nil, nil,
		config.ScoringConfig{ThreatThreshold: 30, HighRiskThreshold: 70}, log)
	h := handlers.NewHandlers(handlers.Dependencies{
		Analyzer: analyzer,
		Logger:   log,
	})
	return NewRouter(cfg, h, nil, log).Setup()
}

func TestRouterPublicEndpoints(t *testing.T) {
	router := testRouter(config.Config{})

	for _, path := range []string{"/health", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
	}
}

func TestRouterAnalyzeRoutes(t *testing.T) {
	router := testRouter(config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/link",
		strings.NewReader(`{"link":"https://google.com"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"score":0`)
}

func TestRouterAuthEnforced(t *testing.T) {
	cfg := config.Config{}
	cfg.Auth.Enabled = true
	cfg.Auth.APIKeys = []string{"topsecret"}
	router := testRouter(cfg)

	// Health stays public.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// API routes reject missing and wrong keys.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/analyze/link",
		strings.NewReader(`{"link":"https://google.com"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/analyze/link",
		strings.NewReader(`{"link":"https://google.com"}`))
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/analyze/link",
		strings.NewReader(`{"link":"https://google.com"}`))
	req.Header.Set("Authorization", "Bearer topsecret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterUnknownRoute(t *testing.T) {
	router := testRouter(config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nonsense", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
