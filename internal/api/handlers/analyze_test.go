package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraudshield/internal/config"
	"fraudshield/internal/domain/models"
	"fraudshield/internal/domain/services"
	"fraudshield/pkg/logger"
)

type fakeExtractor struct {
	text string
}

func (e *fakeExtractor) ExtractText(ctx context.Context, image io.Reader) (string, error) {
	return e.text, nil
}

func testHandlers(extractor services.TextExtractor) *Handlers {
	log := logger.NewDefault()
	analyzer := services.NewAnalyzerService(nil, nil, nil,
		config.ScoringConfig{ThreatThreshold: 30, HighRiskThreshold: 70}, log)

	return NewHandlers(Dependencies{
		Analyzer:  analyzer,
		Extractor: extractor,
		OCR:       config.OCRConfig{MaxBytes: 1 << 20},
		Logger:    log,
	})
}

func TestAnalyzeContentEndpoint(t *testing.T) {
	h := testHandlers(nil)

	body := `{"text":"dear customer sbi kyc update is pending act immediately"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/content", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Analyze.Content(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.ContentAnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 95, resp.Score)
	assert.True(t, resp.IsThreat)
	assert.Equal(t, models.RiskLevelHighRisk, resp.RiskLevel)
	assert.NotEmpty(t, resp.Details.Message)
}

func TestAnalyzeContentEndpointValidation(t *testing.T) {
	h := testHandlers(nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing text", body: `{"device_id":"d1"}`},
		{name: "whitespace only", body: `{"text":"   "}`},
		{name: "malformed json", body: `{"text":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/content", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Analyze.Content(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAnalyzeLinkEndpoint(t *testing.T) {
	h := testHandlers(nil)

	body := `{"link":"http://google.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/link", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Analyze.Link(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LinkAnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 25, resp.Score)
	assert.False(t, resp.IsThreat)
	assert.Empty(t, resp.Details.Message)
	assert.NotEmpty(t, resp.Details.Link)
}

func TestAnalyzeLinkEndpointRequiresLink(t *testing.T) {
	h := testHandlers(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/link", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Analyze.Link(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeScreenshotEndpoint(t *testing.T) {
	h := testHandlers(&fakeExtractor{text: "account suspended"})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("screenshot", "scam.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/screenshot", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h.Analyze.Screenshot(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ScreenshotAnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 30, resp.Score)
	assert.Equal(t, "account suspended", resp.ExtractedText)
}

func TestAnalyzeScreenshotEndpointWithoutExtractor(t *testing.T) {
	h := testHandlers(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/screenshot", nil)
	rec := httptest.NewRecorder()

	h.Analyze.Screenshot(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAnalyzeScreenshotEndpointRequiresFile(t *testing.T) {
	h := testHandlers(&fakeExtractor{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("device_id", "d1"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/screenshot", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h.Analyze.Screenshot(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryEndpointRequiresDeviceID(t *testing.T) {
	h := testHandlers(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	rec := httptest.NewRecorder()

	h.History.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryEndpointWithoutDatabase(t *testing.T) {
	h := testHandlers(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?device_id=d1", nil)
	rec := httptest.NewRecorder()

	h.History.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		DeviceID string                  `json:"device_id"`
		Count    int                     `json:"count"`
		History  []models.AnalysisRecord `json:"history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "d1", resp.DeviceID)
	assert.Zero(t, resp.Count)
}

func TestHealthEndpoint(t *testing.T) {
	h := testHandlers(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health.Check(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestIntelStatsEndpoint(t *testing.T) {
	h := testHandlers(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/intel/stats", nil)
	rec := httptest.NewRecorder()

	h.Intel.Stats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.IntelStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Languages)
	assert.Greater(t, stats.Keywords, 100)
	assert.Greater(t, stats.CorpusEntries, 200)
	assert.Greater(t, stats.TrustedDomains, 100)
	assert.Greater(t, stats.BlockedDomains, 50)
}

func TestIntelPatternsEndpoint(t *testing.T) {
	h := testHandlers(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/intel/patterns", nil)
	rec := httptest.NewRecorder()

	h.Intel.Patterns(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, key := range []string{"languages", "suspicious_keywords", "trusted_domains", "entity_groups", "stats"} {
		assert.Contains(t, resp, key)
	}
}
