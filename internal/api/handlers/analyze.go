package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"fraudshield/internal/config"
	"fraudshield/internal/domain/models"
	"fraudshield/internal/domain/services"
	"fraudshield/pkg/logger"
)

// AnalyzeHandler handles the analysis endpoints
type AnalyzeHandler struct {
	analyzer  *services.AnalyzerService
	extractor services.TextExtractor
	ocr       config.OCRConfig
	logger    *logger.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler
func NewAnalyzeHandler(analyzer *services.AnalyzerService, extractor services.TextExtractor, ocr config.OCRConfig, log *logger.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:  analyzer,
		extractor: extractor,
		ocr:       ocr,
		logger:    log.WithComponent("analyze-handler"),
	}
}

// Content handles POST /api/v1/analyze/content
func (h *AnalyzeHandler) Content(w http.ResponseWriter, r *http.Request) {
	var req models.ContentAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, `{"error":"text is required"}`, http.StatusBadRequest)
		return
	}

	result := h.analyzer.AnalyzeContent(r.Context(), &req)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Link handles POST /api/v1/analyze/link
func (h *AnalyzeHandler) Link(w http.ResponseWriter, r *http.Request) {
	var req models.LinkAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Link) == "" {
		http.Error(w, `{"error":"link is required"}`, http.StatusBadRequest)
		return
	}

	result := h.analyzer.AnalyzeLink(r.Context(), &req)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Screenshot handles POST /api/v1/analyze/screenshot - multipart upload with
// a "screenshot" file field, OCR'd and scored as content.
func (h *AnalyzeHandler) Screenshot(w http.ResponseWriter, r *http.Request) {
	if h.extractor == nil {
		http.Error(w, `{"error":"screenshot analysis is not available"}`, http.StatusServiceUnavailable)
		return
	}

	maxBytes := h.ocr.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	file, _, err := r.FormFile("screenshot")
	if err != nil {
		http.Error(w, `{"error":"screenshot file is required"}`, http.StatusBadRequest)
		return
	}
	defer file.Close()

	deviceID := r.FormValue("device_id")

	result, err := h.analyzer.AnalyzeScreenshot(r.Context(), deviceID, file, h.extractor)
	if err != nil {
		h.logger.Error().Err(err).Msg("screenshot analysis failed")
		http.Error(w, `{"error":"error processing the screenshot"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
