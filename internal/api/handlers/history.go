package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fraudshield/internal/domain/services"
	"fraudshield/pkg/logger"
)

// HistoryHandler handles per-device analysis history endpoints
type HistoryHandler struct {
	analyzer *services.AnalyzerService
	logger   *logger.Logger
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(analyzer *services.AnalyzerService, log *logger.Logger) *HistoryHandler {
	return &HistoryHandler{
		analyzer: analyzer,
		logger:   log.WithComponent("history-handler"),
	}
}

// List handles GET /api/v1/history?device_id=...&limit=...
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")
	if deviceID == "" {
		http.Error(w, `{"error":"device_id is required"}`, http.StatusBadRequest)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, `{"error":"invalid limit"}`, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := h.analyzer.History(r.Context(), deviceID, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("device_id", deviceID).Msg("failed to fetch history")
		http.Error(w, `{"error":"failed to fetch history"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"device_id": deviceID,
		"count":     len(records),
		"history":   records,
	})
}

// Summary handles GET /api/v1/history/summary?device_id=...
func (h *HistoryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")
	if deviceID == "" {
		http.Error(w, `{"error":"device_id is required"}`, http.StatusBadRequest)
		return
	}

	summary, err := h.analyzer.Summary(r.Context(), deviceID)
	if err != nil {
		h.logger.Error().Err(err).Str("device_id", deviceID).Msg("failed to fetch summary")
		http.Error(w, `{"error":"failed to fetch summary"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
