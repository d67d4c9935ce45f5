package handlers

import (
	"encoding/json"
	"net/http"

	"fraudshield/internal/domain/services"
	"fraudshield/pkg/logger"
)

// StatsHandler handles statistics endpoints
type StatsHandler struct {
	analyzer *services.AnalyzerService
	logger   *logger.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(analyzer *services.AnalyzerService, log *logger.Logger) *StatsHandler {
	return &StatsHandler{
		analyzer: analyzer,
		logger:   log.WithComponent("stats"),
	}
}

// Get handles GET /api/v1/stats
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyzer.Stats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch stats")
		http.Error(w, `{"error":"failed to fetch stats"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=60")
	json.NewEncoder(w).Encode(stats)
}
