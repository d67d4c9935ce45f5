package handlers

import (
	"encoding/json"
	"net/http"

	"fraudshield/internal/domain/models"
	"fraudshield/internal/intel"
	"fraudshield/pkg/logger"
)

// IntelHandler exposes the loaded threat intelligence tables
type IntelHandler struct {
	logger *logger.Logger
}

// NewIntelHandler creates a new IntelHandler
func NewIntelHandler(log *logger.Logger) *IntelHandler {
	return &IntelHandler{
		logger: log.WithComponent("intel-handler"),
	}
}

// languagePatterns summarizes one language's lexicon for the patterns endpoint.
type languagePatterns struct {
	Language   string            `json:"language"`
	Categories []categorySummary `json:"categories"`
}

type categorySummary struct {
	Name     string `json:"name"`
	Weight   int    `json:"weight"`
	Keywords int    `json:"keywords"`
}

// Patterns handles GET /api/v1/intel/patterns - the detection tables the
// scorers run on, without the raw keyword lists.
func (h *IntelHandler) Patterns(w http.ResponseWriter, r *http.Request) {
	lexicon := intel.Lexicon()
	languages := make([]languagePatterns, 0, len(lexicon))
	for _, lang := range lexicon {
		categories := make([]categorySummary, 0, len(lang.Categories))
		for _, cat := range lang.Categories {
			categories = append(categories, categorySummary{
				Name:     cat.Name,
				Weight:   cat.Weight,
				Keywords: len(cat.Keywords),
			})
		}
		languages = append(languages, languagePatterns{
			Language:   lang.Language,
			Categories: categories,
		})
	}

	groups := intel.EntityGroups()
	entityGroups := make([]map[string]interface{}, 0, len(groups))
	for _, g := range groups {
		entityGroups = append(entityGroups, map[string]interface{}{
			"name":     g.Name,
			"entities": g.Entities,
		})
	}

	response := map[string]interface{}{
		"languages":           languages,
		"suspicious_keywords": intel.SuspiciousDomainKeywords(),
		"trusted_domains":     intel.TrustedDomains(),
		"entity_groups":       entityGroups,
		"stats":               h.stats(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	json.NewEncoder(w).Encode(response)
}

// Stats handles GET /api/v1/intel/stats
func (h *IntelHandler) Stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	json.NewEncoder(w).Encode(h.stats())
}

func (h *IntelHandler) stats() models.IntelStats {
	trusted, blocked := intel.RegistrySize()

	stats := models.IntelStats{
		Languages:      len(intel.Lexicon()),
		CorpusEntries:  intel.CorpusSize(),
		TrustedDomains: trusted,
		BlockedDomains: blocked,
		EntityGroups:   len(intel.EntityGroups()),
	}
	for _, lang := range intel.Lexicon() {
		stats.Categories += len(lang.Categories)
		for _, cat := range lang.Categories {
			stats.Keywords += len(cat.Keywords)
		}
	}
	return stats
}
