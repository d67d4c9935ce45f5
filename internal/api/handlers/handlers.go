package handlers

import (
	"fraudshield/internal/config"
	"fraudshield/internal/domain/services"
	"fraudshield/internal/infrastructure/cache"
	"fraudshield/internal/infrastructure/database/repository"
	"fraudshield/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health  *HealthHandler
	Analyze *AnalyzeHandler
	History *HistoryHandler
	Stats   *StatsHandler
	Intel   *IntelHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Analyzer  *services.AnalyzerService
	Extractor services.TextExtractor
	Cache     *cache.RedisCache
	Repos     *repository.Repositories
	OCR       config.OCRConfig
	Logger    *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(deps.Cache, deps.Repos, deps.Logger),
		Analyze: NewAnalyzeHandler(deps.Analyzer, deps.Extractor, deps.OCR, deps.Logger),
		History: NewHistoryHandler(deps.Analyzer, deps.Logger),
		Stats:   NewStatsHandler(deps.Analyzer, deps.Logger),
		Intel:   NewIntelHandler(deps.Logger),
	}
}
