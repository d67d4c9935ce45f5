package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"time"

	"github.com/google/uuid"

	"fraudshield/internal/config"
	"fraudshield/internal/domain/models"
	"fraudshield/internal/infrastructure/cache"
	"fraudshield/internal/infrastructure/database/repository"
	"fraudshield/internal/streaming"
	"fraudshield/pkg/logger"
)

// AlertPublisher receives high-risk alert events. Publishing happens after
// the verdict is computed and never influences it.
type AlertPublisher interface {
	PublishAlert(ctx context.Context, event *streaming.AlertEvent) error
}

// TextExtractor pulls text out of an uploaded image for screenshot analysis.
type TextExtractor interface {
	ExtractText(ctx context.Context, image io.Reader) (string, error)
}

// AnalyzerService orchestrates the scorers and the post-analysis bookkeeping:
// link-verdict caching, history persistence, aggregate counters, and
// high-risk alerting. Repos, cache, and publisher are all optional; the
// service degrades to pure scoring when they are absent.
type AnalyzerService struct {
	content   *ContentScorer
	links     *LinkScorer
	repos     *repository.Repositories
	cache     *cache.RedisCache
	publisher AlertPublisher
	scoring   config.ScoringConfig
	logger    *logger.Logger
}

// NewAnalyzerService creates a new AnalyzerService.
func NewAnalyzerService(
	repos *repository.Repositories,
	redisCache *cache.RedisCache,
	publisher AlertPublisher,
	scoring config.ScoringConfig,
	log *logger.Logger,
) *AnalyzerService {
	links := NewLinkScorer()
	return &AnalyzerService{
		content:   NewContentScorer(links),
		links:     links,
		repos:     repos,
		cache:     redisCache,
		publisher: publisher,
		scoring:   scoring,
		logger:    log.WithComponent("analyzer"),
	}
}

// AnalyzeContent scores message text and records the outcome.
func (s *AnalyzerService) AnalyzeContent(ctx context.Context, req *models.ContentAnalysisRequest) *models.ContentAnalysisResponse {
	verdict := s.content.Score(req.Text)

	resp := &models.ContentAnalysisResponse{
		ID:         uuid.New(),
		Score:      verdict.Score,
		IsThreat:   verdict.Score > s.scoring.ThreatThreshold,
		RiskLevel:  s.riskLevel(verdict.Score),
		Details:    verdict.Details,
		AnalyzedAt: time.Now().UTC(),
	}

	s.logger.Info().
		Str("analysis_id", resp.ID.String()).
		Int("score", resp.Score).
		Bool("threat", resp.IsThreat).
		Msg("content analyzed")

	s.finishAnalysis(resp.ID, req.DeviceID, models.AnalysisTypeContent, resp.Score, resp.IsThreat, resp.RiskLevel, resp.Details.Message)
	return resp
}

// AnalyzeLink scores a URL and records the outcome. The reported score is the
// link's risk, not its authenticity, so clients read all scores the same way.
func (s *AnalyzerService) AnalyzeLink(ctx context.Context, req *models.LinkAnalysisRequest) *models.LinkAnalysisResponse {
	verdict := s.scoreLinkCached(ctx, req.Link)
	risk := verdict.Risk()

	resp := &models.LinkAnalysisResponse{
		ID:        uuid.New(),
		Score:     risk,
		IsThreat:  risk > s.scoring.ThreatThreshold,
		RiskLevel: s.riskLevel(risk),
		Details: models.ContentFindings{
			Message: []models.Finding{},
			Link:    verdict.Findings,
		},
		AnalyzedAt: time.Now().UTC(),
	}

	s.logger.Info().
		Str("analysis_id", resp.ID.String()).
		Int("risk", risk).
		Bool("threat", resp.IsThreat).
		Msg("link analyzed")

	s.finishAnalysis(resp.ID, req.DeviceID, models.AnalysisTypeLink, risk, resp.IsThreat, resp.RiskLevel, verdict.Findings)
	return resp
}

// AnalyzeScreenshot extracts text from an uploaded image and scores it as
// content. An image with no readable text yields score 0 with a warning.
func (s *AnalyzerService) AnalyzeScreenshot(ctx context.Context, deviceID string, image io.Reader, extractor TextExtractor) (*models.ScreenshotAnalysisResponse, error) {
	text, err := extractor.ExtractText(ctx, image)
	if err != nil {
		return nil, err
	}

	if len(text) == 0 {
		return &models.ScreenshotAnalysisResponse{
			ID:        uuid.New(),
			Score:     0,
			RiskLevel: models.RiskLevelSafe,
			Details: models.ContentFindings{
				Message: []models.Finding{{Text: "Could not read any text from the image.", Severity: models.SeverityWarning}},
				Link:    []models.Finding{},
			},
			AnalyzedAt: time.Now().UTC(),
		}, nil
	}

	verdict := s.content.Score(text)
	resp := &models.ScreenshotAnalysisResponse{
		ID:            uuid.New(),
		Score:         verdict.Score,
		IsThreat:      verdict.Score > s.scoring.ThreatThreshold,
		RiskLevel:     s.riskLevel(verdict.Score),
		Details:       verdict.Details,
		ExtractedText: text,
		AnalyzedAt:    time.Now().UTC(),
	}

	s.logger.Info().
		Str("analysis_id", resp.ID.String()).
		Int("score", resp.Score).
		Bool("threat", resp.IsThreat).
		Msg("screenshot analyzed")

	s.finishAnalysis(resp.ID, deviceID, models.AnalysisTypeScreenshot, resp.Score, resp.IsThreat, resp.RiskLevel, resp.Details.Message)
	return resp, nil
}

// History returns a device's recent analyses.
func (s *AnalyzerService) History(ctx context.Context, deviceID string, limit int) ([]models.AnalysisRecord, error) {
	if s.repos == nil {
		return []models.AnalysisRecord{}, nil
	}
	return s.repos.History.ListByDevice(ctx, deviceID, limit)
}

// Summary returns a device's aggregated analysis activity.
func (s *AnalyzerService) Summary(ctx context.Context, deviceID string) (*models.AnalysisSummary, error) {
	if s.repos == nil {
		return &models.AnalysisSummary{DeviceID: deviceID, Recent: []models.AnalysisRecord{}}, nil
	}
	return s.repos.History.Summary(ctx, deviceID)
}

// Stats returns service-wide analysis counters.
func (s *AnalyzerService) Stats(ctx context.Context) (*models.ServiceStats, error) {
	if s.cache == nil {
		return &models.ServiceStats{CollectedAt: time.Now().UTC()}, nil
	}
	return s.cache.GetAnalysisCounters(ctx)
}

// scoreLinkCached consults the Redis verdict cache before scoring. Risky
// verdicts cache longer than clean ones so repeated hits on a campaign URL
// stay cheap.
func (s *AnalyzerService) scoreLinkCached(ctx context.Context, rawURL string) models.LinkVerdict {
	if s.cache == nil {
		return s.links.Score(rawURL)
	}

	key := linkCacheKey(rawURL)
	var cached models.LinkVerdict
	if err := s.cache.GetCachedLinkVerdict(ctx, key, &cached); err == nil {
		return cached
	}

	verdict := s.links.Score(rawURL)

	ttl := 5 * time.Minute
	if verdict.Risk() > s.scoring.ThreatThreshold {
		ttl = 1 * time.Hour
	}
	if err := s.cache.CacheLinkVerdict(ctx, key, verdict, ttl); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache link verdict")
	}
	return verdict
}

// finishAnalysis runs the post-verdict bookkeeping in the background so the
// response is never held up by storage or messaging.
func (s *AnalyzerService) finishAnalysis(id uuid.UUID, deviceID string, typ models.AnalysisType, score int, isThreat bool, level models.RiskLevel, findings []models.Finding) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if s.repos != nil {
			rec := &models.AnalysisRecord{
				ID:        id,
				DeviceID:  deviceID,
				Type:      typ,
				Score:     score,
				IsThreat:  isThreat,
				RiskLevel: level,
				CreatedAt: time.Now().UTC(),
			}
			if err := s.repos.History.Record(ctx, rec); err != nil {
				s.logger.Warn().Err(err).Str("analysis_id", id.String()).Msg("failed to record analysis")
			}
		}

		if s.cache != nil {
			if err := s.cache.BumpAnalysisCounters(ctx, typ, isThreat); err != nil {
				s.logger.Warn().Err(err).Msg("failed to bump analysis counters")
			}
		}

		if s.publisher != nil && score > s.scoring.HighRiskThreshold {
			event := streaming.NewAlertEvent(id, deviceID, typ, score, level, findings)
			if err := s.publisher.PublishAlert(ctx, event); err != nil {
				s.logger.Warn().Err(err).Str("analysis_id", id.String()).Msg("failed to publish high-risk alert")
			}
		}
	}()
}

func (s *AnalyzerService) riskLevel(score int) models.RiskLevel {
	return models.RiskLevelForScore(score, s.scoring.ThreatThreshold, s.scoring.HighRiskThreshold)
}

func linkCacheKey(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))
	return hex.EncodeToString(hash[:8])
}
