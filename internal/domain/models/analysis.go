package models

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies a single analysis finding.
type Severity string

const (
	SeveritySafe    Severity = "safe"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Finding is one human-readable observation produced by a scorer. Critical
// findings always carry danger severity.
type Finding struct {
	Text     string   `json:"text"`
	Severity Severity `json:"type"`
	Critical bool     `json:"critical,omitempty"`
}

// LinkVerdict is the result of scoring a URL. Score is authenticity: 100 is
// fully trustworthy, 0 is confirmed malicious.
type LinkVerdict struct {
	Score    int       `json:"score"`
	Findings []Finding `json:"details"`
}

// Risk returns the link's risk as the inverse of its authenticity.
func (v LinkVerdict) Risk() int {
	return 100 - v.Score
}

// ContentFindings buckets content-analysis findings by origin: observations
// about the message text itself versus observations about an embedded link.
type ContentFindings struct {
	Message []Finding `json:"message"`
	Link    []Finding `json:"link"`
}

// ContentVerdict is the result of scoring message text. Score is threat:
// 0 is clean, 100 is maximum risk.
type ContentVerdict struct {
	Score   int             `json:"score"`
	Details ContentFindings `json:"details"`
}

// RiskLevel is a coarse classification derived from a risk score.
type RiskLevel string

const (
	RiskLevelSafe       RiskLevel = "safe"
	RiskLevelLikelySafe RiskLevel = "likely_safe"
	RiskLevelSuspicious RiskLevel = "suspicious"
	RiskLevelHighRisk   RiskLevel = "high_risk"
)

// RiskLevelForScore maps a 0-100 risk score onto a RiskLevel using the
// configured thresholds.
func RiskLevelForScore(score, threatThreshold, highRiskThreshold int) RiskLevel {
	switch {
	case score > highRiskThreshold:
		return RiskLevelHighRisk
	case score > threatThreshold:
		return RiskLevelSuspicious
	case score > 10:
		return RiskLevelLikelySafe
	default:
		return RiskLevelSafe
	}
}

// AnalysisType identifies what kind of input an analysis ran against.
type AnalysisType string

const (
	AnalysisTypeContent    AnalysisType = "content"
	AnalysisTypeLink       AnalysisType = "link"
	AnalysisTypeScreenshot AnalysisType = "screenshot"
)

// AnalysisRecord is one row of analysis history.
type AnalysisRecord struct {
	ID        uuid.UUID    `json:"id"`
	DeviceID  string       `json:"device_id"`
	Type      AnalysisType `json:"type"`
	Score     int          `json:"score"`
	IsThreat  bool         `json:"is_threat"`
	RiskLevel RiskLevel    `json:"risk_level"`
	CreatedAt time.Time    `json:"created_at"`
}

// AnalysisSummary aggregates a device's recent analysis activity.
type AnalysisSummary struct {
	DeviceID       string           `json:"device_id"`
	TotalScans     int              `json:"total_scans"`
	ThreatsBlocked int              `json:"threats_blocked"`
	LinksChecked   int              `json:"links_checked"`
	WeeklyActivity []DailyActivity  `json:"weekly_activity"`
	Recent         []AnalysisRecord `json:"recent"`
}

// DailyActivity is one day's scan volume for the weekly activity chart.
type DailyActivity struct {
	Day     time.Time `json:"day"`
	Scans   int       `json:"scans"`
	Threats int       `json:"threats"`
}

// ContentAnalysisRequest is the payload for POST /analyze/content.
type ContentAnalysisRequest struct {
	Text     string `json:"text"`
	DeviceID string `json:"device_id,omitempty"`
}

// ContentAnalysisResponse wraps a content verdict with its classification.
type ContentAnalysisResponse struct {
	ID        uuid.UUID       `json:"id"`
	Score     int             `json:"score"`
	IsThreat  bool            `json:"is_threat"`
	RiskLevel RiskLevel       `json:"risk_level"`
	Details   ContentFindings `json:"details"`
	AnalyzedAt time.Time      `json:"analyzed_at"`
}

// LinkAnalysisRequest is the payload for POST /analyze/link.
type LinkAnalysisRequest struct {
	Link     string `json:"link"`
	DeviceID string `json:"device_id,omitempty"`
}

// LinkAnalysisResponse reports a link's risk (inverse of authenticity) so
// that higher always means more dangerous, matching content responses.
type LinkAnalysisResponse struct {
	ID         uuid.UUID       `json:"id"`
	Score      int             `json:"score"`
	IsThreat   bool            `json:"is_threat"`
	RiskLevel  RiskLevel       `json:"risk_level"`
	Details    ContentFindings `json:"details"`
	AnalyzedAt time.Time       `json:"analyzed_at"`
}

// ScreenshotAnalysisResponse carries the verdict for text extracted from an
// uploaded image, plus the extracted text for client display.
type ScreenshotAnalysisResponse struct {
	ID            uuid.UUID       `json:"id"`
	Score         int             `json:"score"`
	IsThreat      bool            `json:"is_threat"`
	RiskLevel     RiskLevel       `json:"risk_level"`
	Details       ContentFindings `json:"details"`
	ExtractedText string          `json:"extracted_text,omitempty"`
	AnalyzedAt    time.Time       `json:"analyzed_at"`
}

// IntelStats describes the size of the loaded threat intelligence tables.
type IntelStats struct {
	Languages       int `json:"languages"`
	Categories      int `json:"categories"`
	Keywords        int `json:"keywords"`
	CorpusEntries   int `json:"corpus_entries"`
	TrustedDomains  int `json:"trusted_domains"`
	BlockedDomains  int `json:"blocked_domains"`
	EntityGroups    int `json:"entity_groups"`
}

// ServiceStats aggregates service-wide analysis counters.
type ServiceStats struct {
	TotalAnalyses   int64     `json:"total_analyses"`
	ThreatsDetected int64     `json:"threats_detected"`
	ContentScans    int64     `json:"content_scans"`
	LinkScans       int64     `json:"link_scans"`
	ScreenshotScans int64     `json:"screenshot_scans"`
	CollectedAt     time.Time `json:"collected_at"`
}
