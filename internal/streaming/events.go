package streaming

import (
	"time"

	"github.com/google/uuid"

	"fraudshield/internal/domain/models"
)

// AlertEvent is emitted when an analysis crosses the high-risk threshold.
// Consumers (notification workers, dashboards) subscribe to these to warn
// the affected device's owner.
type AlertEvent struct {
	ID         uuid.UUID           `json:"id"`
	AnalysisID uuid.UUID           `json:"analysis_id"`
	DeviceID   string              `json:"device_id,omitempty"`
	Type       models.AnalysisType `json:"type"`
	Score      int                 `json:"score"`
	RiskLevel  models.RiskLevel    `json:"risk_level"`
	Findings   []string            `json:"findings,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// NewAlertEvent builds an AlertEvent from an analysis outcome. Findings are
// flattened to their display text; the full verdict stays with the analysis
// record.
func NewAlertEvent(analysisID uuid.UUID, deviceID string, typ models.AnalysisType, score int, level models.RiskLevel, findings []models.Finding) *AlertEvent {
	texts := make([]string, 0, len(findings))
	for _, f := range findings {
		texts = append(texts, f.Text)
	}
	return &AlertEvent{
		ID:         uuid.New(),
		AnalysisID: analysisID,
		DeviceID:   deviceID,
		Type:       typ,
		Score:      score,
		RiskLevel:  level,
		Findings:   texts,
		CreatedAt:  time.Now().UTC(),
	}
}
