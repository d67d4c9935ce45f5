package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraudshield/internal/config"
	"fraudshield/internal/domain/models"
	"fraudshield/internal/streaming"
	"fraudshield/pkg/logger"
)

type capturePublisher struct {
	events chan *streaming.AlertEvent
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{events: make(chan *streaming.AlertEvent, 10)}
}

func (p *capturePublisher) PublishAlert(ctx context.Context, event *streaming.AlertEvent) error {
	p.events <- event
	return nil
}

type staticExtractor struct {
	text string
	err  error
}

func (e *staticExtractor) ExtractText(ctx context.Context, image io.Reader) (string, error) {
	return e.text, e.err
}

func testScoring() config.ScoringConfig {
	return config.ScoringConfig{ThreatThreshold: 30, HighRiskThreshold: 70}
}

func newTestAnalyzer(publisher AlertPublisher) *AnalyzerService {
	return NewAnalyzerService(nil, nil, publisher, testScoring(), logger.NewDefault())
}

func TestAnalyzeContentCleanMessage(t *testing.T) {
	svc := newTestAnalyzer(nil)

	resp := svc.AnalyzeContent(context.Background(), &models.ContentAnalysisRequest{
		Text: "see you at lunch tomorrow",
	})

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, 0, resp.Score)
	assert.False(t, resp.IsThreat)
	assert.Equal(t, models.RiskLevelSafe, resp.RiskLevel)
	assert.Empty(t, resp.Details.Message)
}

func TestAnalyzeContentThreatClassification(t *testing.T) {
	svc := newTestAnalyzer(nil)

	// Exactly at the threshold is not a threat; classification is strict.
	resp := svc.AnalyzeContent(context.Background(), &models.ContentAnalysisRequest{
		Text: "account suspended",
	})
	assert.Equal(t, 30, resp.Score)
	assert.False(t, resp.IsThreat)
	assert.Equal(t, models.RiskLevelLikelySafe, resp.RiskLevel)

	resp = svc.AnalyzeContent(context.Background(), &models.ContentAnalysisRequest{
		Text: "dear customer sbi kyc update is pending act immediately",
	})
	assert.Equal(t, 95, resp.Score)
	assert.True(t, resp.IsThreat)
	assert.Equal(t, models.RiskLevelHighRisk, resp.RiskLevel)
}

func TestAnalyzeLinkReportsRisk(t *testing.T) {
	svc := newTestAnalyzer(nil)

	resp := svc.AnalyzeLink(context.Background(), &models.LinkAnalysisRequest{
		Link: "http://google.com",
	})

	// Authenticity 75 inverts to risk 25.
	assert.Equal(t, 25, resp.Score)
	assert.False(t, resp.IsThreat)
	assert.Equal(t, models.RiskLevelLikelySafe, resp.RiskLevel)
	assert.Empty(t, resp.Details.Message)
	assert.NotEmpty(t, resp.Details.Link)
}

func TestAnalyzeLinkBlacklisted(t *testing.T) {
	svc := newTestAnalyzer(nil)

	resp := svc.AnalyzeLink(context.Background(), &models.LinkAnalysisRequest{
		Link: "https://malicious-site.net",
	})

	assert.Equal(t, 100, resp.Score)
	assert.True(t, resp.IsThreat)
	assert.Equal(t, models.RiskLevelHighRisk, resp.RiskLevel)
}

func TestHighRiskAnalysisPublishesAlert(t *testing.T) {
	publisher := newCapturePublisher()
	svc := newTestAnalyzer(publisher)

	resp := svc.AnalyzeLink(context.Background(), &models.LinkAnalysisRequest{
		Link:     "https://malicious-site.net",
		DeviceID: "device-7",
	})
	require.True(t, resp.IsThreat)

	select {
	case event := <-publisher.events:
		assert.Equal(t, resp.ID, event.AnalysisID)
		assert.Equal(t, "device-7", event.DeviceID)
		assert.Equal(t, models.AnalysisTypeLink, event.Type)
		assert.Equal(t, 100, event.Score)
		assert.Equal(t, models.RiskLevelHighRisk, event.RiskLevel)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a high-risk alert")
	}
}

func TestLowRiskAnalysisDoesNotPublish(t *testing.T) {
	publisher := newCapturePublisher()
	svc := newTestAnalyzer(publisher)

	svc.AnalyzeContent(context.Background(), &models.ContentAnalysisRequest{
		Text: "see you at lunch tomorrow",
	})

	select {
	case <-publisher.events:
		t.Fatal("clean content must not raise an alert")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestAnalyzeScreenshot(t *testing.T) {
	svc := newTestAnalyzer(nil)

	resp, err := svc.AnalyzeScreenshot(context.Background(), "", strings.NewReader("img"),
		&staticExtractor{text: "account suspended"})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.Score)
	assert.Equal(t, "account suspended", resp.ExtractedText)
	require.NotEmpty(t, resp.Details.Message)
	assert.Equal(t, "Phishing Detected", resp.Details.Message[0].Text)
}

func TestAnalyzeScreenshotNoText(t *testing.T) {
	svc := newTestAnalyzer(nil)

	resp, err := svc.AnalyzeScreenshot(context.Background(), "", strings.NewReader("img"),
		&staticExtractor{text: ""})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Score)
	assert.False(t, resp.IsThreat)
	require.Len(t, resp.Details.Message, 1)
	assert.Equal(t, "Could not read any text from the image.", resp.Details.Message[0].Text)
	assert.Equal(t, models.SeverityWarning, resp.Details.Message[0].Severity)
}

func TestAnalyzeScreenshotExtractionFailure(t *testing.T) {
	svc := newTestAnalyzer(nil)

	_, err := svc.AnalyzeScreenshot(context.Background(), "", strings.NewReader("img"),
		&staticExtractor{err: errors.New("ocr exploded")})
	assert.Error(t, err)
}

func TestHistoryWithoutDatabase(t *testing.T) {
	svc := newTestAnalyzer(nil)

	records, err := svc.History(context.Background(), "device-1", 10)
	require.NoError(t, err)
	assert.Empty(t, records)

	summary, err := svc.Summary(context.Background(), "device-1")
	require.NoError(t, err)
	assert.Equal(t, "device-1", summary.DeviceID)
	assert.Zero(t, summary.TotalScans)
}
