package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraudshield/internal/domain/models"
)

func newContentScorer() *ContentScorer {
	return NewContentScorer(NewLinkScorer())
}

func TestContentScorerEmptyInput(t *testing.T) {
	s := newContentScorer()

	for _, text := range []string{"", "   ", "\n\t"} {
		verdict := s.Score(text)
		assert.Equal(t, 0, verdict.Score)
		assert.Empty(t, verdict.Details.Message)
		assert.Empty(t, verdict.Details.Link)
	}
}

func TestContentScorerKnownSpamExactMatch(t *testing.T) {
	s := newContentScorer()

	// Matching is case-insensitive and ignores surrounding whitespace.
	text := "  PayTM Alert: We detected login from new device. Confirm your account now  "
	verdict := s.Score(text)

	assert.Equal(t, 100, verdict.Score)
	require.Len(t, verdict.Details.Message, 1)
	assert.True(t, verdict.Details.Message[0].Critical)
	assert.Contains(t, verdict.Details.Message[0].Text, "known spam message")
	assert.Empty(t, verdict.Details.Link)
}

func TestContentScorerSingleCategory(t *testing.T) {
	s := newContentScorer()

	verdict := s.Score("account suspended")

	assert.Equal(t, 30, verdict.Score)
	require.Len(t, verdict.Details.Message, 1)
	assert.Equal(t, "Phishing Detected", verdict.Details.Message[0].Text)
	assert.Equal(t, models.SeverityDanger, verdict.Details.Message[0].Severity)
}

func TestContentScorerEntityPlusFinancialThreat(t *testing.T) {
	s := newContentScorer()

	verdict := s.Score("dear customer sbi kyc update is pending act immediately")

	// financialScam (35) + urgency (15) + genericGreeting in both english and
	// hinglish (10+10) + entity/financial combination bonus (25).
	assert.Equal(t, 95, verdict.Score)

	texts := make([]string, 0, len(verdict.Details.Message))
	for _, f := range verdict.Details.Message {
		texts = append(texts, f.Text)
	}
	assert.Equal(t, []string{
		"Financial Scam Detected",
		"Urgency Detected",
		"Generic Greeting Detected",
		"Known Entities Mentioned: sbi",
		"Critical Tactic: Known Entity + Financial Threat",
	}, texts)

	last := verdict.Details.Message[len(verdict.Details.Message)-1]
	assert.True(t, last.Critical)
}

func TestContentScorerCategoryTriggersOnce(t *testing.T) {
	s := newContentScorer()

	// Two phishing keywords still count the category a single time.
	verdict := s.Score("account suspended unusual activity")

	assert.Equal(t, 30, verdict.Score)
	require.Len(t, verdict.Details.Message, 1)
	assert.Equal(t, "Phishing Detected", verdict.Details.Message[0].Text)
}

func TestContentScorerEmbeddedBlacklistedLink(t *testing.T) {
	s := newContentScorer()

	verdict := s.Score("see http://malicious-site.net for more")

	assert.Equal(t, 100, verdict.Score)

	require.Len(t, verdict.Details.Message, 1)
	assert.Equal(t, "High-Risk Link Included (100% Risk)", verdict.Details.Message[0].Text)
	assert.True(t, verdict.Details.Message[0].Critical)

	require.Len(t, verdict.Details.Link, 1)
	assert.True(t, verdict.Details.Link[0].Critical)
	assert.Contains(t, verdict.Details.Link[0].Text, "known blacklist")
}

func TestContentScorerEntityInsideLinkHostname(t *testing.T) {
	s := newContentScorer()

	// The entity scan runs over the whole message, URL included, so a bank
	// name embedded in a phishing hostname surfaces as a mention.
	verdict := s.Score("see http://hdfcbank.security-access.net for more")

	assert.Equal(t, 100, verdict.Score)

	texts := make([]string, 0, len(verdict.Details.Message))
	for _, f := range verdict.Details.Message {
		texts = append(texts, f.Text)
	}
	assert.Contains(t, texts, "Known Entities Mentioned: hdfc")
	assert.Contains(t, texts, "High-Risk Link Included (100% Risk)")
}

func TestContentScorerTrustedLinkAddsNoRisk(t *testing.T) {
	s := newContentScorer()

	verdict := s.Score("meeting notes are at https://google.com")

	assert.Equal(t, 0, verdict.Score)
	assert.Empty(t, verdict.Details.Message)
	require.Len(t, verdict.Details.Link, 1)
	assert.Equal(t, models.SeveritySafe, verdict.Details.Link[0].Severity)
}

func TestContentScorerScoreBounds(t *testing.T) {
	s := newContentScorer()

	texts := []string{
		"account suspended kyc update you have won delivery failed work from home" +
			" microsoft support your invoice is attached i have your video send bitcoin",
		"hello there",
		"dear customer sbi kyc update is pending act immediately http://hdfcbank.security-access.net",
	}

	for _, text := range texts {
		verdict := s.Score(text)
		assert.GreaterOrEqual(t, verdict.Score, 0)
		assert.LessOrEqual(t, verdict.Score, 100)
		assert.Equal(t, verdict, s.Score(text))
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{name: "financialScam", expected: "Financial Scam"},
		{name: "phishing", expected: "Phishing"},
		{name: "blackmailExtortion", expected: "Blackmail Extortion"},
		{name: "urgency", expected: "Urgency"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, categoryLabel(tt.name))
	}
}
