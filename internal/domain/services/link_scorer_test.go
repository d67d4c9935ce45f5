package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraudshield/internal/domain/models"
)

func TestLinkScorerTrustedDomains(t *testing.T) {
	s := NewLinkScorer()

	tests := []struct {
		name      string
		url       string
		wantScore int
	}{
		{
			name:      "trusted https",
			url:       "https://google.com",
			wantScore: 100,
		},
		{
			name:      "trusted without scheme assumes https",
			url:       "google.com",
			wantScore: 100,
		},
		{
			name:      "www prefix is stripped",
			url:       "https://www.google.com",
			wantScore: 100,
		},
		{
			name:      "trusted over plain http loses points",
			url:       "http://google.com",
			wantScore: 75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := s.Score(tt.url)
			assert.Equal(t, tt.wantScore, verdict.Score)
			require.NotEmpty(t, verdict.Findings)
			assert.Equal(t, models.SeveritySafe, verdict.Findings[0].Severity)
			assert.Contains(t, verdict.Findings[0].Text, "Trusted Domain")
		})
	}
}

func TestLinkScorerBlacklistedDomain(t *testing.T) {
	s := NewLinkScorer()

	verdict := s.Score("https://hdfcbank.security-access.net/login")

	assert.Equal(t, 0, verdict.Score)
	require.Len(t, verdict.Findings, 1)
	assert.True(t, verdict.Findings[0].Critical)
	assert.Equal(t, models.SeverityDanger, verdict.Findings[0].Severity)
	assert.Contains(t, verdict.Findings[0].Text, "known blacklist")
	assert.Equal(t, 100, verdict.Risk())
}

func TestLinkScorerIPLiteral(t *testing.T) {
	s := NewLinkScorer()

	verdict := s.Score("http://192.168.0.1/verify")

	assert.Equal(t, 0, verdict.Score)
	require.Len(t, verdict.Findings, 1)
	assert.True(t, verdict.Findings[0].Critical)
	assert.Contains(t, verdict.Findings[0].Text, "Direct IP Address")
}

func TestLinkScorerTyposquat(t *testing.T) {
	s := NewLinkScorer()

	verdict := s.Score("https://goog1e.com")

	assert.Equal(t, 40, verdict.Score)
	require.Len(t, verdict.Findings, 1)
	assert.True(t, verdict.Findings[0].Critical)
	assert.Contains(t, verdict.Findings[0].Text, "google.com")
}

func TestLinkScorerSuspiciousKeywords(t *testing.T) {
	s := NewLinkScorer()

	verdict := s.Score("https://absolutely-unrelated-secure-domain-name.xyz")

	assert.Equal(t, 85, verdict.Score)
	require.Len(t, verdict.Findings, 1)
	assert.Equal(t, models.SeverityWarning, verdict.Findings[0].Severity)
	assert.Contains(t, verdict.Findings[0].Text, `"secure"`)
}

func TestLinkScorerUnknownCleanDomain(t *testing.T) {
	s := NewLinkScorer()

	verdict := s.Score("https://absolutely-unrelated-zzqz.xyz")

	assert.Equal(t, 100, verdict.Score)
	assert.Empty(t, verdict.Findings)
}

func TestLinkScorerInvalidInput(t *testing.T) {
	s := NewLinkScorer()

	tests := []struct {
		name string
		url  string
	}{
		{name: "empty string", url: ""},
		{name: "scheme only", url: "https://"},
		{name: "spaces in host", url: "not a url at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := s.Score(tt.url)
			assert.Equal(t, 0, verdict.Score)
			require.Len(t, verdict.Findings, 1)
			assert.Equal(t, "Invalid or Malformed URL", verdict.Findings[0].Text)
			assert.Equal(t, models.SeverityDanger, verdict.Findings[0].Severity)
			assert.False(t, verdict.Findings[0].Critical)
		})
	}
}

func TestLinkScorerScoreBounds(t *testing.T) {
	s := NewLinkScorer()

	urls := []string{
		"https://google.com",
		"http://goog1e-login-secure-verify-update.com",
		"https://hdfcbank.security-access.net",
		"http://1.2.3.4",
		"",
		"random-text-without-dots",
	}

	for _, u := range urls {
		verdict := s.Score(u)
		assert.GreaterOrEqual(t, verdict.Score, 0, "url %q", u)
		assert.LessOrEqual(t, verdict.Score, 100, "url %q", u)

		// Scoring the same input twice must be deterministic.
		assert.Equal(t, verdict, s.Score(u), "url %q", u)
	}
}
