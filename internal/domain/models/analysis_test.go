package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevelForScore(t *testing.T) {
	tests := []struct {
		score    int
		expected RiskLevel
	}{
		{0, RiskLevelSafe},
		{10, RiskLevelSafe},
		{11, RiskLevelLikelySafe},
		{30, RiskLevelLikelySafe},
		{31, RiskLevelSuspicious},
		{70, RiskLevelSuspicious},
		{71, RiskLevelHighRisk},
		{100, RiskLevelHighRisk},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RiskLevelForScore(tt.score, 30, 70), "score %d", tt.score)
	}
}

func TestLinkVerdictRisk(t *testing.T) {
	assert.Equal(t, 0, LinkVerdict{Score: 100}.Risk())
	assert.Equal(t, 100, LinkVerdict{Score: 0}.Risk())
	assert.Equal(t, 25, LinkVerdict{Score: 75}.Risk())
}
