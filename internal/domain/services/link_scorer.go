package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"fraudshield/internal/domain/models"
	"fraudshield/internal/intel"
)

// ipLiteralPattern flags hostnames that look like raw IPv4 addresses. The
// check is syntactic only; no octet range validation.
var ipLiteralPattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// LinkScorer evaluates URL authenticity against the domain registry. It is
// stateless and safe for concurrent use.
type LinkScorer struct{}

// NewLinkScorer creates a new LinkScorer.
func NewLinkScorer() *LinkScorer {
	return &LinkScorer{}
}

// Score rates how trustworthy a URL is on a 0-100 scale, 100 being fully
// authentic. Inputs without a scheme are assumed HTTPS. Scoring never fails:
// a URL that cannot be parsed yields score 0 with a single danger finding.
func (s *LinkScorer) Score(rawURL string) models.LinkVerdict {
	if !strings.HasPrefix(rawURL, "http") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return models.LinkVerdict{
			Score:    0,
			Findings: []models.Finding{{Text: "Invalid or Malformed URL", Severity: models.SeverityDanger}},
		}
	}

	hostname := strings.ToLower(u.Hostname())
	hostname = strings.TrimPrefix(hostname, "www.")

	// Start from a perfect score and deduct for red flags.
	score := 100
	findings := []models.Finding{}

	// Blacklisted domains fail outright.
	if intel.IsBlacklisted(hostname) {
		findings = append(findings, models.Finding{
			Text:     fmt.Sprintf("High-Risk Domain: This domain (%s) is on a known blacklist of malicious sites.", hostname),
			Severity: models.SeverityDanger,
			Critical: true,
		})
		return models.LinkVerdict{Score: 0, Findings: findings}
	}

	// Raw IP links are treated as hostile regardless of anything else.
	if ipLiteralPattern.MatchString(hostname) {
		findings = append(findings, models.Finding{
			Text:     "Direct IP Address Link: Highly suspicious, legitimate sites rarely use direct IPs.",
			Severity: models.SeverityDanger,
			Critical: true,
		})
		return models.LinkVerdict{Score: 0, Findings: findings}
	}

	if intel.IsTrusted(hostname) {
		findings = append(findings, models.Finding{
			Text:     fmt.Sprintf("Trusted Domain: Verified as an official domain (%s).", hostname),
			Severity: models.SeveritySafe,
		})
	} else {
		// Typosquat check: does the first label resemble the first label of
		// a trusted domain? Hyphens are stripped so "pay-pal" matches "paypal".
		domainRoot := strings.ReplaceAll(firstLabel(hostname), "-", "")
		for _, official := range intel.TrustedDomains() {
			officialRoot := firstLabel(official)
			lengthGap := len(domainRoot) - len(officialRoot)
			if lengthGap < 0 {
				lengthGap = -lengthGap
			}
			prefixLen := len(officialRoot)
			if prefixLen > 4 {
				prefixLen = 4
			}
			if lengthGap <= 2 && strings.Contains(domainRoot, officialRoot[:prefixLen]) {
				score -= 60
				findings = append(findings, models.Finding{
					Text:     fmt.Sprintf("Potential Typosquatting: This domain looks suspiciously similar to the official %q.", official),
					Severity: models.SeverityDanger,
					Critical: true,
				})
				break
			}
		}
	}

	// Suspicious keywords anywhere in the hostname, 15 points each.
	var foundKeywords []string
	for _, kw := range intel.SuspiciousDomainKeywords() {
		if strings.Contains(hostname, kw) {
			foundKeywords = append(foundKeywords, kw)
		}
	}
	if len(foundKeywords) > 0 {
		score -= 15 * len(foundKeywords)
		findings = append(findings, models.Finding{
			Text:     fmt.Sprintf("Suspicious Keywords in Domain: Contains words like %q.", strings.Join(foundKeywords, ", ")),
			Severity: models.SeverityWarning,
		})
	}

	if u.Scheme != "https" {
		score -= 25
		findings = append(findings, models.Finding{
			Text:     "Insecure Connection (No HTTPS): Data sent to this site is not encrypted.",
			Severity: models.SeverityDanger,
		})
	}

	return models.LinkVerdict{Score: clampScore(score), Findings: findings}
}

// firstLabel returns the hostname portion before the first dot.
func firstLabel(hostname string) string {
	if i := strings.IndexByte(hostname, '.'); i >= 0 {
		return hostname[:i]
	}
	return hostname
}

// clampScore clamps a score into [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
