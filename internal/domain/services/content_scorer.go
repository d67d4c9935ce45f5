package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"fraudshield/internal/domain/models"
	"fraudshield/internal/intel"
)

// embeddedURLPattern finds URLs in free text, with or without a scheme.
// Only the first match participates in scoring.
var embeddedURLPattern = regexp.MustCompile(`(https?://[^\s]+|[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}(/[^\s]*)?)`)

// ContentScorer rates message text for scam risk using the keyword lexicon,
// the known-spam corpus, the entity lists, and link analysis of the first
// embedded URL. It is stateless and safe for concurrent use.
type ContentScorer struct {
	links *LinkScorer
}

// NewContentScorer creates a new ContentScorer delegating link checks to the
// given LinkScorer.
func NewContentScorer(links *LinkScorer) *ContentScorer {
	return &ContentScorer{links: links}
}

// Score rates message text on a 0-100 threat scale, 0 being clean. Empty or
// whitespace-only input scores 0 with no findings. An exact corpus match
// short-circuits to 100 before any keyword evaluation.
func (s *ContentScorer) Score(text string) models.ContentVerdict {
	details := models.ContentFindings{Message: []models.Finding{}, Link: []models.Finding{}}

	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return models.ContentVerdict{Score: 0, Details: details}
	}

	if intel.IsKnownSpam(normalized) {
		details.Message = append(details.Message, models.Finding{
			Text:     "This is an exact match to a known spam message in our database.",
			Severity: models.SeverityDanger,
			Critical: true,
		})
		return models.ContentVerdict{Score: 100, Details: details}
	}

	score := 0

	// Each language/category pair contributes its weight at most once, no
	// matter how many of its keywords appear. Categories sharing a name
	// across languages stack their weights but report a single finding.
	var triggered []string
	triggeredSet := make(map[string]bool)
	for _, lang := range intel.Lexicon() {
		for _, cat := range lang.Categories {
			for _, kw := range cat.Keywords {
				if strings.Contains(normalized, kw) {
					score += cat.Weight
					if !triggeredSet[cat.Name] {
						triggeredSet[cat.Name] = true
						triggered = append(triggered, cat.Name)
					}
					break
				}
			}
		}
	}

	for _, name := range triggered {
		details.Message = append(details.Message, models.Finding{
			Text:     categoryLabel(name) + " Detected",
			Severity: models.SeverityDanger,
		})
	}

	// Impersonated-entity mentions. The first two distinct hits are named;
	// combined with a financial category they mark the classic high-pressure
	// impersonation tactic.
	var foundEntities []string
	entitySet := make(map[string]bool)
	for _, group := range intel.EntityGroups() {
		for _, entity := range group.Entities {
			if strings.Contains(normalized, entity) && !entitySet[entity] {
				entitySet[entity] = true
				foundEntities = append(foundEntities, entity)
			}
		}
	}
	if len(foundEntities) > 0 {
		listed := foundEntities
		if len(listed) > 2 {
			listed = listed[:2]
		}
		details.Message = append(details.Message, models.Finding{
			Text:     "Known Entities Mentioned: " + strings.Join(listed, ", "),
			Severity: models.SeverityWarning,
		})
		if triggeredSet["financialScam"] || triggeredSet["phishing"] {
			score += 25
			details.Message = append(details.Message, models.Finding{
				Text:     "Critical Tactic: Known Entity + Financial Threat",
				Severity: models.SeverityDanger,
				Critical: true,
			})
		}
	}

	// Link extraction runs on the original text; normalization could mangle
	// case-sensitive URL paths.
	if embedded := embeddedURLPattern.FindString(text); embedded != "" {
		linkVerdict := s.links.Score(embedded)
		details.Link = linkVerdict.Findings

		linkRisk := 100 - linkVerdict.Score
		score += linkRisk
		if linkRisk > 50 {
			details.Message = append(details.Message, models.Finding{
				Text:     fmt.Sprintf("High-Risk Link Included (%d%% Risk)", linkRisk),
				Severity: models.SeverityDanger,
				Critical: true,
			})
		}
	}

	if score > 100 {
		score = 100
	}
	return models.ContentVerdict{Score: score, Details: details}
}

// categoryLabel turns a camel-cased category name into a display label:
// "financialScam" becomes "Financial Scam".
func categoryLabel(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	label := b.String()
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
