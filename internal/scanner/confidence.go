package scanner

import (
	"strings"

	"github.com/aleister1102/secaudit/internal/models"
	"github.com/aleister1102/secaudit/internal/rules"
)

// deriveConfidence assigns a confidence level to a finding. Pure
// function of (rule, snippet, context): high-confidence rules are
// always high; matches inside test files or snippets that look like
// fixtures rank low; everything else is medium.
func deriveConfidence(rule rules.SecurityRule, snippet string, ctx models.ScanContext) models.Confidence {
	if rule.HasTag(rules.TagHighConfidence) {
		return models.ConfidenceHigh
	}
	if ctx.IsTest {
		return models.ConfidenceLow
	}
	lower := strings.ToLower(snippet)
	if strings.Contains(lower, "example") || strings.Contains(lower, "test") || strings.Contains(lower, "demo") {
		return models.ConfidenceLow
	}
	return models.ConfidenceMedium
}
