package reporter

import (
	"fmt"
	"strings"

	"github.com/aleister1102/secaudit/internal/models"
)

// MarkdownReporter renders a report suitable for pasting into an issue
// or pull request comment.
type MarkdownReporter struct{}

// Generate implements Reporter.
func (r *MarkdownReporter) Generate(result *models.ScanResult) string {
	var b strings.Builder

	b.WriteString("# Security Audit Report\n\n")

	b.WriteString("## Summary\n\n")
	b.WriteString("| Severity | Count |\n")
	b.WriteString("|----------|-------|\n")
	for _, severity := range models.Severities() {
		b.WriteString(fmt.Sprintf("| %s | %d |\n", titleCase(string(severity)), result.Summary.BySeverity[severity]))
	}
	b.WriteString(fmt.Sprintf("| **Total** | **%d** |\n\n", result.Summary.Total))

	if len(result.Findings) == 0 {
		b.WriteString("No security issues found. ✓\n\n")
	}

	for _, severity := range models.Severities() {
		findings := result.FindingsBySeverity(severity)
		if len(findings) == 0 {
			continue
		}

		b.WriteString(fmt.Sprintf("## %s (%d)\n\n", titleCase(string(severity)), len(findings)))
		for _, finding := range findings {
			b.WriteString(fmt.Sprintf("### %s - %s\n\n", finding.RuleID, finding.Message))
			b.WriteString(fmt.Sprintf("- **File**: `%s`\n", finding.Location()))
			if finding.Code != "" {
				b.WriteString(fmt.Sprintf("- **Code**: `%s`\n", finding.Code))
			}
			b.WriteString(fmt.Sprintf("- **Confidence**: %s\n", finding.Confidence))
			if finding.Remediation != "" {
				b.WriteString(fmt.Sprintf("- **Remediation**: %s\n", finding.Remediation))
			}
			b.WriteString("\n")
		}
	}

	if len(result.Errors) > 0 {
		b.WriteString(fmt.Sprintf("## Scan Errors (%d)\n\n", len(result.Errors)))
		for _, msg := range result.Errors {
			b.WriteString("- " + msg + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Recommendations\n\n")
	b.WriteString("1. Address critical and high severity findings before merging.\n")
	b.WriteString("2. Review medium severity findings and suppress confirmed false positives with a documented reason.\n")
	b.WriteString("3. Rotate any credential that appears in a finding, even if the finding is suppressed.\n")
	b.WriteString(fmt.Sprintf("\n---\n*Scan completed in %dms across %d file(s) with findings.*\n", result.Duration, result.ScannedFiles))

	return b.String()
}

// titleCase capitalizes the first letter of a severity name.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
