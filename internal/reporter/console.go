package reporter

import (
	"fmt"
	"strings"

	"github.com/aleister1102/secaudit/internal/models"
	"github.com/fatih/color"
)

// severityColors maps severities to their console styling.
var severityColors = map[models.Severity]*color.Color{
	models.SeverityCritical: color.New(color.FgRed, color.Bold),
	models.SeverityHigh:     color.New(color.FgRed),
	models.SeverityMedium:   color.New(color.FgYellow),
	models.SeverityLow:      color.New(color.FgBlue),
	models.SeverityInfo:     color.New(color.FgCyan),
}

// ConsoleReporter renders a human-oriented report grouped by severity.
type ConsoleReporter struct {
	noColor bool
}

// NewConsoleReporter creates a console reporter; pass noColor for
// environments without ANSI support.
func NewConsoleReporter(noColor bool) *ConsoleReporter {
	return &ConsoleReporter{noColor: noColor}
}

// Generate implements Reporter.
func (r *ConsoleReporter) Generate(result *models.ScanResult) string {
	var b strings.Builder

	b.WriteString("Security Audit Report\n")
	b.WriteString("=====================\n\n")

	if len(result.Findings) == 0 {
		b.WriteString(r.colorize(models.SeverityInfo, "✓ No security issues found") + "\n")
		b.WriteString(fmt.Sprintf("\nScan completed in %dms\n", result.Duration))
		return b.String()
	}

	b.WriteString(r.summaryLine(result))
	b.WriteString("\n")

	for _, severity := range models.Severities() {
		findings := result.FindingsBySeverity(severity)
		if len(findings) == 0 {
			continue
		}

		label := fmt.Sprintf("%s (%d)", strings.ToUpper(string(severity)), len(findings))
		b.WriteString(r.colorize(severity, label) + "\n")

		for _, finding := range findings {
			b.WriteString(fmt.Sprintf("  %s  %s\n", r.colorize(severity, "●"), finding.Message))
			b.WriteString(fmt.Sprintf("     %s\n", finding.Location()))
			if finding.Code != "" {
				b.WriteString(fmt.Sprintf("     > %s\n", finding.Code))
			}
			if finding.Remediation != "" {
				b.WriteString(fmt.Sprintf("     fix: %s\n", finding.Remediation))
			}
			b.WriteString(fmt.Sprintf("     rule: %s, confidence: %s\n", finding.RuleID, finding.Confidence))
		}
		b.WriteString("\n")
	}

	if len(result.Errors) > 0 {
		b.WriteString(fmt.Sprintf("Scan errors (%d):\n", len(result.Errors)))
		for _, msg := range result.Errors {
			b.WriteString("  - " + msg + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Scan completed in %dms (%d file(s) with findings)\n", result.Duration, result.ScannedFiles))
	return b.String()
}

// summaryLine renders the per-severity counts on one line.
func (r *ConsoleReporter) summaryLine(result *models.ScanResult) string {
	parts := make([]string, 0, len(result.Summary.BySeverity))
	for _, severity := range models.Severities() {
		count := result.Summary.BySeverity[severity]
		if count == 0 {
			continue
		}
		parts = append(parts, r.colorize(severity, fmt.Sprintf("%d %s", count, severity)))
	}
	return fmt.Sprintf("%d finding(s): %s\n", result.Summary.Total, strings.Join(parts, ", "))
}

// colorize applies severity styling unless colors are disabled.
func (r *ConsoleReporter) colorize(severity models.Severity, text string) string {
	if r.noColor {
		return text
	}
	c, ok := severityColors[severity]
	if !ok {
		return text
	}
	return c.Sprint(text)
}
