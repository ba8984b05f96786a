package rules

import (
	"regexp"
	"strings"

	"github.com/aleister1102/secaudit/internal/models"
)

// dmcpRules is the application-specific set for the content-management
// server this engine ships inside: persona and element documents are
// user-supplied YAML/Markdown, so loader and rendering hygiene matters
// more than in a generic codebase.
var dmcpRules = []SecurityRule{
	{
		ID:          "DMCP-SEC-001",
		Name:        "Unrestricted YAML Load",
		Description: "yaml.load called without a restrictive schema on user-controlled documents",
		Severity:    models.SeverityHigh,
		Detection: check(func(content string, ctx models.ScanContext) []models.SecurityFinding {
			return findingsOnLines(content,
				"yaml.load without FAILSAFE_SCHEMA or JSON_SCHEMA",
				func(line string) bool {
					return strings.Contains(line, "yaml.load(") &&
						!containsAny(line, "failsafe_schema", "json_schema", "safeload")
				})
		}),
		Remediation: "Load untrusted YAML with FAILSAFE_SCHEMA or JSON_SCHEMA to disable custom type coercion",
	},
	{
		ID:          "DMCP-SEC-002",
		Name:        "Unsanitized Content Rendering",
		Description: "Element content rendered through innerHTML or dangerouslySetInnerHTML",
		Severity:    models.SeverityMedium,
		Detection: pattern(regexp.MustCompile(
			`dangerouslySetInnerHTML|\.innerHTML\s*=`)),
		Remediation: "Sanitize user-supplied content before rendering, or render as text",
	},
	{
		ID:          "DMCP-SEC-003",
		Name:        "Token In Local Storage",
		Description: "Authentication material written to browser localStorage",
		Severity:    models.SeverityHigh,
		Detection: pattern(regexp.MustCompile(
			`(?i)localStorage\.setItem\s*\(\s*['"][^'"]*(?:token|secret|key|credential)`)),
		Remediation: "Keep tokens in memory or an HttpOnly cookie; localStorage is readable by any injected script",
	},
	{
		ID:          "DMCP-SEC-004",
		Name:        "Sensitive Value Logged",
		Description: "console.log invoked with a secret-named argument",
		Severity:    models.SeverityLow,
		Detection: pattern(regexp.MustCompile(
			`(?i)console\.log\s*\([^)]*(?:password|token|secret|api[_-]?key)`)),
		Remediation: "Redact sensitive values before logging",
	},
	{
		ID:          "DMCP-TEST-001",
		Name:        "Skipped Security Test",
		Description: "A test named after a security behavior is skipped",
		Severity:    models.SeverityLow,
		Detection: pattern(regexp.MustCompile(
			`(?i)(?:it|test|describe)\.skip\s*\(\s*['"][^'"]*secur`)),
		Remediation: "Re-enable the test or document why the covered behavior no longer applies",
		Tags:        []string{TagTestOnly},
	},
}
