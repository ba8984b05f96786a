package rules

import (
	"regexp"

	"github.com/aleister1102/secaudit/internal/models"
)

// cweRules covers weakness-enumeration patterns not already expressed
// by the OWASP set.
var cweRules = []SecurityRule{
	{
		ID:          "CWE-22-001",
		Name:        "Path Traversal In File Operation",
		Description: "File operation passed a path containing parent-directory traversal",
		Severity:    models.SeverityHigh,
		Detection: pattern(regexp.MustCompile(
			`(?i)(?:readFileSync?|createReadStream|writeFileSync?|unlinkSync?|os\.Open)\s*\([^)]*\.\.[\\/]`)),
		Remediation: "Resolve the path and verify it stays inside the intended base directory before use",
	},
	{
		ID:          "CWE-78-001",
		Name:        "Command Injection Via Concatenation",
		Description: "Process spawn receives a command built by string concatenation",
		Severity:    models.SeverityHigh,
		Detection: pattern(regexp.MustCompile(
			`(?:\bexec|\bexecSync|\bspawn)\s*\(\s*['"][^'"]*['"]\s*\+`)),
		Remediation: "Pass arguments as a vector and validate each against an allowlist",
	},
	{
		ID:          "CWE-89-001",
		Name:        "Unparameterized Query Call",
		Description: "Database query call concatenates data into the statement text",
		Severity:    models.SeverityHigh,
		Detection: pattern(regexp.MustCompile(
			`(?i)\.query\s*\(\s*['"][^'"]*['"]\s*\+`)),
		Remediation: "Use placeholder parameters supported by the database driver",
	},
	{
		ID:          "CWE-327-001",
		Name:        "Broken Cipher Algorithm",
		Description: "Cipher construction names DES, 3DES, or RC4",
		Severity:    models.SeverityMedium,
		Detection: pattern(regexp.MustCompile(
			`(?i)createCipher(?:iv)?\s*\(\s*['"](?:des|des3|des-ede3|rc4)`)),
		Remediation: "Use AES-256-GCM or another authenticated modern cipher",
	},
	{
		ID:          "CWE-502-001",
		Name:        "Unsafe Deserialization",
		Description: "Untrusted data deserialized by an unsafe loader",
		Severity:    models.SeverityMedium,
		Detection: pattern(regexp.MustCompile(
			`(?i)pickle\.loads?\s*\(|Marshal\.load\s*\(|unserialize\s*\(`)),
		Remediation: "Deserialize with a schema-constrained format such as JSON and validate the result",
	},
	{
		ID:          "CWE-798-001",
		Name:        "Credentials In URL",
		Description: "URL embeds a username:password pair",
		Severity:    models.SeverityHigh,
		Detection: pattern(regexp.MustCompile(
			`[a-z][a-z0-9+.-]*://[^/\s:@'"]+:[^@\s/'"]+@`)),
		Remediation: "Strip credentials from URLs and supply them through an auth header or credential store",
		Tags:        []string{TagHighConfidence},
	},
	{
		ID:          "CWE-1333-001",
		Name:        "Catastrophic Backtracking Regex",
		Description: "Regex literal nests a quantifier inside a quantified group",
		Severity:    models.SeverityMedium,
		Detection: pattern(regexp.MustCompile(
			`\([^()\n]*[+*]\)[+*]`)),
		Remediation: "Rewrite the expression without nested quantifiers or switch to a linear-time matcher",
	},
	{
		ID:          "CWE-489-001",
		Name:        "Active Debug Code",
		Description: "Debugger statement left in source",
		Severity:    models.SeverityLow,
		Detection:   pattern(regexp.MustCompile(`(?m)^\s*debugger\s*;?\s*$`)),
		Remediation: "Remove debugger statements before shipping",
	},
}
