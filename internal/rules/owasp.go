package rules

import (
	"regexp"
	"strings"

	"github.com/aleister1102/secaudit/internal/models"
)

// owaspRules covers the most common OWASP Top 10 vulnerability patterns
// reachable by text-level analysis.
var owaspRules = []SecurityRule{
	{
		ID:          "OWASP-A01-001",
		Name:        "Hardcoded Secret",
		Description: "A credential-looking literal is assigned to a secret-named variable",
		Severity:    models.SeverityCritical,
		Detection: pattern(regexp.MustCompile(
			`(?i)(?:api[_-]?key|apikey|secret|access[_-]?token|auth[_-]?token|token|passwd|password)\s*[:=]\s*['"][A-Za-z0-9/+=_.-]{16,}['"]`)),
		Remediation: "Move the secret into an environment variable or a secret manager and rotate the exposed value",
	},
	{
		ID:          "OWASP-A01-002",
		Name:        "Private Key Material",
		Description: "PEM-encoded private key committed to the source tree",
		Severity:    models.SeverityCritical,
		Detection: pattern(regexp.MustCompile(
			`-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY-----`)),
		Remediation: "Remove the key from the repository, rotate it, and load keys from protected storage",
		Tags:        []string{TagHighConfidence},
	},
	{
		ID:          "OWASP-A01-003",
		Name:        "AWS Access Key ID",
		Description: "AWS access key id embedded in source",
		Severity:    models.SeverityCritical,
		Detection:   pattern(regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`)),
		Remediation: "Revoke the key in IAM and switch to role-based credentials",
		Tags:        []string{TagHighConfidence},
	},
	{
		ID:          "OWASP-A02-001",
		Name:        "Weak Hash Algorithm",
		Description: "MD5 or SHA-1 used where a collision-resistant hash is expected",
		Severity:    models.SeverityMedium,
		Detection:   pattern(regexp.MustCompile(`(?i)\b(?:md5|sha1)\s*\(`)),
		Remediation: "Use SHA-256 or stronger; for passwords use bcrypt, scrypt, or argon2",
	},
	{
		ID:          "OWASP-A02-002",
		Name:        "Insecure Random For Secret",
		Description: "Math.random used on a line that handles secret material",
		Severity:    models.SeverityMedium,
		Detection: check(func(content string, ctx models.ScanContext) []models.SecurityFinding {
			return findingsOnLines(content,
				"Math.random used in a security-sensitive context",
				func(line string) bool {
					return strings.Contains(line, "Math.random") &&
						containsAny(line, "token", "secret", "password", "key", "nonce", "salt")
				})
		}),
		Remediation: "Use crypto.randomBytes or crypto.getRandomValues for security-sensitive values",
	},
	{
		ID:          "OWASP-A03-001",
		Name:        "SQL Injection Via Concatenation",
		Description: "SQL statement built by concatenating a string literal with program data",
		Severity:    models.SeverityHigh,
		Detection: pattern(regexp.MustCompile(
			`(?i)['"](?:SELECT|INSERT INTO|UPDATE|DELETE FROM)\b[^'"]*['"]\s*\+`)),
		Remediation: "Use parameterized queries or a query builder instead of string concatenation",
	},
	{
		ID:          "OWASP-A03-002",
		Name:        "Dynamic Code Evaluation",
		Description: "eval() invoked on runtime data",
		Severity:    models.SeverityHigh,
		Detection:   pattern(regexp.MustCompile(`\beval\s*\(`)),
		Remediation: "Replace eval with explicit parsing or a safe expression evaluator",
	},
	{
		ID:          "OWASP-A03-003",
		Name:        "Shell Command Interpolation",
		Description: "exec/execSync called with an interpolated template literal",
		Severity:    models.SeverityHigh,
		Detection: pattern(regexp.MustCompile(
			"(?:\\bexec|\\bexecSync)\\s*\\(\\s*\x60[^\x60]*\\$\\{")),
		Remediation: "Use execFile with an argument vector; never interpolate user input into a shell string",
	},
	{
		ID:          "OWASP-A05-001",
		Name:        "TLS Verification Disabled",
		Description: "Certificate verification turned off in an HTTP client",
		Severity:    models.SeverityHigh,
		Detection: pattern(regexp.MustCompile(
			`(?i)rejectUnauthorized\s*:\s*false|InsecureSkipVerify\s*:\s*true|verify\s*=\s*False`)),
		Remediation: "Enable certificate verification; pin or provision the expected CA instead",
	},
	{
		ID:          "OWASP-A07-001",
		Name:        "Hardcoded JWT",
		Description: "JSON Web Token literal committed to source",
		Severity:    models.SeverityHigh,
		Detection: pattern(regexp.MustCompile(
			`\beyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_/+=-]*`)),
		Remediation: "Invalidate the token and issue tokens at runtime instead of embedding them",
		Tags:        []string{TagHighConfidence},
	},
}
