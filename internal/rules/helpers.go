package rules

import (
	"strings"

	"github.com/aleister1102/secaudit/internal/models"
)

// snippet trims and bounds a source line for use as finding evidence.
func snippet(line string) string {
	line = strings.TrimSpace(line)
	if len(line) > models.MaxCodeSnippetLength {
		return line[:models.MaxCodeSnippetLength]
	}
	return line
}

// findingsOnLines walks the content line by line and emits a partial
// finding for every line the predicate accepts. Line numbers are
// 1-based; the scanner fills in File and rule identity afterwards.
func findingsOnLines(content, message string, match func(line string) bool) []models.SecurityFinding {
	var findings []models.SecurityFinding
	for i, line := range strings.Split(content, "\n") {
		if match(line) {
			findings = append(findings, models.SecurityFinding{
				Message: message,
				Line:    i + 1,
				Code:    snippet(line),
			})
		}
	}
	return findings
}

// containsAny reports whether s contains any of the needles,
// case-insensitively.
func containsAny(s string, needles ...string) bool {
	s = strings.ToLower(s)
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
