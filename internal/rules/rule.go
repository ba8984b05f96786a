package rules

import (
	"regexp"

	"github.com/aleister1102/secaudit/internal/models"
)

// Rule tags used by scanner heuristics.
const (
	// TagTestOnly marks rules that only apply inside test files.
	TagTestOnly = "test-only"
	// TagHighConfidence marks rules whose matches are near-certain true
	// positives regardless of context.
	TagHighConfidence = "high-confidence"
)

// CheckFunc is a custom detection routine. It receives the file content
// and the per-file scan context and returns zero or more partial
// findings; the scanner fills in File and any identity fields (rule id,
// severity, remediation) the check left empty.
type CheckFunc func(content string, ctx models.ScanContext) []models.SecurityFinding

// Detection is the rule's detection mechanism: either a compiled
// pattern or a custom check function. The two variants let the scanner
// dispatch exhaustively.
type Detection interface {
	isDetection()
}

// PatternDetection detects by finding all non-overlapping regex matches.
type PatternDetection struct {
	Pattern *regexp.Regexp
}

func (PatternDetection) isDetection() {}

// CheckDetection detects by invoking a custom check function.
type CheckDetection struct {
	Check CheckFunc
}

func (CheckDetection) isDetection() {}

// SecurityRule is an immutable vulnerability detection rule. Rules are
// registered once per named set and never mutated afterwards.
type SecurityRule struct {
	ID          string
	Name        string
	Description string
	Severity    models.Severity
	Detection   Detection
	Remediation string
	Tags        []string
}

// HasTag reports whether the rule carries the given tag.
func (r SecurityRule) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// pattern wraps a compiled regex into a PatternDetection.
func pattern(re *regexp.Regexp) Detection {
	return PatternDetection{Pattern: re}
}

// check wraps a custom function into a CheckDetection.
func check(fn CheckFunc) Detection {
	return CheckDetection{Check: fn}
}
