package suppression

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aleister1102/secaudit/internal/config"
	"github.com/gobwas/glob"
)

// ruleIDPattern matches concrete rule ids such as OWASP-A01-001,
// CWE-89-001, DMCP-SEC-001, or DEP-001.
var ruleIDPattern = regexp.MustCompile(`^[A-Z]{2,10}(?:-[A-Z0-9]{1,12})+$`)

// rulePrefixPattern matches the prefix part of a "PREFIX-*" wildcard.
var rulePrefixPattern = regexp.MustCompile(`^[A-Z]{2,10}(?:-[A-Z0-9]{1,12})*$`)

// Validate checks the configured suppressions for structural problems:
// empty fields, malformed rule ids and glob patterns, throwaway
// reasons, and duplicate exact entries. An empty slice means the
// configuration is fully valid. Validation never blocks a scan; it is
// an explicit call the operator makes before trusting one.
func (m *Matcher) Validate() []string {
	var errs []string
	seen := make(map[string]int)

	for i, s := range m.suppressions {
		position := i + 1

		if s.Rule == "" {
			errs = append(errs, fmt.Sprintf("suppression #%d: rule must not be empty", position))
		} else if !validRulePattern(s.Rule) {
			errs = append(errs, fmt.Sprintf("suppression #%d: malformed rule id %q", position, s.Rule))
		}

		if s.File == "" {
			errs = append(errs, fmt.Sprintf("suppression #%d: file must not be empty", position))
		} else if strings.ContainsAny(s.File, "*?[") && s.File != "*" {
			if _, err := glob.Compile(s.File, '/'); err != nil {
				errs = append(errs, fmt.Sprintf("suppression #%d: malformed file pattern %q: %v", position, s.File, err))
			}
		}

		if len(strings.TrimSpace(s.Reason)) < config.MinSuppressionReasonLength {
			errs = append(errs, fmt.Sprintf("suppression #%d: reason must be at least %d characters", position, config.MinSuppressionReasonLength))
		}

		key := s.Rule + "\x00" + s.File
		if first, dup := seen[key]; dup {
			errs = append(errs, fmt.Sprintf("suppression #%d duplicates #%d (rule %q, file %q)", position, first, s.Rule, s.File))
		} else {
			seen[key] = position
		}
	}

	return errs
}

// validRulePattern accepts "*", "PREFIX-*" wildcards, and concrete ids.
func validRulePattern(pattern string) bool {
	if pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "-*"); ok {
		return rulePrefixPattern.MatchString(prefix)
	}
	return ruleIDPattern.MatchString(pattern)
}
