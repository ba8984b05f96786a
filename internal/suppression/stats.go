package suppression

import "strings"

// knownCategories are the rule-id prefixes broken out in stats; every
// other prefix (and the universal wildcard) lands in "*".
var knownCategories = map[string]bool{
	"DMCP":  true,
	"OWASP": true,
	"CWE":   true,
}

// Stats summarizes the configured suppressions.
type Stats struct {
	Total      int            `json:"total"`
	ByRule     map[string]int `json:"byRule"`
	ByCategory map[string]int `json:"byCategory"`
}

// Stats aggregates suppression counts by rule and by rule-id category.
func (m *Matcher) Stats() Stats {
	stats := Stats{
		Total:      len(m.suppressions),
		ByRule:     make(map[string]int),
		ByCategory: make(map[string]int),
	}

	for _, s := range m.suppressions {
		stats.ByRule[s.Rule]++
		stats.ByCategory[categoryOf(s.Rule)]++
	}

	return stats
}

// categoryOf derives the stats category from a rule id's prefix.
func categoryOf(rule string) string {
	prefix, _, found := strings.Cut(rule, "-")
	if found && knownCategories[prefix] {
		return prefix
	}
	return "*"
}
