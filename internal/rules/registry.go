package rules

// Named rule sets resolvable through LoadRules.
const (
	SetOWASPTop10   = "owasp-top10"
	SetCWETop25     = "cwe-top25"
	SetDMCPSecurity = "dmcp-security"
)

// ruleSets maps set names to their fixed rule lists. Registration order
// within a set is the order rules were declared.
var ruleSets = map[string][]SecurityRule{
	SetOWASPTop10:   owaspRules,
	SetCWETop25:     cweRules,
	SetDMCPSecurity: dmcpRules,
}

// setOrder fixes the enumeration order of SetNames.
var setOrder = []string{SetOWASPTop10, SetCWETop25, SetDMCPSecurity}

// LoadRules resolves named rule sets to their rules, concatenated in
// the order requested. Unknown names are silently ignored so configs
// written for newer releases keep working.
func LoadRules(names []string) []SecurityRule {
	var loaded []SecurityRule
	for _, name := range names {
		if set, ok := ruleSets[name]; ok {
			loaded = append(loaded, set...)
		}
	}
	return loaded
}

// SetNames returns the available rule set names in registration order.
func SetNames() []string {
	return append([]string(nil), setOrder...)
}

// RulesInSet returns the rules of a single named set, or nil when the
// set does not exist.
func RulesInSet(name string) []SecurityRule {
	return ruleSets[name]
}
