package models

import (
	"fmt"
	"strings"
)

// Severity is the ordinal risk level of a rule or finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// severityRanks orders severities: info < low < medium < high < critical.
var severityRanks = map[Severity]int{
	SeverityInfo:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Rank returns the position of the severity in the total order
// info < low < medium < high < critical. Unknown severities rank
// below info.
func (s Severity) Rank() int {
	if rank, ok := severityRanks[s]; ok {
		return rank
	}
	return -1
}

// AtLeast reports whether s is greater than or equal to threshold.
func (s Severity) AtLeast(threshold Severity) bool {
	return s.Rank() >= threshold.Rank()
}

// ParseSeverity parses a severity name case-insensitively.
func ParseSeverity(value string) (Severity, error) {
	s := Severity(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := severityRanks[s]; !ok {
		return "", fmt.Errorf("unknown severity: %q", value)
	}
	return s, nil
}

// Severities returns all severity levels ordered from critical to info,
// the order reports are grouped in.
func Severities() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo}
}

// Confidence is the engine's certainty that a finding is a true positive.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// MaxCodeSnippetLength bounds the source excerpt attached to a finding.
const MaxCodeSnippetLength = 100

// SecurityFinding is one reported instance of a rule matching content
// at a location. Findings are value objects; scanners create them and
// nothing mutates them afterwards except the scanner filling in File
// for custom checks that did not set it.
type SecurityFinding struct {
	RuleID      string     `json:"ruleId" yaml:"rule_id"`
	Severity    Severity   `json:"severity" yaml:"severity"`
	Message     string     `json:"message" yaml:"message"`
	File        string     `json:"file" yaml:"file"`
	Line        int        `json:"line,omitempty" yaml:"line,omitempty"`
	Column      int        `json:"column,omitempty" yaml:"column,omitempty"`
	Code        string     `json:"code,omitempty" yaml:"code,omitempty"`
	Remediation string     `json:"remediation,omitempty" yaml:"remediation,omitempty"`
	Confidence  Confidence `json:"confidence" yaml:"confidence"`
}

// Location renders the finding position as file:line for display.
func (f SecurityFinding) Location() string {
	if f.Line > 0 {
		return fmt.Sprintf("%s:%d", f.File, f.Line)
	}
	return f.File
}

// ScanContext carries per-file context handed to rule check functions.
type ScanContext struct {
	ProjectRoot string
	FileType    string // file extension without the dot
	IsTest      bool   // path contains "test" or "spec"
}
