package models

// ScanSummary aggregates finding counts for a completed scan. BySeverity
// is zero-filled for all five levels so consumers never have to probe
// for missing keys.
type ScanSummary struct {
	Total      int              `json:"total" yaml:"total"`
	BySeverity map[Severity]int `json:"bySeverity" yaml:"by_severity"`
}

// NewScanSummary builds a zero-filled summary from a finding slice.
func NewScanSummary(findings []SecurityFinding) ScanSummary {
	summary := ScanSummary{
		Total:      len(findings),
		BySeverity: make(map[Severity]int, len(severityRanks)),
	}
	for _, severity := range Severities() {
		summary.BySeverity[severity] = 0
	}
	for _, finding := range findings {
		summary.BySeverity[finding.Severity]++
	}
	return summary
}

// ScanResult is the outcome of a single audit call.
type ScanResult struct {
	Findings []SecurityFinding `json:"findings" yaml:"findings"`
	Summary  ScanSummary       `json:"summary" yaml:"summary"`
	// ScannedFiles counts distinct files with at least one surviving
	// finding, not the number of files examined.
	ScannedFiles int      `json:"scannedFiles" yaml:"scanned_files"`
	Duration     int64    `json:"duration" yaml:"duration"` // milliseconds
	Errors       []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// HasFindingsAtOrAbove reports whether any finding meets the threshold.
func (r *ScanResult) HasFindingsAtOrAbove(threshold Severity) bool {
	for _, finding := range r.Findings {
		if finding.Severity.AtLeast(threshold) {
			return true
		}
	}
	return false
}

// FindingsBySeverity returns the findings carrying the given severity,
// preserving the result's ordering.
func (r *ScanResult) FindingsBySeverity(severity Severity) []SecurityFinding {
	var matched []SecurityFinding
	for _, finding := range r.Findings {
		if finding.Severity == severity {
			matched = append(matched, finding)
		}
	}
	return matched
}
