package models

import "fmt"

// AuditFailedError signals that a completed scan tripped the
// build-failure policy. It is an expected, modeled outcome rather than
// a crash: it carries the full ScanResult so callers can still render
// a report before halting.
type AuditFailedError struct {
	Result    *ScanResult
	Threshold Severity
}

func (e *AuditFailedError) Error() string {
	count := 0
	if e.Result != nil {
		for _, finding := range e.Result.Findings {
			if finding.Severity.AtLeast(e.Threshold) {
				count++
			}
		}
	}
	if e.Threshold == "" {
		return fmt.Sprintf("security audit failed: %d finding(s) tripped the build-failure policy", count)
	}
	return fmt.Sprintf("security audit failed: %d finding(s) at or above severity %q", count, e.Threshold)
}
