// Package auditor orchestrates the security scan pipeline: it runs the
// enabled scanners, filters findings through the suppression matcher,
// aggregates the summary, and applies the build-failure policy.
package auditor

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aleister1102/secaudit/internal/common"
	"github.com/aleister1102/secaudit/internal/config"
	"github.com/aleister1102/secaudit/internal/models"
	"github.com/aleister1102/secaudit/internal/scanner"
	"github.com/aleister1102/secaudit/internal/suppression"
	"github.com/rs/zerolog"
)

// FailBuildPolicy decides whether a completed result constitutes a
// build failure. The default policy compares surviving findings
// against reporting.fail_on_severity.
type FailBuildPolicy func(result *models.ScanResult) bool

// SecurityAuditor runs all enabled scanners against a project tree and
// produces exactly one ScanResult per Audit call.
type SecurityAuditor struct {
	config     *config.SecurityAuditConfig
	logger     zerolog.Logger
	scanners   []scanner.Scanner
	matcher    *suppression.Matcher
	failPolicy FailBuildPolicy
}

// NewSecurityAuditor constructs the auditor and instantiates the
// enabled scanners from config. The rule registry is resolved here,
// once, for the auditor's lifetime.
func NewSecurityAuditor(cfg *config.SecurityAuditConfig, logger zerolog.Logger) (*SecurityAuditor, error) {
	componentLogger := logger.With().Str("component", "SecurityAuditor").Logger()

	a := &SecurityAuditor{
		config:  cfg,
		logger:  componentLogger,
		matcher: suppression.NewMatcher(cfg.Suppressions, componentLogger),
	}

	if cfg.Scanners.Code.Enabled {
		code, err := scanner.NewCodeScanner(cfg.Scanners.Code, componentLogger)
		if err != nil {
			return nil, common.WrapError(err, "failed to build code scanner")
		}
		a.scanners = append(a.scanners, code)
	}

	if cfg.Scanners.Dependencies.Enabled {
		deps, err := scanner.NewDependencyScanner(cfg.Scanners.Dependencies, componentLogger)
		if err != nil {
			return nil, common.WrapError(err, "failed to build dependency scanner")
		}
		a.scanners = append(a.scanners, deps)
	}

	if cfg.Scanners.Configuration.Enabled {
		conf, err := scanner.NewConfigurationScanner(cfg.Scanners.Configuration, componentLogger)
		if err != nil {
			return nil, common.WrapError(err, "failed to build configuration scanner")
		}
		a.scanners = append(a.scanners, conf)
	}

	return a, nil
}

// SetFailBuildPolicy replaces the default severity-threshold policy.
func (a *SecurityAuditor) SetFailBuildPolicy(policy FailBuildPolicy) {
	a.failPolicy = policy
}

// Matcher exposes the suppression matcher for validation and stats.
func (a *SecurityAuditor) Matcher() *suppression.Matcher {
	return a.matcher
}

// Audit runs one scan pipeline over projectRoot. On a build-failure
// policy trigger it returns the completed result together with an
// AuditFailedError carrying that same result, so callers can render a
// report before halting.
func (a *SecurityAuditor) Audit(ctx context.Context, projectRoot string) (*models.ScanResult, error) {
	start := time.Now()

	result := &models.ScanResult{Findings: []models.SecurityFinding{}}

	if !a.config.Enabled {
		a.logger.Info().Msg("Security audit disabled by configuration")
		result.Summary = models.NewScanSummary(nil)
		return result, nil
	}

	raw, errs := a.runScanners(ctx, projectRoot)

	surviving := a.filterSuppressed(raw)
	sortFindings(surviving)

	result.Findings = surviving
	result.Summary = models.NewScanSummary(surviving)
	result.ScannedFiles = countDistinctFiles(surviving)
	result.Duration = time.Since(start).Milliseconds()
	for _, err := range errs {
		result.Errors = append(result.Errors, err.Error())
	}

	a.logger.Info().
		Int("findings", result.Summary.Total).
		Int("suppressed", len(raw)-len(surviving)).
		Int("files", result.ScannedFiles).
		Int64("duration_ms", result.Duration).
		Msg("Security audit completed")

	if a.shouldFailBuild(result) {
		threshold, _ := models.ParseSeverity(a.config.Reporting.FailOnSeverity)
		return result, &models.AuditFailedError{Result: result, Threshold: threshold}
	}

	return result, nil
}

// runScanners executes every scanner concurrently and merges their
// output. A failing scanner contributes errors, never a crash.
func (a *SecurityAuditor) runScanners(ctx context.Context, projectRoot string) ([]models.SecurityFinding, []error) {
	var (
		mu       sync.Mutex
		findings []models.SecurityFinding
		errs     []error
		wg       sync.WaitGroup
	)

	for _, s := range a.scanners {
		wg.Add(1)
		go func(s scanner.Scanner) {
			defer wg.Done()

			a.logger.Debug().Str("scanner", s.Name()).Msg("Running scanner")
			scannerFindings, scannerErrs := s.Scan(ctx, projectRoot)

			mu.Lock()
			findings = append(findings, scannerFindings...)
			errs = append(errs, scannerErrs...)
			mu.Unlock()
		}(s)
	}
	wg.Wait()

	return findings, errs
}

// filterSuppressed drops every finding matching a configured suppression.
func (a *SecurityAuditor) filterSuppressed(findings []models.SecurityFinding) []models.SecurityFinding {
	surviving := make([]models.SecurityFinding, 0, len(findings))
	for _, finding := range findings {
		if a.matcher.ShouldSuppress(finding.RuleID, finding.File) {
			a.logger.Debug().
				Str("rule", finding.RuleID).
				Str("file", finding.File).
				Msg("Finding suppressed")
			continue
		}
		surviving = append(surviving, finding)
	}
	return surviving
}

// shouldFailBuild applies the override policy when set, otherwise the
// severity threshold from config. An unset threshold never fails.
func (a *SecurityAuditor) shouldFailBuild(result *models.ScanResult) bool {
	if a.failPolicy != nil {
		return a.failPolicy(result)
	}

	threshold, err := models.ParseSeverity(a.config.Reporting.FailOnSeverity)
	if err != nil {
		return false
	}
	return result.HasFindingsAtOrAbove(threshold)
}

// sortFindings fixes the report order regardless of scanner or worker
// scheduling: severity (critical first), then file, line, column, rule,
// then message and code. The last two break ties for findings without a
// location, such as two compromised packages flagged in one manifest.
func sortFindings(findings []models.SecurityFinding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		if a.RuleID != b.RuleID {
			return a.RuleID < b.RuleID
		}
		if a.Message != b.Message {
			return a.Message < b.Message
		}
		return a.Code < b.Code
	})
}

// countDistinctFiles counts files with at least one surviving finding.
func countDistinctFiles(findings []models.SecurityFinding) int {
	files := make(map[string]struct{}, len(findings))
	for _, finding := range findings {
		if finding.File != "" {
			files[finding.File] = struct{}{}
		}
	}
	return len(files)
}
