package scanner

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/aleister1102/secaudit/internal/common"
	"github.com/aleister1102/secaudit/internal/config"
	"github.com/aleister1102/secaudit/internal/models"
	"github.com/aleister1102/secaudit/internal/rules"
	"github.com/rs/zerolog"
)

// CodeScanner applies every enabled security rule to each candidate
// file's text and emits one finding per match.
type CodeScanner struct {
	rules   []rules.SecurityRule
	walker  *Walker
	files   *common.FileManager
	workers int
	logger  zerolog.Logger
}

// NewCodeScanner builds a code scanner from its config section; rule
// sets are resolved through the registry at construction.
func NewCodeScanner(cfg config.CodeScannerConfig, logger zerolog.Logger) (*CodeScanner, error) {
	componentLogger := logger.With().Str("component", "CodeScanner").Logger()

	walker, err := NewWalker(cfg.Exclude, componentLogger)
	if err != nil {
		return nil, common.WrapError(err, "failed to build file walker")
	}

	return &CodeScanner{
		rules:   rules.LoadRules(cfg.Rules),
		walker:  walker,
		files:   common.NewFileManager(componentLogger),
		workers: config.DefaultScanWorkers,
		logger:  componentLogger,
	}, nil
}

// Name implements Scanner.
func (s *CodeScanner) Name() string { return "code" }

// Rules exposes the resolved rule list.
func (s *CodeScanner) Rules() []rules.SecurityRule { return s.rules }

// Scan walks the tree and applies every rule to every candidate file.
// Files are processed by a bounded worker pool; the orchestrator
// re-sorts findings, so pool scheduling never leaks into report order.
func (s *CodeScanner) Scan(ctx context.Context, projectRoot string) ([]models.SecurityFinding, []error) {
	files, err := s.walker.Walk(ctx, projectRoot)
	if err != nil {
		return nil, []error{err}
	}
	if len(files) == 0 {
		return nil, nil
	}

	var (
		mu       sync.Mutex
		findings []models.SecurityFinding
		wg       sync.WaitGroup
	)

	jobs := make(chan string)
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rel := range jobs {
				fileFindings := s.scanFile(ctx, projectRoot, rel)
				if len(fileFindings) == 0 {
					continue
				}
				mu.Lock()
				findings = append(findings, fileFindings...)
				mu.Unlock()
			}
		}()
	}

	for _, rel := range files {
		jobs <- rel
	}
	close(jobs)
	wg.Wait()

	return findings, nil
}

// scanFile applies every rule to one file. Read failures skip the file
// silently; the scan must not abort because one file is unreadable.
func (s *CodeScanner) scanFile(ctx context.Context, projectRoot, rel string) []models.SecurityFinding {
	opts := common.DefaultFileReadOptions()
	opts.Context = ctx

	raw, err := s.files.ReadFile(filepath.Join(projectRoot, filepath.FromSlash(rel)), opts)
	if err != nil {
		s.logger.Debug().Err(err).Str("file", rel).Msg("Skipping unreadable file")
		return nil
	}
	content := string(raw)
	sctx := buildScanContext(projectRoot, rel)

	var findings []models.SecurityFinding
	for _, rule := range s.rules {
		if rule.HasTag(rules.TagTestOnly) && !sctx.IsTest {
			continue
		}

		switch det := rule.Detection.(type) {
		case rules.PatternDetection:
			findings = append(findings, s.applyPattern(rule, det, content, rel, sctx)...)
		case rules.CheckDetection:
			findings = append(findings, s.applyCheck(rule, det, content, rel, sctx)...)
		}
	}
	return findings
}

// applyPattern emits one finding per non-overlapping match.
func (s *CodeScanner) applyPattern(rule rules.SecurityRule, det rules.PatternDetection, content, rel string, sctx models.ScanContext) []models.SecurityFinding {
	if det.Pattern == nil {
		return nil
	}

	var findings []models.SecurityFinding
	for _, loc := range det.Pattern.FindAllStringIndex(content, -1) {
		line, column := offsetToLineColumn(content, loc[0])
		code := lineSnippet(content, loc[0])
		findings = append(findings, models.SecurityFinding{
			RuleID:      rule.ID,
			Severity:    rule.Severity,
			Message:     rule.Description,
			File:        rel,
			Line:        line,
			Column:      column,
			Code:        code,
			Remediation: rule.Remediation,
			Confidence:  deriveConfidence(rule, code, sctx),
		})
	}
	return findings
}

// applyCheck invokes a custom check and completes the partial findings
// it returns: File always, and identity fields wherever the check left
// them empty.
func (s *CodeScanner) applyCheck(rule rules.SecurityRule, det rules.CheckDetection, content, rel string, sctx models.ScanContext) []models.SecurityFinding {
	if det.Check == nil {
		return nil
	}

	partials := det.Check(content, sctx)
	for i := range partials {
		partials[i].File = rel
		if partials[i].RuleID == "" {
			partials[i].RuleID = rule.ID
		}
		if partials[i].Severity == "" {
			partials[i].Severity = rule.Severity
		}
		if partials[i].Message == "" {
			partials[i].Message = rule.Description
		}
		if partials[i].Remediation == "" {
			partials[i].Remediation = rule.Remediation
		}
		if partials[i].Confidence == "" {
			partials[i].Confidence = deriveConfidence(rule, partials[i].Code, sctx)
		}
	}
	return partials
}
