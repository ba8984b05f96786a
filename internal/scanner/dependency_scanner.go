package scanner

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aleister1102/secaudit/internal/common"
	"github.com/aleister1102/secaudit/internal/config"
	"github.com/aleister1102/secaudit/internal/models"
	"github.com/rs/zerolog"
)

// knownBadPackages maps npm package names with published supply-chain
// compromises to their advisory text.
var knownBadPackages = map[string]string{
	"event-stream":   "versions 3.3.6+ shipped the flatmap-stream credential stealer",
	"flatmap-stream": "malicious package used in the event-stream attack",
	"ua-parser-js":   "hijacked releases installed cryptominers and password stealers",
	"coa":            "hijacked releases executed a malicious preinstall script",
	"rc":             "hijacked releases executed a malicious preinstall script",
}

// remoteFetchMarkers flag install scripts that pull and run remote code.
var remoteFetchMarkers = []string{"curl ", "wget ", "| sh", "| bash", "iwr ", "Invoke-WebRequest"}

// packageManifest is the subset of package.json the scanner inspects.
type packageManifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// DependencyScanner inspects dependency manifests for known-compromised
// packages and install hooks that execute remote code.
type DependencyScanner struct {
	walker *Walker
	files  *common.FileManager
	logger zerolog.Logger
}

// NewDependencyScanner builds a dependency scanner from its config section.
func NewDependencyScanner(cfg config.DependencyScannerConfig, logger zerolog.Logger) (*DependencyScanner, error) {
	componentLogger := logger.With().Str("component", "DependencyScanner").Logger()

	walker, err := NewWalker(cfg.Exclude, componentLogger)
	if err != nil {
		return nil, common.WrapError(err, "failed to build file walker")
	}
	walker.WithFileNames("package.json")

	return &DependencyScanner{
		walker: walker,
		files:  common.NewFileManager(componentLogger),
		logger: componentLogger,
	}, nil
}

// Name implements Scanner.
func (s *DependencyScanner) Name() string { return "dependencies" }

// Scan parses every package.json under the root.
func (s *DependencyScanner) Scan(ctx context.Context, projectRoot string) ([]models.SecurityFinding, []error) {
	manifests, err := s.walker.Walk(ctx, projectRoot)
	if err != nil {
		return nil, []error{err}
	}

	var findings []models.SecurityFinding
	var collector common.ErrorCollector

	for _, rel := range manifests {
		opts := common.DefaultFileReadOptions()
		opts.Context = ctx

		raw, rerr := s.files.ReadFile(filepath.Join(projectRoot, filepath.FromSlash(rel)), opts)
		if rerr != nil {
			continue
		}

		var manifest packageManifest
		if jerr := json.Unmarshal(raw, &manifest); jerr != nil {
			collector.AddWithContext(jerr, "malformed manifest "+rel)
			continue
		}

		findings = append(findings, s.checkPackages(rel, manifest.Dependencies)...)
		findings = append(findings, s.checkPackages(rel, manifest.DevDependencies)...)
		findings = append(findings, s.checkScripts(rel, manifest.Scripts)...)
	}

	return findings, collector.Errors()
}

// checkPackages flags dependencies with known compromises.
func (s *DependencyScanner) checkPackages(rel string, deps map[string]string) []models.SecurityFinding {
	var findings []models.SecurityFinding
	for name, version := range deps {
		advisory, bad := knownBadPackages[name]
		if !bad {
			continue
		}
		findings = append(findings, models.SecurityFinding{
			RuleID:      "DEP-001",
			Severity:    models.SeverityHigh,
			Message:     fmt.Sprintf("dependency %s has a known supply-chain compromise: %s", name, advisory),
			File:        rel,
			Code:        fmt.Sprintf("%q: %q", name, version),
			Remediation: "Pin to a version published before the compromise or remove the dependency",
			Confidence:  models.ConfidenceHigh,
		})
	}
	return findings
}

// checkScripts flags install hooks that fetch and execute remote code.
func (s *DependencyScanner) checkScripts(rel string, scripts map[string]string) []models.SecurityFinding {
	var findings []models.SecurityFinding
	for _, hook := range []string{"preinstall", "install", "postinstall"} {
		script, ok := scripts[hook]
		if !ok {
			continue
		}
		for _, marker := range remoteFetchMarkers {
			if strings.Contains(script, marker) {
				findings = append(findings, models.SecurityFinding{
					RuleID:      "DEP-002",
					Severity:    models.SeverityMedium,
					Message:     fmt.Sprintf("%s script downloads and executes remote code", hook),
					File:        rel,
					Code:        snippetOf(script),
					Remediation: "Vendor the fetched artifact or verify it against a pinned checksum",
					Confidence:  models.ConfidenceMedium,
				})
				break
			}
		}
	}
	return findings
}

func snippetOf(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > models.MaxCodeSnippetLength {
		return s[:models.MaxCodeSnippetLength]
	}
	return s
}
