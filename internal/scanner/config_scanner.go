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
	"gopkg.in/yaml.v3"
)

// configExtensions limits the configuration scanner to structured
// config documents.
var configExtensions = map[string]bool{
	".yml":  true,
	".yaml": true,
	".json": true,
}

// insecureSetting describes one key/value combination worth flagging.
type insecureSetting struct {
	key         string
	matches     func(value interface{}) bool
	ruleID      string
	severity    models.Severity
	message     string
	remediation string
}

var insecureSettings = []insecureSetting{
	{
		key:         "debug",
		matches:     isTrue,
		ruleID:      "CONF-001",
		severity:    models.SeverityMedium,
		message:     "debug mode enabled in configuration",
		remediation: "Disable debug in deployed configuration; it widens error output and attack surface",
	},
	{
		key:         "insecure",
		matches:     isTrue,
		ruleID:      "CONF-002",
		severity:    models.SeverityHigh,
		message:     "insecure flag enabled in configuration",
		remediation: "Remove the insecure flag and configure proper transport security",
	},
	{
		key:         "skip_verify",
		matches:     isTrue,
		ruleID:      "CONF-002",
		severity:    models.SeverityHigh,
		message:     "TLS verification disabled in configuration",
		remediation: "Enable certificate verification and provision the expected CA",
	},
	{
		key:         "allowed_origins",
		matches:     containsWildcard,
		ruleID:      "CONF-003",
		severity:    models.SeverityMedium,
		message:     "CORS configured with a wildcard origin",
		remediation: "Enumerate the origins that legitimately call this service",
	},
	{
		key:         "origin",
		matches:     containsWildcard,
		ruleID:      "CONF-003",
		severity:    models.SeverityMedium,
		message:     "CORS configured with a wildcard origin",
		remediation: "Enumerate the origins that legitimately call this service",
	},
}

func isTrue(value interface{}) bool {
	b, ok := value.(bool)
	return ok && b
}

func containsWildcard(value interface{}) bool {
	switch v := value.(type) {
	case string:
		return v == "*"
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "*" {
				return true
			}
		}
	}
	return false
}

// ConfigurationScanner parses YAML/JSON configuration documents and
// flags insecure settings.
type ConfigurationScanner struct {
	walker *Walker
	files  *common.FileManager
	logger zerolog.Logger
}

// NewConfigurationScanner builds a configuration scanner from its
// config section.
func NewConfigurationScanner(cfg config.ConfigurationScannerConfig, logger zerolog.Logger) (*ConfigurationScanner, error) {
	componentLogger := logger.With().Str("component", "ConfigurationScanner").Logger()

	walker, err := NewWalker(cfg.Exclude, componentLogger)
	if err != nil {
		return nil, common.WrapError(err, "failed to build file walker")
	}

	return &ConfigurationScanner{
		walker: walker,
		files:  common.NewFileManager(componentLogger),
		logger: componentLogger,
	}, nil
}

// Name implements Scanner.
func (s *ConfigurationScanner) Name() string { return "configuration" }

// Scan parses every structured config document under the root.
func (s *ConfigurationScanner) Scan(ctx context.Context, projectRoot string) ([]models.SecurityFinding, []error) {
	files, err := s.walker.Walk(ctx, projectRoot)
	if err != nil {
		return nil, []error{err}
	}

	var findings []models.SecurityFinding

	for _, rel := range files {
		if !configExtensions[strings.ToLower(filepath.Ext(rel))] {
			continue
		}

		opts := common.DefaultFileReadOptions()
		opts.Context = ctx

		raw, rerr := s.files.ReadFile(filepath.Join(projectRoot, filepath.FromSlash(rel)), opts)
		if rerr != nil {
			continue
		}

		doc, perr := parseStructured(rel, raw)
		if perr != nil {
			// Not every YAML/JSON file is a config document; JSONC,
			// top-level arrays, and data fixtures are skipped, not
			// reported.
			s.logger.Debug().Err(perr).Str("file", rel).Msg("Skipping unparseable document")
			continue
		}

		findings = append(findings, inspectDocument(rel, "", doc)...)
	}

	return findings, nil
}

// parseStructured decodes the document into a generic map.
func parseStructured(rel string, raw []byte) (map[string]interface{}, error) {
	doc := make(map[string]interface{})
	if strings.ToLower(filepath.Ext(rel)) == ".json" {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, common.WrapErrorf(err, "malformed JSON document %s", rel)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, common.WrapErrorf(err, "malformed YAML document %s", rel)
	}
	return doc, nil
}

// inspectDocument walks nested maps looking for insecure settings.
func inspectDocument(rel, prefix string, doc map[string]interface{}) []models.SecurityFinding {
	var findings []models.SecurityFinding
	for key, value := range doc {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		for _, setting := range insecureSettings {
			if strings.EqualFold(key, setting.key) && setting.matches(value) {
				findings = append(findings, models.SecurityFinding{
					RuleID:      setting.ruleID,
					Severity:    setting.severity,
					Message:     setting.message,
					File:        rel,
					Code:        fmt.Sprintf("%s: %v", path, value),
					Remediation: setting.remediation,
					Confidence:  models.ConfidenceMedium,
				})
			}
		}

		if nested, ok := toStringMap(value); ok {
			findings = append(findings, inspectDocument(rel, path, nested)...)
		}
	}
	return findings
}

// toStringMap normalizes nested YAML/JSON maps.
func toStringMap(value interface{}) (map[string]interface{}, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		return v, true
	case map[interface{}]interface{}:
		converted := make(map[string]interface{}, len(v))
		for key, val := range v {
			if s, ok := key.(string); ok {
				converted[s] = val
			}
		}
		return converted, true
	default:
		return nil, false
	}
}
