package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaultSecurityAuditConfig(t *testing.T) {
	cfg := NewDefaultSecurityAuditConfig()

	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.Scanners.Code.Enabled)
	assert.True(t, cfg.Scanners.Dependencies.Enabled)
	assert.True(t, cfg.Scanners.Configuration.Enabled)
	assert.Equal(t, DefaultRuleSets, cfg.Scanners.Code.Rules)
	assert.Equal(t, DefaultExcludePatterns, cfg.Scanners.Code.Exclude)
	assert.Equal(t, DefaultFailOnSeverity, cfg.Reporting.FailOnSeverity)
	assert.Equal(t, []string{DefaultReportFormat}, cfg.Reporting.Formats)
	assert.False(t, cfg.Reporting.CreateIssues)
	assert.False(t, cfg.Reporting.CommentOnPR)
	assert.Empty(t, cfg.Suppressions)

	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, NewDefaultSecurityAuditConfig(), cfg)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), zerolog.Nop())
	assert.Error(t, err)
}

func TestLoadConfig_YAMLOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, "audit.yaml", `
enabled: true
scanners:
  code:
    enabled: true
    rules:
      - owasp-top10
  dependencies:
    enabled: false
reporting:
  fail_on_severity: critical
  formats:
    - json
suppressions:
  - rule: OWASP-A01-001
    file: src/fixtures/*.ts
    reason: fixture values are synthetic and rotated
`)

	cfg, err := LoadConfig(path, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, []string{"owasp-top10"}, cfg.Scanners.Code.Rules)
	assert.False(t, cfg.Scanners.Dependencies.Enabled)
	assert.Equal(t, "critical", cfg.Reporting.FailOnSeverity)
	assert.Equal(t, []string{"json"}, cfg.Reporting.Formats)
	require.Len(t, cfg.Suppressions, 1)
	assert.Equal(t, "OWASP-A01-001", cfg.Suppressions[0].Rule)
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeConfigFile(t, "audit.json", `{
  "enabled": true,
  "reporting": {"fail_on_severity": "medium"}
}`)

	cfg, err := LoadConfig(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "medium", cfg.Reporting.FailOnSeverity)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "audit.yaml", "scanners: [not: a: map\n")
	_, err := LoadConfig(path, zerolog.Nop())
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SecurityAuditConfig)
		wantErr bool
	}{
		{
			name:   "defaults valid",
			mutate: func(cfg *SecurityAuditConfig) {},
		},
		{
			name: "empty fail_on_severity allowed",
			mutate: func(cfg *SecurityAuditConfig) {
				cfg.Reporting.FailOnSeverity = ""
			},
		},
		{
			name: "unknown severity rejected",
			mutate: func(cfg *SecurityAuditConfig) {
				cfg.Reporting.FailOnSeverity = "severe"
			},
			wantErr: true,
		},
		{
			name: "unknown rule set rejected",
			mutate: func(cfg *SecurityAuditConfig) {
				cfg.Scanners.Code.Rules = []string{"owasp-top10", "pci-dss"}
			},
			wantErr: true,
		},
		{
			name: "unknown report format rejected",
			mutate: func(cfg *SecurityAuditConfig) {
				cfg.Reporting.Formats = []string{"console", "pdf"}
			},
			wantErr: true,
		},
		{
			name: "unknown log level rejected",
			mutate: func(cfg *SecurityAuditConfig) {
				cfg.LogConfig.LogLevel = "verbose"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultSecurityAuditConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
