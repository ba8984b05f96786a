package config

// SecurityAuditConfig is the root configuration for the audit engine.
// It is constructed once (default or user-supplied) and handed to the
// auditor; nothing mutates it after that.
type SecurityAuditConfig struct {
	Enabled      bool            `json:"enabled" yaml:"enabled"`
	Scanners     ScannersConfig  `json:"scanners" yaml:"scanners"`
	Reporting    ReportingConfig `json:"reporting" yaml:"reporting"`
	Suppressions []Suppression   `json:"suppressions,omitempty" yaml:"suppressions,omitempty"`
	LogConfig    LogConfig       `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// ScannersConfig groups per-scanner configuration sections.
type ScannersConfig struct {
	Code          CodeScannerConfig          `json:"code" yaml:"code"`
	Dependencies  DependencyScannerConfig    `json:"dependencies" yaml:"dependencies"`
	Configuration ConfigurationScannerConfig `json:"configuration" yaml:"configuration"`
}

// CodeScannerConfig configures the pattern-rule code scanner.
type CodeScannerConfig struct {
	Enabled bool     `json:"enabled" yaml:"enabled"`
	Rules   []string `json:"rules,omitempty" yaml:"rules,omitempty" validate:"omitempty,dive,ruleset"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// DependencyScannerConfig configures the dependency manifest scanner.
type DependencyScannerConfig struct {
	Enabled bool     `json:"enabled" yaml:"enabled"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// ConfigurationScannerConfig configures the insecure-settings scanner.
type ConfigurationScannerConfig struct {
	Enabled bool     `json:"enabled" yaml:"enabled"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// ReportingConfig controls report rendering and the build-failure policy.
type ReportingConfig struct {
	Formats      []string `json:"formats,omitempty" yaml:"formats,omitempty" validate:"omitempty,dive,reportformat"`
	CreateIssues bool     `json:"create_issues" yaml:"create_issues"`
	CommentOnPR  bool     `json:"comment_on_pr" yaml:"comment_on_pr"`
	// FailOnSeverity fails the audit when any surviving finding is at
	// or above this level. Empty disables the policy; "info" fails on
	// any finding at all.
	FailOnSeverity string `json:"fail_on_severity,omitempty" yaml:"fail_on_severity,omitempty" validate:"omitempty,severityname"`
}

// Suppression is a configured exception removing findings that match a
// rule/file pattern from the report. File accepts an exact relative
// path, a glob with * (single segment) and ** (any depth), or "*".
// Rule accepts an exact rule id, a "PREFIX-*" wildcard, or "*".
type Suppression struct {
	Rule   string `json:"rule" yaml:"rule"`
	File   string `json:"file" yaml:"file"`
	Reason string `json:"reason" yaml:"reason"`
}

// NewDefaultSecurityAuditConfig creates the default configuration: all
// scanners enabled, all rule sets, default excludes, and a
// fail_on_severity of "high".
func NewDefaultSecurityAuditConfig() *SecurityAuditConfig {
	return &SecurityAuditConfig{
		Enabled: true,
		Scanners: ScannersConfig{
			Code: CodeScannerConfig{
				Enabled: true,
				Rules:   append([]string(nil), DefaultRuleSets...),
				Exclude: append([]string(nil), DefaultExcludePatterns...),
			},
			Dependencies: DependencyScannerConfig{
				Enabled: true,
				Exclude: append([]string(nil), DefaultExcludePatterns...),
			},
			Configuration: ConfigurationScannerConfig{
				Enabled: true,
				Exclude: append([]string(nil), DefaultExcludePatterns...),
			},
		},
		Reporting: ReportingConfig{
			Formats:        append([]string(nil), DefaultReportFormats...),
			CreateIssues:   false,
			CommentOnPR:    false,
			FailOnSeverity: DefaultFailOnSeverity,
		},
		LogConfig: NewDefaultLogConfig(),
	}
}
