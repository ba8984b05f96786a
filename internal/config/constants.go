package config

const (
	// Reporting defaults
	DefaultReportFormat   = "console"
	DefaultFailOnSeverity = "high"

	// Log defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Scanner defaults
	DefaultMaxFileSizeMB = 5
	DefaultScanWorkers   = 8

	// MinSuppressionReasonLength rejects throwaway justifications;
	// every suppression must explain itself.
	MinSuppressionReasonLength = 10
)

// DefaultRuleSets lists the rule sets loaded when none are configured.
var DefaultRuleSets = []string{"owasp-top10", "cwe-top25", "dmcp-security"}

// DefaultExcludePatterns keeps dependency, build, and coverage output
// out of the scan.
var DefaultExcludePatterns = []string{
	"node_modules/**",
	"vendor/**",
	"dist/**",
	"build/**",
	"coverage/**",
	".git/**",
}

// DefaultReportFormats is the reporting formats used when none are configured.
var DefaultReportFormats = []string{DefaultReportFormat}
