// Package reporter renders completed scan results for different
// consumers. Reporters are stateless, pure transformations of a
// ScanResult; they work the same whether or not the audit call
// ultimately failed the build.
package reporter

import (
	"strings"

	"github.com/aleister1102/secaudit/internal/common"
	"github.com/aleister1102/secaudit/internal/models"
)

// Reporter turns a scan result into output for one consumer.
type Reporter interface {
	Generate(result *models.ScanResult) string
}

// Supported report format names.
const (
	FormatConsole  = "console"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// ForFormat resolves a format name to its reporter.
func ForFormat(format string) (Reporter, error) {
	switch strings.ToLower(format) {
	case FormatConsole:
		return NewConsoleReporter(false), nil
	case FormatMarkdown:
		return &MarkdownReporter{}, nil
	case FormatJSON:
		return &JSONReporter{}, nil
	default:
		return nil, common.NewError("unknown report format: %q", format)
	}
}
