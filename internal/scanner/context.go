package scanner

import (
	"path/filepath"
	"strings"

	"github.com/aleister1102/secaudit/internal/models"
)

// buildScanContext derives the per-file context a rule sees. A file is
// a test file when its path contains "test" or "spec".
func buildScanContext(projectRoot, relPath string) models.ScanContext {
	lower := strings.ToLower(relPath)
	return models.ScanContext{
		ProjectRoot: projectRoot,
		FileType:    strings.TrimPrefix(filepath.Ext(relPath), "."),
		IsTest:      strings.Contains(lower, "test") || strings.Contains(lower, "spec"),
	}
}

// offsetToLineColumn converts a byte offset into 1-based line and
// column numbers by counting newlines up to the offset.
func offsetToLineColumn(content string, offset int) (line, column int) {
	if offset > len(content) {
		offset = len(content)
	}
	prefix := content[:offset]
	line = strings.Count(prefix, "\n") + 1
	if idx := strings.LastIndex(prefix, "\n"); idx >= 0 {
		column = offset - idx
	} else {
		column = offset + 1
	}
	return line, column
}

// lineSnippet extracts the trimmed source line containing the offset,
// bounded to the maximum snippet length.
func lineSnippet(content string, offset int) string {
	if offset > len(content) {
		offset = len(content)
	}
	start := strings.LastIndex(content[:offset], "\n") + 1
	end := strings.Index(content[offset:], "\n")
	if end < 0 {
		end = len(content)
	} else {
		end += offset
	}
	line := strings.TrimSpace(content[start:end])
	if len(line) > models.MaxCodeSnippetLength {
		line = line[:models.MaxCodeSnippetLength]
	}
	return line
}
