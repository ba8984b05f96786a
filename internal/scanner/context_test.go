package scanner

import (
	"strings"
	"testing"

	"github.com/aleister1102/secaudit/internal/models"
	"github.com/aleister1102/secaudit/internal/rules"
	"github.com/stretchr/testify/assert"
)

func TestBuildScanContext(t *testing.T) {
	tests := []struct {
		name         string
		relPath      string
		wantFileType string
		wantIsTest   bool
	}{
		{name: "plain source file", relPath: "src/auth/login.ts", wantFileType: "ts", wantIsTest: false},
		{name: "test suffix", relPath: "src/auth/login.test.ts", wantFileType: "ts", wantIsTest: true},
		{name: "spec suffix", relPath: "src/auth/login.spec.js", wantFileType: "js", wantIsTest: true},
		{name: "tests directory", relPath: "tests/fixtures/data.json", wantFileType: "json", wantIsTest: true},
		{name: "uppercase test marker", relPath: "src/TestHelpers/util.go", wantFileType: "go", wantIsTest: true},
		{name: "no extension", relPath: "Makefile", wantFileType: "", wantIsTest: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := buildScanContext("/project", tt.relPath)
			assert.Equal(t, "/project", ctx.ProjectRoot)
			assert.Equal(t, tt.wantFileType, ctx.FileType)
			assert.Equal(t, tt.wantIsTest, ctx.IsTest)
		})
	}
}

func TestOffsetToLineColumn(t *testing.T) {
	content := "first\nsecond line\nthird"

	tests := []struct {
		name       string
		offset     int
		wantLine   int
		wantColumn int
	}{
		{name: "start of content", offset: 0, wantLine: 1, wantColumn: 1},
		{name: "middle of first line", offset: 3, wantLine: 1, wantColumn: 4},
		{name: "start of second line", offset: 6, wantLine: 2, wantColumn: 1},
		{name: "middle of second line", offset: 13, wantLine: 2, wantColumn: 8},
		{name: "start of third line", offset: 18, wantLine: 3, wantColumn: 1},
		{name: "offset past end clamps", offset: 1000, wantLine: 3, wantColumn: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, column := offsetToLineColumn(content, tt.offset)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantColumn, column)
		})
	}
}

func TestLineSnippet(t *testing.T) {
	t.Run("extracts trimmed containing line", func(t *testing.T) {
		content := "before\n  const apiKey = \"abc\";  \nafter"
		offset := strings.Index(content, "apiKey")
		assert.Equal(t, `const apiKey = "abc";`, lineSnippet(content, offset))
	})

	t.Run("truncates long lines", func(t *testing.T) {
		long := strings.Repeat("x", 500)
		got := lineSnippet(long, 10)
		assert.Len(t, got, models.MaxCodeSnippetLength)
	})

	t.Run("last line without newline", func(t *testing.T) {
		content := "first\nlast line"
		offset := strings.Index(content, "last")
		assert.Equal(t, "last line", lineSnippet(content, offset))
	})
}

func TestDeriveConfidence(t *testing.T) {
	plainRule := rules.SecurityRule{ID: "CWE-1333-001", Severity: models.SeverityMedium}
	highRule := rules.SecurityRule{ID: "OWASP-A01-002", Severity: models.SeverityCritical, Tags: []string{rules.TagHighConfidence}}

	tests := []struct {
		name    string
		rule    rules.SecurityRule
		snippet string
		ctx     models.ScanContext
		want    models.Confidence
	}{
		{name: "high confidence tag wins", rule: highRule, snippet: "example secret", ctx: models.ScanContext{IsTest: true}, want: models.ConfidenceHigh},
		{name: "test context ranks low", rule: plainRule, snippet: "const p = password", ctx: models.ScanContext{IsTest: true}, want: models.ConfidenceLow},
		{name: "example snippet ranks low", rule: plainRule, snippet: `const exampleKey = "abc"`, ctx: models.ScanContext{}, want: models.ConfidenceLow},
		{name: "demo snippet ranks low", rule: plainRule, snippet: `demoPassword = "abc"`, ctx: models.ScanContext{}, want: models.ConfidenceLow},
		{name: "ordinary match is medium", rule: plainRule, snippet: `const key = "abc"`, ctx: models.ScanContext{}, want: models.ConfidenceMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveConfidence(tt.rule, tt.snippet, tt.ctx))
		})
	}
}
