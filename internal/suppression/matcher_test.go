package suppression

import (
	"fmt"
	"sync"
	"testing"

	"github.com/aleister1102/secaudit/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestMatcher(suppressions []config.Suppression) *Matcher {
	return NewMatcher(suppressions, zerolog.Nop())
}

func TestShouldSuppress_ExactMatch(t *testing.T) {
	matcher := newTestMatcher([]config.Suppression{
		{Rule: "OWASP-A01-001", File: "src/config/auth.ts", Reason: "reviewed, value is a placeholder"},
	})

	assert.True(t, matcher.ShouldSuppress("OWASP-A01-001", "src/config/auth.ts"))
	assert.False(t, matcher.ShouldSuppress("OWASP-A01-002", "src/config/auth.ts"))
	assert.False(t, matcher.ShouldSuppress("OWASP-A01-001", "src/config/other.ts"))
}

func TestShouldSuppress_SingleWildcardStaysInSegment(t *testing.T) {
	matcher := newTestMatcher([]config.Suppression{
		{Rule: "*", File: "src/types/*.ts", Reason: "type definitions contain no executable code"},
	})

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "file in segment", path: "src/types/persona.ts", want: true},
		{name: "nested file not matched", path: "src/types/sub/nested.ts", want: false},
		{name: "no partial segment match", path: "src/types-new/file.ts", want: false},
		{name: "different extension", path: "src/types/persona.js", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.ShouldSuppress("CWE-89-001", tt.path))
		})
	}
}

func TestShouldSuppress_DoubleWildcardCrossesSegments(t *testing.T) {
	matcher := newTestMatcher([]config.Suppression{
		{Rule: "*", File: "src/marketplace/**", Reason: "marketplace content is validated upstream"},
	})

	assert.True(t, matcher.ShouldSuppress("OWASP-A03-002", "src/marketplace/x.ts"))
	assert.True(t, matcher.ShouldSuppress("OWASP-A03-002", "src/marketplace/a/b/c.ts"))
	assert.False(t, matcher.ShouldSuppress("OWASP-A03-002", "src/portfolio/x.ts"))
}

func TestShouldSuppress_UniversalSuppression(t *testing.T) {
	matcher := newTestMatcher([]config.Suppression{
		{Rule: "*", File: "*", Reason: "temporary blanket suppression during migration"},
	})

	assert.True(t, matcher.ShouldSuppress("OWASP-A01-001", "src/index.ts"))
	assert.True(t, matcher.ShouldSuppress("CWE-22-001", "README.md"))
	assert.True(t, matcher.ShouldSuppress("ANY-RULE-ID", "no/extension/file"))
}

func TestShouldSuppress_RuleWildcard(t *testing.T) {
	matcher := newTestMatcher([]config.Suppression{
		{Rule: "*", File: "docs/**", Reason: "documentation snippets are not executable"},
	})

	assert.True(t, matcher.ShouldSuppress("OWASP-A01-001", "docs/examples/auth.ts"))
	assert.True(t, matcher.ShouldSuppress("DMCP-SEC-003", "docs/examples/auth.ts"))
	assert.False(t, matcher.ShouldSuppress("OWASP-A01-001", "src/auth.ts"))
}

func TestShouldSuppress_RulePrefixWildcard(t *testing.T) {
	matcher := newTestMatcher([]config.Suppression{
		{Rule: "DMCP-SEC-*", File: "*", Reason: "app-specific rules disabled for the legacy tree"},
	})

	assert.True(t, matcher.ShouldSuppress("DMCP-SEC-001", "src/a.ts"))
	assert.True(t, matcher.ShouldSuppress("DMCP-SEC-004", "src/b.ts"))
	assert.False(t, matcher.ShouldSuppress("DMCP-TEST-001", "src/a.test.ts"))
	assert.False(t, matcher.ShouldSuppress("OWASP-A01-001", "src/a.ts"))
}

func TestShouldSuppress_PathNormalizationInvariance(t *testing.T) {
	matcher := newTestMatcher([]config.Suppression{
		{Rule: "OWASP-A01-001", File: "src/utils/secrets.ts", Reason: "test fixture values, rotated regularly"},
	}).WithRootMarkers("myproject")

	variants := []struct {
		name string
		path string
	}{
		{name: "plain relative", path: "src/utils/secrets.ts"},
		{name: "backslash separators", path: `src\utils\secrets.ts`},
		{name: "duplicate slashes", path: "src//utils///secrets.ts"},
		{name: "trailing slash", path: "src/utils/secrets.ts/"},
		{name: "absolute CI prefix", path: "/home/runner/work/myproject/src/utils/secrets.ts"},
		{name: "windows absolute prefix", path: `C:\build\myproject\src\utils\secrets.ts`},
	}

	for _, tt := range variants {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, matcher.ShouldSuppress("OWASP-A01-001", tt.path),
				"variant %q should normalize to the suppressed path", tt.path)
		})
	}
}

func TestShouldSuppress_EmptyPathNeverMatches(t *testing.T) {
	matcher := newTestMatcher([]config.Suppression{
		{Rule: "*", File: "*", Reason: "blanket suppression used for this test"},
	})

	assert.False(t, matcher.ShouldSuppress("OWASP-A01-001", ""))
}

func TestShouldSuppress_CacheTransparency(t *testing.T) {
	matcher := newTestMatcher([]config.Suppression{
		{Rule: "CWE-78-001", File: "scripts/**", Reason: "build scripts reviewed individually"},
	})

	first := matcher.ShouldSuppress("CWE-78-001", "scripts/release.sh")
	second := matcher.ShouldSuppress("CWE-78-001", "scripts/release.sh")
	assert.Equal(t, first, second)

	matcher.ClearCache()
	third := matcher.ShouldSuppress("CWE-78-001", "scripts/release.sh")
	assert.Equal(t, first, third, "clearing the cache must not change the answer")
}

func TestShouldSuppress_ConcurrentLookups(t *testing.T) {
	matcher := newTestMatcher([]config.Suppression{
		{Rule: "*", File: "generated/**", Reason: "generated code is rebuilt on every release"},
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				path := fmt.Sprintf("generated/file%d.ts", j%10)
				assert.True(t, matcher.ShouldSuppress("OWASP-A02-001", path))
				if j%25 == 0 && n == 0 {
					matcher.ClearCache()
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		sups       []config.Suppression
		wantErrors int
	}{
		{
			name: "fully valid",
			sups: []config.Suppression{
				{Rule: "OWASP-A01-001", File: "src/fixtures/*.ts", Reason: "fixture credentials are synthetic"},
				{Rule: "*", File: "docs/**", Reason: "documentation code blocks are not executed"},
			},
			wantErrors: 0,
		},
		{
			name: "short reason rejected",
			sups: []config.Suppression{
				{Rule: "OWASP-A01-001", File: "src/a.ts", Reason: "fp"},
			},
			wantErrors: 1,
		},
		{
			name: "empty fields rejected",
			sups: []config.Suppression{
				{Rule: "", File: "", Reason: "reason long enough to pass the length check"},
			},
			wantErrors: 2,
		},
		{
			name: "malformed rule id rejected",
			sups: []config.Suppression{
				{Rule: "not a rule id", File: "src/a.ts", Reason: "reason long enough to pass"},
			},
			wantErrors: 1,
		},
		{
			name: "malformed glob rejected",
			sups: []config.Suppression{
				{Rule: "CWE-22-001", File: "src/[unclosed.ts", Reason: "reason long enough to pass"},
			},
			wantErrors: 1,
		},
		{
			name: "duplicate exact entries rejected",
			sups: []config.Suppression{
				{Rule: "CWE-22-001", File: "src/a.ts", Reason: "first entry with a valid reason"},
				{Rule: "CWE-22-001", File: "src/a.ts", Reason: "second entry duplicating the first"},
			},
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := newTestMatcher(tt.sups).Validate()
			assert.Len(t, errs, tt.wantErrors, "errors: %v", errs)
		})
	}
}

func TestStats(t *testing.T) {
	matcher := newTestMatcher([]config.Suppression{
		{Rule: "OWASP-A01-001", File: "a.ts", Reason: "reviewed and accepted as safe"},
		{Rule: "OWASP-A01-001", File: "b.ts", Reason: "reviewed and accepted as safe"},
		{Rule: "CWE-89-001", File: "c.ts", Reason: "queries are parameterized upstream"},
		{Rule: "DMCP-SEC-002", File: "d.ts", Reason: "content sanitized by the renderer"},
		{Rule: "*", File: "docs/**", Reason: "documentation snippets are inert"},
	})

	stats := matcher.Stats()

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.ByRule["OWASP-A01-001"])
	assert.Equal(t, 1, stats.ByRule["CWE-89-001"])
	assert.Equal(t, 2, stats.ByCategory["OWASP"])
	assert.Equal(t, 1, stats.ByCategory["CWE"])
	assert.Equal(t, 1, stats.ByCategory["DMCP"])
	assert.Equal(t, 1, stats.ByCategory["*"])
}
