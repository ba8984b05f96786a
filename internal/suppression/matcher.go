// Package suppression decides whether a (ruleId, filePath) pair is a
// configured false positive that should be dropped from audit results.
package suppression

import (
	"strings"
	"sync"

	"github.com/aleister1102/secaudit/internal/config"
	"github.com/gobwas/glob"
	"github.com/rs/zerolog"
)

// defaultRootMarkers are directory names treated as the project root
// when normalizing absolute paths from different machines or CI
// runners down to project-relative form.
var defaultRootMarkers = []string{"secaudit"}

// Matcher evaluates suppressions against findings. It owns a
// process-lifetime result cache; construct independent instances for
// independent configurations instead of sharing globals.
type Matcher struct {
	suppressions []config.Suppression
	rootMarkers  []string
	logger       zerolog.Logger

	mu    sync.RWMutex
	cache map[string]bool

	globMu sync.Mutex
	globs  map[string]glob.Glob
}

// NewMatcher creates a matcher for a fixed suppression list. The list
// is static configuration; it is never mutated after construction.
func NewMatcher(suppressions []config.Suppression, logger zerolog.Logger) *Matcher {
	return &Matcher{
		suppressions: suppressions,
		rootMarkers:  defaultRootMarkers,
		logger:       logger.With().Str("component", "SuppressionMatcher").Logger(),
		cache:        make(map[string]bool),
		globs:        make(map[string]glob.Glob),
	}
}

// WithRootMarkers overrides the directory names recognized as the
// project root during path normalization.
func (m *Matcher) WithRootMarkers(markers ...string) *Matcher {
	m.rootMarkers = markers
	return m
}

// ShouldSuppress reports whether the finding identified by ruleID and
// filePath matches any configured suppression. An empty path never
// matches. Results are cached per (ruleID, filePath) pair; caching is
// purely a performance optimization and never changes the answer.
func (m *Matcher) ShouldSuppress(ruleID, filePath string) bool {
	if filePath == "" {
		return false
	}

	key := ruleID + "\x00" + filePath

	m.mu.RLock()
	cached, ok := m.cache[key]
	m.mu.RUnlock()
	if ok {
		return cached
	}

	result := m.evaluate(ruleID, m.normalizePath(filePath))

	m.mu.Lock()
	m.cache[key] = result
	m.mu.Unlock()

	return result
}

// ClearCache empties the lookup cache. Correct answers are unaffected;
// only recomputation becomes observable again.
func (m *Matcher) ClearCache() {
	m.mu.Lock()
	m.cache = make(map[string]bool)
	m.mu.Unlock()
}

// evaluate checks the pair against every suppression; declaration
// order never matters because any single match suppresses.
func (m *Matcher) evaluate(ruleID, path string) bool {
	for _, s := range m.suppressions {
		if ruleMatches(s.Rule, ruleID) && m.fileMatches(s.File, path) {
			return true
		}
	}
	return false
}

// ruleMatches supports exact ids, the universal "*", and "PREFIX-*"
// wildcards.
func ruleMatches(pattern, ruleID string) bool {
	if pattern == "*" || pattern == ruleID {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(ruleID, prefix)
	}
	return false
}

// fileMatches supports the universal "*", exact relative paths, and
// globs where * stays inside a path segment and ** crosses segments.
func (m *Matcher) fileMatches(pattern, path string) bool {
	if pattern == "*" || pattern == "**" {
		return true
	}
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern == path
	}

	g := m.compiledGlob(pattern)
	return g != nil && g.Match(path)
}

// compiledGlob compiles and memoizes a file pattern. Malformed patterns
// are reported by Validate; here they simply never match.
func (m *Matcher) compiledGlob(pattern string) glob.Glob {
	m.globMu.Lock()
	defer m.globMu.Unlock()

	if g, ok := m.globs[pattern]; ok {
		return g
	}

	g, err := glob.Compile(pattern, '/')
	if err != nil {
		m.logger.Warn().Err(err).Str("pattern", pattern).Msg("Malformed suppression file pattern")
		g = nil
	}
	m.globs[pattern] = g
	return g
}
