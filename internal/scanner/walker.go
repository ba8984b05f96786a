package scanner

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/aleister1102/secaudit/internal/common"
	"github.com/gobwas/glob"
	"github.com/rs/zerolog"
)

// scanExtensions is the fixed set of file types the code scanner looks at.
var scanExtensions = map[string]bool{
	".ts":   true,
	".tsx":  true,
	".js":   true,
	".jsx":  true,
	".mjs":  true,
	".cjs":  true,
	".go":   true,
	".py":   true,
	".json": true,
	".yml":  true,
	".yaml": true,
}

// Walker enumerates candidate files under a project root, honoring
// exclusion globs. Paths are returned slash-separated and relative to
// the root, in directory enumeration order.
type Walker struct {
	excludes    []glob.Glob
	excludeDirs []glob.Glob // prefix globs derived from patterns ending in /**
	onlyNames   map[string]bool
	logger      zerolog.Logger
}

// NewWalker compiles the exclusion patterns. Globs use / as the path
// separator so * stays within one segment and ** crosses directories.
func NewWalker(excludePatterns []string, logger zerolog.Logger) (*Walker, error) {
	w := &Walker{
		logger: logger.With().Str("component", "Walker").Logger(),
	}

	for _, p := range excludePatterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, common.WrapErrorf(err, "invalid exclude pattern %q", p)
		}
		w.excludes = append(w.excludes, g)

		// Patterns shaped like dir/** allow pruning the whole subtree
		// instead of testing every file under it.
		if prefix, ok := strings.CutSuffix(p, "/**"); ok && !strings.ContainsAny(prefix, "*?[") {
			dg, err := glob.Compile(prefix, '/')
			if err == nil {
				w.excludeDirs = append(w.excludeDirs, dg)
			}
		}
	}
	return w, nil
}

// WithFileNames restricts the walk to files with one of the given base
// names (used by the dependency scanner for manifests).
func (w *Walker) WithFileNames(names ...string) *Walker {
	w.onlyNames = make(map[string]bool, len(names))
	for _, name := range names {
		w.onlyNames[name] = true
	}
	return w
}

// Walk enumerates matching files under root.
func (w *Walker) Walk(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// A nil entry means the root itself could not be stat'ed;
			// that is a scan-level failure, not a skippable file.
			if d == nil {
				return err
			}
			// Unreadable entries below the root are skipped, not fatal.
			w.logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ctx != nil {
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
		}

		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if w.prunedDir(rel) {
				return fs.SkipDir
			}
			return nil
		}

		if !w.candidate(rel, d.Name()) || w.excluded(rel) {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to walk project tree at %s", root)
	}
	return files, nil
}

// candidate applies the extension or file-name filter.
func (w *Walker) candidate(rel, name string) bool {
	if w.onlyNames != nil {
		return w.onlyNames[name]
	}
	return scanExtensions[strings.ToLower(filepath.Ext(rel))]
}

// excluded reports whether any exclusion glob matches the relative path.
func (w *Walker) excluded(rel string) bool {
	for _, g := range w.excludes {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// prunedDir reports whether a directory's whole subtree is excluded.
func (w *Walker) prunedDir(rel string) bool {
	for _, g := range w.excludeDirs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
