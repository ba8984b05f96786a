package suppression

import "strings"

// normalizePath brings every incoming path into the canonical
// project-relative, slash-separated form suppression patterns are
// written against. Applied before any comparison so that Windows
// separators, duplicate slashes, trailing slashes, and absolute CI
// prefixes all resolve to the same key.
func (m *Matcher) normalizePath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")

	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}

	path = strings.TrimSuffix(path, "/")
	path = strings.TrimPrefix(path, "./")

	// Strip everything up to and including the project root marker so
	// absolute paths from different machines normalize identically.
	for _, marker := range m.rootMarkers {
		if marker == "" {
			continue
		}
		if idx := strings.Index(path, "/"+marker+"/"); idx >= 0 {
			path = path[idx+len(marker)+2:]
			break
		}
	}

	return path
}
