package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// staticPaths are returned unchanged even when a pattern below would match them.
var staticPaths = map[string]struct{}{
	"/moderator/index": {},
	"/analyst/index":   {},
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/id/[^/]+$`), Template: "/articles/id/:id"},
	{Pattern: regexp.MustCompile(`^/articles/includes/[^/]+$`), Template: "/articles/includes/:id"},
	{Pattern: regexp.MustCompile(`^/articles/doi/.+$`), Template: "/articles/doi/:doi"},

	{Pattern: regexp.MustCompile(`^/moderator/promote/[^/]+$`), Template: "/moderator/promote/:id"},
	{Pattern: regexp.MustCompile(`^/moderator/[^/]+$`), Template: "/moderator/:id"},

	{Pattern: regexp.MustCompile(`^/analyst/promote/[^/]+$`), Template: "/analyst/promote/:id"},
	{Pattern: regexp.MustCompile(`^/analyst/[^/]+$`), Template: "/analyst/:id"},

	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/*"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs or DOIs to template format.
//
// Examples:
//
//	NormalizePath("/articles/id/0b6f...")        // "/articles/id/:id"
//	NormalizePath("/articles/doi/10.1145/33680") // "/articles/doi/:doi"
//	NormalizePath("/moderator/index")            // "/moderator/index" (unchanged)
//	NormalizePath("/moderator/promote/0b6f...")  // "/moderator/promote/:id"
//	NormalizePath("/articles/filter?keywords=x") // "/articles/filter"
//	NormalizePath("/unknown/path/123")           // "/unknown/path/123" (no match, return original)
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticPaths[path]; ok {
		return path
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}

// GetExpectedCardinality returns the expected number of unique path labels
// after normalization: one per template plus the static endpoints
// (/articles, /articles/filter, /articles/new, /analyst, /rejected, the two
// queue indexes, health, metrics and auth).
func GetExpectedCardinality() int {
	const staticCount = 12
	return len(pathPatterns) + staticCount
}
