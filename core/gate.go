package core

import "strings"

// RequiresAuth reports whether a request path needs an authenticated
// principal, given the operator's exclusion rules.
//
// An empty path or an empty rule list fails open to authentication: the
// answer is true. The path is normalized to carry a single trailing slash
// before matching, and rules are evaluated in list order with the first
// match winning, so precedence reads top to bottom. Three rule shapes are
// understood:
//
//	"/api/v1/status"   exact path (compared in normalized form)
//	"/api/v1/stat*"    prefix wildcard
//	"/api/v1/status/"  directory rule, equivalent to "/api/v1/status/*"
//
// Matching is plain string comparison; no patterns are compiled per request.
func RequiresAuth(path string, excludedPaths []string) bool {
	if path == "" || len(excludedPaths) == 0 {
		return true
	}

	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	for _, rule := range excludedPaths {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		switch {
		case strings.HasSuffix(rule, "*"):
			if strings.HasPrefix(path, rule[:len(rule)-1]) {
				return false
			}
		case strings.HasSuffix(rule, "/"):
			// Directory rule: "dir/" behaves as "dir/*".
			if strings.HasPrefix(path, rule) {
				return false
			}
		default:
			if path == rule+"/" {
				return false
			}
		}
	}

	return true
}
