package links

import "strings"

// NormalizeURL prefixes https:// unless the value already carries an http(s) scheme.
func NormalizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if HasScheme(s) {
		return s
	}
	return "https://" + s
}

// HasScheme reports whether s starts with http:// or https://.
func HasScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
