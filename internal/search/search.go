// Package search turns the text committed in the search bar into a navigation target.
package search

import (
	"net/url"
	"regexp"
	"strings"

	"newtab/internal/links"
)

// DefaultEngineURL receives the escaped query appended to it.
const DefaultEngineURL = "https://www.google.com/search?q="

// domainLike matches input ending in a dot extension, e.g. "example.com".
var domainLike = regexp.MustCompile(`\.\w+$`)

// LooksLikeURL reports whether the query should be opened directly.
func LooksLikeURL(query string) bool {
	return domainLike.MatchString(strings.TrimSpace(query))
}

// Resolve returns the URL to navigate to, or "" for an empty query.
func Resolve(query, engineURL string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}
	if LooksLikeURL(query) {
		return links.NormalizeURL(query)
	}
	if engineURL == "" {
		engineURL = DefaultEngineURL
	}
	return engineURL + url.QueryEscape(query)
}
