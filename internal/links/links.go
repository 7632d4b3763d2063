// Package links builds web-search and video-search URLs for questions the
// assistant redirects outside the loaded recipe. It never touches the
// network.
package links

import (
	"net/url"
	"strings"
)

const (
	searchBase = "https://www.google.com/search?q="
	videoBase  = "https://www.youtube.com/results?search_query="
)

// Pair holds one web-search link and one video-search link for a query.
type Pair struct {
	Search string
	Video  string
}

// Build collapses whitespace in the query, escapes it, and returns both
// links.
func Build(query string) Pair {
	q := url.QueryEscape(strings.Join(strings.Fields(query), " "))
	return Pair{
		Search: searchBase + q,
		Video:  videoBase + q,
	}
}
