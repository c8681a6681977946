package wikifeet

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"wikifeet-go/lib/textutil"
)

const (
	report_search_suggest    = "search.suggest"
	report_search_similarity = "search.similarity"
)

// suggestions whose name is less similar to the query than this are reported
const minSuggestionSimilarity = 0.7

// escapeDataString percent-encodes everything but unreserved characters, spaces become %20.
func escapeDataString(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func suggestionUrl(query string) string {
	return suggestUrl + escapeDataString(query)
}

// Search resolves a model by name using the site's autocomplete endpoint, the first
// suggestion wins. Models resolved this way go through the adult content gate on every
// accessor. On failure the returned model is unresolved and the error wraps ErrNotFound.
func (c Client) Search(ctx context.Context, query string) (Model, error) {
	body, err := c.fetch.FetchText(ctx, suggestionUrl(query))
	if err != nil {
		c.tel.ReportWarning(report_search_suggest, fmt.Errorf("fetch: %w", err), query)
		return c.unresolved(OriginSearch), fmt.Errorf("search %q: %w: %w", query, ErrNotFound, err)
	}

	unescaped := strings.ReplaceAll(body, `\`, "")
	groups, ok := extractFirst(unescaped, suggestionPattern)
	if !ok {
		c.tel.ReportDebug(report_search_suggest, "no suggestion", query)
		return c.unresolved(OriginSearch), fmt.Errorf("search %q: %w", query, ErrNotFound)
	}

	name, segment := groups[0], groups[1]
	similarity := textutil.NameSimilarity(query, name)
	if similarity < minSuggestionSimilarity {
		c.tel.ReportWarning(report_search_similarity, query, name, similarity)
	}

	return c.resolved(OriginSearch, newModelRecord(nil, name, segment)), nil
}
