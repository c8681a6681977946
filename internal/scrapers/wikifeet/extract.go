package wikifeet

import (
	"regexp"
)

// extractFirst returns the capture groups of the first match of pattern in text, the
// element at index 0 is group 1.
func extractFirst(text string, pattern *regexp.Regexp) ([]string, bool) {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return nil, false
	}
	return match[1:], true
}

// extractAll returns the capture groups of every non-overlapping match in document order.
func extractAll(text string, pattern *regexp.Regexp) [][]string {
	matches := pattern.FindAllStringSubmatch(text, -1)
	out := make([][]string, len(matches))
	for i, m := range matches {
		out[i] = m[1:]
	}
	return out
}

// capture is one step of a fallback chain: a pattern and the (1-based) group holding the value.
type capture struct {
	pattern *regexp.Regexp
	group   int
}

// extractChain tries each capture in order and returns the value of the first one that matches.
func extractChain(text string, chain []capture) (string, bool) {
	for _, c := range chain {
		groups, ok := extractFirst(text, c.pattern)
		if !ok || c.group < 1 || c.group > len(groups) {
			continue
		}
		return groups[c.group-1], true
	}
	return "", false
}
