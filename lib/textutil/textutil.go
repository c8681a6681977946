package textutil

import (
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName lowercases a name and removes all whitespace, underscores and hyphens
// so that "Jane Doe", "jane_doe" and "Jane-Doe" normalize to the same string.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	name = strings.NewReplacer("_", "", "-", "").Replace(name)
	return name
}

// NameSimilarity returns the Jaro-Winkler similarity of two normalized names in [0, 1].
func NameSimilarity(a, b string) float64 {
	left := NormalizeName(a)
	right := NormalizeName(b)
	if left == "" && right == "" {
		return 1
	}
	if left == "" || right == "" {
		return 0
	}
	return matchr.JaroWinkler(left, right, false)
}
