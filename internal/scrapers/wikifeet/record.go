package wikifeet

import (
	"strings"
)

const (
	baseUrl       = "https://www.wikifeet.com"
	rankListUrl   = baseUrl + "/feetoftheyear"
	suggestUrl    = baseUrl + "/perl/ajax.fpl?req=suggest&gender=undefined&value="
	thumbnailHost = "https://thumbs.wikifeet.com"
	imageHost     = "https://pics.wikifeet.com"
	imdbUrl       = "https://www.imdb.com"
)

// Origin tells which resolver produced a model, only search-resolved models go through the
// adult content gate.
type Origin int

const (
	OriginRank Origin = iota
	OriginSearch
)

func (o Origin) String() string {
	switch o {
	case OriginRank:
		return "rank"
	case OriginSearch:
		return "search"
	}
	return "unknown"
}

// ModelRecord is the canonical identity of one ranked or searched model.
type ModelRecord struct {
	// ID is the rank of the model, it is nil for search results.
	ID       *int
	Name     string
	Username string
	PageURL  string
}

var usernameReplacer = strings.NewReplacer("_", "-", " ", "-")

// DeriveUsername replaces every underscore and space with a hyphen.
func DeriveUsername(segment string) string {
	return usernameReplacer.Replace(segment)
}

// PageURL returns the model page for a raw username segment as supplied by the site.
func PageURL(segment string) string {
	return baseUrl + "/" + segment
}

func newModelRecord(id *int, name, segment string) ModelRecord {
	return ModelRecord{
		ID:       id,
		Name:     name,
		Username: DeriveUsername(segment),
		PageURL:  PageURL(segment),
	}
}
