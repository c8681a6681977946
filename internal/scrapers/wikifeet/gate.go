package wikifeet

// IsGated reports whether a model page is flagged as adult content.
func IsGated(pageText string) bool {
	return adultContentPattern.MatchString(pageText)
}
