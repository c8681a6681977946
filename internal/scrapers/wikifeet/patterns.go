package wikifeet

import (
	"regexp"
)

// every pattern is applied to raw page text, `.` does not cross line boundaries.
var (
	// groups: rank, display name, raw username segment
	rankListingPattern = regexp.MustCompile(`<h2>#(.*?): (.*?)</h2><div class='round8 celebbox'>\s*<div class=boxcont><a href="/(.*?)">`)

	// groups: display name, raw username segment
	// applied after every backslash has been stripped from the response
	suggestionPattern = regexp.MustCompile(`.value='(.*?)';parent.location='/' \+ encodeURI\('(.*?)'\)`)

	adultContentPattern = regexp.MustCompile(`WARNING: CONTAINS ADULT CONTENT(.*?)Switch to wikiFeet X`)

	shoeSizePattern   = regexp.MustCompile(`id=ssize_label>(.*?)<a`)
	birthPlacePattern = regexp.MustCompile(`id=nation_label>(.*?)<a`)
	birthDatePattern  = regexp.MustCompile(`id=bdate_label>(.*?)<a`)

	ratingPattern = regexp.MustCompile(`white-space:nowrap' >&nbsp;\((.*?) feet\)</div>`)
	// fallback for pages whose rating box renders "gorgeous" style, value is group 2
	ratingGorgeousPattern = regexp.MustCompile(`Rating(.*?)&nbsp;\((.*?) feet\)</div>`)

	// groups: count, category label
	ratingBreakdownPattern = regexp.MustCompile(`width:100%'>(.*?)<br><span style='color:#abc'>(.*?)</span>`)
	ratingStatsPattern     = regexp.MustCompile(`Feet rating stats \((.*?) (.*?)<br>`)

	imdbPattern = regexp.MustCompile(`www.imdb.com/(.*?)'(.*?)Go to IMDb page`)

	mediaDataPattern = regexp.MustCompile(`messanger\['gdata'\] = (\[.*?\]);`)
)

// pollPattern matches one answer row of a poll page, the percentage is group 3.
func pollPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(label) + `(.*?) width:(.*?)%'>(.*?)</div></td></tr>`)
}

// countryChartPattern matches the rows of a per-country chart following its header row,
// the rows run until the first `]` preceded by whitespace.
func countryChartPattern(column string) *regexp.Regexp {
	return regexp.MustCompile(`\["Country", "` + regexp.QuoteMeta(column) + `"\],(.*?\s*\s])`)
}
