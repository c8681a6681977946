package wikifeet

import (
	"fmt"
	"strings"
	"testing"
	"wikifeet-go/internal/components/entropy"
	"wikifeet-go/internal/components/fetch"
	"wikifeet-go/internal/components/telemetry"
)

type rankRow struct {
	rank    string
	name    string
	segment string
}

func rankListingHtml(rows ...rankRow) string {
	var sb strings.Builder
	sb.WriteString("<html><body><h1>Feet of the year</h1>\n")
	for _, r := range rows {
		fmt.Fprintf(
			&sb,
			"<h2>#%s: %s</h2><div class='round8 celebbox'>\n\t<div class=boxcont><a href=\"/%s\"><img src='x.jpg'></a></div></div>\n",
			r.rank, r.name, r.segment,
		)
	}
	sb.WriteString("</body></html>")
	return sb.String()
}

func suggestBody(name, segment string) string {
	return fmt.Sprintf(
		`<li onclick="document.getElementById('q').value=\'%s\';parent.location=\'/\' + encodeURI(\'%s\')">%s</li>`,
		name, segment, name,
	)
}

type modelPageOptions struct {
	gated     bool
	gorgeous  bool
	noRating  bool
	mediaData string
}

func modelPageHtml(opts modelPageOptions) string {
	var sb strings.Builder
	sb.WriteString("<html><body>\n")
	if opts.gated {
		sb.WriteString("<div class=warn>WARNING: CONTAINS ADULT CONTENT, you must be 18 or older. Switch to wikiFeet X</div>\n")
	}
	sb.WriteString("<div>Shoe Size: <span id=ssize_label>8.5 (US)<a href='/shoes'>edit</a></span></div>\n")
	sb.WriteString("<div>Birthplace: <span id=nation_label>Brazil<a href='/nation'>edit</a></span></div>\n")
	sb.WriteString("<div>Birth Date: <span id=bdate_label>1990-01-01<a href='/bdate'>edit</a></span></div>\n")
	switch {
	case opts.noRating:
	case opts.gorgeous:
		sb.WriteString("<div style='font-size:14px'>Rating: gorgeous&nbsp;(4.9 feet)</div>\n")
	default:
		sb.WriteString("<div style='white-space:nowrap' >&nbsp;(4.5 feet)</div>\n")
	}
	sb.WriteString("<div style='width:100%'>120<br><span style='color:#abc'>beautiful</span></div>\n")
	sb.WriteString("<div style='width:100%'>30<br><span style='color:#abc'>nice</span></div>\n")
	sb.WriteString("<div style='width:100%'>4<br><span style='color:#abc'>ugly</span></div>\n")
	sb.WriteString("<div style='width:100%'>9<br><span style='color:#abc'>sublime</span></div>\n")
	sb.WriteString("<div>Feet rating stats (154 total votes)<br></div>\n")
	sb.WriteString("<a href='https://www.imdb.com/name/nm0000123/' target=_blank>Go to IMDb page</a>\n")
	media := opts.mediaData
	if media == "" {
		media = `[{pid:101, tags:"sole"},{pid:"102"},{pid:103.0}]`
	}
	fmt.Fprintf(&sb, "<script>messanger['gdata'] = %s;</script>\n", media)
	sb.WriteString("</body></html>")
	return sb.String()
}

type testEnv struct {
	client  Client
	fetcher *fetch.Static
	tel     *telemetry.Recorder
}

func newTestEnv(t *testing.T, pages map[string]string) testEnv {
	t.Helper()
	fetcher := fetch.NewStatic(pages)
	tel := telemetry.NewRecorder()
	return testEnv{
		client:  NewClient(fetcher, entropy.NewSeededRandom(42), tel),
		fetcher: fetcher,
		tel:     tel,
	}
}
