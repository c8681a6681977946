package wikifeet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type pollRow struct {
	label   string
	percent string
}

func pollPageHtml(chartColumn, chartRows string, rows ...pollRow) string {
	var sb strings.Builder
	sb.WriteString("<html><body><table>\n")
	for _, r := range rows {
		fmt.Fprintf(
			&sb,
			"<tr><td>%s</td><td><div style='background:#a0c; width:%s%%'>%s%%</div></td></tr>\n",
			r.label, r.percent, r.percent,
		)
	}
	sb.WriteString("</table>\n")
	if chartColumn != "" {
		fmt.Fprintf(
			&sb,
			"<script>var data = google.visualization.arrayToDataTable([[\"Country\", \"%s\"],%s]);</script>\n",
			chartColumn, chartRows,
		)
	}
	sb.WriteString("</body></html>")
	return sb.String()
}

func TestPollMetrics(t *testing.T) {
	metrics := PollMetrics()
	require.Len(t, metrics, 9)
	require.Equal(t, RomanFeet, metrics[0])
	require.Equal(t, OpenFeetLover, metrics[8])

	for _, metric := range metrics {
		require.NotEmpty(t, metric.Label(), metric)
	}

	for _, metric := range CountryMetrics() {
		_, ok := countryCharts[metric]
		require.True(t, ok, metric)
	}
}

func TestPollStat(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		pollUrl(1): pollPageHtml(
			"", "",
			pollRow{"Liked Roman / Egyptian feet better", "41"},
			pollRow{"Liked Greek feet / Morton's toe better", "59"},
		),
		pollUrl(4): pollPageHtml(
			"", "",
			pollRow{"No, I keep it to myself", "72"},
			pollRow{"Yes, I am open about it", "28"},
		),
	})
	ctx := context.Background()

	table := []struct {
		metric   PollMetric
		expected string
	}{
		{metric: RomanFeet, expected: "41%"},
		{metric: GreekFeet, expected: "59%"},
		{metric: SecretFeetLover, expected: "72%"},
		{metric: OpenFeetLover, expected: "28%"},
	}

	for _, test := range table {
		value, err := env.client.PollStat(ctx, test.metric)
		require.NoError(t, err, test.metric)
		require.Equal(t, test.expected, value, test.metric)
	}

	// polls/2 is not served
	_, err := env.client.PollStat(ctx, FootTattoos)
	require.ErrorIs(t, err, ErrFetchFailed)

	_, err = env.client.PollStat(ctx, PollMetric("flat_feet"))
	require.ErrorIs(t, err, ErrUnknownMetric)
}

func TestPollStatMissingRow(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		pollUrl(3): pollPageHtml("", "", pollRow{"I like natural toes better", "80"}),
	})

	_, err := env.client.PollStat(context.Background(), PaintedToes)
	require.ErrorIs(t, err, ErrNoMatch)
}

const countryRows = `["Brazil", {v: 61.2, f: "61.2%"}],["United States", {v: 40, f: "40%"}],[ "japan" , {v:12.5,f:"12.5%"}] `

func TestParseCountryTable(t *testing.T) {
	groups, ok := extractFirst(
		pollPageHtml("Favor longer second toe", countryRows),
		countryChartPattern("Favor longer second toe"),
	)
	require.True(t, ok)

	table, err := parseCountryTable(groups[0])
	require.NoError(t, err)
	require.Equal(t, CountryPollTable{
		"BRAZIL":        "61.2%",
		"UNITED STATES": "40%",
		"JAPAN":         "12.5%",
	}, table)

	_, err = parseCountryTable(`{broken`)
	require.Error(t, err)
}

func TestCountryStat(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		pollUrl(1): pollPageHtml("Favor longer second toe", countryRows),
		pollUrl(2): pollPageHtml("Favor foot tattoos", `["Germany", {v: 22, f: "22%"}] `),
	})
	ctx := context.Background()

	value, err := env.client.CountryStat(ctx, RomanFeet, "brazil")
	require.NoError(t, err)
	require.Equal(t, "61.2%", value)

	value, err = env.client.CountryStat(ctx, RomanFeet, "Japan")
	require.NoError(t, err)
	require.Equal(t, "12.5%", value)

	_, err = env.client.CountryStat(ctx, FootTattoos, "Brazil")
	require.ErrorIs(t, err, ErrNoMatch)
	require.ErrorIs(t, err, ErrAbsent)

	_, err = env.client.CountryStat(ctx, GreekFeet, "Brazil")
	require.ErrorIs(t, err, ErrUnknownMetric)

	env.fetcher.Fail(pollUrl(1), errors.New("refused"))
	_, err = env.client.CountryStat(ctx, RomanFeet, "Brazil")
	require.ErrorIs(t, err, ErrFetchFailed)
}

func TestCountryChartMissing(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		pollUrl(3): pollPageHtml("", "", pollRow{"I like painted toes better", "35"}),
	})

	_, err := env.client.CountryTable(context.Background(), PaintedToes)
	require.ErrorIs(t, err, ErrNoMatch)
}
