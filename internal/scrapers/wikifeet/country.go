package wikifeet

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/titanous/json5"
)

const (
	report_country_decode = "country.decode"
)

type countryChart struct {
	page    int
	column  string
	pattern *regexp.Regexp
}

func newCountryChart(page int, column string) countryChart {
	return countryChart{page: page, column: column, pattern: countryChartPattern(column)}
}

var countryMetricOrder = []PollMetric{
	RomanFeet,
	FootTattoos,
	PaintedToes,
	SecretFeetLover,
}

var countryCharts = map[PollMetric]countryChart{
	RomanFeet:       newCountryChart(1, "Favor longer second toe"),
	FootTattoos:     newCountryChart(2, "Favor foot tattoos"),
	PaintedToes:     newCountryChart(3, "Favor painted toes"),
	SecretFeetLover: newCountryChart(4, "Keep it secret"),
}

// CountryMetrics lists the metrics that are also charted per country.
func CountryMetrics() []PollMetric {
	return append([]PollMetric(nil), countryMetricOrder...)
}

// CountryPollTable maps an upper-cased country name to its formatted percentage.
type CountryPollTable map[string]string

// parseCountryTable decodes chart rows of the form `["Brazil", {v: 61.2, f: "61.2%"}]`.
// Rows that are not a name followed by a value object are skipped.
func parseCountryTable(rows string) (CountryPollTable, error) {
	var decoded [][]any
	err := json5.Unmarshal([]byte("["+rows), &decoded)
	if err != nil {
		return nil, fmt.Errorf("decode country chart: %w", err)
	}

	table := CountryPollTable{}
	for _, row := range decoded {
		if len(row) < 2 {
			continue
		}
		name, ok := row[0].(string)
		if !ok {
			continue
		}
		value, ok := row[1].(map[string]any)
		if !ok {
			continue
		}
		formatted, ok := value["f"].(string)
		if !ok {
			continue
		}
		table[strings.ToUpper(strings.TrimSpace(name))] = formatted
	}
	return table, nil
}

// CountryTable fetches the per-country chart of a metric.
func (c Client) CountryTable(ctx context.Context, metric PollMetric) (CountryPollTable, error) {
	chart, ok := countryCharts[metric]
	if !ok {
		return nil, fmt.Errorf("%s by country: %w", metric, ErrUnknownMetric)
	}

	link := pollUrl(chart.page)
	text, err := c.fetch.FetchText(ctx, link)
	if err != nil {
		c.tel.ReportWarning(report_stats_poll, fmt.Errorf("fetch: %w", err), link)
		return nil, fmt.Errorf("%s by country: %w: %w", metric, ErrFetchFailed, err)
	}

	groups, ok := extractFirst(text, chart.pattern)
	if !ok {
		return nil, fmt.Errorf("%s by country: %w", metric, ErrNoMatch)
	}
	table, err := parseCountryTable(groups[0])
	if err != nil {
		c.tel.ReportBroken(report_country_decode, err, link)
		return nil, fmt.Errorf("%s by country: %w: %w", metric, ErrNoMatch, err)
	}
	return table, nil
}

// CountryStat returns the percentage of a metric for one country, matched case-insensitively.
func (c Client) CountryStat(ctx context.Context, metric PollMetric, country string) (string, error) {
	table, err := c.CountryTable(ctx, metric)
	if err != nil {
		return "", err
	}
	value, ok := table[strings.ToUpper(strings.TrimSpace(country))]
	if !ok {
		return "", fmt.Errorf("%s in %s: %w", metric, country, ErrNoMatch)
	}
	return value, nil
}
