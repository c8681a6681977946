package wikifeet

import (
	"context"
	"fmt"
	"regexp"
)

const (
	report_stats_poll = "stats.poll"
)

func pollUrl(page int) string {
	return fmt.Sprintf("%s/polls/%d", baseUrl, page)
}

// PollMetric names one answer of one of the site-wide polls.
type PollMetric string

const (
	RomanFeet        PollMetric = "roman_feet"
	GreekFeet        PollMetric = "greek_feet"
	NotFootTattoos   PollMetric = "not_foot_tattoos"
	MaybeFootTattoos PollMetric = "maybe_foot_tattoos"
	FootTattoos      PollMetric = "foot_tattoos"
	NaturalToes      PollMetric = "natural_toes"
	PaintedToes      PollMetric = "painted_toes"
	SecretFeetLover  PollMetric = "secret_feet_lover"
	OpenFeetLover    PollMetric = "open_feet_lover"
)

type pollAnswer struct {
	page    int
	label   string
	pattern *regexp.Regexp
}

func newPollAnswer(page int, label string) pollAnswer {
	return pollAnswer{page: page, label: label, pattern: pollPattern(label)}
}

var pollMetricOrder = []PollMetric{
	RomanFeet,
	GreekFeet,
	NotFootTattoos,
	MaybeFootTattoos,
	FootTattoos,
	NaturalToes,
	PaintedToes,
	SecretFeetLover,
	OpenFeetLover,
}

var pollAnswers = map[PollMetric]pollAnswer{
	RomanFeet:        newPollAnswer(1, "Liked Roman / Egyptian feet better"),
	GreekFeet:        newPollAnswer(1, "Liked Greek feet / Morton's toe better"),
	NotFootTattoos:   newPollAnswer(2, "I Don't like foot tattoos"),
	MaybeFootTattoos: newPollAnswer(2, "I Sometimes like foot tattoos"),
	FootTattoos:      newPollAnswer(2, "I Like foot tattoos"),
	NaturalToes:      newPollAnswer(3, "I like natural toes better"),
	PaintedToes:      newPollAnswer(3, "I like painted toes better"),
	SecretFeetLover:  newPollAnswer(4, "No, I keep it to myself"),
	OpenFeetLover:    newPollAnswer(4, "Yes, I am open about it"),
}

// PollMetrics lists every site-wide metric in poll order.
func PollMetrics() []PollMetric {
	return append([]PollMetric(nil), pollMetricOrder...)
}

// Label returns the answer text of the metric as shown on the poll page.
func (p PollMetric) Label() string {
	return pollAnswers[p].label
}

// PollStat returns the share of votes (a percentage string) of a site-wide poll answer.
func (c Client) PollStat(ctx context.Context, metric PollMetric) (string, error) {
	answer, ok := pollAnswers[metric]
	if !ok {
		return "", fmt.Errorf("%s: %w", metric, ErrUnknownMetric)
	}

	link := pollUrl(answer.page)
	text, err := c.fetch.FetchText(ctx, link)
	if err != nil {
		c.tel.ReportWarning(report_stats_poll, fmt.Errorf("fetch: %w", err), link)
		return "", fmt.Errorf("%s: %w: %w", metric, ErrFetchFailed, err)
	}

	groups, ok := extractFirst(text, answer.pattern)
	if !ok {
		return "", fmt.Errorf("%s: %w", metric, ErrNoMatch)
	}
	return groups[2], nil
}
