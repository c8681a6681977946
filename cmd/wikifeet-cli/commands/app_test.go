package commands

import (
	"context"
	"testing"
	"wikifeet-go/internal/components/entropy"
	"wikifeet-go/internal/components/fetch"
	"wikifeet-go/internal/components/telemetry"
	"wikifeet-go/internal/history"
	"wikifeet-go/internal/scrapers/wikifeet"

	"github.com/stretchr/testify/require"
)

const listingHtml = "<html><body>\n" +
	"<h2>#1: Jane Doe</h2><div class='round8 celebbox'>\n\t<div class=boxcont><a href=\"/Jane_Doe\"><img src='x.jpg'></a></div></div>\n" +
	"</body></html>"

func TestLookupOf(t *testing.T) {
	client := wikifeet.NewClient(
		fetch.NewStatic(map[string]string{
			"https://www.wikifeet.com/feetoftheyear": listingHtml,
		}),
		entropy.NewSeededRandom(1),
		telemetry.NewRecorder(),
	)
	ctx := context.Background()

	model, err := client.ByRank(ctx, 1)
	require.NoError(t, err)
	lookup := lookupOf("1", model, err)
	require.Equal(t, "rank", lookup.Kind)
	require.Equal(t, "1", lookup.Query)
	require.Equal(t, "Jane Doe", lookup.Name)
	require.Equal(t, "Jane-Doe", lookup.Username)
	require.Equal(t, "https://www.wikifeet.com/Jane_Doe", lookup.PageURL)
	require.Equal(t, history.OutcomeFound, lookup.Outcome)

	// media and profile lookups share the kind of their resolver
	model, err = client.Search(ctx, "Nobody")
	require.Error(t, err)
	lookup = lookupOf("Nobody", model, err)
	require.Equal(t, "search", lookup.Kind)
	require.Empty(t, lookup.Name)
	require.Equal(t, history.OutcomeNotFound, lookup.Outcome)

	model, err = client.ByRank(ctx, 9)
	require.Error(t, err)
	require.Equal(t, "rank", lookupOf("9", model, err).Kind)
}
