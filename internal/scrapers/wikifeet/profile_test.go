package wikifeet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	env, model := rankedJane(t, modelPageHtml(modelPageOptions{gorgeous: true}))

	profile, err := model.Profile(context.Background())
	require.NoError(t, err)

	rank := 1
	require.Equal(t, Profile{
		Record: ModelRecord{
			ID:       &rank,
			Name:     "Jane Doe",
			Username: "Jane-Doe",
			PageURL:  janePage,
		},
		Origin:      OriginRank,
		ShoeSize:    "8.5 (US)",
		BirthPlace:  "Brazil",
		BirthDate:   "1990-01-01",
		Rating:      "4.9",
		RatingStats: "154",
		RatingBreakdown: RatingBreakdown{
			RatingBeautiful: "120",
			RatingNice:      "30",
			RatingUgly:      "4",
		},
		ImdbPage: "https://www.imdb.com/name/nm0000123/",
		Media:    []string{"101", "102", "103"},
	}, profile)

	// every field fetches the page on its own
	require.Equal(t, 8, env.fetcher.Count(janePage))
}

func TestProfileAbsentFields(t *testing.T) {
	_, model := rankedJane(t, "<html><body><span id=ssize_label>7<a></span></body></html>")

	profile, err := model.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "7", profile.ShoeSize)
	require.Empty(t, profile.Rating)
	require.Empty(t, profile.ImdbPage)
	require.Nil(t, profile.RatingBreakdown)
	require.Nil(t, profile.Media)
}

func TestProfileGated(t *testing.T) {
	_, model := searchedJane(t, modelPageHtml(modelPageOptions{gated: true}))

	_, err := model.Profile(context.Background())
	require.True(t, IsAdultContent(err))
}

func TestProfileCanceled(t *testing.T) {
	_, model := rankedJane(t, modelPageHtml(modelPageOptions{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := model.Profile(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
