package wikifeet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	janePage    = "https://www.wikifeet.com/Jane_Doe"
	janeSuggest = suggestUrl + "Jane%20Doe"
)

func rankedJane(t *testing.T, page string) (testEnv, Model) {
	t.Helper()
	env := newTestEnv(t, map[string]string{
		rankListUrl: rankListingHtml(rankRow{"1", "Jane Doe", "Jane_Doe"}),
		janePage:    page,
	})
	model, err := env.client.ByRank(context.Background(), 1)
	require.NoError(t, err)
	return env, model
}

func searchedJane(t *testing.T, page string) (testEnv, Model) {
	t.Helper()
	env := newTestEnv(t, map[string]string{
		janeSuggest: suggestBody("Jane Doe", "Jane_Doe"),
		janePage:    page,
	})
	model, err := env.client.Search(context.Background(), "Jane Doe")
	require.NoError(t, err)
	return env, model
}

func TestFieldAccessors(t *testing.T) {
	_, model := rankedJane(t, modelPageHtml(modelPageOptions{}))
	ctx := context.Background()

	table := []struct {
		name     string
		accessor func(context.Context) (string, error)
		expected string
	}{
		{name: "shoe size", accessor: model.ShoeSize, expected: "8.5 (US)"},
		{name: "birth place", accessor: model.BirthPlace, expected: "Brazil"},
		{name: "birth date", accessor: model.BirthDate, expected: "1990-01-01"},
		{name: "rating", accessor: model.Rating, expected: "4.5"},
		{name: "rating stats", accessor: model.RatingStats, expected: "154"},
		{name: "imdb", accessor: model.ImdbPage, expected: "https://www.imdb.com/name/nm0000123/"},
		{name: "page url", accessor: model.PageURL, expected: janePage},
	}

	for _, test := range table {
		value, err := test.accessor(ctx)
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, value, test.name)
	}
}

func TestAccessorsRefetch(t *testing.T) {
	env, model := rankedJane(t, modelPageHtml(modelPageOptions{}))
	ctx := context.Background()

	_, err := model.ShoeSize(ctx)
	require.NoError(t, err)
	_, err = model.ShoeSize(ctx)
	require.NoError(t, err)
	_, err = model.Rating(ctx)
	require.NoError(t, err)

	require.Equal(t, 3, env.fetcher.Count(janePage))
}

func TestRatingFallback(t *testing.T) {
	_, model := rankedJane(t, modelPageHtml(modelPageOptions{gorgeous: true}))

	rating, err := model.Rating(context.Background())
	require.NoError(t, err)
	require.Equal(t, "4.9", rating)
}

func TestRatingMissing(t *testing.T) {
	_, model := rankedJane(t, modelPageHtml(modelPageOptions{noRating: true}))

	_, err := model.Rating(context.Background())
	require.ErrorIs(t, err, ErrNoMatch)
	require.ErrorIs(t, err, ErrAbsent)
	require.False(t, IsAdultContent(err))
}

func TestRatingBreakdown(t *testing.T) {
	_, model := rankedJane(t, modelPageHtml(modelPageOptions{}))
	ctx := context.Background()

	breakdown, err := model.RatingBreakdown(ctx)
	require.NoError(t, err)
	require.Equal(t, RatingBreakdown{
		RatingBeautiful: "120",
		RatingNice:      "30",
		RatingUgly:      "4",
	}, breakdown)

	nice, err := model.CategoryRating(ctx, RatingNice)
	require.NoError(t, err)
	require.Equal(t, "30", nice)

	_, err = model.CategoryRating(ctx, RatingBad)
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestRatingBreakdownEmpty(t *testing.T) {
	_, model := rankedJane(t, "<html><body>nothing to see</body></html>")

	_, err := model.RatingBreakdown(context.Background())
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestFetchFailureIsAbsent(t *testing.T) {
	env, model := rankedJane(t, modelPageHtml(modelPageOptions{}))
	env.fetcher.Fail(janePage, errors.New("timeout"))
	ctx := context.Background()

	_, err := model.BirthPlace(ctx)
	require.ErrorIs(t, err, ErrFetchFailed)
	require.ErrorIs(t, err, ErrAbsent)

	_, err = model.PageURL(ctx)
	require.ErrorIs(t, err, ErrAbsent)
}

func TestGateOnSearchPath(t *testing.T) {
	env, model := searchedJane(t, modelPageHtml(modelPageOptions{gated: true}))
	ctx := context.Background()

	accessors := []func(context.Context) (string, error){
		model.ShoeSize,
		model.BirthPlace,
		model.BirthDate,
		model.Rating,
		model.RatingStats,
		model.ImdbPage,
		model.PageURL,
		model.Thumbnail,
		model.Image,
	}
	for _, accessor := range accessors {
		_, err := accessor(ctx)
		require.True(t, IsAdultContent(err))
		require.False(t, errors.Is(err, ErrAbsent))

		var adult *AdultContentError
		require.ErrorAs(t, err, &adult)
		require.Equal(t, "Jane Doe", adult.Name)
	}

	_, err := model.RatingBreakdown(ctx)
	require.True(t, IsAdultContent(err))

	// the gate is evaluated on every fetch
	require.Equal(t, len(accessors)+1, env.fetcher.Count(janePage))

	// names never need the page
	name, err := model.Name()
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", name)
}

func TestGateRechecked(t *testing.T) {
	env, model := searchedJane(t, modelPageHtml(modelPageOptions{}))
	ctx := context.Background()

	size, err := model.ShoeSize(ctx)
	require.NoError(t, err)
	require.Equal(t, "8.5 (US)", size)

	env.fetcher.Set(janePage, modelPageHtml(modelPageOptions{gated: true}))
	_, err = model.ShoeSize(ctx)
	require.True(t, IsAdultContent(err))
}

func TestNoGateOnRankPath(t *testing.T) {
	_, model := rankedJane(t, modelPageHtml(modelPageOptions{gated: true}))
	ctx := context.Background()

	size, err := model.ShoeSize(ctx)
	require.NoError(t, err)
	require.Equal(t, "8.5 (US)", size)

	link, err := model.PageURL(ctx)
	require.NoError(t, err)
	require.Equal(t, janePage, link)
}

func TestIsGated(t *testing.T) {
	require.True(t, IsGated(modelPageHtml(modelPageOptions{gated: true})))
	require.False(t, IsGated(modelPageHtml(modelPageOptions{})))
	// the marker must be on a single line
	require.False(t, IsGated("WARNING: CONTAINS ADULT CONTENT\nSwitch to wikiFeet X"))
}
