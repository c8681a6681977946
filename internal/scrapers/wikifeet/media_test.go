package wikifeet

import (
	"context"
	"testing"
	"wikifeet-go/internal/components/entropy"
	"wikifeet-go/internal/components/fetch"
	"wikifeet-go/internal/components/telemetry"

	"github.com/stretchr/testify/require"
)

func TestFormatPid(t *testing.T) {
	table := []struct {
		input    any
		expected string
		ok       bool
	}{
		{input: float64(101), expected: "101", ok: true},
		{input: 1.5e7, expected: "15000000", ok: true},
		{input: " 102 ", expected: "102", ok: true},
		{input: "", ok: false},
		{input: nil, ok: false},
		{input: true, ok: false},
	}

	for _, test := range table {
		value, ok := formatPid(test.input)
		require.Equal(t, test.ok, ok, "%v", test.input)
		require.Equal(t, test.expected, value, "%v", test.input)
	}
}

func TestMediaIDs(t *testing.T) {
	_, model := rankedJane(t, modelPageHtml(modelPageOptions{}))

	ids, err := model.MediaIDs(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"101", "102", "103"}, ids)
}

func TestMediaDrawsFromPage(t *testing.T) {
	_, model := rankedJane(t, modelPageHtml(modelPageOptions{}))
	ctx := context.Background()
	candidates := map[string]bool{"101": true, "102": true, "103": true}

	seen := map[string]bool{}
	for range 50 {
		media, err := model.Media(ctx)
		require.NoError(t, err)
		require.True(t, candidates[media.ID], media.ID)
		require.Equal(t, "https://thumbs.wikifeet.com/"+media.ID+".jpg", media.Thumbnail)
		require.Equal(t, "https://pics.wikifeet.com/Jane-Doe-feet-"+media.ID+".jpg", media.Image)
		seen[media.ID] = true
	}
	require.Len(t, seen, len(candidates))

	thumb, err := model.Thumbnail(ctx)
	require.NoError(t, err)
	require.Regexp(t, `^https://thumbs\.wikifeet\.com/10[123]\.jpg$`, thumb)

	image, err := model.Image(ctx)
	require.NoError(t, err)
	require.Regexp(t, `^https://pics\.wikifeet\.com/Jane-Doe-feet-10[123]\.jpg$`, image)
}

func TestMediaSeeded(t *testing.T) {
	pages := map[string]string{
		rankListUrl: rankListingHtml(rankRow{"1", "Jane Doe", "Jane_Doe"}),
		janePage:    modelPageHtml(modelPageOptions{}),
	}
	draw := func(seed uint64) []string {
		client := NewClient(fetch.NewStatic(pages), entropy.NewSeededRandom(seed), telemetry.NewRecorder())
		model, err := client.ByRank(context.Background(), 1)
		require.NoError(t, err)

		var ids []string
		for range 10 {
			id, err := model.RandomMediaID(context.Background())
			require.NoError(t, err)
			ids = append(ids, id)
		}
		return ids
	}

	require.Equal(t, draw(7), draw(7))
}

func TestMediaEmpty(t *testing.T) {
	_, model := rankedJane(t, modelPageHtml(modelPageOptions{mediaData: "[]"}))
	ctx := context.Background()

	_, err := model.Thumbnail(ctx)
	require.ErrorIs(t, err, ErrNoMatch)
	_, err = model.Image(ctx)
	require.ErrorIs(t, err, ErrAbsent)
}

func TestMediaMissing(t *testing.T) {
	_, model := rankedJane(t, "<html><body>no photos</body></html>")

	_, err := model.MediaIDs(context.Background())
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestMediaMalformed(t *testing.T) {
	env, model := rankedJane(t, modelPageHtml(modelPageOptions{mediaData: "[{pid:}]"}))

	_, err := model.MediaIDs(context.Background())
	require.ErrorIs(t, err, ErrAbsent)
	require.True(t, env.tel.Has(telemetry.KindBroken, report_media_decode))
}
